package readstore

import (
	"context"
	"time"

	"housnkuh/internal/infra"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/pkg/pgconv"
	"housnkuh/internal/usecase/queries"

	"github.com/google/uuid"
)

type VendorReadStore struct {
	db db.DBTX
}

func NewVendorReadStore(dbtx db.DBTX) *VendorReadStore {
	return &VendorReadStore{db: dbtx}
}

func (s *VendorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VendorView, error) {
	const query = `
		SELECT v.id, v.email, v.name, v.role, v.confirmed, v.created_at,
		       b.package_name, b.monthly_price_cents, b.setup_fee_cents, b.unit_counts, b.addons,
		       b.requested_start, b.duration_months, b.trial, b.status, b.requested_at,
		       b.contract_id, b.assigned_unit_ids
		FROM vendors v
		LEFT JOIN pending_bookings b ON b.vendor_id = v.id
		WHERE v.id = $1`

	var (
		view    queries.VendorView
		booking nullableBooking
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Email,
		&view.Name,
		&view.Role,
		&view.Confirmed,
		&view.CreatedAt,
		&booking.packageName,
		&booking.monthlyPriceCents,
		&booking.setupFeeCents,
		&booking.unitCounts,
		&booking.addons,
		&booking.requestedStart,
		&booking.durationMonths,
		&booking.trial,
		&booking.status,
		&booking.requestedAt,
		&booking.contractID,
		&booking.assignedUnitIDs,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vendor by ID", err)
	}

	view.Booking = booking.toView(view.ID, view.Name, view.Email, view.Confirmed)
	return &view, nil
}

// FindPendingBookings lists booking requests awaiting approval, oldest
// first so the admin works the queue in arrival order.
func (s *VendorReadStore) FindPendingBookings(ctx context.Context) ([]*queries.PendingBookingView, error) {
	const query = `
		SELECT v.id, v.name, v.email, v.confirmed,
		       b.package_name, b.monthly_price_cents, b.setup_fee_cents, b.unit_counts, b.addons,
		       b.requested_start, b.duration_months, b.trial, b.status, b.requested_at,
		       b.contract_id, b.assigned_unit_ids
		FROM pending_bookings b
		JOIN vendors v ON v.id = b.vendor_id
		WHERE b.status = 'pending'
		ORDER BY b.requested_at`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending bookings", err)
	}
	defer rows.Close()

	var views []*queries.PendingBookingView
	for rows.Next() {
		var (
			vendorID  uuid.UUID
			name      string
			email     string
			confirmed bool
			booking   nullableBooking
		)
		err := rows.Scan(
			&vendorID,
			&name,
			&email,
			&confirmed,
			&booking.packageName,
			&booking.monthlyPriceCents,
			&booking.setupFeeCents,
			&booking.unitCounts,
			&booking.addons,
			&booking.requestedStart,
			&booking.durationMonths,
			&booking.trial,
			&booking.status,
			&booking.requestedAt,
			&booking.contractID,
			&booking.assignedUnitIDs,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending booking", err)
		}
		views = append(views, booking.toView(vendorID, name, email, confirmed))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pending bookings", err)
	}
	return views, nil
}

// nullableBooking absorbs the LEFT JOIN: every column is a pointer so a
// vendor without a booking row scans cleanly.
type nullableBooking struct {
	packageName       *string
	monthlyPriceCents *int64
	setupFeeCents     *int64
	unitCounts        map[string]int
	addons            []string
	requestedStart    *time.Time
	durationMonths    *int
	trial             *bool
	status            *string
	requestedAt       *time.Time
	contractID        *uuid.UUID
	assignedUnitIDs   []uuid.UUID
}

func (b nullableBooking) toView(vendorID uuid.UUID, name, email string, confirmed bool) *queries.PendingBookingView {
	if b.packageName == nil {
		return nil
	}
	return &queries.PendingBookingView{
		VendorID:          vendorID,
		VendorName:        name,
		VendorEmail:       email,
		VendorConfirmed:   confirmed,
		PackageName:       *b.packageName,
		MonthlyPriceCents: *b.monthlyPriceCents,
		SetupFeeCents:     *b.setupFeeCents,
		UnitCounts:        b.unitCounts,
		Addons:            b.addons,
		RequestedStart:    *b.requestedStart,
		DurationMonths:    *b.durationMonths,
		Trial:             *b.trial,
		Status:            *b.status,
		RequestedAt:       *b.requestedAt,
		ContractID:        b.contractID,
		AssignedUnitIDs:   b.assignedUnitIDs,
	}
}
