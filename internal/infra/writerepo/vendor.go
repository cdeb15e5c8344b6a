package writerepo

import (
	"context"
	"time"

	"housnkuh/internal/domain/unit"
	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/infra"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/pkg/pgconv"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type VendorRepository struct {
	db db.DBTX
}

func NewVendorRepository(dbtx db.DBTX) *VendorRepository {
	return &VendorRepository{db: dbtx}
}

// Create persists the vendor together with its embedded booking request.
// Both rows are part of the registration transaction.
func (r *VendorRepository) Create(ctx context.Context, v *vendor.Vendor) error {
	const query = `
		INSERT INTO vendors (id, email, password_hash, name, role, confirmed, confirmation_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`

	_, err := r.db.Exec(ctx, query,
		v.ID(),
		v.Email().Value(),
		v.PasswordHash(),
		v.Name().Value(),
		v.Role().String(),
		v.IsConfirmed(),
		pgconv.StringPtrToPgtype(v.ConfirmationToken()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create vendor", err)
	}

	if b := v.Booking(); b != nil {
		if err := r.insertBooking(ctx, v.ID(), b); err != nil {
			return err
		}
	}
	return nil
}

func (r *VendorRepository) insertBooking(ctx context.Context, vendorID uuid.UUID, b *vendor.PendingBooking) error {
	const query = `
		INSERT INTO pending_bookings (
			vendor_id, package_name, monthly_price_cents, setup_fee_cents,
			unit_counts, addons, requested_start, duration_months, trial,
			status, requested_at, contract_id, assigned_unit_ids
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, query,
		vendorID,
		b.PackageName(),
		b.MonthlyPriceCents(),
		b.SetupFeeCents(),
		unitCountsToDB(b.UnitCounts()),
		b.Addons(),
		b.RequestedStart(),
		b.DurationMonths(),
		b.IsTrial(),
		b.Status().String(),
		b.RequestedAt(),
		pgconv.UUIDPtrToPgtype(b.ContractID()),
		b.AssignedUnitIDs(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create pending booking", err)
	}
	return nil
}

func (r *VendorRepository) SaveConfirmation(ctx context.Context, v *vendor.Vendor) error {
	const query = `
		UPDATE vendors
		SET confirmed = $2, confirmation_token = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		v.ID(),
		v.IsConfirmed(),
		pgconv.StringPtrToPgtype(v.ConfirmationToken()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save vendor confirmation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vendor not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VendorRepository) SaveBooking(ctx context.Context, vendorID uuid.UUID, b *vendor.PendingBooking) error {
	const query = `
		UPDATE pending_bookings
		SET status = $2, contract_id = $3, assigned_unit_ids = $4
		WHERE vendor_id = $1`

	tag, err := r.db.Exec(ctx, query,
		vendorID,
		b.Status().String(),
		pgconv.UUIDPtrToPgtype(b.ContractID()),
		b.AssignedUnitIDs(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save pending booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.VendorSnapshot, error) {
	return r.findOne(ctx, "v.id = $1", id)
}

func (r *VendorRepository) FindByEmail(ctx context.Context, email string) (*shared.VendorSnapshot, error) {
	return r.findOne(ctx, "v.email = $1", email)
}

func (r *VendorRepository) FindByToken(ctx context.Context, token string) (*shared.VendorSnapshot, error) {
	return r.findOne(ctx, "v.confirmation_token = $1", token)
}

func (r *VendorRepository) findOne(ctx context.Context, where string, arg any) (*shared.VendorSnapshot, error) {
	query := `
		SELECT v.id, v.email, v.password_hash, v.name, v.role, v.confirmed, v.confirmation_token,
		       v.created_at, v.updated_at,
		       b.package_name, b.monthly_price_cents, b.setup_fee_cents, b.unit_counts, b.addons,
		       b.requested_start, b.duration_months, b.trial, b.status, b.requested_at,
		       b.contract_id, b.assigned_unit_ids
		FROM vendors v
		LEFT JOIN pending_bookings b ON b.vendor_id = v.id
		WHERE ` + where

	var (
		snap            shared.VendorSnapshot
		packageName     *string
		monthlyPrice    *int64
		setupFee        *int64
		unitCounts      map[string]int
		addons          []string
		requestedStart  *time.Time
		durationMonths  *int
		trial           *bool
		bookingStatus   *string
		requestedAt     *time.Time
		contractID      *uuid.UUID
		assignedUnitIDs []uuid.UUID
	)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&snap.ID,
		&snap.Email,
		&snap.PasswordHash,
		&snap.Name,
		&snap.Role,
		&snap.Confirmed,
		&snap.ConfirmationToken,
		&snap.CreatedAt,
		&snap.UpdatedAt,
		&packageName,
		&monthlyPrice,
		&setupFee,
		&unitCounts,
		&addons,
		&requestedStart,
		&durationMonths,
		&trial,
		&bookingStatus,
		&requestedAt,
		&contractID,
		&assignedUnitIDs,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vendor", err)
	}

	if packageName != nil {
		snap.Booking = &shared.BookingSnapshot{
			PackageName:       *packageName,
			MonthlyPriceCents: *monthlyPrice,
			SetupFeeCents:     *setupFee,
			UnitCounts:        unitCounts,
			Addons:            addons,
			RequestedStart:    *requestedStart,
			DurationMonths:    *durationMonths,
			Trial:             *trial,
			Status:            *bookingStatus,
			RequestedAt:       *requestedAt,
			ContractID:        contractID,
			AssignedUnitIDs:   assignedUnitIDs,
		}
	}
	return &snap, nil
}

func unitCountsToDB(counts map[unit.Type]int) map[string]int {
	out := make(map[string]int, len(counts))
	for t, n := range counts {
		out[t.String()] = n
	}
	return out
}
