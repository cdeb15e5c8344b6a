//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"housnkuh/internal/domain/contract"
	"housnkuh/internal/domain/settings"
	"housnkuh/internal/domain/unit"
	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/infra"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory unit of work. Within clones the store up front and restores
// it when the callback fails, so the all-or-nothing behavior of the
// commands can be asserted against the visible state.
type fakeStore struct {
	vendors   map[uuid.UUID]*shared.VendorSnapshot
	units     map[uuid.UUID]*shared.UnitSnapshot
	contracts map[uuid.UUID]*shared.ContractSnapshot
	opening   settings.StoreOpening
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		vendors:   make(map[uuid.UUID]*shared.VendorSnapshot),
		units:     make(map[uuid.UUID]*shared.UnitSnapshot),
		contracts: make(map[uuid.UUID]*shared.ContractSnapshot),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, v := range s.vendors {
		copied := *v
		if v.Booking != nil {
			booking := *v.Booking
			copied.Booking = &booking
		}
		c.vendors[id] = &copied
	}
	for id, u := range s.units {
		copied := *u
		c.units[id] = &copied
	}
	for id, ct := range s.contracts {
		copied := *ct
		c.contracts[id] = &copied
	}
	c.opening = s.opening
	return c
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{store: newFakeStore()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	backup := u.store.clone()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		*u.store = *backup
		return err
	}
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Units() shared.UnitRepository         { return &fakeUnits{store: t.store} }
func (t *fakeTx) Contracts() shared.ContractRepository { return &fakeContracts{store: t.store} }
func (t *fakeTx) Vendors() shared.VendorRepository     { return &fakeVendors{store: t.store} }
func (t *fakeTx) Settings() shared.SettingsRepository  { return &fakeSettings{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads           { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                          { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) VendorByID(_ context.Context, id uuid.UUID) (*shared.VendorSnapshot, error) {
	v, ok := r.store.vendors[id]
	if !ok {
		return nil, notFound("vendor not found")
	}
	return v, nil
}

func (r *fakeReads) VendorByEmail(_ context.Context, email string) (*shared.VendorSnapshot, error) {
	for _, v := range r.store.vendors {
		if strings.EqualFold(v.Email, email) {
			return v, nil
		}
	}
	return nil, notFound("vendor not found")
}

func (r *fakeReads) VendorByToken(_ context.Context, token string) (*shared.VendorSnapshot, error) {
	for _, v := range r.store.vendors {
		if v.ConfirmationToken != nil && *v.ConfirmationToken == token {
			return v, nil
		}
	}
	return nil, notFound("vendor not found")
}

func (r *fakeReads) UnitByID(_ context.Context, id uuid.UUID) (*shared.UnitSnapshot, error) {
	u, ok := r.store.units[id]
	if !ok {
		return nil, notFound("unit not found")
	}
	return u, nil
}

func (r *fakeReads) ContractByID(_ context.Context, id uuid.UUID) (*shared.ContractSnapshot, error) {
	c, ok := r.store.contracts[id]
	if !ok {
		return nil, notFound("contract not found")
	}
	return c, nil
}

func (r *fakeReads) StoreOpening(_ context.Context) (settings.StoreOpening, error) {
	return r.store.opening, nil
}

type fakeUnits struct {
	store *fakeStore
}

func (f *fakeUnits) Create(_ context.Context, u *unit.Unit) error {
	for _, existing := range f.store.units {
		if existing.Label == u.Label() {
			return infra.WrapRepoErr("duplicate unit label", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	f.store.units[u.ID()] = unitSnapshotFrom(u)
	return nil
}

func (f *fakeUnits) Save(_ context.Context, u *unit.Unit) error {
	if _, ok := f.store.units[u.ID()]; !ok {
		return notFound("unit not found")
	}
	f.store.units[u.ID()] = unitSnapshotFrom(u)
	return nil
}

func (f *fakeUnits) LockByIDs(_ context.Context, ids []uuid.UUID) ([]*shared.UnitSnapshot, error) {
	snapshots := make([]*shared.UnitSnapshot, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.store.units[id]; ok {
			snapshots = append(snapshots, u)
		}
	}
	return snapshots, nil
}

type fakeContracts struct {
	store *fakeStore
}

func (f *fakeContracts) Create(_ context.Context, c *contract.Contract) error {
	f.store.contracts[c.ID()] = contractSnapshotFrom(c)
	return nil
}

func (f *fakeContracts) SaveCancellation(_ context.Context, c *contract.Contract) error {
	if _, ok := f.store.contracts[c.ID()]; !ok {
		return notFound("contract not found")
	}
	f.store.contracts[c.ID()] = contractSnapshotFrom(c)
	return nil
}

func (f *fakeContracts) HasOverlap(_ context.Context, unitID uuid.UUID, from, to time.Time) (bool, error) {
	for _, c := range f.store.contracts {
		if !contract.Status(c.Status).Occupying() {
			continue
		}
		if !c.ImpactFrom.Before(to) || !c.ImpactTo.After(from) {
			continue
		}
		for _, svc := range c.Services {
			if svc.UnitID == unitID {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeVendors struct {
	store *fakeStore
}

func (f *fakeVendors) Create(_ context.Context, v *vendor.Vendor) error {
	for _, existing := range f.store.vendors {
		if strings.EqualFold(existing.Email, v.Email().Value()) {
			return infra.WrapRepoErr("duplicate email", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	f.store.vendors[v.ID()] = vendorSnapshotFrom(v)
	return nil
}

func (f *fakeVendors) SaveConfirmation(_ context.Context, v *vendor.Vendor) error {
	existing, ok := f.store.vendors[v.ID()]
	if !ok {
		return notFound("vendor not found")
	}
	existing.Confirmed = v.IsConfirmed()
	existing.ConfirmationToken = v.ConfirmationToken()
	return nil
}

func (f *fakeVendors) SaveBooking(_ context.Context, vendorID uuid.UUID, b *vendor.PendingBooking) error {
	existing, ok := f.store.vendors[vendorID]
	if !ok {
		return notFound("vendor not found")
	}
	existing.Booking = bookingSnapshotFrom(b)
	return nil
}

type fakeSettings struct {
	store *fakeStore
}

func (f *fakeSettings) Save(_ context.Context, s settings.StoreOpening) error {
	f.store.opening = s
	return nil
}

type fakeMailer struct {
	recipients []string
	tokens     []string
	failWith   error
}

func (m *fakeMailer) SendConfirmation(_ context.Context, recipient, _, confirmationToken string) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.recipients = append(m.recipients, recipient)
	m.tokens = append(m.tokens, confirmationToken)
	return nil
}

func unitSnapshotFrom(u *unit.Unit) *shared.UnitSnapshot {
	return &shared.UnitSnapshot{
		ID:                u.ID(),
		Label:             u.Label(),
		UnitType:          u.UnitType().String(),
		MonthlyPriceCents: u.MonthlyPriceCents(),
		Available:         u.IsAvailable(),
		OccupiedBy:        u.OccupiedBy(),
		CreatedAt:         u.CreatedAt(),
		UpdatedAt:         u.UpdatedAt(),
	}
}

func contractSnapshotFrom(c *contract.Contract) *shared.ContractSnapshot {
	services := make([]shared.ServiceSnapshot, 0, len(c.Services()))
	for _, svc := range c.Services() {
		services = append(services, shared.ServiceSnapshot{
			UnitID:    svc.UnitID(),
			LeaseFrom: svc.Period().From(),
			LeaseTo:   svc.Period().To(),
		})
	}
	return &shared.ContractSnapshot{
		ID:                     c.ID(),
		VendorID:               c.VendorID(),
		Status:                 c.Status().String(),
		ScheduledStart:         c.ScheduledStart(),
		DurationMonths:         c.DurationMonths(),
		TotalMonthlyPriceCents: c.TotalMonthlyPrice().Cents(),
		DiscountPercent:        c.Discount().Percent(),
		Trial:                  c.IsTrial(),
		TrialCancelled:         c.TrialCancelled(),
		TrialCancelledAt:       c.TrialCancelledAt(),
		BillableFrom:           c.BillableFrom(),
		ImpactFrom:             c.Impact().From(),
		ImpactTo:               c.Impact().To(),
		Services:               services,
		CreatedAt:              c.CreatedAt(),
		UpdatedAt:              c.UpdatedAt(),
	}
}

func vendorSnapshotFrom(v *vendor.Vendor) *shared.VendorSnapshot {
	var booking *shared.BookingSnapshot
	if v.Booking() != nil {
		booking = bookingSnapshotFrom(v.Booking())
	}
	return &shared.VendorSnapshot{
		ID:                v.ID(),
		Email:             v.Email().Value(),
		PasswordHash:      v.PasswordHash(),
		Name:              v.Name().Value(),
		Role:              v.Role().String(),
		Confirmed:         v.IsConfirmed(),
		ConfirmationToken: v.ConfirmationToken(),
		Booking:           booking,
		CreatedAt:         v.CreatedAt(),
		UpdatedAt:         v.UpdatedAt(),
	}
}

func bookingSnapshotFrom(b *vendor.PendingBooking) *shared.BookingSnapshot {
	counts := make(map[string]int, len(b.UnitCounts()))
	for t, n := range b.UnitCounts() {
		counts[t.String()] = n
	}
	return &shared.BookingSnapshot{
		PackageName:       b.PackageName(),
		MonthlyPriceCents: b.MonthlyPriceCents(),
		SetupFeeCents:     b.SetupFeeCents(),
		UnitCounts:        counts,
		Addons:            b.Addons(),
		RequestedStart:    b.RequestedStart(),
		DurationMonths:    b.DurationMonths(),
		Trial:             b.IsTrial(),
		Status:            b.Status().String(),
		RequestedAt:       b.RequestedAt(),
		ContractID:        b.ContractID(),
		AssignedUnitIDs:   b.AssignedUnitIDs(),
	}
}
