package shared

import (
	"context"
	"time"

	"housnkuh/internal/domain/contract"
	"housnkuh/internal/domain/settings"
	"housnkuh/internal/domain/unit"
	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Units() UnitRepository
	Contracts() ContractRepository
	Vendors() VendorRepository
	Settings() SettingsRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	VendorByID(ctx context.Context, id uuid.UUID) (*VendorSnapshot, error)
	VendorByEmail(ctx context.Context, email string) (*VendorSnapshot, error)
	VendorByToken(ctx context.Context, token string) (*VendorSnapshot, error)
	UnitByID(ctx context.Context, id uuid.UUID) (*UnitSnapshot, error)
	ContractByID(ctx context.Context, id uuid.UUID) (*ContractSnapshot, error)
	StoreOpening(ctx context.Context) (settings.StoreOpening, error)
}

type UnitRepository interface {
	Create(ctx context.Context, u *unit.Unit) error
	Save(ctx context.Context, u *unit.Unit) error
	// LockByIDs takes row locks on the given units for the duration of the
	// surrounding transaction, serializing concurrent approvals.
	LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*UnitSnapshot, error)
}

type ContractRepository interface {
	Create(ctx context.Context, c *contract.Contract) error
	SaveCancellation(ctx context.Context, c *contract.Contract) error
	// HasOverlap reports whether any occupying contract's impact window
	// overlaps [from, to) on the given unit, half-open semantics.
	HasOverlap(ctx context.Context, unitID uuid.UUID, from, to time.Time) (bool, error)
}

type VendorRepository interface {
	Create(ctx context.Context, v *vendor.Vendor) error
	SaveConfirmation(ctx context.Context, v *vendor.Vendor) error
	SaveBooking(ctx context.Context, vendorID uuid.UUID, b *vendor.PendingBooking) error
}

type SettingsRepository interface {
	Save(ctx context.Context, s settings.StoreOpening) error
}
