package commands

import (
	"context"
	"log/slog"

	"housnkuh/internal/domain/unit"
	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/infra"
	"housnkuh/internal/pkg/clock"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/pkg/password"
	"housnkuh/internal/pkg/token"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterResult struct {
	VendorID uuid.UUID
}

type RegistrationCommands interface {
	// Register creates an unconfirmed vendor account with its embedded
	// booking request and sends the confirmation mail.
	Register(ctx context.Context, input RegisterVendorInput) (*RegisterResult, error)
	// Confirm consumes a single-use confirmation token.
	Confirm(ctx context.Context, confirmationToken string) error
}

type registrationCommandsImpl struct {
	uow    shared.UnitOfWork
	mailer ConfirmationMailer
	clock  clock.Clock
}

func NewRegistrationCommands(uow shared.UnitOfWork, mailer ConfirmationMailer, clock clock.Clock) RegistrationCommands {
	return &registrationCommandsImpl{
		uow:    uow,
		mailer: mailer,
		clock:  clock,
	}
}

func (r *registrationCommandsImpl) Register(ctx context.Context, input RegisterVendorInput) (*RegisterResult, error) {
	newVendor, err := r.buildVendor(input)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().VendorByEmail(ctx, newVendor.Email().Value())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if existing != nil {
			return errs.ErrDuplicateEmail
		}

		if err := tx.Vendors().Create(ctx, newVendor); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateEmail
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Delivery failures must not fail the registration; the vendor can
	// request a fresh mail later.
	if mailErr := r.mailer.SendConfirmation(ctx, newVendor.Email().Value(), newVendor.Name().Value(), *newVendor.ConfirmationToken()); mailErr != nil {
		slog.Warn("failed to send confirmation mail",
			"vendor_id", newVendor.ID().String(),
			"error", mailErr.Error())
	}

	return &RegisterResult{VendorID: newVendor.ID()}, nil
}

func (r *registrationCommandsImpl) Confirm(ctx context.Context, confirmationToken string) error {
	if confirmationToken == "" {
		return errs.ErrConfirmationToken
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().VendorByToken(ctx, confirmationToken)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrConfirmationToken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		vendorEntity, err := vendorFromSnapshot(snapshot)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := vendorEntity.Confirm(); err != nil {
			return errs.Mark(err, errs.ErrAlreadyConfirmed)
		}

		if err := tx.Vendors().SaveConfirmation(ctx, vendorEntity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (r *registrationCommandsImpl) buildVendor(input RegisterVendorInput) (*vendor.Vendor, error) {
	email, err := vendor.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	pw, err := vendor.NewPassword(input.Password)
	if err != nil {
		return nil, err
	}

	name, err := vendor.NewName(input.Name)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, err
	}

	unitCounts := make(map[unit.Type]int, len(input.Package.UnitCounts))
	for t, n := range input.Package.UnitCounts {
		unitType, err := unit.NewType(t)
		if err != nil {
			return nil, err
		}
		unitCounts[unitType] = n
	}

	booking, err := vendor.NewPendingBooking(
		input.Package.Name,
		input.Package.MonthlyPriceCents,
		input.Package.SetupFeeCents,
		unitCounts,
		input.Package.Addons,
		input.Package.RequestedStart,
		input.Package.DurationMonths,
		input.Package.Trial,
		r.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	confirmationToken, err := token.NewConfirmationToken()
	if err != nil {
		return nil, err
	}

	return vendor.NewVendor(email, hash, name, confirmationToken, booking), nil
}

func vendorFromSnapshot(s *shared.VendorSnapshot) (*vendor.Vendor, error) {
	email, err := vendor.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}

	name, err := vendor.NewName(s.Name)
	if err != nil {
		return nil, err
	}

	role, err := vendor.NewRole(s.Role)
	if err != nil {
		return nil, err
	}

	var booking *vendor.PendingBooking
	if s.Booking != nil {
		booking = bookingFromSnapshot(s.Booking)
	}

	return vendor.ReconstructVendor(
		s.ID,
		email,
		s.PasswordHash,
		name,
		role,
		s.Confirmed,
		s.ConfirmationToken,
		booking,
		s.CreatedAt,
		s.UpdatedAt,
	), nil
}

func bookingFromSnapshot(s *shared.BookingSnapshot) *vendor.PendingBooking {
	unitCounts := make(map[unit.Type]int, len(s.UnitCounts))
	for t, n := range s.UnitCounts {
		unitCounts[unit.Type(t)] = n
	}

	return vendor.ReconstructPendingBooking(
		s.PackageName,
		s.MonthlyPriceCents,
		s.SetupFeeCents,
		unitCounts,
		s.Addons,
		s.RequestedStart,
		s.DurationMonths,
		s.Trial,
		vendor.BookingStatus(s.Status),
		s.RequestedAt,
		s.ContractID,
		s.AssignedUnitIDs,
	)
}
