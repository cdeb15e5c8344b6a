package commands

import (
	"context"

	"housnkuh/internal/domain/contract"
	"housnkuh/internal/domain/unit"
	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/infra"
	"housnkuh/internal/pkg/clock"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApproveResult struct {
	ContractID uuid.UUID
	ImpactFrom string
	ImpactTo   string
}

type ApprovalCommands interface {
	// Approve turns a pending booking into a scheduled contract by
	// assigning concrete units. One transaction, all-or-nothing: the
	// availability of every unit is re-checked under row locks, and any
	// conflict aborts without partial mutation.
	Approve(ctx context.Context, vendorID uuid.UUID, unitIDs []uuid.UUID, adminID uuid.UUID) (*ApproveResult, error)
}

type approvalCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewApprovalCommands(uow shared.UnitOfWork, clock clock.Clock) ApprovalCommands {
	return &approvalCommandsImpl{uow: uow, clock: clock}
}

func (a *approvalCommandsImpl) Approve(ctx context.Context, vendorID uuid.UUID, unitIDs []uuid.UUID, adminID uuid.UUID) (*ApproveResult, error) {
	if len(unitIDs) == 0 {
		return nil, errs.Mark(errs.New("no units assigned"), errs.ErrDomainValidation)
	}
	if hasDuplicates(unitIDs) {
		return nil, errs.Mark(errs.New("duplicate unit assignment"), errs.ErrDomainValidation)
	}

	var result *ApproveResult
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vendorSnapshot, err := tx.Reads().VendorByID(ctx, vendorID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if vendorSnapshot.Booking == nil {
			return errs.ErrBookingNotFound
		}
		if !vendorSnapshot.Confirmed {
			return errs.ErrVendorNotConfirmed
		}

		vendorEntity, err := vendorFromSnapshot(vendorSnapshot)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		booking := vendorEntity.Booking()
		if booking.Status() != vendor.BookingPending {
			return errs.ErrBookingAlreadyProcessed
		}
		if len(unitIDs) != booking.RequestedUnits() {
			return errs.Mark(errs.New("assigned unit count does not match the package"), errs.ErrDomainValidation)
		}

		store, err := tx.Reads().StoreOpening(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		price, err := contract.NewMoney(booking.MonthlyPriceCents())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		discount, err := contract.NewDiscount(0)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		newContract, err := contract.NewContract(
			vendorID,
			booking.RequestedStart(),
			booking.DurationMonths(),
			price,
			discount,
			booking.IsTrial(),
			store,
		)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		impact := newContract.Impact()

		// Row locks on the units serialize competing approvals; the
		// overlap check below is then race-free within this transaction.
		lockedUnits, err := tx.Units().LockByIDs(ctx, unitIDs)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if len(lockedUnits) != len(unitIDs) {
			return errs.ErrUnitNotFound
		}

		services := make([]contract.Service, 0, len(lockedUnits))
		for _, snapshot := range lockedUnits {
			overlap, err := tx.Contracts().HasOverlap(ctx, snapshot.ID, impact.From(), impact.To())
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if overlap {
				return errs.ErrContractConflict
			}
			services = append(services, contract.NewService(snapshot.ID, impact))
		}

		if err := newContract.Schedule(services); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}
		if err := tx.Contracts().Create(ctx, newContract); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := booking.Approve(newContract.ID(), unitIDs); err != nil {
			return errs.Mark(err, errs.ErrBookingAlreadyProcessed)
		}
		if err := tx.Vendors().SaveBooking(ctx, vendorID, booking); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		for _, snapshot := range lockedUnits {
			unitEntity := unitFromSnapshot(snapshot)
			if err := unitEntity.Assign(newContract.ID()); err != nil {
				return errs.Mark(err, errs.ErrUnitUnavailable)
			}
			if err := tx.Units().Save(ctx, unitEntity); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		result = &ApproveResult{
			ContractID: newContract.ID(),
			ImpactFrom: impact.From().Format("2006-01-02"),
			ImpactTo:   impact.To().Format("2006-01-02"),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func unitFromSnapshot(s *shared.UnitSnapshot) *unit.Unit {
	return unit.ReconstructUnit(
		s.ID,
		s.Label,
		unit.Type(s.UnitType),
		s.MonthlyPriceCents,
		s.Available,
		s.OccupiedBy,
		s.CreatedAt,
		s.UpdatedAt,
	)
}

func hasDuplicates(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
