package commands

import (
	"context"

	"housnkuh/internal/domain/contract"
	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/infra"
	"housnkuh/internal/pkg/clock"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContractCommands interface {
	// Cancel terminates a contract and releases its units in the same
	// transaction. Vendors may only cancel their own contracts.
	Cancel(ctx context.Context, contractID uuid.UUID, actorID uuid.UUID, actorRole vendor.Role) error
}

type contractCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewContractCommands(uow shared.UnitOfWork, clock clock.Clock) ContractCommands {
	return &contractCommandsImpl{uow: uow, clock: clock}
}

func (c *contractCommandsImpl) Cancel(ctx context.Context, contractID uuid.UUID, actorID uuid.UUID, actorRole vendor.Role) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().ContractByID(ctx, contractID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrContractNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if actorRole != vendor.RoleAdmin && snapshot.VendorID != actorID {
			return errs.ErrForbidden
		}

		contractEntity, err := contractFromSnapshot(snapshot)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := contractEntity.Cancel(now); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := tx.Contracts().SaveCancellation(ctx, contractEntity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// Free every unit the contract occupied.
		for _, service := range contractEntity.Services() {
			lockedUnits, err := tx.Units().LockByIDs(ctx, []uuid.UUID{service.UnitID()})
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if len(lockedUnits) != 1 {
				return errs.ErrUnitNotFound
			}
			unitEntity := unitFromSnapshot(lockedUnits[0])
			if !unitEntity.IsAvailable() {
				if err := unitEntity.Release(); err != nil {
					return errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
				if err := tx.Units().Save(ctx, unitEntity); err != nil {
					return errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
			}
		}
		return nil
	})
}

func contractFromSnapshot(s *shared.ContractSnapshot) (*contract.Contract, error) {
	price, err := contract.NewMoney(s.TotalMonthlyPriceCents)
	if err != nil {
		return nil, err
	}

	discount, err := contract.NewDiscount(s.DiscountPercent)
	if err != nil {
		return nil, err
	}

	impact, err := contract.NewDateRange(s.ImpactFrom, s.ImpactTo)
	if err != nil {
		return nil, err
	}

	services := make([]contract.Service, 0, len(s.Services))
	for _, svc := range s.Services {
		period, err := contract.NewDateRange(svc.LeaseFrom, svc.LeaseTo)
		if err != nil {
			return nil, err
		}
		services = append(services, contract.NewService(svc.UnitID, period))
	}

	return contract.ReconstructContract(
		s.ID,
		s.VendorID,
		services,
		contract.Status(s.Status),
		s.ScheduledStart,
		s.DurationMonths,
		price,
		discount,
		s.Trial,
		s.TrialCancelled,
		s.TrialCancelledAt,
		s.BillableFrom,
		impact,
		s.CreatedAt,
		s.UpdatedAt,
	), nil
}
