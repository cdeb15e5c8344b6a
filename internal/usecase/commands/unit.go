package commands

import (
	"context"

	"housnkuh/internal/domain/unit"
	"housnkuh/internal/infra"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type UnitCommands interface {
	Create(ctx context.Context, input CreateUnitInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUnitInput) error
}

type unitCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUnitCommands(uow shared.UnitOfWork) UnitCommands {
	return &unitCommandsImpl{uow: uow}
}

func (u *unitCommandsImpl) Create(ctx context.Context, input CreateUnitInput) (uuid.UUID, error) {
	unitType, err := unit.NewType(input.UnitType)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	newUnit, err := unit.NewUnit(input.Label, unitType, input.MonthlyPriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Units().Create(ctx, newUnit); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return newUnit.ID(), nil
}

func (u *unitCommandsImpl) Update(ctx context.Context, id uuid.UUID, input UpdateUnitInput) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lockedUnits, err := tx.Units().LockByIDs(ctx, []uuid.UUID{id})
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if len(lockedUnits) != 1 {
			return errs.ErrUnitNotFound
		}

		unitEntity := unitFromSnapshot(lockedUnits[0])
		if input.Label != nil {
			if err := unitEntity.Rename(*input.Label); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}
		if input.MonthlyPriceCents != nil {
			if err := unitEntity.Reprice(*input.MonthlyPriceCents); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		if err := tx.Units().Save(ctx, unitEntity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
