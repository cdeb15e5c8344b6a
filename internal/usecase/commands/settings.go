package commands

import (
	"context"

	"housnkuh/internal/domain/settings"
	"housnkuh/internal/pkg/clock"
	"housnkuh/internal/pkg/errs"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type SettingsCommands interface {
	Update(ctx context.Context, adminID uuid.UUID, input UpdateSettingsInput) error
}

type settingsCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewSettingsCommands(uow shared.UnitOfWork, clk clock.Clock) SettingsCommands {
	return &settingsCommandsImpl{uow: uow, clk: clk}
}

func (s *settingsCommandsImpl) Update(ctx context.Context, adminID uuid.UUID, input UpdateSettingsInput) error {
	opening, err := settings.NewStoreOpening(input.Enabled, input.OpeningDate, input.ReminderLeadDays)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	opening = opening.Stamp(adminID, s.clk.Now())

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Settings().Save(ctx, opening); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
