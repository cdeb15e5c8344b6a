package readstore

import (
	"context"

	"housnkuh/internal/infra"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/pkg/pgconv"
	"housnkuh/internal/usecase/queries"
)

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(dbtx db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: dbtx}
}

func (s *SettingsReadStore) Find(ctx context.Context) (*queries.StoreOpeningView, error) {
	const query = `
		SELECT opening_enabled, opening_date, reminder_lead_days, updated_by, updated_at
		FROM store_settings
		WHERE id = 1`

	var view queries.StoreOpeningView
	err := s.db.QueryRow(ctx, query).Scan(
		&view.Enabled,
		&view.OpeningDate,
		&view.ReminderLeadDays,
		&view.UpdatedBy,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// No configuration yet: gating disabled
			return &queries.StoreOpeningView{}, nil
		}
		return nil, infra.WrapRepoErr("failed to load store settings", err)
	}
	return &view, nil
}
