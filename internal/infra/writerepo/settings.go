package writerepo

import (
	"context"

	"housnkuh/internal/domain/settings"
	"housnkuh/internal/infra"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/pkg/pgconv"
)

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(dbtx db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: dbtx}
}

// Save upserts the single settings row. The table is constrained to one
// row so the store-opening configuration cannot fork.
func (r *SettingsRepository) Save(ctx context.Context, s settings.StoreOpening) error {
	const query = `
		INSERT INTO store_settings (id, opening_enabled, opening_date, reminder_lead_days, updated_by, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET opening_enabled = EXCLUDED.opening_enabled,
		    opening_date = EXCLUDED.opening_date,
		    reminder_lead_days = EXCLUDED.reminder_lead_days,
		    updated_by = EXCLUDED.updated_by,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		s.Enabled,
		pgconv.TimePtrToPgtype(s.OpeningDate),
		s.ReminderLeadDays,
		pgconv.UUIDPtrToPgtype(s.UpdatedBy),
		s.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save store settings", err)
	}
	return nil
}

// Get returns the store-opening configuration, or the zero value with
// gating disabled when nothing has been configured yet.
func (r *SettingsRepository) Get(ctx context.Context) (settings.StoreOpening, error) {
	const query = `
		SELECT opening_enabled, opening_date, reminder_lead_days, updated_by, updated_at
		FROM store_settings
		WHERE id = 1`

	var s settings.StoreOpening
	err := r.db.QueryRow(ctx, query).Scan(
		&s.Enabled,
		&s.OpeningDate,
		&s.ReminderLeadDays,
		&s.UpdatedBy,
		&s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return settings.StoreOpening{}, nil
		}
		return settings.StoreOpening{}, infra.WrapRepoErr("failed to load store settings", err)
	}
	return s, nil
}
