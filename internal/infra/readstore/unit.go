package readstore

import (
	"context"
	"time"

	"housnkuh/internal/infra"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/pkg/pgconv"
	"housnkuh/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitReadStore struct {
	db db.DBTX
}

func NewUnitReadStore(dbtx db.DBTX) *UnitReadStore {
	return &UnitReadStore{db: dbtx}
}

const unitColumns = `id, label, unit_type, monthly_price_cents, available, occupied_by, created_at, updated_at`

func (s *UnitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UnitView, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`

	var view queries.UnitView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Label,
		&view.UnitType,
		&view.MonthlyPriceCents,
		&view.Available,
		&view.OccupiedBy,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unit by ID", err)
	}
	return &view, nil
}

func (s *UnitReadStore) FindAll(ctx context.Context) ([]*queries.UnitView, error) {
	query := `SELECT ` + unitColumns + ` FROM units ORDER BY label`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all units", err)
	}
	defer rows.Close()

	var views []*queries.UnitView
	for rows.Next() {
		var view queries.UnitView
		err := rows.Scan(
			&view.ID,
			&view.Label,
			&view.UnitType,
			&view.MonthlyPriceCents,
			&view.Available,
			&view.OccupiedBy,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan unit", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read units", err)
	}
	return views, nil
}

// HasOverlap mirrors the write-side availability check so the public
// availability endpoint and the approval transaction agree on semantics.
func (s *UnitReadStore) HasOverlap(ctx context.Context, unitID uuid.UUID, from, to time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM contracts c
			JOIN contract_services cs ON cs.contract_id = c.id
			WHERE cs.unit_id = $1
			  AND c.status IN ('pending', 'scheduled', 'active')
			  AND c.impact_from < $3
			  AND c.impact_to > $2
		)`

	var overlap bool
	if err := s.db.QueryRow(ctx, query, unitID, from, to).Scan(&overlap); err != nil {
		return false, infra.WrapRepoErr("failed to check unit availability", err)
	}
	return overlap, nil
}
