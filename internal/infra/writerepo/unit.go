package writerepo

import (
	"context"

	"housnkuh/internal/domain/unit"
	"housnkuh/internal/infra"
	"housnkuh/internal/infra/db"
	"housnkuh/internal/pkg/pgconv"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

type UnitRepository struct {
	db db.DBTX
}

func NewUnitRepository(dbtx db.DBTX) *UnitRepository {
	return &UnitRepository{db: dbtx}
}

func (r *UnitRepository) Create(ctx context.Context, u *unit.Unit) error {
	const query = `
		INSERT INTO units (id, label, unit_type, monthly_price_cents, available, occupied_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`

	_, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Label(),
		u.UnitType().String(),
		u.MonthlyPriceCents(),
		u.IsAvailable(),
		pgconv.UUIDPtrToPgtype(u.OccupiedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create unit", err)
	}
	return nil
}

func (r *UnitRepository) Save(ctx context.Context, u *unit.Unit) error {
	const query = `
		UPDATE units
		SET label = $2, unit_type = $3, monthly_price_cents = $4, available = $5, occupied_by = $6, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Label(),
		u.UnitType().String(),
		u.MonthlyPriceCents(),
		u.IsAvailable(),
		pgconv.UUIDPtrToPgtype(u.OccupiedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save unit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("unit not found", nil, infra.KindNotFound)
	}
	return nil
}

// LockByIDs takes FOR UPDATE row locks so concurrent approvals touching
// the same units serialize on the first one to commit.
func (r *UnitRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*shared.UnitSnapshot, error) {
	const query = `
		SELECT id, label, unit_type, monthly_price_cents, available, occupied_by, created_at, updated_at
		FROM units
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock units", err)
	}
	defer rows.Close()

	snapshots := make([]*shared.UnitSnapshot, 0, len(ids))
	for rows.Next() {
		snap, err := scanUnitSnapshot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan locked unit", err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read locked units", err)
	}
	return snapshots, nil
}

func (r *UnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.UnitSnapshot, error) {
	const query = `
		SELECT id, label, unit_type, monthly_price_cents, available, occupied_by, created_at, updated_at
		FROM units
		WHERE id = $1`

	snap, err := scanUnitSnapshot(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unit by ID", err)
	}
	return snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUnitSnapshot(row rowScanner) (*shared.UnitSnapshot, error) {
	var snap shared.UnitSnapshot
	err := row.Scan(
		&snap.ID,
		&snap.Label,
		&snap.UnitType,
		&snap.MonthlyPriceCents,
		&snap.Available,
		&snap.OccupiedBy,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
