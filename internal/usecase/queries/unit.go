package queries

import (
	"context"
	"time"

	"housnkuh/internal/infra"
	"housnkuh/internal/pkg/errs"

	"github.com/google/uuid"
)

type UnitQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
	List(ctx context.Context) ([]*UnitView, error)
	// CheckAvailability reports whether the unit is free of occupying
	// contracts over the half-open range [from, to). Advisory only: the
	// approval transaction re-runs the same check under row locks.
	CheckAvailability(ctx context.Context, unitID uuid.UUID, from, to time.Time) (bool, error)
}

type UnitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
	FindAll(ctx context.Context) ([]*UnitView, error)
	HasOverlap(ctx context.Context, unitID uuid.UUID, from, to time.Time) (bool, error)
}

type unitQueriesImpl struct {
	store UnitReadStore
}

func NewUnitQueries(store UnitReadStore) UnitQueries {
	return &unitQueriesImpl{store: store}
}

func (q *unitQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UnitView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUnitNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *unitQueriesImpl) List(ctx context.Context) ([]*UnitView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *unitQueriesImpl) CheckAvailability(ctx context.Context, unitID uuid.UUID, from, to time.Time) (bool, error) {
	if _, err := q.GetByID(ctx, unitID); err != nil {
		return false, err
	}
	overlap, err := q.store.HasOverlap(ctx, unitID, from, to)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return !overlap, nil
}
