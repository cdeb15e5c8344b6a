package queries

import (
	"context"

	"housnkuh/internal/domain/contract"
	"housnkuh/internal/infra"
	"housnkuh/internal/pkg/clock"
	"housnkuh/internal/pkg/errs"

	"github.com/google/uuid"
)

type ContractQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ContractView, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*ContractListItem, error)
	ListAll(ctx context.Context) ([]*ContractListItem, error)
}

type ContractReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ContractView, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*ContractListItem, error)
	FindAll(ctx context.Context) ([]*ContractListItem, error)
}

type contractQueriesImpl struct {
	store ContractReadStore
	clock clock.Clock
}

func NewContractQueries(store ContractReadStore, clock clock.Clock) ContractQueries {
	return &contractQueriesImpl{store: store, clock: clock}
}

func (q *contractQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ContractView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrContractNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view.EffectiveStatus = q.effectiveStatus(view.Status, view)
	return view, nil
}

func (q *contractQueriesImpl) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*ContractListItem, error) {
	items, err := q.store.FindByVendorID(ctx, vendorID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	q.fillEffectiveStatuses(items)
	return items, nil
}

func (q *contractQueriesImpl) ListAll(ctx context.Context) ([]*ContractListItem, error) {
	items, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	q.fillEffectiveStatuses(items)
	return items, nil
}

// The scheduled→active transition is never stored; it is computed here
// from the scheduled start at read time.
func (q *contractQueriesImpl) effectiveStatus(stored string, view *ContractView) string {
	status := contract.Status(stored)
	if status == contract.StatusScheduled && !q.clock.Now().Before(view.ScheduledStart) {
		return contract.StatusActive.String()
	}
	return stored
}

func (q *contractQueriesImpl) fillEffectiveStatuses(items []*ContractListItem) {
	now := q.clock.Now()
	for _, item := range items {
		item.EffectiveStatus = item.Status
		if contract.Status(item.Status) == contract.StatusScheduled && !now.Before(item.ScheduledStart) {
			item.EffectiveStatus = contract.StatusActive.String()
		}
	}
}
