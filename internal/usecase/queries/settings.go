package queries

import (
	"context"

	"housnkuh/internal/pkg/errs"
)

type SettingsQueries interface {
	Get(ctx context.Context) (*StoreOpeningView, error)
}

type SettingsReadStore interface {
	Find(ctx context.Context) (*StoreOpeningView, error)
}

type settingsQueriesImpl struct {
	store SettingsReadStore
}

func NewSettingsQueries(store SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{store: store}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*StoreOpeningView, error) {
	view, err := q.store.Find(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
