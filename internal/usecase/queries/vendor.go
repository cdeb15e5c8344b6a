package queries

import (
	"context"

	"housnkuh/internal/infra"
	"housnkuh/internal/pkg/errs"

	"github.com/google/uuid"
)

type VendorQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VendorView, error)
	// ListPendingBookings returns all booking requests still awaiting
	// admin approval, oldest first.
	ListPendingBookings(ctx context.Context) ([]*PendingBookingView, error)
}

type VendorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VendorView, error)
	FindPendingBookings(ctx context.Context) ([]*PendingBookingView, error)
}

type vendorQueriesImpl struct {
	store VendorReadStore
}

func NewVendorQueries(store VendorReadStore) VendorQueries {
	return &vendorQueriesImpl{store: store}
}

func (q *vendorQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VendorView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVendorNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *vendorQueriesImpl) ListPendingBookings(ctx context.Context) ([]*PendingBookingView, error) {
	views, err := q.store.FindPendingBookings(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
