package queries

import (
	"context"

	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/pkg/errs"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id int64) (*OrderView, error)
}

type OrderQueries interface {
	// GetOrder only returns orders owned by userID; anything else is errs.ErrOrderNotFound.
	GetOrder(ctx context.Context, id, userID int64) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, id, userID int64) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperation)
	}
	if view.UserID != userID {
		return nil, errs.ErrOrderNotFound
	}
	return view, nil
}
