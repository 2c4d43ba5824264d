package queries

import (
	"context"

	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/shared"

	"go.uber.org/zap"
)

type VoucherReadStore interface {
	ListByShop(ctx context.Context, shopID int64) ([]*VoucherView, error)
}

type VoucherQueries interface {
	ListByShop(ctx context.Context, shopID int64) ([]*VoucherView, error)
}

type voucherQueriesImpl struct {
	store  VoucherReadStore
	live   shared.AdmissionStore
	logger *zap.Logger
}

func NewVoucherQueries(store VoucherReadStore, live shared.AdmissionStore, logger *zap.Logger) VoucherQueries {
	return &voucherQueriesImpl{store: store, live: live, logger: logger}
}

// ListByShop overlays the live admission counter on seckill vouchers. A snapshot
// store failure degrades to the durable columns only.
func (q *voucherQueriesImpl) ListByShop(ctx context.Context, shopID int64) ([]*VoucherView, error) {
	views, err := q.store.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperation)
	}

	for _, v := range views {
		if v.Stock == nil {
			continue
		}
		stock, loaded, err := q.live.LiveStock(ctx, v.ID)
		if err != nil {
			q.logger.Warn("live stock unavailable", zap.Int64("voucher_id", v.ID), zap.Error(err))
			break
		}
		if loaded {
			v.LiveStock = &stock
		}
	}
	return views, nil
}
