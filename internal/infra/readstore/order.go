package readstore

import (
	"context"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/query"
	"voucher-seckill/internal/pkg/pgconv"
	"voucher-seckill/internal/usecase/queries"
)

type OrderReadQueries interface {
	GetVoucherOrder(ctx context.Context, db query.DBTX, id int64) (query.TbVoucherOrder, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      query.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db query.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *OrderReadStore) FindByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	row, err := s.queries.GetVoucherOrder(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find voucher order", err)
	}

	return &queries.OrderView{
		ID:        row.ID,
		UserID:    row.UserID,
		VoucherID: row.VoucherID,
		Status:    order.Status(row.Status).String(),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
