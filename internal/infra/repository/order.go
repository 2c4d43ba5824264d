package repository

import (
	"context"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/query"
	"voucher-seckill/internal/infra/repository/converter"
)

type OrderWriteQueries interface {
	InsertVoucherOrder(ctx context.Context, db query.DBTX, arg query.InsertVoucherOrderParams) (int64, error)
	ExistsVoucherOrder(ctx context.Context, db query.DBTX, userID, voucherID int64) (bool, error)
	ListVoucherOrderUserIDs(ctx context.Context, db query.DBTX, voucherID int64) ([]int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) InsertIfAbsent(ctx context.Context, tx query.DBTX, o *order.VoucherOrder) (bool, error) {
	affected, err := r.queries.InsertVoucherOrder(ctx, tx, converter.VoucherOrderToInsertParams(o))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert voucher order", err)
	}
	return affected == 1, nil
}

func (r *OrderRepository) ExistsByUserAndVoucher(ctx context.Context, tx query.DBTX, userID, voucherID int64) (bool, error) {
	exists, err := r.queries.ExistsVoucherOrder(ctx, tx, userID, voucherID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check voucher order", err)
	}
	return exists, nil
}

func (r *OrderRepository) ListBuyerIDs(ctx context.Context, tx query.DBTX, voucherID int64) ([]int64, error) {
	ids, err := r.queries.ListVoucherOrderUserIDs(ctx, tx, voucherID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list voucher order buyers", err)
	}
	return ids, nil
}
