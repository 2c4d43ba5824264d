package converter

import (
	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/infra/query"
	"voucher-seckill/internal/pkg/pgconv"
)

func VoucherOrderToInsertParams(o *order.VoucherOrder) query.InsertVoucherOrderParams {
	return query.InsertVoucherOrderParams{
		ID:        o.ID(),
		UserID:    o.UserID(),
		VoucherID: o.VoucherID(),
		Status:    pgconv.IntToInt16(int(o.Status())),
		CreatedAt: pgconv.TimeToPgtype(o.CreatedAt()),
	}
}
