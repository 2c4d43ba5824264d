package repository

import (
	"context"
	"time"

	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/query"
	"voucher-seckill/internal/infra/repository/converter"
	"voucher-seckill/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherWriteQueries interface {
	CreateVoucher(ctx context.Context, db query.DBTX, arg query.CreateVoucherParams) (int64, error)
	CreateSeckillVoucher(ctx context.Context, db query.DBTX, arg query.CreateSeckillVoucherParams) error
	GetSeckillVoucher(ctx context.Context, db query.DBTX, voucherID int64) (query.TbSeckillVoucher, error)
	ListOpenSeckillVouchers(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) ([]query.TbSeckillVoucher, error)
	DecrementSeckillStock(ctx context.Context, db query.DBTX, voucherID int64) (int64, error)
}

type VoucherRepository struct {
	queries VoucherWriteQueries
}

func NewVoucherRepository(queries VoucherWriteQueries) *VoucherRepository {
	return &VoucherRepository{queries: queries}
}

func (r *VoucherRepository) Create(ctx context.Context, tx query.DBTX, v *voucher.Voucher) (int64, error) {
	id, err := r.queries.CreateVoucher(ctx, tx, converter.VoucherToCreateParams(v))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create voucher", err)
	}
	return id, nil
}

func (r *VoucherRepository) CreateSeckill(ctx context.Context, tx query.DBTX, sv *voucher.SeckillVoucher) error {
	if err := r.queries.CreateSeckillVoucher(ctx, tx, converter.SeckillVoucherToCreateParams(sv)); err != nil {
		return infra.WrapRepoErr("failed to create seckill voucher", err)
	}
	return nil
}

func (r *VoucherRepository) FindSeckill(ctx context.Context, tx query.DBTX, voucherID int64) (*voucher.SeckillVoucher, error) {
	row, err := r.queries.GetSeckillVoucher(ctx, tx, voucherID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get seckill voucher", err)
	}
	return converter.SeckillVoucherFromRow(row), nil
}

func (r *VoucherRepository) ListOpenSeckill(ctx context.Context, tx query.DBTX, now time.Time) ([]*voucher.SeckillVoucher, error) {
	rows, err := r.queries.ListOpenSeckillVouchers(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open seckill vouchers", err)
	}

	result := make([]*voucher.SeckillVoucher, len(rows))
	for i, row := range rows {
		result[i] = converter.SeckillVoucherFromRow(row)
	}
	return result, nil
}

func (r *VoucherRepository) DecrementStockIfPositive(ctx context.Context, tx query.DBTX, voucherID int64) (bool, error) {
	affected, err := r.queries.DecrementSeckillStock(ctx, tx, voucherID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement seckill stock", err)
	}
	return affected == 1, nil
}
