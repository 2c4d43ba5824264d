package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createVoucher = `
INSERT INTO tb_voucher (shop_id, title, sub_title, rules, pay_value, actual_value, type, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING id`

type CreateVoucherParams struct {
	ShopID      int64
	Title       string
	SubTitle    string
	Rules       string
	PayValue    int64
	ActualValue int64
	Type        int16
	Status      int16
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateVoucher(ctx context.Context, db DBTX, arg CreateVoucherParams) (int64, error) {
	row := db.QueryRow(ctx, createVoucher,
		arg.ShopID,
		arg.Title,
		arg.SubTitle,
		arg.Rules,
		arg.PayValue,
		arg.ActualValue,
		arg.Type,
		arg.Status,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const createSeckillVoucher = `
INSERT INTO tb_seckill_voucher (voucher_id, stock, begin_time, end_time)
VALUES ($1, $2, $3, $4)`

type CreateSeckillVoucherParams struct {
	VoucherID int64
	Stock     int32
	BeginTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
}

func (q *Queries) CreateSeckillVoucher(ctx context.Context, db DBTX, arg CreateSeckillVoucherParams) error {
	_, err := db.Exec(ctx, createSeckillVoucher, arg.VoucherID, arg.Stock, arg.BeginTime, arg.EndTime)
	return err
}

const getSeckillVoucher = `
SELECT voucher_id, stock, begin_time, end_time
FROM tb_seckill_voucher
WHERE voucher_id = $1`

func (q *Queries) GetSeckillVoucher(ctx context.Context, db DBTX, voucherID int64) (TbSeckillVoucher, error) {
	row := db.QueryRow(ctx, getSeckillVoucher, voucherID)
	var i TbSeckillVoucher
	err := row.Scan(&i.VoucherID, &i.Stock, &i.BeginTime, &i.EndTime)
	return i, err
}

const listOpenSeckillVouchers = `
SELECT sv.voucher_id, sv.stock, sv.begin_time, sv.end_time
FROM tb_seckill_voucher sv
JOIN tb_voucher v ON v.id = sv.voucher_id
WHERE sv.end_time >= $1 AND v.status = 1
ORDER BY sv.voucher_id`

func (q *Queries) ListOpenSeckillVouchers(ctx context.Context, db DBTX, now pgtype.Timestamptz) ([]TbSeckillVoucher, error) {
	rows, err := db.Query(ctx, listOpenSeckillVouchers, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TbSeckillVoucher
	for rows.Next() {
		var i TbSeckillVoucher
		if err := rows.Scan(&i.VoucherID, &i.Stock, &i.BeginTime, &i.EndTime); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listVouchersByShop = `
SELECT v.id, v.shop_id, v.title, v.sub_title, v.rules, v.pay_value, v.actual_value, v.type, v.status,
       v.created_at, v.updated_at, sv.stock, sv.begin_time, sv.end_time
FROM tb_voucher v
LEFT JOIN tb_seckill_voucher sv ON sv.voucher_id = v.id
WHERE v.shop_id = $1
ORDER BY v.id`

func (q *Queries) ListVouchersByShop(ctx context.Context, db DBTX, shopID int64) ([]VoucherWithSale, error) {
	rows, err := db.Query(ctx, listVouchersByShop, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VoucherWithSale
	for rows.Next() {
		var i VoucherWithSale
		if err := rows.Scan(
			&i.ID,
			&i.ShopID,
			&i.Title,
			&i.SubTitle,
			&i.Rules,
			&i.PayValue,
			&i.ActualValue,
			&i.Type,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.Stock,
			&i.BeginTime,
			&i.EndTime,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const decrementSeckillStock = `
UPDATE tb_seckill_voucher
SET stock = stock - 1, updated_at = now()
WHERE voucher_id = $1 AND stock > 0`

func (q *Queries) DecrementSeckillStock(ctx context.Context, db DBTX, voucherID int64) (int64, error) {
	result, err := db.Exec(ctx, decrementSeckillStock, voucherID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
