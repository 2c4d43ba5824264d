package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Conflicts on the primary key or on (user_id, voucher_id) insert nothing.
const insertVoucherOrder = `
INSERT INTO tb_voucher_order (id, user_id, voucher_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT DO NOTHING`

type InsertVoucherOrderParams struct {
	ID        int64
	UserID    int64
	VoucherID int64
	Status    int16
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) InsertVoucherOrder(ctx context.Context, db DBTX, arg InsertVoucherOrderParams) (int64, error) {
	result, err := db.Exec(ctx, insertVoucherOrder, arg.ID, arg.UserID, arg.VoucherID, arg.Status, arg.CreatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const existsVoucherOrder = `
SELECT EXISTS (
  SELECT 1 FROM tb_voucher_order WHERE user_id = $1 AND voucher_id = $2
)`

func (q *Queries) ExistsVoucherOrder(ctx context.Context, db DBTX, userID, voucherID int64) (bool, error) {
	row := db.QueryRow(ctx, existsVoucherOrder, userID, voucherID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listVoucherOrderUserIDs = `
SELECT user_id FROM tb_voucher_order WHERE voucher_id = $1 ORDER BY user_id`

func (q *Queries) ListVoucherOrderUserIDs(ctx context.Context, db DBTX, voucherID int64) ([]int64, error) {
	rows, err := db.Query(ctx, listVoucherOrderUserIDs, voucherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int64
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		items = append(items, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getVoucherOrder = `
SELECT id, user_id, voucher_id, status, created_at
FROM tb_voucher_order
WHERE id = $1`

func (q *Queries) GetVoucherOrder(ctx context.Context, db DBTX, id int64) (TbVoucherOrder, error) {
	row := db.QueryRow(ctx, getVoucherOrder, id)
	var i TbVoucherOrder
	err := row.Scan(&i.ID, &i.UserID, &i.VoucherID, &i.Status, &i.CreatedAt)
	return i, err
}
