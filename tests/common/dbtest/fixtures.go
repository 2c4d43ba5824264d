//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeckillStock returns the durable stock column for voucherID
func SeckillStock(t *testing.T, db DBLike, voucherID int64) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(),
		"SELECT stock FROM tb_seckill_voucher WHERE voucher_id = $1", voucherID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// CountOrders counts materialized orders for voucherID, optionally narrowed to one user
func CountOrders(t *testing.T, db DBLike, voucherID int64, userID ...int64) int {
	t.Helper()

	query := "SELECT count(*) FROM tb_voucher_order WHERE voucher_id = $1"
	args := []any{voucherID}
	if len(userID) > 0 {
		query += " AND user_id = $2"
		args = append(args, userID[0])
	}

	var n int
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// CountJobs counts outbox rows for topic in the given status
func CountJobs(t *testing.T, db DBLike, topic, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1 AND status = $2", topic, status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
