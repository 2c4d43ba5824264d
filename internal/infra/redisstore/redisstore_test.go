//go:build unit

package redisstore_test

import (
	"context"
	"testing"
	"time"

	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var saleStart = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func seckillVoucher(t *testing.T, id int64, stock int) *voucher.SeckillVoucher {
	t.Helper()

	return voucher.ReconstructSeckillVoucher(id, stock, saleStart, saleStart.Add(time.Hour))
}

func seckillConfig() config.SeckillConfig {
	return config.NewTestConfig().Seckill
}

func streamLen(t *testing.T, rdb *redis.Client, key string) int64 {
	t.Helper()

	n, err := rdb.XLen(context.Background(), key).Result()
	require.NoError(t, err)
	return n
}
