package redisstore

import (
	"context"
	"fmt"
	"strconv"

	"voucher-seckill/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func Connect(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("error closing redis client", zap.Error(err))
		}
	}

	return rdb, cleanup, nil
}

func saleKey(voucherID int64) string {
	return "seckill:voucher:" + strconv.FormatInt(voucherID, 10)
}

func orderSetKey(voucherID int64) string {
	return "seckill:order:" + strconv.FormatInt(voucherID, 10)
}

func lockKey(name string) string {
	return "lock:" + name
}
