package redisstore

import (
	"context"
	"time"

	"voucher-seckill/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type LockClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// Locker hands out TTL-bounded exclusive leases keyed by name.
type Locker struct {
	rdb        LockClient
	instanceID string
	ttl        time.Duration
}

func NewLocker(rdb LockClient, instanceID string, ttl time.Duration) *Locker {
	return &Locker{rdb: rdb, instanceID: instanceID, ttl: ttl}
}

func (l *Locker) TryLock(ctx context.Context, name string) (string, bool, error) {
	token := l.instanceID + "-" + uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, lockKey(name), token, l.ttl).Result()
	if err != nil {
		return "", false, errs.Wrapf(err, "acquire lock %s", name)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *Locker) Unlock(ctx context.Context, name, token string) (bool, error) {
	deleted, err := unlockScript.Run(ctx, l.rdb, []string{lockKey(name)}, token).Int64()
	if err != nil {
		return false, errs.Wrapf(err, "release lock %s", name)
	}
	return deleted == 1, nil
}
