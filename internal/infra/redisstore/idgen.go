package redisstore

import (
	"context"
	"math"
	"time"

	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	counterBits  = 32
	dayKeyLayout = "2006:01:02"
	dayKeyTTL    = 48 * time.Hour
)

// IDGenerator issues (seconds since epoch << 32 | daily counter) ids.
// The counter lives in icr:<prefix>:<yyyy:MM:dd> and is shared by every instance.
type IDGenerator struct {
	rdb   redis.Cmdable
	clock clock.Clock
	epoch int64
}

func NewIDGenerator(rdb redis.Cmdable, clk clock.Clock, epoch int64) *IDGenerator {
	return &IDGenerator{rdb: rdb, clock: clk, epoch: epoch}
}

func (g *IDGenerator) NextID(ctx context.Context, prefix string) (int64, error) {
	now := g.clock.Now().UTC()

	timestamp := now.Unix() - g.epoch
	if timestamp < 0 {
		return 0, errs.Wrapf(errs.ErrDomainValidation, "clock %s is before id epoch", now.Format(time.RFC3339))
	}

	key := "icr:" + prefix + ":" + now.Format(dayKeyLayout)
	// INCR and the first EXPIRE are applied atomically.
	count, err := nextCountScript.Run(ctx, g.rdb, []string{key}, int64(dayKeyTTL/time.Second)).Int64()
	if err != nil {
		return 0, errs.Wrapf(err, "incr %s", key)
	}
	if count > math.MaxUint32 {
		return 0, errs.Wrapf(errs.ErrIDSpaceExhausted, "prefix %s on %s", prefix, now.Format(time.DateOnly))
	}

	return timestamp<<counterBits | count, nil
}

// SplitID returns the timestamp and counter parts of an id.
func SplitID(id int64) (secondsSinceEpoch, counter int64) {
	return id >> counterBits, id & math.MaxUint32
}
