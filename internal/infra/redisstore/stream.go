package redisstore

import (
	"context"
	"strings"
	"time"

	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// StreamQueue is the consumer-group side of the order stream the admission script appends to.
type StreamQueue struct {
	rdb        redis.UniversalClient
	stream     string
	group      string
	deadLetter string
}

func NewStreamQueue(rdb redis.UniversalClient, cfg config.SeckillConfig) *StreamQueue {
	return &StreamQueue{
		rdb:        rdb,
		stream:     cfg.StreamKey,
		group:      cfg.Group,
		deadLetter: cfg.DeadLetterKey,
	}
}

// EnsureGroup creates the group at the start of the stream, creating the stream if needed.
func (q *StreamQueue) EnsureGroup(ctx context.Context) error {
	err := q.rdb.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return errs.Wrapf(err, "create group %s on %s", q.group, q.stream)
	}
	return nil
}

func (q *StreamQueue) ReadNew(ctx context.Context, consumer string, block time.Duration) (*shared.Delivery, error) {
	return q.read(ctx, consumer, ">", block)
}

func (q *StreamQueue) ReadPending(ctx context.Context, consumer, after string) (*shared.Delivery, error) {
	if after == "" {
		after = "0"
	}
	// negative Block omits BLOCK; the pending list answers immediately
	return q.read(ctx, consumer, after, -1)
}

func (q *StreamQueue) read(ctx context.Context, consumer, id string, block time.Duration) (*shared.Delivery, error) {
	streams, err := q.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.group,
		Consumer: consumer,
		Streams:  []string{q.stream, id},
		Count:    1,
		Block:    block,
	}).Result()
	if errs.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrapf(err, "xreadgroup %s from %s", q.stream, id)
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, nil
	}
	msg := streams[0].Messages[0]
	return &shared.Delivery{ID: msg.ID, Values: msg.Values}, nil
}

func (q *StreamQueue) Ack(ctx context.Context, id string) error {
	if err := q.rdb.XAck(ctx, q.stream, q.group, id).Err(); err != nil {
		return errs.Wrapf(err, "xack %s", id)
	}
	return nil
}

func (q *StreamQueue) Claim(ctx context.Context, consumer string, minIdle time.Duration, count int64) (int, error) {
	msgs, _, err := q.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   q.stream,
		Group:    q.group,
		Consumer: consumer,
		MinIdle:  minIdle,
		Start:    "0-0",
		Count:    count,
	}).Result()
	if err != nil {
		return 0, errs.Wrapf(err, "xautoclaim %s for %s", q.stream, consumer)
	}
	return len(msgs), nil
}

// DeadLetter copies d with the failure reason to the dead-letter stream and acks it in one MULTI.
func (q *StreamQueue) DeadLetter(ctx context.Context, d shared.Delivery, reason string) error {
	values := make(map[string]any, len(d.Values)+2)
	for k, v := range d.Values {
		values[k] = v
	}
	values["sourceId"] = d.ID
	values["reason"] = reason

	_, err := q.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAdd(ctx, &redis.XAddArgs{Stream: q.deadLetter, Values: values})
		pipe.XAck(ctx, q.stream, q.group, d.ID)
		return nil
	})
	if err != nil {
		return errs.Wrapf(err, "dead-letter %s", d.ID)
	}
	return nil
}
