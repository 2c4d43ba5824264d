package shared

import (
	"context"
	"time"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/domain/voucher"
)

// Delivery is one stream entry handed to a consumer. Values is nil when the
// entry was trimmed from the stream while still pending.
type Delivery struct {
	ID     string
	Values map[string]any
}

type IDGenerator interface {
	NextID(ctx context.Context, prefix string) (int64, error)
}

type AdmissionStore interface {
	Admit(ctx context.Context, voucherID, userID, orderID int64, now time.Time) (order.Outcome, error)
	LoadSale(ctx context.Context, sv *voucher.SeckillVoucher) error
	// LoadSaleIfAbsent writes the sale and marks buyers as already served, only
	// when no live sale exists.
	LoadSaleIfAbsent(ctx context.Context, sv *voucher.SeckillVoucher, buyers []int64) (bool, error)
	// LiveStock reports false when the sale is not loaded.
	LiveStock(ctx context.Context, voucherID int64) (int, bool, error)
}

type Locker interface {
	// TryLock makes a single attempt; ok is false when another holder owns name.
	TryLock(ctx context.Context, name string) (token string, ok bool, err error)
	// Unlock deletes name only while it still carries token.
	Unlock(ctx context.Context, name, token string) (bool, error)
}

type OrderQueue interface {
	EnsureGroup(ctx context.Context) error
	// ReadNew returns nil without error when block elapses with nothing new.
	ReadNew(ctx context.Context, consumer string, block time.Duration) (*Delivery, error)
	// ReadPending returns the first of consumer's pending entries with an ID
	// greater than after ("0" starts at the head), or nil when there is none.
	ReadPending(ctx context.Context, consumer, after string) (*Delivery, error)
	Ack(ctx context.Context, id string) error
	// Claim moves entries idle longer than minIdle to consumer and returns how many moved.
	Claim(ctx context.Context, consumer string, minIdle time.Duration, count int64) (int, error)
	DeadLetter(ctx context.Context, d Delivery, reason string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, key, event string, payload []byte) error
}
