package shared

import (
	"context"
	"time"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/domain/voucher"
	"voucher-seckill/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Orders() OrderRepository
	Vouchers() VoucherRepository
	Notifications() NotificationRepository
	DB() query.DBTX
}

type OrderRepository interface {
	// InsertIfAbsent reports false when an order for the same id or (user, voucher) already exists.
	InsertIfAbsent(ctx context.Context, tx query.DBTX, o *order.VoucherOrder) (bool, error)
	ExistsByUserAndVoucher(ctx context.Context, tx query.DBTX, userID, voucherID int64) (bool, error)
	// ListBuyerIDs returns the users holding an order for voucherID.
	ListBuyerIDs(ctx context.Context, tx query.DBTX, voucherID int64) ([]int64, error)
}

type VoucherRepository interface {
	Create(ctx context.Context, tx query.DBTX, v *voucher.Voucher) (int64, error)
	CreateSeckill(ctx context.Context, tx query.DBTX, sv *voucher.SeckillVoucher) error
	FindSeckill(ctx context.Context, tx query.DBTX, voucherID int64) (*voucher.SeckillVoucher, error)
	ListOpenSeckill(ctx context.Context, tx query.DBTX, now time.Time) ([]*voucher.SeckillVoucher, error)
	// DecrementStockIfPositive reports false when the durable stock is already zero.
	DecrementStockIfPositive(ctx context.Context, tx query.DBTX, voucherID int64) (bool, error)
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimQueued locks due jobs for the lifetime of tx; concurrent claimers skip them.
	ClaimQueued(ctx context.Context, tx query.DBTX, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx query.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx query.DBTX, id uuid.UUID, lastError string, maxAttempts int32) error
}
