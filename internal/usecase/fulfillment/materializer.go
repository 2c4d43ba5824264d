package fulfillment

import (
	"context"
	"encoding/json"
	"strconv"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName = "voucher-seckill/usecase/fulfillment"

	// OrderCreatedTopic is the outbox topic of the order-created event.
	OrderCreatedTopic = "voucher_order_created"
	OutboxKindKafka   = "kafka"
)

type Result int

const (
	ResultCreated Result = iota + 1
	ResultAlreadyPresent
)

func (r Result) String() string {
	switch r {
	case ResultCreated:
		return "created"
	case ResultAlreadyPresent:
		return "already_present"
	default:
		return "unknown"
	}
}

var errAlreadyMaterialized = errs.New("voucher order already materialized")

type Materializer struct {
	uow    shared.UnitOfWork
	locker shared.Locker
	clock  clock.Clock
	logger *zap.Logger
	tracer trace.Tracer
}

func NewMaterializer(uow shared.UnitOfWork, locker shared.Locker, clk clock.Clock, logger *zap.Logger) *Materializer {
	return &Materializer{
		uow:    uow,
		locker: locker,
		clock:  clk,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

func orderLockName(userID int64) string {
	return "order:" + strconv.FormatInt(userID, 10)
}

// Materialize persists the order for entry at most once per (user, voucher).
// errs.ErrLockNotAcquired means another holder is working on the same user and
// the entry must stay pending.
func (m *Materializer) Materialize(ctx context.Context, entry order.QueueEntry) (Result, error) {
	ctx, span := m.tracer.Start(ctx, "seckill.materialize",
		trace.WithAttributes(
			attribute.Int64("order.id", entry.OrderID),
			attribute.Int64("user.id", entry.UserID),
			attribute.Int64("voucher.id", entry.VoucherID),
		))
	defer span.End()

	now := m.clock.Now()
	o, err := order.NewVoucherOrder(entry, now)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrMalformedEntry)
	}
	payload, err := json.Marshal(order.NewCreatedEvent(o))
	if err != nil {
		return 0, errs.Wrap(err, "encode order created event")
	}

	lockName := orderLockName(entry.UserID)
	token, ok, err := m.locker.TryLock(ctx, lockName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "lock failed")
		return 0, errs.Wrap(err, "acquire order lock")
	}
	if !ok {
		m.logger.Warn("order lock busy, leaving entry pending",
			zap.Int64("order_id", entry.OrderID),
			zap.Int64("user_id", entry.UserID))
		return 0, errs.Wrapf(errs.ErrLockNotAcquired, "user %d", entry.UserID)
	}
	defer m.release(ctx, lockName, token)

	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, derr := tx.Orders().ExistsByUserAndVoucher(ctx, tx.DB(), entry.UserID, entry.VoucherID)
		if derr != nil {
			return derr
		}
		if exists {
			return errAlreadyMaterialized
		}

		inserted, derr := tx.Orders().InsertIfAbsent(ctx, tx.DB(), o)
		if derr != nil {
			return derr
		}
		if !inserted {
			return errAlreadyMaterialized
		}

		applied, derr := tx.Vouchers().DecrementStockIfPositive(ctx, tx.DB(), entry.VoucherID)
		if derr != nil {
			return derr
		}
		if !applied {
			m.logger.Warn("durable stock drift: decrement did not apply",
				zap.Int64("voucher_id", entry.VoucherID),
				zap.Int64("order_id", entry.OrderID))
		}

		return tx.Notifications().CreateJob(ctx, tx.DB(), OutboxKindKafka, OrderCreatedTopic, payload, now)
	})
	if errs.Is(err, errAlreadyMaterialized) {
		span.SetAttributes(attribute.String("materialize.result", ResultAlreadyPresent.String()))
		return ResultAlreadyPresent, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		return 0, errs.Wrap(err, "persist voucher order")
	}

	span.SetAttributes(attribute.String("materialize.result", ResultCreated.String()))
	return ResultCreated, nil
}

func (m *Materializer) release(ctx context.Context, name, token string) {
	// Unlock even when the worker is shutting down.
	owned, err := m.locker.Unlock(context.WithoutCancel(ctx), name, token)
	if err != nil {
		m.logger.Error("failed to release order lock", zap.String("lock", name), zap.Error(err))
		return
	}
	if !owned {
		m.logger.Warn("order lock expired before release", zap.String("lock", name))
	}
}
