package outbox

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/shared"

	"go.uber.org/zap"
)

const (
	defaultMaxAttempts int32 = 5
	defaultInterval          = time.Second
)

// Relay moves queued notification jobs to the event publisher.
type Relay struct {
	uow         shared.UnitOfWork
	publisher   shared.EventPublisher
	interval    time.Duration
	batch       int32
	maxAttempts int32
	logger      *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRelay(uow shared.UnitOfWork, publisher shared.EventPublisher, cfg config.KafkaConfig, logger *zap.Logger) *Relay {
	interval := cfg.RelayInterval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		interval:    interval,
		batch:       max(cfg.RelayBatch, 1),
		maxAttempts: defaultMaxAttempts,
		logger:      logger,
	}
}

// RelayOnce publishes one batch of due jobs and returns how many were sent.
// Rows stay locked until the batch commits, so concurrent relays never double-publish.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := tx.Notifications().ClaimQueued(ctx, tx.DB(), r.batch)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if perr := r.publisher.Publish(ctx, messageKey(job), job.Topic, job.Payload); perr != nil {
				r.logger.Warn("failed to publish notification job",
					zap.String("job_id", job.ID.String()),
					zap.String("topic", job.Topic),
					zap.Int32("attempts", job.Attempts+1),
					zap.Error(perr))
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, perr.Error(), r.maxAttempts); err != nil {
					return err
				}
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "relay notification jobs")
	}
	return sent, nil
}

// messageKey keys order events by order id so one order's events stay on one partition.
func messageKey(job shared.NotificationJob) string {
	var ev order.CreatedEvent
	if err := json.Unmarshal(job.Payload, &ev); err == nil && ev.OrderID > 0 {
		return strconv.FormatInt(ev.OrderID, 10)
	}
	return job.ID.String()
}

func (r *Relay) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				n, err := r.RelayOnce(runCtx)
				if err != nil && runCtx.Err() == nil {
					r.logger.Error("outbox relay failed", zap.Error(err))
					continue
				}
				if n > 0 {
					r.logger.Debug("outbox relayed", zap.Int("sent", n))
				}
			}
		}
	}()
	r.logger.Info("outbox relay started", zap.Duration("interval", r.interval))
}

func (r *Relay) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
