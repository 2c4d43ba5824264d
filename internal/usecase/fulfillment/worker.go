package fulfillment

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderMaterializer interface {
	Materialize(ctx context.Context, entry order.QueueEntry) (Result, error)
}

// Worker runs a fixed pool of stream consumers. Each consumer starts in
// recovery mode so entries left pending by a previous run are replayed first.
type Worker struct {
	queue        shared.OrderQueue
	materializer OrderMaterializer
	cfg          config.WorkerConfig
	clock        clock.Clock
	logger       *zap.Logger
	names        []string

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorker(
	queue shared.OrderQueue,
	materializer OrderMaterializer,
	cfg config.WorkerConfig,
	clk clock.Clock,
	logger *zap.Logger,
) *Worker {
	base := cfg.ConsumerName
	if base == "" {
		if host, err := os.Hostname(); err == nil && host != "" {
			base = host
		} else {
			base = "worker-" + uuid.NewString()
		}
	}

	n := max(cfg.Consumers, 1)
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s-%d", base, i)
	}

	return &Worker{
		queue:        queue,
		materializer: materializer,
		cfg:          cfg,
		clock:        clk,
		logger:       logger,
		names:        names,
	}
}

// ConsumerNames are stable across restarts for a given configuration.
func (w *Worker) ConsumerNames() []string {
	return append([]string(nil), w.names...)
}

func (w *Worker) Start(ctx context.Context) error {
	if err := w.queue.EnsureGroup(ctx); err != nil {
		return errs.Wrap(err, "ensure consumer group")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return errs.New("worker already started")
	}

	// Consumers outlive the start hook's deadline.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	w.cancel = cancel

	for _, name := range w.names {
		name := name
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.Run(runCtx, name)
		}()
	}

	w.logger.Info("fulfillment worker started", zap.Strings("consumers", w.names))
	return nil
}

// Stop cancels every consumer and waits for in-flight entries to finish.
// Unacknowledged entries stay pending for the next run.
func (w *Worker) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("fulfillment worker stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "wait for consumers")
	}
}

// consumerState is the per-consumer bookkeeping carried between steps.
type consumerState struct {
	// cursor is the last pending entry a recovery pass left behind; "0" is the head.
	cursor   string
	deferred int
	retryAt  time.Time
	claimAt  time.Time
}

// Run drives one consumer until ctx is cancelled.
func (w *Worker) Run(ctx context.Context, consumer string) {
	logger := w.logger.With(zap.String("consumer", consumer))
	mode := ModeRecovery
	st := &consumerState{cursor: "0"}

	for ctx.Err() == nil {
		var ev Event
		switch mode {
		case ModeLive:
			ev = w.stepLive(ctx, consumer, st, logger)
		default:
			ev = w.stepRecovery(ctx, consumer, st, logger)
			if ev == EventFailed {
				w.backoff(ctx)
			}
		}
		if ctx.Err() != nil {
			return
		}

		next := mode.Next(ev)
		if next != mode {
			logger.Info("consumer mode changed",
				zap.Stringer("from", mode),
				zap.Stringer("to", next),
				zap.Stringer("event", ev))
		}
		mode = next
	}
}

func (w *Worker) stepLive(ctx context.Context, consumer string, st *consumerState, logger *zap.Logger) Event {
	if !st.retryAt.IsZero() && !w.clock.Now().Before(st.retryAt) {
		st.retryAt = time.Time{}
		return EventRetryDue
	}

	d, err := w.queue.ReadNew(ctx, consumer, w.cfg.BlockTimeout)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error("failed to read new entries", zap.Error(err))
		}
		return EventFailed
	}
	if d == nil {
		return w.claimIfDue(ctx, consumer, st, logger)
	}

	if err := w.handle(ctx, d, logger); err != nil {
		logger.Error("failed to process entry", zap.String("entry_id", d.ID), zap.Error(err))
		return EventFailed
	}
	return EventProcessed
}

// stepRecovery replays pending entries in ID order. An entry that fails is
// stepped over so it cannot hold back the rest; once the pass reaches the end
// the consumer goes live and the stepped-over entries are replayed after
// RetryInterval.
func (w *Worker) stepRecovery(ctx context.Context, consumer string, st *consumerState, logger *zap.Logger) Event {
	d, err := w.queue.ReadPending(ctx, consumer, st.cursor)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error("failed to read pending entries", zap.Error(err))
		}
		return EventFailed
	}
	if d == nil {
		deferred := st.deferred
		st.cursor, st.deferred = "0", 0
		if deferred == 0 {
			return EventDrained
		}
		st.retryAt = w.clock.Now().Add(w.cfg.RetryInterval)
		logger.Warn("deferring pending entries that keep failing",
			zap.Int("count", deferred),
			zap.Duration("retry_in", w.cfg.RetryInterval))
		return EventDeferred
	}

	if err := w.handle(ctx, d, logger); err != nil {
		logger.Warn("failed to replay pending entry", zap.String("entry_id", d.ID), zap.Error(err))
		st.cursor = d.ID
		st.deferred++
		return EventFailed
	}
	return EventProcessed
}

func (w *Worker) claimIfDue(ctx context.Context, consumer string, st *consumerState, logger *zap.Logger) Event {
	now := w.clock.Now()
	if w.cfg.ClaimInterval <= 0 || now.Sub(st.claimAt) < w.cfg.ClaimInterval {
		return EventIdle
	}
	st.claimAt = now

	n, err := w.queue.Claim(ctx, consumer, w.cfg.ClaimMinIdle, w.cfg.ClaimBatch)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("failed to claim stale entries", zap.Error(err))
		}
		return EventIdle
	}
	if n == 0 {
		return EventIdle
	}
	logger.Info("claimed stale entries", zap.Int("count", n))
	return EventClaimed
}

func (w *Worker) handle(ctx context.Context, d *shared.Delivery, logger *zap.Logger) error {
	entry, err := order.ParseQueueEntry(d.Values)
	if err != nil {
		return w.deadLetter(ctx, d, err, logger)
	}

	result, err := w.materializer.Materialize(ctx, entry)
	if err != nil {
		if isPermanent(err) {
			return w.deadLetter(ctx, d, err, logger)
		}
		return err
	}

	if err := w.queue.Ack(ctx, d.ID); err != nil {
		return errs.Wrapf(err, "ack entry %s", d.ID)
	}
	logger.Debug("entry fulfilled",
		zap.String("entry_id", d.ID),
		zap.Int64("order_id", entry.OrderID),
		zap.Stringer("result", result))
	return nil
}

// isPermanent reports failures that replaying the same entry can never fix.
func isPermanent(err error) bool {
	return errs.Is(err, errs.ErrMalformedEntry) ||
		infra.IsKind(err, infra.KindForeignKeyViolated) ||
		infra.IsKind(err, infra.KindCheckViolated)
}

func (w *Worker) deadLetter(ctx context.Context, d *shared.Delivery, cause error, logger *zap.Logger) error {
	logger.Error("moving poison entry to dead letter stream",
		zap.String("entry_id", d.ID),
		zap.Any("values", d.Values),
		zap.Error(cause))
	if err := w.queue.DeadLetter(ctx, *d, cause.Error()); err != nil {
		return errs.Wrapf(err, "dead-letter entry %s", d.ID)
	}
	return nil
}

func (w *Worker) backoff(ctx context.Context) {
	if w.cfg.RecoveryBackoff <= 0 {
		return
	}
	t := time.NewTimer(w.cfg.RecoveryBackoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
