//go:build unit

package fulfillment_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/redisstore"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/fulfillment"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type orderKey struct {
	userID    int64
	voucherID int64
}

// memoryMaterializer enforces one order per (user, voucher) like the unique constraint does.
type memoryMaterializer struct {
	mu        sync.Mutex
	orders    map[orderKey]int64
	calls     int
	failFirst int
	// failing makes every attempt at these order ids fail with the given error.
	failing   map[int64]error
	attempts  map[int64]int
}

func newMemoryMaterializer() *memoryMaterializer {
	return &memoryMaterializer{
		orders:   make(map[orderKey]int64),
		failing:  make(map[int64]error),
		attempts: make(map[int64]int),
	}
}

func (m *memoryMaterializer) Materialize(_ context.Context, e order.QueueEntry) (fulfillment.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.attempts[e.OrderID]++
	if err, ok := m.failing[e.OrderID]; ok {
		return 0, err
	}
	if m.calls <= m.failFirst {
		return 0, errs.ErrLockNotAcquired
	}
	key := orderKey{e.UserID, e.VoucherID}
	if _, ok := m.orders[key]; ok {
		return fulfillment.ResultAlreadyPresent, nil
	}
	m.orders[key] = e.OrderID
	return fulfillment.ResultCreated, nil
}

func (m *memoryMaterializer) snapshot() map[orderKey]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[orderKey]int64, len(m.orders))
	for k, v := range m.orders {
		out[k] = v
	}
	return out
}

func (m *memoryMaterializer) attemptsFor(orderID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts[orderID]
}

func (m *memoryMaterializer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type workerEnv struct {
	mr    *miniredis.Miniredis
	rdb   *redis.Client
	cfg   config.Config
	queue *redisstore.StreamQueue
}

func newWorkerEnv(t *testing.T) *workerEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.NewTestConfig()
	cfg.Worker.BlockTimeout = 50 * time.Millisecond
	cfg.Worker.ClaimInterval = 0
	return &workerEnv{
		mr:    mr,
		rdb:   rdb,
		cfg:   cfg,
		queue: redisstore.NewStreamQueue(rdb, cfg.Seckill),
	}
}

func (e *workerEnv) addEntry(t *testing.T, orderID, userID, voucherID int64) string {
	t.Helper()
	id, err := e.rdb.XAdd(context.Background(), &redis.XAddArgs{
		Stream: e.cfg.Seckill.StreamKey,
		Values: map[string]any{
			order.FieldOrderID:   strconv.FormatInt(orderID, 10),
			order.FieldUserID:    strconv.FormatInt(userID, 10),
			order.FieldVoucherID: strconv.FormatInt(voucherID, 10),
		},
	}).Result()
	require.NoError(t, err)
	return id
}

func (e *workerEnv) pending(t *testing.T) int64 {
	t.Helper()
	p, err := e.rdb.XPending(context.Background(), e.cfg.Seckill.StreamKey, e.cfg.Seckill.Group).Result()
	require.NoError(t, err)
	return p.Count
}

func (e *workerEnv) start(t *testing.T, m fulfillment.OrderMaterializer) *fulfillment.Worker {
	t.Helper()
	w := fulfillment.NewWorker(e.queue, m, e.cfg.Worker, clock.NewRealClock(), zap.NewNop())
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		assert.NoError(t, w.Stop(ctx))
	})
	return w
}

func TestWorker_ConsumerNames(t *testing.T) {
	cfg := config.NewTestConfig().Worker
	cfg.Consumers = 3

	w := fulfillment.NewWorker(nil, nil, cfg, clock.NewRealClock(), zap.NewNop())

	assert.Equal(t, []string{"test-consumer-0", "test-consumer-1", "test-consumer-2"}, w.ConsumerNames())
}

func TestWorker_MaterializesAndAcksNewEntries(t *testing.T) {
	env := newWorkerEnv(t)
	m := newMemoryMaterializer()
	env.start(t, m)

	env.addEntry(t, 101, 1, 7)
	env.addEntry(t, 102, 2, 7)
	env.addEntry(t, 103, 3, 7)

	require.Eventually(t, func() bool { return len(m.snapshot()) == 3 }, 3*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return env.pending(t) == 0 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, map[orderKey]int64{{1, 7}: 101, {2, 7}: 102, {3, 7}: 103}, m.snapshot())
}

func TestWorker_RecoversEntriesLeftPendingByACrash(t *testing.T) {
	env := newWorkerEnv(t)
	ctx := context.Background()
	require.NoError(t, env.queue.EnsureGroup(ctx))
	consumer := "test-consumer-0"

	env.addEntry(t, 201, 1, 7)
	env.addEntry(t, 202, 2, 7)

	// Previous process dequeued both and persisted the first before dying.
	m := newMemoryMaterializer()
	for i := 0; i < 2; i++ {
		d, err := env.queue.ReadNew(ctx, consumer, -1)
		require.NoError(t, err)
		require.NotNil(t, d)
	}
	_, err := m.Materialize(ctx, order.QueueEntry{OrderID: 201, UserID: 1, VoucherID: 7})
	require.NoError(t, err)
	require.Equal(t, int64(2), env.pending(t))

	env.start(t, m)

	require.Eventually(t, func() bool { return env.pending(t) == 0 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, map[orderKey]int64{{1, 7}: 201, {2, 7}: 202}, m.snapshot())
}

func TestWorker_RetriesFailedEntriesInRecovery(t *testing.T) {
	env := newWorkerEnv(t)
	m := newMemoryMaterializer()
	m.failFirst = 3
	env.start(t, m)

	env.addEntry(t, 301, 5, 7)

	require.Eventually(t, func() bool { return len(m.snapshot()) == 1 }, 3*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return env.pending(t) == 0 }, 3*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, m.callCount(), 4)
}

func TestWorker_DeadLettersPoisonEntries(t *testing.T) {
	env := newWorkerEnv(t)
	m := newMemoryMaterializer()
	env.start(t, m)

	_, err := env.rdb.XAdd(context.Background(), &redis.XAddArgs{
		Stream: env.cfg.Seckill.StreamKey,
		Values: map[string]any{order.FieldOrderID: "not-a-number", order.FieldUserID: "1"},
	}).Result()
	require.NoError(t, err)
	env.addEntry(t, 401, 9, 7)

	require.Eventually(t, func() bool { return len(m.snapshot()) == 1 }, 3*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return env.pending(t) == 0 }, 3*time.Second, 10*time.Millisecond)

	dead, err := env.rdb.XRange(context.Background(), env.cfg.Seckill.DeadLetterKey, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, dead, 1)
	assert.Equal(t, "not-a-number", dead[0].Values[order.FieldOrderID])
	assert.Equal(t, 1, m.callCount())
}

func (e *workerEnv) deliverTo(t *testing.T, consumer string, n int) {
	t.Helper()
	require.NoError(t, e.queue.EnsureGroup(context.Background()))
	for i := 0; i < n; i++ {
		d, err := e.queue.ReadNew(context.Background(), consumer, -1)
		require.NoError(t, err)
		require.NotNil(t, d)
	}
}

func (e *workerEnv) deadLetters(t *testing.T) []redis.XMessage {
	t.Helper()
	dead, err := e.rdb.XRange(context.Background(), e.cfg.Seckill.DeadLetterKey, "-", "+").Result()
	require.NoError(t, err)
	return dead
}

func TestWorker_DeadLettersPermanentRepositoryFailures(t *testing.T) {
	tests := []struct {
		name  string
		cause error
	}{
		{name: "unknown voucher", cause: &pgconn.PgError{Code: "23503"}},
		{name: "check violation", cause: &pgconn.PgError{Code: "23514"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newWorkerEnv(t)
			m := newMemoryMaterializer()
			m.failing[701] = errs.Wrap(infra.WrapRepoErr("failed to insert voucher order", tt.cause), "persist voucher order")

			env.addEntry(t, 701, 21, 999)
			env.addEntry(t, 702, 22, 7)
			env.deliverTo(t, "test-consumer-0", 2)
			env.start(t, m)

			require.Eventually(t, func() bool { return env.pending(t) == 0 }, 3*time.Second, 10*time.Millisecond)
			assert.Equal(t, map[orderKey]int64{{22, 7}: 702}, m.snapshot())

			dead := env.deadLetters(t)
			require.Len(t, dead, 1)
			assert.Equal(t, "701", dead[0].Values[order.FieldOrderID])
			assert.Equal(t, 1, m.attemptsFor(701))
		})
	}
}

func TestWorker_FailingPendingEntryDoesNotBlockOthers(t *testing.T) {
	env := newWorkerEnv(t)
	m := newMemoryMaterializer()
	m.failing[801] = errs.Wrap(errs.ErrLockNotAcquired, "user 31")

	env.addEntry(t, 801, 31, 7)
	env.addEntry(t, 802, 32, 7)
	env.deliverTo(t, "test-consumer-0", 2)
	env.start(t, m)

	require.Eventually(t, func() bool { return len(m.snapshot()) == 1 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, map[orderKey]int64{{32, 7}: 802}, m.snapshot())

	env.addEntry(t, 803, 33, 7)
	require.Eventually(t, func() bool { return len(m.snapshot()) == 2 }, 3*time.Second, 10*time.Millisecond)

	// the failing entry stays pending and is replayed after the retry interval
	require.Eventually(t, func() bool { return m.attemptsFor(801) >= 3 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(1), env.pending(t))
	assert.Empty(t, env.deadLetters(t))
}

func TestWorker_ClaimsEntriesOfADeadConsumer(t *testing.T) {
	env := newWorkerEnv(t)
	env.cfg.Worker.ClaimInterval = 10 * time.Millisecond
	env.cfg.Worker.ClaimMinIdle = 0
	ctx := context.Background()
	require.NoError(t, env.queue.EnsureGroup(ctx))

	env.addEntry(t, 501, 11, 7)
	d, err := env.queue.ReadNew(ctx, "departed-host-0", -1)
	require.NoError(t, err)
	require.NotNil(t, d)

	m := newMemoryMaterializer()
	env.start(t, m)

	require.Eventually(t, func() bool { return len(m.snapshot()) == 1 }, 3*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return env.pending(t) == 0 }, 3*time.Second, 10*time.Millisecond)
}

func TestWorker_StopLeavesUnackedEntriesPending(t *testing.T) {
	env := newWorkerEnv(t)
	m := newMemoryMaterializer()
	m.failFirst = 1 << 30
	w := fulfillment.NewWorker(env.queue, m, env.cfg.Worker, clock.NewRealClock(), zap.NewNop())
	require.NoError(t, w.Start(context.Background()))

	env.addEntry(t, 601, 12, 7)
	require.Eventually(t, func() bool { return m.callCount() > 0 }, 3*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Stop(ctx))

	assert.Equal(t, int64(1), env.pending(t))
	assert.Empty(t, m.snapshot())
}
