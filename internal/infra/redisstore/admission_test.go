//go:build unit

package redisstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"voucher-seckill/internal/domain/order"
	"voucher-seckill/internal/infra/redisstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const streamKey = "stream.orders"

func TestAdmissionStore_Admit(t *testing.T) {
	ctx := context.Background()
	during := saleStart.Add(10 * time.Minute)

	t.Run("accepted reserves stock and enqueues exactly one entry", func(t *testing.T) {
		_, rdb := newRedis(t)
		store := redisstore.NewAdmissionStore(rdb, streamKey)
		require.NoError(t, store.LoadSale(ctx, seckillVoucher(t, 1, 5)))

		outcome, err := store.Admit(ctx, 1, 7, 1001, during)
		require.NoError(t, err)
		assert.Equal(t, order.OutcomeAccepted, outcome)

		stock, loaded, err := store.LiveStock(ctx, 1)
		require.NoError(t, err)
		assert.True(t, loaded)
		assert.Equal(t, 4, stock)

		isMember, err := rdb.SIsMember(ctx, "seckill:order:1", "7").Result()
		require.NoError(t, err)
		assert.True(t, isMember)

		msgs, err := rdb.XRange(ctx, streamKey, "-", "+").Result()
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		entry, err := order.ParseQueueEntry(msgs[0].Values)
		require.NoError(t, err)
		assert.Equal(t, order.QueueEntry{OrderID: 1001, UserID: 7, VoucherID: 1}, entry)
	})

	t.Run("rejections leave no trace", func(t *testing.T) {
		testCases := []struct {
			name    string
			stock   int
			load    bool
			prior   bool
			at      time.Time
			outcome order.Outcome
		}{
			{name: "before the window", stock: 5, load: true, at: saleStart.Add(-time.Millisecond), outcome: order.OutcomeSaleClosed},
			{name: "after the window", stock: 5, load: true, at: saleStart.Add(time.Hour + time.Millisecond), outcome: order.OutcomeSaleClosed},
			{name: "sale never loaded", load: false, at: during, outcome: order.OutcomeSaleClosed},
			{name: "no stock", stock: 0, load: true, at: during, outcome: order.OutcomeSoldOut},
			{name: "already reserved", stock: 5, load: true, prior: true, at: during, outcome: order.OutcomeDuplicate},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, rdb := newRedis(t)
				store := redisstore.NewAdmissionStore(rdb, streamKey)
				if tc.load {
					require.NoError(t, store.LoadSale(ctx, seckillVoucher(t, 1, tc.stock)))
				}
				wantLen := int64(0)
				if tc.prior {
					outcome, err := store.Admit(ctx, 1, 7, 1000, during)
					require.NoError(t, err)
					require.Equal(t, order.OutcomeAccepted, outcome)
					wantLen = 1
				}
				before, _, err := store.LiveStock(ctx, 1)
				require.NoError(t, err)

				outcome, err := store.Admit(ctx, 1, 7, 1001, tc.at)
				require.NoError(t, err)
				assert.Equal(t, tc.outcome, outcome)

				after, _, err := store.LiveStock(ctx, 1)
				require.NoError(t, err)
				assert.Equal(t, before, after)
				assert.Equal(t, wantLen, streamLen(t, rdb, streamKey))
			})
		}
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		_, rdb := newRedis(t)
		store := redisstore.NewAdmissionStore(rdb, streamKey)
		require.NoError(t, store.LoadSale(ctx, seckillVoucher(t, 1, 5)))

		outcome, err := store.Admit(ctx, 1, 1, 1, saleStart)
		require.NoError(t, err)
		assert.Equal(t, order.OutcomeAccepted, outcome)

		outcome, err = store.Admit(ctx, 1, 2, 2, saleStart.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, order.OutcomeAccepted, outcome)
	})

	t.Run("store failure is an error not an outcome", func(t *testing.T) {
		mr, rdb := newRedis(t)
		store := redisstore.NewAdmissionStore(rdb, streamKey)
		mr.SetError("ERR store down")

		_, err := store.Admit(ctx, 1, 7, 1001, during)
		assert.Error(t, err)
	})
}

func TestAdmissionStore_Concurrency(t *testing.T) {
	ctx := context.Background()
	during := saleStart.Add(10 * time.Minute)

	t.Run("stock N under contention accepts exactly N", func(t *testing.T) {
		const stock = 20
		const users = 200

		_, rdb := newRedis(t)
		store := redisstore.NewAdmissionStore(rdb, streamKey)
		require.NoError(t, store.LoadSale(ctx, seckillVoucher(t, 1, stock)))

		outcomes := make([]order.Outcome, users)
		var wg sync.WaitGroup
		for i := 0; i < users; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				o, err := store.Admit(ctx, 1, int64(i+1), int64(10000+i), during)
				assert.NoError(t, err)
				outcomes[i] = o
			}(i)
		}
		wg.Wait()

		counts := map[order.Outcome]int{}
		for _, o := range outcomes {
			counts[o]++
		}
		assert.Equal(t, stock, counts[order.OutcomeAccepted])
		assert.Equal(t, users-stock, counts[order.OutcomeSoldOut])
		assert.Equal(t, int64(stock), streamLen(t, rdb, streamKey))

		left, _, err := store.LiveStock(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, left)
	})

	t.Run("stock 1 and two users: one accepted one sold out", func(t *testing.T) {
		_, rdb := newRedis(t)
		store := redisstore.NewAdmissionStore(rdb, streamKey)
		require.NoError(t, store.LoadSale(ctx, seckillVoucher(t, 1, 1)))

		got := runConcurrently(t, func(i int) (order.Outcome, error) {
			return store.Admit(ctx, 1, int64(i+1), int64(500+i), during)
		})
		assert.ElementsMatch(t, []order.Outcome{order.OutcomeAccepted, order.OutcomeSoldOut}, got)
	})

	t.Run("stock 5 and the same user twice: one accepted one duplicate", func(t *testing.T) {
		_, rdb := newRedis(t)
		store := redisstore.NewAdmissionStore(rdb, streamKey)
		require.NoError(t, store.LoadSale(ctx, seckillVoucher(t, 1, 5)))

		got := runConcurrently(t, func(i int) (order.Outcome, error) {
			return store.Admit(ctx, 1, 42, int64(500+i), during)
		})
		assert.ElementsMatch(t, []order.Outcome{order.OutcomeAccepted, order.OutcomeDuplicate}, got)

		left, _, err := store.LiveStock(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, left)
	})
}

func runConcurrently(t *testing.T, fn func(i int) (order.Outcome, error)) []order.Outcome {
	t.Helper()

	got := make([]order.Outcome, 2)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			o, err := fn(i)
			assert.NoError(t, err)
			got[i] = o
		}(i)
	}
	close(start)
	wg.Wait()
	return got
}

func TestAdmissionStore_LoadSaleIfAbsent(t *testing.T) {
	ctx := context.Background()
	_, rdb := newRedis(t)
	store := redisstore.NewAdmissionStore(rdb, streamKey)

	written, err := store.LoadSaleIfAbsent(ctx, seckillVoucher(t, 1, 5), nil)
	require.NoError(t, err)
	assert.True(t, written)

	_, err = store.Admit(ctx, 1, 7, 1001, saleStart.Add(time.Minute))
	require.NoError(t, err)

	written, err = store.LoadSaleIfAbsent(ctx, seckillVoucher(t, 1, 5), []int64{8})
	require.NoError(t, err)
	assert.False(t, written)

	stock, loaded, err := store.LiveStock(ctx, 1)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, 4, stock, "live counter survives a second preload")

	isMember, err := rdb.SIsMember(ctx, "seckill:order:1", "8").Result()
	require.NoError(t, err)
	assert.False(t, isMember, "buyers are only restored together with a missing sale")

	require.NoError(t, store.LoadSale(ctx, seckillVoucher(t, 1, 5)))
	stock, _, err = store.LiveStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, stock)

	_, loaded, err = store.LiveStock(ctx, 99)
	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestAdmissionStore_ReloadRestoresBuyers(t *testing.T) {
	ctx := context.Background()
	during := saleStart.Add(time.Minute)
	mr, rdb := newRedis(t)
	store := redisstore.NewAdmissionStore(rdb, streamKey)

	require.NoError(t, store.LoadSale(ctx, seckillVoucher(t, 1, 5)))
	outcome, err := store.Admit(ctx, 1, 7, 1001, during)
	require.NoError(t, err)
	require.Equal(t, order.OutcomeAccepted, outcome)

	// the snapshot store loses everything; user 7 already holds a durable order
	mr.FlushAll()
	written, err := store.LoadSaleIfAbsent(ctx, seckillVoucher(t, 1, 4), []int64{7})
	require.NoError(t, err)
	require.True(t, written)

	outcome, err = store.Admit(ctx, 1, 7, 1002, during)
	require.NoError(t, err)
	assert.Equal(t, order.OutcomeDuplicate, outcome)

	outcome, err = store.Admit(ctx, 1, 8, 1003, during)
	require.NoError(t, err)
	assert.Equal(t, order.OutcomeAccepted, outcome)

	stock, _, err := store.LiveStock(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, stock, "the duplicate does not consume stock")
}

func TestAdmissionStore_ReloadRestoresLargeBuyerSets(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	store := redisstore.NewAdmissionStore(rdb, streamKey)

	buyers := make([]int64, 2500)
	for i := range buyers {
		buyers[i] = int64(i + 1)
	}
	written, err := store.LoadSaleIfAbsent(ctx, seckillVoucher(t, 1, 10), buyers)
	require.NoError(t, err)
	require.True(t, written)

	members, err := mr.Members("seckill:order:1")
	require.NoError(t, err)
	assert.Len(t, members, len(buyers))
}
