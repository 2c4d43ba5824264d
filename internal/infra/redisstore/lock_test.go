//go:build unit

package redisstore_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"voucher-seckill/internal/infra/redisstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("single holder until released", func(t *testing.T) {
		mr, rdb := newRedis(t)
		a := redisstore.NewLocker(rdb, "node-a", 10*time.Second)
		b := redisstore.NewLocker(rdb, "node-b", 10*time.Second)

		token, ok, err := a.TryLock(ctx, "order:7")
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(token, "node-a-"))
		assert.Equal(t, 10*time.Second, mr.TTL("lock:order:7"))

		_, ok, err = b.TryLock(ctx, "order:7")
		require.NoError(t, err)
		assert.False(t, ok, "second holder must not acquire")

		released, err := a.Unlock(ctx, "order:7", token)
		require.NoError(t, err)
		assert.True(t, released)
		assert.False(t, mr.Exists("lock:order:7"))

		_, ok, err = b.TryLock(ctx, "order:7")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("tokens are unique per holder on the same instance", func(t *testing.T) {
		_, rdb := newRedis(t)
		l := redisstore.NewLocker(rdb, "node-a", 10*time.Second)

		first, ok, err := l.TryLock(ctx, "order:1")
		require.NoError(t, err)
		require.True(t, ok)
		second, ok, err := l.TryLock(ctx, "order:2")
		require.NoError(t, err)
		require.True(t, ok)

		assert.NotEqual(t, first, second)

		released, err := l.Unlock(ctx, "order:1", second)
		require.NoError(t, err)
		assert.False(t, released, "a token only releases its own lock")
	})

	t.Run("release after expiry does not delete the next holder's lock", func(t *testing.T) {
		mr, rdb := newRedis(t)
		a := redisstore.NewLocker(rdb, "node-a", 10*time.Second)
		b := redisstore.NewLocker(rdb, "node-b", 10*time.Second)

		staleToken, ok, err := a.TryLock(ctx, "order:7")
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(11 * time.Second)

		freshToken, ok, err := b.TryLock(ctx, "order:7")
		require.NoError(t, err)
		require.True(t, ok)

		released, err := a.Unlock(ctx, "order:7", staleToken)
		require.NoError(t, err)
		assert.False(t, released)

		value, err := mr.Get("lock:order:7")
		require.NoError(t, err)
		assert.Equal(t, freshToken, value)
	})

	t.Run("unlocking a missing key reports not owned", func(t *testing.T) {
		_, rdb := newRedis(t)
		l := redisstore.NewLocker(rdb, "node-a", time.Second)

		released, err := l.Unlock(ctx, "order:9", "node-a-whatever")
		require.NoError(t, err)
		assert.False(t, released)
	})
}
