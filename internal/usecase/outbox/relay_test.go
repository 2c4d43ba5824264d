//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/usecase/outbox"
	"voucher-seckill/internal/usecase/shared"
	sharedmock "voucher-seckill/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type relayDeps struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	notifications *sharedmock.MockNotificationRepository
	publisher     *sharedmock.MockEventPublisher
}

func newRelay(t *testing.T, cfg config.KafkaConfig) (*outbox.Relay, relayDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := relayDeps{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		publisher:     sharedmock.NewMockEventPublisher(ctrl),
	}
	deps.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, deps.tx)
		}).AnyTimes()
	deps.tx.EXPECT().DB().Return(nil).AnyTimes()
	deps.tx.EXPECT().Notifications().Return(deps.notifications).AnyTimes()

	return outbox.NewRelay(deps.uow, deps.publisher, cfg, zap.NewNop()), deps
}

func TestRelay_RelayOnce(t *testing.T) {
	cfg := config.NewTestConfig().Kafka
	orderJob := shared.NotificationJob{
		ID:      uuid.New(),
		Kind:    "kafka",
		Topic:   "voucher_order_created",
		Payload: []byte(`{"orderId":"9001","userId":"42","voucherId":"7","createdAt":"2026-03-01T10:00:05Z"}`),
	}
	opaqueJob := shared.NotificationJob{
		ID:      uuid.New(),
		Kind:    "kafka",
		Topic:   "something_else",
		Payload: []byte(`not json`),
	}

	t.Run("publishes keyed by order id and marks sent", func(t *testing.T) {
		relay, deps := newRelay(t, cfg)
		deps.notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), cfg.RelayBatch).
			Return([]shared.NotificationJob{orderJob, opaqueJob}, nil)
		deps.publisher.EXPECT().Publish(gomock.Any(), "9001", "voucher_order_created", orderJob.Payload).Return(nil)
		deps.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), orderJob.ID).Return(nil)
		deps.publisher.EXPECT().Publish(gomock.Any(), opaqueJob.ID.String(), "something_else", opaqueJob.Payload).Return(nil)
		deps.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), opaqueJob.ID).Return(nil)

		n, err := relay.RelayOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("publish failure records the error and continues", func(t *testing.T) {
		relay, deps := newRelay(t, cfg)
		deps.notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shared.NotificationJob{orderJob, opaqueJob}, nil)
		deps.publisher.EXPECT().Publish(gomock.Any(), "9001", gomock.Any(), gomock.Any()).Return(errors.New("leader not available"))
		deps.notifications.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), orderJob.ID, gomock.Any(), int32(5)).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, lastError string, _ int32) error {
				assert.Contains(t, lastError, "leader not available")
				return nil
			})
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), "something_else", gomock.Any()).Return(nil)
		deps.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), opaqueJob.ID).Return(nil)

		n, err := relay.RelayOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("claim failure", func(t *testing.T) {
		relay, deps := newRelay(t, cfg)
		deps.notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := relay.RelayOnce(context.Background())

		assert.Error(t, err)
	})
}

func TestRelay_StartStop(t *testing.T) {
	cfg := config.NewTestConfig().Kafka
	cfg.RelayInterval = 5 * time.Millisecond
	relay, deps := newRelay(t, cfg)

	var polls atomic.Int32
	deps.notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, any, int32) ([]shared.NotificationJob, error) {
			polls.Add(1)
			return nil, nil
		}).AnyTimes()

	relay.Start(context.Background())
	require.Eventually(t, func() bool { return polls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, relay.Stop(ctx))

	stopped := polls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, polls.Load())
}

func TestRelay_StartWithNonPositiveInterval(t *testing.T) {
	cfg := config.NewTestConfig().Kafka
	cfg.RelayInterval = 0
	relay, deps := newRelay(t, cfg)

	var polls atomic.Int32
	deps.notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, any, int32) ([]shared.NotificationJob, error) {
			polls.Add(1)
			return nil, nil
		}).AnyTimes()

	require.NotPanics(t, func() { relay.Start(context.Background()) })
	require.Eventually(t, func() bool { return polls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, relay.Stop(ctx))
}
