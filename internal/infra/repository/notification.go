package repository

import (
	"context"
	"time"

	"voucher-seckill/internal/infra"
	"voucher-seckill/internal/infra/query"
	"voucher-seckill/internal/pkg/pgconv"
	"voucher-seckill/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db query.DBTX, arg query.CreateNotificationJobParams) error
	ClaimQueuedNotificationJobs(ctx context.Context, db query.DBTX, limit int32) ([]query.NotificationJob, error)
	MarkNotificationJobSent(ctx context.Context, db query.DBTX, id uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db query.DBTX, arg query.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := query.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  "queued",
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) ClaimQueued(ctx context.Context, tx query.DBTX, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimQueuedNotificationJobs(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	result := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		result[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		}
	}
	return result, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx query.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx query.DBTX, id uuid.UUID, lastError string, maxAttempts int32) error {
	params := query.MarkNotificationJobFailedParams{
		ID:          id,
		LastError:   pgconv.StringToPgtype(lastError),
		MaxAttempts: maxAttempts,
	}
	if err := r.queries.MarkNotificationJobFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
