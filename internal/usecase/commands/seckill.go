package commands

import (
	"context"

	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/errs"
	"voucher-seckill/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "voucher-seckill/usecase/commands"

type SeckillResult struct {
	OrderID int64
}

type SeckillCommands interface {
	// Seckill returns the order id on admission. Rejections are marked
	// errs.ErrAdmissionRejected and store failures errs.ErrStoreUnavailable.
	Seckill(ctx context.Context, voucherID, userID int64) (*SeckillResult, error)
}

type seckillUseCaseImpl struct {
	ids       shared.IDGenerator
	admission shared.AdmissionStore
	clock     clock.Clock
	prefix    string
	logger    *zap.Logger
	tracer    trace.Tracer
}

func NewSeckillUseCase(
	ids shared.IDGenerator,
	admission shared.AdmissionStore,
	clk clock.Clock,
	cfg config.SeckillConfig,
	logger *zap.Logger,
) SeckillCommands {
	return &seckillUseCaseImpl{
		ids:       ids,
		admission: admission,
		clock:     clk,
		prefix:    cfg.OrderIDPrefix,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}
}

func (uc *seckillUseCaseImpl) Seckill(ctx context.Context, voucherID, userID int64) (*SeckillResult, error) {
	if voucherID <= 0 || userID <= 0 {
		return nil, errs.Mark(errs.New("voucher id and user id must be positive"), errs.ErrDomainValidation)
	}

	ctx, span := uc.tracer.Start(ctx, "seckill.admit",
		trace.WithAttributes(
			attribute.Int64("voucher.id", voucherID),
			attribute.Int64("user.id", userID),
		))
	defer span.End()

	// Admission is not cancellable once started.
	ctx = context.WithoutCancel(ctx)

	orderID, err := uc.ids.NextID(ctx, uc.prefix)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "id generation failed")
		return nil, errs.Mark(errs.Wrap(err, "generate order id"), errs.ErrStoreUnavailable)
	}
	span.SetAttributes(attribute.Int64("order.id", orderID))

	outcome, err := uc.admission.Admit(ctx, voucherID, userID, orderID, uc.clock.Now())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "admission script failed")
		return nil, errs.Mark(errs.Wrap(err, "run admission script"), errs.ErrStoreUnavailable)
	}
	span.SetAttributes(attribute.String("seckill.outcome", outcome.String()))

	if rejection := outcome.Err(); rejection != nil {
		uc.logger.Debug("seckill rejected",
			zap.Int64("voucher_id", voucherID),
			zap.Int64("user_id", userID),
			zap.Stringer("outcome", outcome))
		return nil, rejection
	}

	return &SeckillResult{OrderID: orderID}, nil
}
