package components

import (
	"context"

	"voucher-seckill/internal/infra/messaging"
	"voucher-seckill/internal/pkg/clock"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/usecase/commands"
	"voucher-seckill/internal/usecase/fulfillment"
	"voucher-seckill/internal/usecase/outbox"
	"voucher-seckill/internal/usecase/queries"
	"voucher-seckill/internal/usecase/shared"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseFulfillmentModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewSeckillCommands,
		commands.NewVoucherUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewVoucherQueries,
	),
)

var usecaseFulfillmentModule = fx.Module("usecase/fulfillment",
	fx.Provide(
		fx.Annotate(
			fulfillment.NewMaterializer,
			fx.As(new(fulfillment.OrderMaterializer)),
		),
		NewWorker,
		NewEventPublisher,
		NewRelay,
	),
)

func NewSeckillCommands(
	ids shared.IDGenerator,
	admission shared.AdmissionStore,
	clk clock.Clock,
	cfg config.Config,
	logger *zap.Logger,
) commands.SeckillCommands {
	return commands.NewSeckillUseCase(ids, admission, clk, cfg.Seckill, logger)
}

func NewWorker(
	queue shared.OrderQueue,
	m fulfillment.OrderMaterializer,
	clk clock.Clock,
	cfg config.Config,
	logger *zap.Logger,
) *fulfillment.Worker {
	return fulfillment.NewWorker(queue, m, cfg.Worker, clk, logger.Named("worker"))
}

// NewEventPublisher writes to Kafka when brokers are configured and only logs otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) shared.EventPublisher {
	if !cfg.Kafka.Enabled() {
		return messaging.NewNoopPublisher(logger)
	}

	publisher := messaging.NewKafkaPublisher(messaging.NewKafkaWriter(cfg.Kafka), logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}

func NewRelay(uow shared.UnitOfWork, publisher shared.EventPublisher, cfg config.Config, logger *zap.Logger) *outbox.Relay {
	return outbox.NewRelay(uow, publisher, cfg.Kafka, logger.Named("outbox"))
}
