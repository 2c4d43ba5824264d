package components

import (
	"context"

	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/usecase/commands"
	"voucher-seckill/internal/usecase/fulfillment"
	"voucher-seckill/internal/usecase/outbox"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		preloadSales,
		startWorker,
		startRelay,
	),
)

// preloadSales runs before the HTTP server accepts traffic; a failure is
// logged and admission stays closed for the sales that did not load.
func preloadSales(lc fx.Lifecycle, cmds commands.VoucherCommands, cfg config.Config, logger *zap.Logger) {
	if !cfg.Seckill.PreloadOnStart {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			loaded, err := cmds.PreloadSales(ctx)
			if err != nil {
				logger.Warn("sale preload incomplete", zap.Int("loaded", loaded), zap.Error(err))
				return nil
			}
			logger.Info("sales preloaded", zap.Int("loaded", loaded))
			return nil
		},
	})
}

func startWorker(lc fx.Lifecycle, worker *fulfillment.Worker, cfg config.Config, logger *zap.Logger) {
	if !cfg.Worker.Enabled {
		logger.Info("fulfillment worker disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return worker.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return worker.Stop(ctx)
		},
	})
}

func startRelay(lc fx.Lifecycle, relay *outbox.Relay, cfg config.Config, logger *zap.Logger) {
	if !cfg.Kafka.Enabled() {
		logger.Info("outbox relay disabled, no kafka brokers configured")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			relay.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
}
