package bootstrap

import (
	"context"

	"voucher-seckill/internal/observability"
	"voucher-seckill/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

// SetupTelemetry installs the tracer provider before any component creates a tracer.
func SetupTelemetry(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) error {
	shutdown, err := observability.SetupTracing(context.Background(), cfg.Telemetry, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
