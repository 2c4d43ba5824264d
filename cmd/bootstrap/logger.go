package bootstrap

import (
	"context"

	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
	fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: l.Named("fx")}
	}),
)

func NewLogger(lc fx.Lifecycle, cfg config.Config) *zap.Logger {
	l := logger.New(cfg.Log)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			// stdout sync fails on some terminals
			_ = l.Sync()
			return nil
		},
	})

	return l
}
