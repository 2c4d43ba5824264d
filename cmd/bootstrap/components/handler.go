package components

import (
	"voucher-seckill/internal/handler"
	"voucher-seckill/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSeckillHandler,
		api.NewOrderHandler,
		api.NewVoucherHandler,
		func(s *api.SeckillHandler, o *api.OrderHandler, v *api.VoucherHandler) handler.Handlers {
			return handler.Handlers{Seckill: s, Order: o, Voucher: v}
		},
	),
	fx.Invoke(handler.NewRouter),
)
