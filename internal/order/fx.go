package order

import (
	"github.com/novayra/storefront/internal/order/repository"
	"github.com/novayra/storefront/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
