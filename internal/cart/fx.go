package cart

import (
	"github.com/novayra/storefront/internal/cart/repository"
	"github.com/novayra/storefront/internal/cart/service"
	"go.uber.org/fx"
)

var Module = fx.Module("cart.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
