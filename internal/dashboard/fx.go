package dashboard

import (
	"github.com/novayra/storefront/internal/dashboard/repository"
	"github.com/novayra/storefront/internal/dashboard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dashboard.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
