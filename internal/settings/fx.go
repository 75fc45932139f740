package settings

import (
	"github.com/novayra/storefront/internal/settings/repository"
	"github.com/novayra/storefront/internal/settings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
