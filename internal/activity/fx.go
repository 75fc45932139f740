package activity

import (
	"github.com/novayra/storefront/internal/activity/repository"
	"github.com/novayra/storefront/internal/activity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("activity.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
