package adminauth

import (
	"github.com/novayra/storefront/internal/adminauth/repository"
	"github.com/novayra/storefront/internal/adminauth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("adminauth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
