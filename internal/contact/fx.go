package contact

import (
	"github.com/novayra/storefront/internal/contact/repository"
	"github.com/novayra/storefront/internal/contact/service"
	"go.uber.org/fx"
)

var Module = fx.Module("contact.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
