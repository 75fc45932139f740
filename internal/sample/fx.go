package sample

import (
	"github.com/novayra/storefront/internal/sample/repository"
	"github.com/novayra/storefront/internal/sample/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sample.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
