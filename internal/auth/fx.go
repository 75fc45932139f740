package auth

import (
	"github.com/novayra/storefront/internal/auth/repository"
	"github.com/novayra/storefront/internal/auth/service"
	"github.com/novayra/storefront/internal/auth/token"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(func(cfg config.Config, clk clock.Clock) *token.Issuer {
		return token.NewIssuer(cfg.JWTSecret, clk)
	}),
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
