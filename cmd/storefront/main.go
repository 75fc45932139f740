package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/config"
	"github.com/novayra/storefront/internal/migration"
	"github.com/novayra/storefront/internal/server"
	"github.com/novayra/storefront/pkg/db"
	"github.com/novayra/storefront/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Schema and seed data before anything serves traffic
		migration.Module,

		// HTTP boundary; pulls in every domain module
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
