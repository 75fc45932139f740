package db

import (
	"context"
	"time"

	"github.com/novayra/storefront/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormprom "gorm.io/plugin/prometheus"
)

// Module provides the shared gorm handle with a bounded connection pool.
var Module = fx.Module("db",
	fx.Provide(Open),
	fx.Invoke(registerLifecycle),
)

func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := conn.Use(otelgorm.NewPlugin(otelgorm.WithDBName(cfg.DBName))); err != nil {
		return nil, err
	}
	if err := conn.Use(gormprom.New(gormprom.Config{
		DBName:          cfg.DBName,
		RefreshInterval: 15,
	})); err != nil {
		log.Warn("failed to register db metrics plugin", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTime) * time.Second)

	return conn, nil
}

func registerLifecycle(lc fx.Lifecycle, conn *gorm.DB, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := sqlDB.PingContext(ctx); err != nil {
				return err
			}
			log.Info("database connected")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}
