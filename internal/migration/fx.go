package migration

import (
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
	adminauthdomain "github.com/novayra/storefront/internal/adminauth/domain"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
	cartdomain "github.com/novayra/storefront/internal/cart/domain"
	"github.com/novayra/storefront/internal/config"
	contactdomain "github.com/novayra/storefront/internal/contact/domain"
	dashboarddomain "github.com/novayra/storefront/internal/dashboard/domain"
	orderdomain "github.com/novayra/storefront/internal/order/domain"
	productdomain "github.com/novayra/storefront/internal/product/domain"
	sampledomain "github.com/novayra/storefront/internal/sample/domain"
	"github.com/novayra/storefront/internal/seed"
	settingsdomain "github.com/novayra/storefront/internal/settings/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, store *config.StoreConfigHolder) error {
		// The versioned migration path is postgres only. Other dialects
		// (sqlite for local hacking, mysql) get the schema straight from
		// the models.
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&adminauthdomain.Session{},
				&productdomain.Product{},
				&productdomain.ProductImage{},
				&cartdomain.CartItem{},
				&orderdomain.Order{},
				&orderdomain.OrderItem{},
				&sampledomain.SampleRequest{},
				&contactdomain.Message{},
				&activitydomain.ActivityLog{},
				&settingsdomain.Setting{},
				&dashboarddomain.DashboardStat{},
			); err != nil {
				return err
			}
		}

		if err := seed.EnsureAdminUser(conn); err != nil {
			return err
		}
		return seed.EnsureDefaultSettings(conn, store.Get().DefaultSettings)
	}),
)
