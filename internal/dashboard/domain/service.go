package domain

import (
	"context"

	orderdomain "github.com/novayra/storefront/internal/order/domain"
	productdomain "github.com/novayra/storefront/internal/product/domain"
)

type Service interface {
	// Stats recomputes every dashboard aggregate and persists the
	// snapshot before returning it.
	Stats(ctx context.Context) (map[string]StatValue, error)

	RecentActivity(ctx context.Context, limit int) ([]ActivityView, error)
	RecentOrders(ctx context.Context, limit int) ([]orderdomain.AdminOrder, error)
	LowStock(ctx context.Context, threshold int) ([]productdomain.Product, error)
}
