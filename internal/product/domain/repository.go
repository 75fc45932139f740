package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
)

// ListFilter is an explicit filter struct; repository implementations bind
// every field as a parameter, never by building SQL from strings.
type ListFilter struct {
	Search      string
	Category    string
	Active      *bool
	StockStatus string // in_stock, out_of_stock, low_stock
	MinPrice    *float64
	MaxPrice    *float64
}

type Repository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id snowflake.ID) (*Product, error)
	FindActiveByID(ctx context.Context, id snowflake.ID) (*Product, error)
	ListActive(ctx context.Context) ([]Product, error)
	ListActiveByCategory(ctx context.Context, category string) ([]Product, error)
	List(ctx context.Context, filter ListFilter, page pagination.Pagination) ([]Product, int64, error)
	Categories(ctx context.Context) ([]string, error)
	UpdateFields(ctx context.Context, id snowflake.ID, fields map[string]any) error
	AddImage(ctx context.Context, image *ProductImage) error
	ListImages(ctx context.Context, productID snowflake.ID) ([]ProductImage, error)
	Stats(ctx context.Context, lowStockThreshold int) (Stats, error)
	LowStock(ctx context.Context, threshold int) ([]Product, error)
}
