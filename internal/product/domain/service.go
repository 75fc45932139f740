package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
)

type Service interface {
	// Public catalog, active products only.
	ListActive(ctx context.Context) ([]Product, error)
	GetActive(ctx context.Context, id snowflake.ID) (*Product, error)
	ListActiveByCategory(ctx context.Context, category string) ([]Product, error)

	// Admin catalog management.
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Update(ctx context.Context, id snowflake.ID, req UpdateRequest) (*Product, error)
	Deactivate(ctx context.Context, id snowflake.ID) error
	AdminList(ctx context.Context, req AdminListRequest) (AdminListResponse, error)
	AdminGet(ctx context.Context, id snowflake.ID) (*Product, error)
	AddImages(ctx context.Context, id snowflake.ID, images []ImageRequest) ([]ProductImage, error)
	Stats(ctx context.Context) (Stats, error)
	LowStock(ctx context.Context, threshold int) ([]Product, error)
}

// Create and update requests bind from JSON bodies or multipart forms;
// the form path is how the admin UI submits products with an image file.
type CreateRequest struct {
	Name           string  `json:"name" form:"name"`
	Description    string  `json:"description" form:"description"`
	Price          float64 `json:"price" form:"price"`
	StockQuantity  int     `json:"stock_quantity" form:"stock_quantity"`
	ImageURL       *string `json:"image_url" form:"image_url"`
	Category       string  `json:"category" form:"category"`
	FragranceNotes *string `json:"fragrance_notes" form:"fragrance_notes"`
	BottleSize     *string `json:"bottle_size" form:"bottle_size"`
}

type UpdateRequest struct {
	Name           *string  `json:"name" form:"name"`
	Description    *string  `json:"description" form:"description"`
	Price          *float64 `json:"price" form:"price"`
	StockQuantity  *int     `json:"stock_quantity" form:"stock_quantity"`
	ImageURL       *string  `json:"image_url" form:"image_url"`
	Category       *string  `json:"category" form:"category"`
	FragranceNotes *string  `json:"fragrance_notes" form:"fragrance_notes"`
	BottleSize     *string  `json:"bottle_size" form:"bottle_size"`
	IsActive       *bool    `json:"is_active" form:"is_active"`
}

type AdminListRequest struct {
	pagination.Pagination
	Search      string   `form:"search"`
	Category    string   `form:"category"`
	StockStatus string   `form:"stockStatus"`
	MinPrice    *float64 `form:"minPrice"`
	MaxPrice    *float64 `form:"maxPrice"`
	Active      *bool    `form:"active"`
}

type AdminListResponse struct {
	pagination.PageInfo
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}

type ImageRequest struct {
	ImageURL  string  `json:"image_url"`
	AltText   *string `json:"alt_text"`
	IsPrimary bool    `json:"is_primary"`
}
