// Package domain contains the perfume catalog types.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Product struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	Name           string       `gorm:"type:text;not null" json:"name"`
	Slug           string       `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Description    string       `gorm:"type:text;not null" json:"description"`
	Price          float64      `gorm:"type:numeric;not null" json:"price"`
	StockQuantity  int          `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	ImageURL       *string      `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	Category       string       `gorm:"type:text;not null;default:'perfume'" json:"category"`
	FragranceNotes *string      `gorm:"column:fragrance_notes;type:text" json:"fragrance_notes,omitempty"`
	BottleSize     *string      `gorm:"column:bottle_size;type:text" json:"bottle_size,omitempty"`
	IsActive       bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

func (Product) TableName() string { return "products" }

type ProductImage struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	ProductID snowflake.ID `gorm:"column:product_id;not null;index" json:"product_id"`
	ImageURL  string       `gorm:"column:image_url;type:text;not null" json:"image_url"`
	AltText   *string      `gorm:"column:alt_text;type:text" json:"alt_text,omitempty"`
	IsPrimary bool         `gorm:"column:is_primary;not null;default:false" json:"is_primary"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ProductImage) TableName() string { return "product_images" }

// Stats summarizes the catalog for the admin dashboard.
type Stats struct {
	TotalProducts  int64   `json:"total_products"`
	ActiveProducts int64   `json:"active_products"`
	LowStock       int64   `json:"low_stock"`
	OutOfStock     int64   `json:"out_of_stock"`
	InventoryValue float64 `json:"inventory_value"`
}
