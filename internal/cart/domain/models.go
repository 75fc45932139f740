// Package domain contains shopping cart types. A cart is a set of rows
// keyed by (user, product); quantities are bounded here at the service
// boundary, not by the storage layer.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

type CartItem struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID    snowflake.ID `gorm:"column:user_id;not null;uniqueIndex:ux_cart_user_product,priority:1" json:"user_id"`
	ProductID snowflake.ID `gorm:"column:product_id;not null;uniqueIndex:ux_cart_user_product,priority:2" json:"product_id"`
	Quantity  int          `gorm:"not null" json:"quantity"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (CartItem) TableName() string { return "cart" }

// Line is a cart row joined with its live product.
type Line struct {
	ID            snowflake.ID `json:"id"`
	ProductID     snowflake.ID `json:"product_id"`
	Name          string       `json:"name"`
	Price         float64      `json:"price"`
	ImageURL      *string      `json:"image_url,omitempty"`
	StockQuantity int          `json:"stock_quantity"`
	Quantity      int          `json:"quantity"`
	Subtotal      float64      `json:"subtotal"`
}

type Cart struct {
	Items       []Line  `json:"items"`
	TotalItems  int     `json:"total_items"`
	TotalAmount float64 `json:"total_amount"`
}
