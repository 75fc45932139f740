package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListFilter struct {
	Search        string
	Status        Status
	PaymentStatus PaymentStatus
	DateFrom      *time.Time
	DateTo        *time.Time
}

// Repository methods that participate in the placement transaction take
// the handle explicitly so the service can run them on one tx.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	InsertItems(ctx context.Context, db *gorm.DB, items []OrderItem) error

	// DecrementStock subtracts qty only when enough stock remains and
	// returns the number of rows updated. Zero means the guard fired.
	DecrementStock(ctx context.Context, db *gorm.DB, productID snowflake.ID, qty int) (int64, error)

	StockQuantity(ctx context.Context, db *gorm.DB, productID snowflake.ID) (int, error)
	ClearCart(ctx context.Context, db *gorm.DB, userID snowflake.ID) error

	FindByID(ctx context.Context, id snowflake.ID) (*Order, error)
	FindAdminByID(ctx context.Context, id snowflake.ID) (*AdminOrder, error)
	ListByUser(ctx context.Context, userID snowflake.ID) ([]Order, error)
	AdminList(ctx context.Context, filter ListFilter, page pagination.Pagination) ([]AdminOrder, int64, error)
	Recent(ctx context.Context, limit int) ([]AdminOrder, error)
	UpdateFields(ctx context.Context, id snowflake.ID, fields map[string]any) error
	Stats(ctx context.Context) (Stats, error)
	RevenueRows(ctx context.Context, since time.Time) ([]RevenueRow, error)
}

// RevenueRow is a raw (created_at, total) pair; monthly bucketing happens
// in the service so the query stays portable across dialects.
type RevenueRow struct {
	CreatedAt   time.Time
	TotalAmount float64
}
