package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	FindItem(ctx context.Context, userID, productID snowflake.ID) (*CartItem, error)
	FindItemByID(ctx context.Context, userID, itemID snowflake.ID) (*CartItem, error)
	Insert(ctx context.Context, item *CartItem) error
	UpdateQuantity(ctx context.Context, itemID snowflake.ID, quantity int) error
	Delete(ctx context.Context, itemID snowflake.ID) error
	DeleteAll(ctx context.Context, userID snowflake.ID) error

	// ListLines joins cart rows with active products only; rows whose
	// product was deactivated since being added simply drop out.
	ListLines(ctx context.Context, userID snowflake.ID) ([]Line, error)
}
