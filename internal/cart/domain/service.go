package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Get(ctx context.Context, userID snowflake.ID) (Cart, error)
	Add(ctx context.Context, userID, productID snowflake.ID, quantity int) (Cart, error)
	UpdateItem(ctx context.Context, userID, itemID snowflake.ID, quantity int) (Cart, error)
	RemoveItem(ctx context.Context, userID, itemID snowflake.ID) (Cart, error)
	Clear(ctx context.Context, userID snowflake.ID) error
}
