package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
)

type ListFilter struct {
	Action string
	UserID *snowflake.ID
}

type Repository interface {
	Insert(ctx context.Context, entry *ActivityLog) error
	List(ctx context.Context, filter ListFilter, page pagination.Pagination) ([]ActivityLog, int64, error)
}
