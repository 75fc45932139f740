package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
)

type Repository interface {
	Insert(ctx context.Context, msg *Message) error
	List(ctx context.Context, status Status, page pagination.Pagination) ([]Message, int64, error)
	UpdateStatus(ctx context.Context, id snowflake.ID, status Status, now time.Time) error
	CountNew(ctx context.Context) (int64, error)
}
