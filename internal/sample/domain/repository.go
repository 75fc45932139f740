package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
)

type Repository interface {
	Insert(ctx context.Context, req *SampleRequest) error
	FindByID(ctx context.Context, id snowflake.ID) (*View, error)
	HasOpenRequest(ctx context.Context, userID, productID snowflake.ID) (bool, error)
	ListByUser(ctx context.Context, userID snowflake.ID) ([]View, error)
	List(ctx context.Context, status Status, page pagination.Pagination) ([]View, int64, error)
	UpdateStatus(ctx context.Context, id snowflake.ID, status Status, adminNotes *string, now time.Time) error
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	PopularProducts(ctx context.Context, limit int) ([]PopularProduct, error)
}
