package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
)

type Service interface {
	// Request accepts both logged-in and anonymous callers; userID is nil
	// for the latter. Logged-in users get one open request per product.
	Request(ctx context.Context, userID *snowflake.ID, req CreateRequest) (*SampleRequest, error)

	ListMine(ctx context.Context, userID snowflake.ID) ([]View, error)
	AdminList(ctx context.Context, req AdminListRequest) (AdminListResponse, error)
	AdminGet(ctx context.Context, id snowflake.ID) (*View, error)
	UpdateStatus(ctx context.Context, id snowflake.ID, adminID snowflake.ID, req StatusUpdateRequest) error
	StatsOverview(ctx context.Context) (StatsOverview, error)
}

type CreateRequest struct {
	ProductID          snowflake.ID `json:"product_id"`
	CustomerName       string       `json:"customer_name"`
	CustomerEmail      string       `json:"customer_email"`
	CustomerPhone      string       `json:"customer_phone"`
	SampleSize         string       `json:"sample_size"`
	ShippingAddress    string       `json:"shipping_address"`
	ShippingCity       string       `json:"shipping_city"`
	ShippingState      string       `json:"shipping_state"`
	ShippingPostalCode string       `json:"shipping_postal_code"`
}

type AdminListRequest struct {
	pagination.Pagination
	Status string `form:"status"`
}

type AdminListResponse struct {
	pagination.PageInfo
	Requests []View `json:"requests"`
}

type StatusUpdateRequest struct {
	Status     Status  `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}
