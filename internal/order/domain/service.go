package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
)

type Service interface {
	Place(ctx context.Context, userID snowflake.ID, req PlaceRequest) (*Order, error)
	ListMine(ctx context.Context, userID snowflake.ID) ([]Order, error)

	// Get returns the order when requested by its owner or an admin;
	// anyone else sees not-found.
	Get(ctx context.Context, id, requesterID snowflake.ID, isAdmin bool) (*Order, error)

	AdminList(ctx context.Context, req AdminListRequest) (AdminListResponse, error)
	AdminGet(ctx context.Context, id snowflake.ID) (*AdminOrder, error)
	UpdateStatus(ctx context.Context, id snowflake.ID, adminID snowflake.ID, req StatusUpdateRequest) (*Order, error)
	UpdatePayment(ctx context.Context, id snowflake.ID, adminID snowflake.ID, status PaymentStatus) (*Order, error)
	UpdateNotes(ctx context.Context, id snowflake.ID, adminID snowflake.ID, notes string) error
	StatsSummary(ctx context.Context) (StatsSummary, error)
	Recent(ctx context.Context, limit int) ([]AdminOrder, error)
}

type PlaceRequest struct {
	ShippingAddress    string `json:"shipping_address"`
	ShippingCity       string `json:"shipping_city"`
	ShippingState      string `json:"shipping_state"`
	ShippingPostalCode string `json:"shipping_postal_code"`
	ShippingCountry    string `json:"shipping_country"`
	PaymentMethod      string `json:"payment_method"`
	Notes              string `json:"notes"`
}

type AdminListRequest struct {
	pagination.Pagination
	Search        string `form:"search"`
	Status        string `form:"status"`
	PaymentStatus string `form:"paymentStatus"`
	DateFrom      string `form:"dateFrom"` // YYYY-MM-DD
	DateTo        string `form:"dateTo"`
}

type AdminListResponse struct {
	pagination.PageInfo
	Orders []AdminOrder `json:"orders"`
}

type StatusUpdateRequest struct {
	Status         Status  `json:"status"`
	AdminNotes     *string `json:"admin_notes"`
	TrackingNumber *string `json:"tracking_number"`
}

type StatsSummary struct {
	Stats          Stats            `json:"stats"`
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
}
