package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
)

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Message, error)
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	UpdateStatus(ctx context.Context, id snowflake.ID, status Status) error
}

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ListRequest struct {
	pagination.Pagination
	Status string `form:"status"`
}

type ListResponse struct {
	pagination.PageInfo
	Messages []Message `json:"messages"`
}
