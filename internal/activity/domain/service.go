package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/pkg/db/pagination"
)

type Service interface {
	// Record writes an activity entry. Failures are logged and swallowed;
	// an activity write must never fail the operation it describes.
	Record(ctx context.Context, entry Entry)

	List(ctx context.Context, req ListRequest) (ListResponse, error)
}

type Entry struct {
	UserID     *snowflake.ID
	Action     string
	EntityType string
	EntityID   string
	Details    map[string]any
}

type ListRequest struct {
	pagination.Pagination
	Action string
	UserID *snowflake.ID
}

type ListResponse struct {
	pagination.PageInfo
	Logs []ActivityLog `json:"logs"`
}

var ErrInvalidAction = errors.New("invalid_action")
