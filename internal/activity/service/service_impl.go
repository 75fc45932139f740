package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/activity/domain"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/reqcontext"
	"github.com/novayra/storefront/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("activity.service"),
		clock: p.Clock,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Record(ctx context.Context, entry domain.Entry) {
	action := strings.TrimSpace(entry.Action)
	if action == "" {
		return
	}

	details := datatypes.JSONMap{}
	for key, value := range entry.Details {
		if key == "" {
			continue
		}
		details[key] = value
	}
	if requestID := reqcontext.RequestIDFromContext(ctx); requestID != "" {
		details["request_id"] = requestID
	}

	row := domain.ActivityLog{
		ID:        s.genID.Generate(),
		UserID:    entry.UserID,
		Action:    action,
		Details:   details,
		CreatedAt: s.clock.Now().UTC(),
	}
	if v := strings.TrimSpace(entry.EntityType); v != "" {
		row.EntityType = &v
	}
	if v := strings.TrimSpace(entry.EntityID); v != "" {
		row.EntityID = &v
	}
	if ip := reqcontext.IPAddressFromContext(ctx); ip != "" {
		row.IPAddress = &ip
	}
	if ua := reqcontext.UserAgentFromContext(ctx); ua != "" {
		row.UserAgent = &ua
	}

	if err := s.repo.Insert(ctx, &row); err != nil {
		s.log.Warn("failed to write activity log", zap.String("action", action), zap.Error(err))
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	page := req.Pagination.Normalize(100)

	logs, total, err := s.repo.List(ctx, domain.ListFilter{
		Action: req.Action,
		UserID: req.UserID,
	}, page)
	if err != nil {
		return domain.ListResponse{}, err
	}

	return domain.ListResponse{
		PageInfo: pagination.BuildPageInfo(page, total),
		Logs:     logs,
	}, nil
}
