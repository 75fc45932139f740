package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
	"github.com/novayra/storefront/internal/clock"
	productdomain "github.com/novayra/storefront/internal/product/domain"
	"github.com/novayra/storefront/internal/sample/domain"
	"github.com/novayra/storefront/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Clock    clock.Clock
	GenID    *snowflake.Node
	Repo     domain.Repository
	Products productdomain.Repository
	Activity activitydomain.Service
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	genID    *snowflake.Node
	repo     domain.Repository
	products productdomain.Repository
	activity activitydomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("sample.service"),
		clock:    p.Clock,
		genID:    p.GenID,
		repo:     p.Repo,
		products: p.Products,
		activity: p.Activity,
	}
}

func (s *Service) Request(ctx context.Context, userID *snowflake.ID, req domain.CreateRequest) (*domain.SampleRequest, error) {
	if !domain.ValidSize(req.SampleSize) {
		return nil, domain.ErrInvalidSize
	}

	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.CustomerPhone)
	address := strings.TrimSpace(req.ShippingAddress)
	city := strings.TrimSpace(req.ShippingCity)
	state := strings.TrimSpace(req.ShippingState)
	postalCode := strings.TrimSpace(req.ShippingPostalCode)
	if len(name) < 2 || phone == "" || address == "" || city == "" || state == "" || postalCode == "" {
		return nil, domain.ErrInvalidRequest
	}

	email, err := mail.ParseAddress(strings.TrimSpace(req.CustomerEmail))
	if err != nil {
		return nil, domain.ErrInvalidRequest
	}

	if _, err := s.products.FindActiveByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	if userID != nil {
		open, err := s.repo.HasOpenRequest(ctx, *userID, req.ProductID)
		if err != nil {
			return nil, err
		}
		if open {
			return nil, domain.ErrDuplicateRequest
		}
	}

	now := s.clock.Now().UTC()
	request := &domain.SampleRequest{
		ID:                 s.genID.Generate(),
		UserID:             userID,
		ProductID:          req.ProductID,
		CustomerName:       name,
		CustomerEmail:      strings.ToLower(email.Address),
		CustomerPhone:      phone,
		SampleSize:         req.SampleSize,
		ShippingAddress:    address,
		ShippingCity:       city,
		ShippingState:      state,
		ShippingPostalCode: postalCode,
		Status:             domain.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Insert(ctx, request); err != nil {
		return nil, err
	}

	s.log.Info("sample requested",
		zap.String("request_id", request.ID.String()),
		zap.String("size", request.SampleSize),
	)
	return request, nil
}

func (s *Service) ListMine(ctx context.Context, userID snowflake.ID) ([]domain.View, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) AdminList(ctx context.Context, req domain.AdminListRequest) (domain.AdminListResponse, error) {
	page := req.Pagination.Normalize(100)

	status := domain.Status(req.Status)
	if status != "" && !domain.ValidStatus(status) {
		return domain.AdminListResponse{}, domain.ErrInvalidStatus
	}

	views, total, err := s.repo.List(ctx, status, page)
	if err != nil {
		return domain.AdminListResponse{}, err
	}
	return domain.AdminListResponse{
		PageInfo: pagination.BuildPageInfo(page, total),
		Requests: views,
	}, nil
}

func (s *Service) AdminGet(ctx context.Context, id snowflake.ID) (*domain.View, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id snowflake.ID, adminID snowflake.ID, req domain.StatusUpdateRequest) error {
	if !domain.ValidStatus(req.Status) {
		return domain.ErrInvalidStatus
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var notes *string
	if req.AdminNotes != nil {
		trimmed := strings.TrimSpace(*req.AdminNotes)
		notes = &trimmed
	}
	if err := s.repo.UpdateStatus(ctx, id, req.Status, notes, s.clock.Now().UTC()); err != nil {
		return err
	}

	s.activity.Record(ctx, activitydomain.Entry{
		UserID:     &adminID,
		Action:     "UPDATE_SAMPLE_STATUS",
		EntityType: "sample_requests",
		EntityID:   id.String(),
		Details: map[string]any{
			"old_status": string(existing.Status),
			"new_status": string(req.Status),
		},
	})
	return nil
}

func (s *Service) StatsOverview(ctx context.Context) (domain.StatsOverview, error) {
	statusStats, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return domain.StatsOverview{}, err
	}

	recent, err := s.repo.CountSince(ctx, s.clock.Now().UTC().Add(-7*24*time.Hour))
	if err != nil {
		return domain.StatsOverview{}, err
	}

	popular, err := s.repo.PopularProducts(ctx, 5)
	if err != nil {
		return domain.StatsOverview{}, err
	}

	return domain.StatsOverview{
		StatusStats:     statusStats,
		RecentRequests:  recent,
		PopularProducts: popular,
	}, nil
}
