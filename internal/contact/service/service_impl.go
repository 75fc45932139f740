package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/contact/domain"
	"github.com/novayra/storefront/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
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
		log:   p.Log.Named("contact.service"),
		clock: p.Clock,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Message, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || len(name) > 100 {
		return nil, domain.ErrInvalidName
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, domain.ErrInvalidEmail
	}

	phone := strings.TrimSpace(req.Phone)
	if len(phone) < 10 || len(phone) > 15 {
		return nil, domain.ErrInvalidPhone
	}

	subject := strings.TrimSpace(req.Subject)
	if len(subject) < 1 || len(subject) > 50 {
		return nil, domain.ErrInvalidSubject
	}

	body := strings.TrimSpace(req.Message)
	if len(body) < 10 || len(body) > 1000 {
		return nil, domain.ErrInvalidMessage
	}

	now := s.clock.Now().UTC()
	msg := &domain.Message{
		ID:        s.genID.Generate(),
		Name:      name,
		Email:     strings.ToLower(addr.Address),
		Phone:     phone,
		Subject:   subject,
		Message:   body,
		Status:    domain.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Info("contact message received", zap.String("message_id", msg.ID.String()))
	return msg, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	page := req.Pagination.Normalize(100)

	status := domain.Status(req.Status)
	if status != "" && !domain.ValidStatus(status) {
		return domain.ListResponse{}, domain.ErrInvalidStatus
	}

	messages, total, err := s.repo.List(ctx, status, page)
	if err != nil {
		return domain.ListResponse{}, err
	}
	return domain.ListResponse{
		PageInfo: pagination.BuildPageInfo(page, total),
		Messages: messages,
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id snowflake.ID, status domain.Status) error {
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status, s.clock.Now().UTC())
}
