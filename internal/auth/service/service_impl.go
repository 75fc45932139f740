package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/auth/domain"
	"github.com/novayra/storefront/internal/auth/password"
	"github.com/novayra/storefront/internal/auth/token"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log    *zap.Logger
	Clock  clock.Clock
	GenID  *snowflake.Node
	Repo   domain.Repository
	Issuer *token.Issuer
}

type Service struct {
	log    *zap.Logger
	clock  clock.Clock
	genID  *snowflake.Node
	repo   domain.Repository
	issuer *token.Issuer
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("auth.service"),
		clock:  p.Clock,
		genID:  p.GenID,
		repo:   p.Repo,
		issuer: p.Issuer,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return nil, domain.ErrWeakPassword
	}
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if len(firstName) < 2 || len(lastName) < 2 {
		return nil, domain.ErrMissingName
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	user := &domain.User{
		ID:           s.genID.Generate(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		user.Phone = &phone
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// Concurrent registration with the same email races past the
		// pre-check; the unique index is the authority.
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}

	tok, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()))
	return &domain.AuthResult{User: user, Token: tok}, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil || req.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{User: user, Token: tok}, nil
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	userID, err := s.issuer.Verify(rawToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) GetProfile(ctx context.Context, userID snowflake.ID) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID snowflake.ID, req domain.UpdateProfileRequest) error {
	fields := map[string]any{}
	if req.FirstName != nil {
		if v := strings.TrimSpace(*req.FirstName); v != "" {
			fields["first_name"] = v
		}
	}
	if req.LastName != nil {
		if v := strings.TrimSpace(*req.LastName); v != "" {
			fields["last_name"] = v
		}
	}
	if req.Phone != nil {
		fields["phone"] = strings.TrimSpace(*req.Phone)
	}
	if len(fields) == 0 {
		return domain.ErrNothingToUpdate
	}

	fields["updated_at"] = s.clock.Now().UTC()
	return s.repo.UpdateFields(ctx, userID, fields)
}

func (s *Service) SaveCheckoutData(ctx context.Context, userID snowflake.ID, req domain.CheckoutDataRequest) error {
	address := strings.TrimSpace(req.Address)
	city := strings.TrimSpace(req.City)
	country := strings.TrimSpace(req.Country)
	if address == "" || city == "" || country == "" {
		return domain.ErrMissingCheckout
	}

	fields := map[string]any{
		"address":    address,
		"city":       city,
		"country":    country,
		"updated_at": s.clock.Now().UTC(),
	}
	if v := strings.TrimSpace(req.State); v != "" {
		fields["state"] = v
	}
	if v := strings.TrimSpace(req.PostalCode); v != "" {
		fields["postal_code"] = v
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		fields["phone"] = v
	}
	return s.repo.UpdateFields(ctx, userID, fields)
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(addr.Address), nil
}
