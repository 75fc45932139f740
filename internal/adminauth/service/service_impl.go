package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/adminauth/domain"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
	"github.com/novayra/storefront/internal/auth/password"
	"github.com/novayra/storefront/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const sessionTTL = 24 * time.Hour

type Params struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
	Repo  domain.Repository
	Users authdomain.Repository
}

type Service struct {
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	repo  domain.Repository
	users authdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("adminauth.service"),
		clock: p.Clock,
		genID: p.GenID,
		repo:  p.Repo,
		users: p.Users,
	}
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, authdomain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, authdomain.ErrUserNotFound) {
		return nil, authdomain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// A non-admin account fails exactly like a wrong password so the
	// login endpoint does not reveal which accounts have admin access.
	if !user.IsAdmin || !password.Verify(req.Password, user.PasswordHash) {
		return nil, authdomain.ErrInvalidCredentials
	}

	rawToken, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	session := &domain.Session{
		ID:         s.genID.Generate(),
		UserID:     user.ID,
		TokenHash:  hashToken(rawToken),
		IPAddress:  strings.TrimSpace(req.IPAddress),
		UserAgent:  strings.TrimSpace(req.UserAgent),
		ExpiresAt:  now.Add(sessionTTL),
		CreatedAt:  now,
		LastSeenAt: now,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("admin login",
		zap.String("user_id", user.ID.String()),
		zap.String("ip", session.IPAddress),
	)

	return &domain.LoginResult{
		User:      user,
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *Service) Authenticate(ctx context.Context, rawToken string) (*authdomain.User, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.repo.FindByTokenHash(ctx, hashToken(token))
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, domain.ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	if now.After(session.ExpiresAt) {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if errors.Is(err, authdomain.ErrUserNotFound) {
		return nil, domain.ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, domain.ErrInvalidSession
	}

	if err := s.repo.UpdateLastSeen(ctx, session.ID, now); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return domain.ErrInvalidSession
	}

	session, err := s.repo.FindByTokenHash(ctx, hashToken(token))
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.ErrInvalidSession
	}
	if err != nil {
		return err
	}

	// Sessions are deleted, not flagged. A logged-out token can never
	// authenticate again even if the row cleanup job lags.
	return s.repo.DeleteSession(ctx, session.ID)
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
