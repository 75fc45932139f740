package domain

import (
	"context"
	"time"

	authdomain "github.com/novayra/storefront/internal/auth/domain"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)

	// Authenticate resolves an opaque session token to the admin user
	// behind it. Expired and logged-out sessions both fail.
	Authenticate(ctx context.Context, rawToken string) (*authdomain.User, error)

	Logout(ctx context.Context, rawToken string) error
}

type LoginRequest struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User      *authdomain.User
	RawToken  string
	ExpiresAt time.Time
}
