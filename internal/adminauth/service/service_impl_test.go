package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/adminauth/domain"
	"github.com/novayra/storefront/internal/adminauth/repository"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
	"github.com/novayra/storefront/internal/auth/password"
	authrepo "github.com/novayra/storefront/internal/auth/repository"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupAdminAuth(t *testing.T) (domain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&authdomain.User{}, &domain.Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	fc := clock.NewFakeClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

	svc := New(Params{
		Log:   zap.NewNop(),
		Clock: fc,
		GenID: node,
		Repo:  repository.New(conn),
		Users: authrepo.New(conn),
	})
	return svc, conn, fc
}

func seedAccount(t *testing.T, conn *gorm.DB, email, plaintext string, isAdmin bool) {
	t.Helper()

	hash, err := password.Hash(plaintext)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	user := authdomain.User{
		ID:           node.Generate(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Seed",
		LastName:     "Account",
		IsAdmin:      isAdmin,
	}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
}

func TestAdminLoginAndAuthenticate(t *testing.T) {
	svc, conn, _ := setupAdminAuth(t)
	seedAccount(t, conn, "admin@novayra.com", "admin123", true)

	result, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:     "admin@novayra.com",
		Password:  "admin123",
		IPAddress: "203.0.113.7",
		UserAgent: "test-agent",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.RawToken == "" {
		t.Fatal("expected a session token")
	}

	// Only the hash is stored.
	var stored int64
	if err := conn.Model(&domain.Session{}).Where("token_hash = ?", result.RawToken).Count(&stored).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if stored != 0 {
		t.Fatal("raw token must never be persisted")
	}

	user, err := svc.Authenticate(context.Background(), result.RawToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Email != "admin@novayra.com" {
		t.Fatalf("wrong user %q", user.Email)
	}
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	svc, conn, _ := setupAdminAuth(t)
	seedAccount(t, conn, "shopper@example.com", "password1", false)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "shopper@example.com",
		Password: "password1",
	})
	if !errors.Is(err, authdomain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	svc, conn, fc := setupAdminAuth(t)
	seedAccount(t, conn, "admin@novayra.com", "admin123", true)

	result, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@novayra.com",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	fc.Advance(23 * time.Hour)
	if _, err := svc.Authenticate(context.Background(), result.RawToken); err != nil {
		t.Fatalf("session should still be live at 23h: %v", err)
	}

	fc.Advance(2 * time.Hour)
	if _, err := svc.Authenticate(context.Background(), result.RawToken); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, conn, _ := setupAdminAuth(t)
	seedAccount(t, conn, "admin@novayra.com", "admin123", true)

	result, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@novayra.com",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), result.RawToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), result.RawToken); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after logout, got %v", err)
	}
	if err := svc.Logout(context.Background(), result.RawToken); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession on double logout, got %v", err)
	}
}

func TestAuthenticateRejectsUnknownToken(t *testing.T) {
	svc, _, _ := setupAdminAuth(t)

	if _, err := svc.Authenticate(context.Background(), "deadbeef"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), ""); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for empty token, got %v", err)
	}
}
