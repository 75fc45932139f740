package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/auth/domain"
	"github.com/novayra/storefront/internal/auth/repository"
	"github.com/novayra/storefront/internal/auth/token"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	fc := clock.NewFakeClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	return New(Params{
		Log:    zap.NewNop(),
		Clock:  fc,
		GenID:  node,
		Repo:   repository.New(conn),
		Issuer: token.NewIssuer("test-secret", fc),
	})
}

func validRegistration() domain.RegisterRequest {
	return domain.RegisterRequest{
		Email:     "alice@example.com",
		Password:  "hunter22",
		FirstName: "Alice",
		LastName:  "Verma",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User.IsAdmin {
		t.Fatal("self-registered accounts must not be admin")
	}

	user, err := svc.Authenticate(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != result.User.ID {
		t.Fatalf("token resolved to wrong user: %s vs %s", user.ID, result.User.ID)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := newTestService(t)

	req := validRegistration()
	req.Email = "  Alice@Example.COM "
	result, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", result.User.Email)
	}

	// Same address in a different case is still a duplicate.
	req.Email = "ALICE@example.com"
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)

	req := validRegistration()
	req.Email = "not-an-email"
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	req = validRegistration()
	req.Password = "short"
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}

	req = validRegistration()
	req.FirstName = "A"
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, domain.ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Unknown accounts fail identically.
	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Authenticate(context.Background(), "not.a.jwt"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.UpdateProfile(context.Background(), result.User.ID, domain.UpdateProfileRequest{}); !errors.Is(err, domain.ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}

	newName := "Alicia"
	phone := "+91 98765 43210"
	err = svc.UpdateProfile(context.Background(), result.User.ID, domain.UpdateProfileRequest{
		FirstName: &newName,
		Phone:     &phone,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	user, err := svc.GetProfile(context.Background(), result.User.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if user.FirstName != newName || user.Phone == nil || *user.Phone != phone {
		t.Fatalf("profile not updated: %+v", user)
	}
}

func TestSaveCheckoutData(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	err = svc.SaveCheckoutData(context.Background(), result.User.ID, domain.CheckoutDataRequest{City: "Mumbai"})
	if !errors.Is(err, domain.ErrMissingCheckout) {
		t.Fatalf("expected ErrMissingCheckout, got %v", err)
	}

	err = svc.SaveCheckoutData(context.Background(), result.User.ID, domain.CheckoutDataRequest{
		Address:    "42 Jasmine Avenue",
		City:       "Mumbai",
		State:      "MH",
		PostalCode: "400001",
		Country:    "India",
	})
	if err != nil {
		t.Fatalf("save checkout data: %v", err)
	}

	user, err := svc.GetProfile(context.Background(), result.User.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if user.Address == nil || *user.Address != "42 Jasmine Avenue" || user.City == nil || *user.City != "Mumbai" {
		t.Fatalf("checkout defaults not saved: %+v", user)
	}
}
