package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/contact/domain"
	"github.com/novayra/storefront/internal/contact/repository"
	"github.com/novayra/storefront/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&domain.Message{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	return New(Params{
		Log:   zap.NewNop(),
		Clock: clock.NewFakeClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)),
		GenID: node,
		Repo:  repository.New(conn),
	})
}

func validSubmit() domain.SubmitRequest {
	return domain.SubmitRequest{
		Name:    "Asha Rao",
		Email:   "Asha@Example.com",
		Phone:   "+919876543210",
		Subject: "Wholesale enquiry",
		Message: "Do you offer wholesale pricing for retailers?",
	}
}

func TestSubmitAndList(t *testing.T) {
	svc := newTestService(t)

	msg, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if msg.Status != domain.StatusNew {
		t.Fatalf("expected new, got %s", msg.Status)
	}
	if msg.Email != "asha@example.com" {
		t.Fatalf("expected lowercased email, got %q", msg.Email)
	}

	resp, err := svc.List(context.Background(), domain.ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Total != 1 {
		t.Fatalf("unexpected listing %+v", resp)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestService(t)

	req := validSubmit()
	req.Name = "A"
	if _, err := svc.Submit(context.Background(), req); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}

	req = validSubmit()
	req.Email = "not-an-email"
	if _, err := svc.Submit(context.Background(), req); !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	req = validSubmit()
	req.Phone = "12345"
	if _, err := svc.Submit(context.Background(), req); !errors.Is(err, domain.ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}

	req = validSubmit()
	req.Subject = strings.Repeat("x", 51)
	if _, err := svc.Submit(context.Background(), req); !errors.Is(err, domain.ErrInvalidSubject) {
		t.Fatalf("expected ErrInvalidSubject, got %v", err)
	}

	req = validSubmit()
	req.Message = "too short"
	if _, err := svc.Submit(context.Background(), req); !errors.Is(err, domain.ErrInvalidMessage) {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc := newTestService(t)

	msg, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), msg.ID, "archived"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), msg.ID, domain.StatusRead); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	resp, err := svc.List(context.Background(), domain.ListRequest{Status: "read"})
	if err != nil {
		t.Fatalf("list read: %v", err)
	}
	if len(resp.Messages) != 1 {
		t.Fatalf("expected 1 read message, got %d", len(resp.Messages))
	}
}

func TestListFilterValidation(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.List(context.Background(), domain.ListRequest{Status: "bogus"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
