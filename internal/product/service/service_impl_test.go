package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/product/domain"
	"github.com/novayra/storefront/internal/product/repository"
	"github.com/novayra/storefront/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&domain.Product{}, &domain.ProductImage{}); err != nil {
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

func validCreate() domain.CreateRequest {
	return domain.CreateRequest{
		Name:          "Midnight Rose",
		Description:   "Dark rose over smoked vanilla and patchouli.",
		Price:         129.00,
		StockQuantity: 25,
	}
}

func TestCreateDefaultsAndSlug(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.Slug != "midnight-rose" {
		t.Fatalf("expected slug midnight-rose, got %q", product.Slug)
	}
	if product.Category != "perfume" {
		t.Fatalf("expected default category perfume, got %q", product.Category)
	}
	if !product.IsActive {
		t.Fatal("new products start active")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	req := validCreate()
	req.Price = 0
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice for 0, got %v", err)
	}

	req = validCreate()
	req.Price = -5
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice for negative, got %v", err)
	}

	req = validCreate()
	req.Name = "X"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}

	req = validCreate()
	req.Description = "too short"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription, got %v", err)
	}

	req = validCreate()
	req.StockQuantity = -1
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrInvalidStock) {
		t.Fatalf("expected ErrInvalidStock, got %v", err)
	}
}

func TestCreateDuplicateNameGetsUniqueSlug(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if first.Slug == second.Slug {
		t.Fatalf("expected distinct slugs, both %q", first.Slug)
	}
}

func TestDeactivateHidesFromCatalog(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Deactivate(context.Background(), product.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.GetActive(context.Background(), product.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from the public catalog, got %v", err)
	}
	// Admins still see the row.
	if _, err := svc.AdminGet(context.Background(), product.ID); err != nil {
		t.Fatalf("admin get: %v", err)
	}

	active, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected empty catalog, got %d products", len(active))
	}
}

func TestUpdateValidatesFields(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	zero := 0.0
	if _, err := svc.Update(context.Background(), product.ID, domain.UpdateRequest{Price: &zero}); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if _, err := svc.Update(context.Background(), product.ID, domain.UpdateRequest{}); !errors.Is(err, domain.ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}

	newPrice := 149.0
	newStock := 5
	updated, err := svc.Update(context.Background(), product.ID, domain.UpdateRequest{
		Price:         &newPrice,
		StockQuantity: &newStock,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != newPrice || updated.StockQuantity != newStock {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestAddImages(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.AddImages(context.Background(), product.ID, nil); !errors.Is(err, domain.ErrNoImages) {
		t.Fatalf("expected ErrNoImages, got %v", err)
	}

	alt := "bottle front"
	images, err := svc.AddImages(context.Background(), product.ID, []domain.ImageRequest{
		{ImageURL: "https://cdn.example.com/rose-1.jpg", AltText: &alt, IsPrimary: true},
		{ImageURL: "   "}, // blank urls are skipped
		{ImageURL: "https://cdn.example.com/rose-2.jpg"},
	})
	if err != nil {
		t.Fatalf("add images: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 stored images, got %d", len(images))
	}

	got, err := svc.AdminGet(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if len(got.Images) != 2 {
		t.Fatalf("expected images on admin view, got %d", len(got.Images))
	}
}

func TestLowStock(t *testing.T) {
	svc := newTestService(t)

	low := validCreate()
	low.Name = "Nearly Gone"
	low.StockQuantity = 2
	if _, err := svc.Create(context.Background(), low); err != nil {
		t.Fatalf("create low: %v", err)
	}
	if _, err := svc.Create(context.Background(), validCreate()); err != nil {
		t.Fatalf("create stocked: %v", err)
	}

	products, err := svc.LowStock(context.Background(), 5)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Nearly Gone" {
		t.Fatalf("unexpected low stock list: %+v", products)
	}
}
