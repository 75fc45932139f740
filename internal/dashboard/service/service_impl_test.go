package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/config"
	contactdomain "github.com/novayra/storefront/internal/contact/domain"
	contactrepo "github.com/novayra/storefront/internal/contact/repository"
	"github.com/novayra/storefront/internal/dashboard/domain"
	"github.com/novayra/storefront/internal/dashboard/repository"
	orderdomain "github.com/novayra/storefront/internal/order/domain"
	orderrepo "github.com/novayra/storefront/internal/order/repository"
	productdomain "github.com/novayra/storefront/internal/product/domain"
	productrepo "github.com/novayra/storefront/internal/product/repository"
	sampledomain "github.com/novayra/storefront/internal/sample/domain"
	samplerepo "github.com/novayra/storefront/internal/sample/repository"
	"github.com/novayra/storefront/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDashboard(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = conn.AutoMigrate(
		&authdomain.User{},
		&productdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&contactdomain.Message{},
		&sampledomain.SampleRequest{},
		&activitydomain.ActivityLog{},
		&domain.DashboardStat{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	holder, err := config.NewStoreConfigHolder()
	if err != nil {
		t.Fatalf("store config: %v", err)
	}

	svc := New(Params{
		Log:      zap.NewNop(),
		Clock:    clock.NewFakeClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)),
		Store:    holder,
		Repo:     repository.New(conn),
		Orders:   orderrepo.New(conn),
		Products: productrepo.New(conn),
		Contacts: contactrepo.New(conn),
		Samples:  samplerepo.New(conn),
	})
	return svc, conn, node
}

func TestStatsAggregatesAcrossDomains(t *testing.T) {
	svc, conn, node := setupDashboard(t)

	userID := node.Generate()
	conn.Create(&authdomain.User{ID: userID, Email: "buyer@example.com", PasswordHash: "x", FirstName: "Test", LastName: "Buyer"})

	conn.Create(&productdomain.Product{
		ID: node.Generate(), Name: "Stocked", Slug: "stocked",
		Description: "plenty in the warehouse", Price: 100, StockQuantity: 50,
		Category: "perfume", IsActive: true,
	})
	conn.Create(&productdomain.Product{
		ID: node.Generate(), Name: "Scarce", Slug: "scarce",
		Description: "nearly sold out", Price: 80, StockQuantity: 2,
		Category: "perfume", IsActive: true,
	})

	for i, status := range []orderdomain.Status{orderdomain.StatusPending, orderdomain.StatusPending, orderdomain.StatusDelivered} {
		conn.Create(&orderdomain.Order{
			ID: node.Generate(), UserID: userID,
			OrderNumber: "NOV-TEST-" + string(rune('A'+i)), TotalAmount: 100,
			Status: status, PaymentStatus: orderdomain.PaymentPending, PaymentMethod: "cod",
			ShippingAddress: "42 Jasmine Avenue", ShippingCity: "Mumbai",
			ShippingState: "MH", ShippingPostalCode: "400001", ShippingCountry: "India",
		})
	}

	conn.Create(&contactdomain.Message{
		ID: node.Generate(), Name: "Asha", Email: "asha@example.com",
		Phone: "+919876543210", Subject: "Hi", Message: "wholesale enquiry please",
		Status: contactdomain.StatusNew,
	})
	conn.Create(&sampledomain.SampleRequest{
		ID: node.Generate(), ProductID: node.Generate(),
		CustomerName: "Asha", CustomerEmail: "asha@example.com", CustomerPhone: "+919876543210",
		SampleSize: "5ml", ShippingAddress: "42 Jasmine Avenue", ShippingCity: "Mumbai",
		ShippingState: "MH", ShippingPostalCode: "400001",
		Status: sampledomain.StatusPending,
	})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	checks := map[string]float64{
		"total_orders":       3,
		"total_revenue":      300,
		"total_products":     2,
		"pending_orders":     2,
		"low_stock_products": 1,
		"new_contacts":       1,
		"pending_samples":    1,
	}
	for name, want := range checks {
		got, ok := stats[name]
		if !ok {
			t.Fatalf("stat %q missing", name)
		}
		if got.Value != want {
			t.Fatalf("stat %q = %f, want %f", name, got.Value, want)
		}
	}

	// Every served stat is snapshotted by name.
	var rows int64
	if err := conn.Model(&domain.DashboardStat{}).Count(&rows).Error; err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if rows != int64(len(stats)) {
		t.Fatalf("expected %d snapshot rows, got %d", len(stats), rows)
	}

	// A second fetch overwrites in place instead of growing the table.
	if _, err := svc.Stats(context.Background()); err != nil {
		t.Fatalf("second stats: %v", err)
	}
	if err := conn.Model(&domain.DashboardStat{}).Count(&rows).Error; err != nil {
		t.Fatalf("recount snapshots: %v", err)
	}
	if rows != int64(len(stats)) {
		t.Fatalf("snapshot table grew to %d rows", rows)
	}
}

func TestRecentActivityJoinsActor(t *testing.T) {
	svc, conn, node := setupDashboard(t)

	adminID := node.Generate()
	conn.Create(&authdomain.User{ID: adminID, Email: "admin@novayra.com", PasswordHash: "x", FirstName: "Novayra", LastName: "Admin", IsAdmin: true})
	conn.Create(&activitydomain.ActivityLog{ID: node.Generate(), UserID: &adminID, Action: "CREATE_PRODUCT"})

	views, err := svc.RecentActivity(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent activity: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(views))
	}
	if views[0].FirstName != "Novayra" || views[0].Action != "CREATE_PRODUCT" {
		t.Fatalf("unexpected view %+v", views[0])
	}
}

func TestLowStockUsesConfiguredThreshold(t *testing.T) {
	svc, conn, node := setupDashboard(t)

	conn.Create(&productdomain.Product{
		ID: node.Generate(), Name: "Scarce", Slug: "scarce",
		Description: "nearly sold out", Price: 80, StockQuantity: 2,
		Category: "perfume", IsActive: true,
	})
	conn.Create(&productdomain.Product{
		ID: node.Generate(), Name: "Stocked", Slug: "stocked",
		Description: "plenty in the warehouse", Price: 100, StockQuantity: 50,
		Category: "perfume", IsActive: true,
	})

	// threshold <= 0 falls back to the store config default (10)
	products, err := svc.LowStock(context.Background(), 0)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Scarce" {
		t.Fatalf("unexpected low stock %+v", products)
	}

	products, err = svc.LowStock(context.Background(), 100)
	if err != nil {
		t.Fatalf("low stock wide: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected both products under threshold 100, got %d", len(products))
	}
}
