package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
	activityrepo "github.com/novayra/storefront/internal/activity/repository"
	activityservice "github.com/novayra/storefront/internal/activity/service"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
	cartdomain "github.com/novayra/storefront/internal/cart/domain"
	cartrepo "github.com/novayra/storefront/internal/cart/repository"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/order/domain"
	"github.com/novayra/storefront/internal/order/repository"
	productdomain "github.com/novayra/storefront/internal/product/domain"
	"github.com/novayra/storefront/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupOrderService(t *testing.T) (domain.Service, *gorm.DB, *clock.FakeClock, *snowflake.Node) {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = conn.AutoMigrate(
		&authdomain.User{},
		&productdomain.Product{},
		&cartdomain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&activitydomain.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	fc := clock.NewFakeClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

	activitySvc := activityservice.New(activityservice.Params{
		Log:   zap.NewNop(),
		Clock: fc,
		GenID: node,
		Repo:  activityrepo.New(conn),
	})

	svc := New(Params{
		DB:       conn,
		Log:      zap.NewNop(),
		Clock:    fc,
		GenID:    node,
		Repo:     repository.New(conn),
		Cart:     cartrepo.New(conn),
		Activity: activitySvc,
	})
	return svc, conn, fc, node
}

func seedUser(t *testing.T, conn *gorm.DB, node *snowflake.Node, email string) snowflake.ID {
	t.Helper()
	user := authdomain.User{
		ID:           node.Generate(),
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "Shopper",
	}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func seedProduct(t *testing.T, conn *gorm.DB, node *snowflake.Node, name string, price float64, stock int) snowflake.ID {
	t.Helper()
	product := productdomain.Product{
		ID:            node.Generate(),
		Name:          name,
		Slug:          strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Description:   "a fragrance for testing",
		Price:         price,
		StockQuantity: stock,
		Category:      "perfume",
		IsActive:      true,
	}
	if err := conn.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product.ID
}

func seedCartItem(t *testing.T, conn *gorm.DB, node *snowflake.Node, userID, productID snowflake.ID, qty int) {
	t.Helper()
	item := cartdomain.CartItem{
		ID:        node.Generate(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}
	if err := conn.Create(&item).Error; err != nil {
		t.Fatalf("seed cart item: %v", err)
	}
}

func validShipping() domain.PlaceRequest {
	return domain.PlaceRequest{
		ShippingAddress:    "42 Jasmine Avenue, Flat 3",
		ShippingCity:       "Mumbai",
		ShippingState:      "MH",
		ShippingPostalCode: "400001",
		PaymentMethod:      "cod",
	}
}

func TestPlaceOrderTotalsAndClearsCart(t *testing.T) {
	svc, conn, _, node := setupOrderService(t)
	userID := seedUser(t, conn, node, "buyer@example.com")
	rose := seedProduct(t, conn, node, "Midnight Rose", 120.50, 10)
	oud := seedProduct(t, conn, node, "Amber Oud", 89.99, 5)
	seedCartItem(t, conn, node, userID, rose, 2)
	seedCartItem(t, conn, node, userID, oud, 1)

	order, err := svc.Place(context.Background(), userID, validShipping())
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	var sum float64
	for _, item := range order.Items {
		if item.Subtotal != item.ProductPrice*float64(item.Quantity) {
			t.Fatalf("item subtotal %f != price*qty", item.Subtotal)
		}
		sum += item.Subtotal
	}
	if order.TotalAmount != sum {
		t.Fatalf("total %f != sum of subtotals %f", order.TotalAmount, sum)
	}
	if order.Status != domain.StatusPending || order.PaymentStatus != domain.PaymentPending {
		t.Fatalf("new order should be pending/pending, got %s/%s", order.Status, order.PaymentStatus)
	}
	if !strings.HasPrefix(order.OrderNumber, "NOV-") {
		t.Fatalf("unexpected order number %q", order.OrderNumber)
	}
	if order.ShippingCountry != "India" {
		t.Fatalf("expected default country, got %q", order.ShippingCountry)
	}

	var cartRows int64
	if err := conn.Model(&cartdomain.CartItem{}).Where("user_id = ?", userID).Count(&cartRows).Error; err != nil {
		t.Fatalf("count cart: %v", err)
	}
	if cartRows != 0 {
		t.Fatalf("cart should be empty after placement, got %d rows", cartRows)
	}

	var stock int
	if err := conn.Raw("SELECT stock_quantity FROM products WHERE id = ?", rose).Scan(&stock).Error; err != nil {
		t.Fatalf("read stock: %v", err)
	}
	if stock != 8 {
		t.Fatalf("expected stock 8 after selling 2 of 10, got %d", stock)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, conn, _, node := setupOrderService(t)
	userID := seedUser(t, conn, node, "buyer@example.com")

	req := validShipping()
	req.ShippingAddress = "too short"
	if _, err := svc.Place(context.Background(), userID, req); !errors.Is(err, domain.ErrInvalidShipping) {
		t.Fatalf("expected ErrInvalidShipping, got %v", err)
	}

	req = validShipping()
	req.PaymentMethod = "cheque"
	if _, err := svc.Place(context.Background(), userID, req); !errors.Is(err, domain.ErrInvalidPayment) {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}

	if _, err := svc.Place(context.Background(), userID, validShipping()); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlaceOrderRejectsOversizedLine(t *testing.T) {
	svc, conn, _, node := setupOrderService(t)
	userID := seedUser(t, conn, node, "buyer@example.com")
	productID := seedProduct(t, conn, node, "Vetiver Noir", 75, 2)
	seedCartItem(t, conn, node, userID, productID, 3)

	_, err := svc.Place(context.Background(), userID, validShipping())
	var oos *domain.OutOfStockError
	if !errors.As(err, &oos) {
		t.Fatalf("expected OutOfStockError, got %v", err)
	}
	if oos.Available != 2 {
		t.Fatalf("expected 2 available, got %d", oos.Available)
	}

	// The failed placement must leave no partial order behind.
	var orders int64
	if err := conn.Model(&domain.Order{}).Count(&orders).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if orders != 0 {
		t.Fatalf("expected no orders after failed placement, got %d", orders)
	}
}

func TestPlaceOrderConcurrentCannotOversell(t *testing.T) {
	svc, conn, _, node := setupOrderService(t)
	productID := seedProduct(t, conn, node, "Last Bottle", 199, 1)

	const buyers = 4
	userIDs := make([]snowflake.ID, buyers)
	for i := range userIDs {
		userIDs[i] = seedUser(t, conn, node, fmt.Sprintf("buyer%d@example.com", i))
		seedCartItem(t, conn, node, userIDs[i], productID, 1)
	}

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Place(context.Background(), userIDs[i], validShipping())
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			var oos *domain.OutOfStockError
			if !errors.As(err, &oos) {
				t.Fatalf("unexpected error: %v", err)
			}
			lost++
		}
	}
	if won != 1 || lost != buyers-1 {
		t.Fatalf("expected exactly 1 winner, got %d winners %d losers", won, lost)
	}

	var stock int
	if err := conn.Raw("SELECT stock_quantity FROM products WHERE id = ?", productID).Scan(&stock).Error; err != nil {
		t.Fatalf("read stock: %v", err)
	}
	if stock != 0 {
		t.Fatalf("expected stock 0, got %d", stock)
	}
}

func TestGetHidesOtherUsersOrders(t *testing.T) {
	svc, conn, _, node := setupOrderService(t)
	owner := seedUser(t, conn, node, "owner@example.com")
	stranger := seedUser(t, conn, node, "stranger@example.com")
	productID := seedProduct(t, conn, node, "Citrus Bloom", 60, 10)
	seedCartItem(t, conn, node, owner, productID, 1)

	order, err := svc.Place(context.Background(), owner, validShipping())
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if _, err := svc.Get(context.Background(), order.ID, stranger, false); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stranger, got %v", err)
	}
	if _, err := svc.Get(context.Background(), order.ID, stranger, true); err != nil {
		t.Fatalf("admin should see any order: %v", err)
	}
	if _, err := svc.Get(context.Background(), order.ID, owner, false); err != nil {
		t.Fatalf("owner should see own order: %v", err)
	}
}

func TestUpdateStatusRecordsActivity(t *testing.T) {
	svc, conn, _, node := setupOrderService(t)
	userID := seedUser(t, conn, node, "buyer@example.com")
	adminID := seedUser(t, conn, node, "admin@example.com")
	productID := seedProduct(t, conn, node, "Sandal Drift", 110, 10)
	seedCartItem(t, conn, node, userID, productID, 1)

	order, err := svc.Place(context.Background(), userID, validShipping())
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	// Walk the lifecycle to processing, then ship with a tracking number.
	for _, status := range []domain.Status{domain.StatusConfirmed, domain.StatusProcessing} {
		if _, err := svc.UpdateStatus(context.Background(), order.ID, adminID, domain.StatusUpdateRequest{Status: status}); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}

	tracking := "TRK-123456"
	updated, err := svc.UpdateStatus(context.Background(), order.ID, adminID, domain.StatusUpdateRequest{
		Status:         domain.StatusShipped,
		TrackingNumber: &tracking,
	})
	if err != nil {
		t.Fatalf("ship: %v", err)
	}
	if updated.Status != domain.StatusShipped {
		t.Fatalf("expected shipped, got %s", updated.Status)
	}
	if updated.TrackingNumber == nil || *updated.TrackingNumber != tracking {
		t.Fatalf("tracking number not persisted: %v", updated.TrackingNumber)
	}

	var logs []activitydomain.ActivityLog
	err = conn.Where("action = ?", "UPDATE_ORDER_STATUS").
		Order("created_at asc, id asc").
		Find(&logs).Error
	if err != nil {
		t.Fatalf("read activity: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 status change entries, got %d", len(logs))
	}
	last := logs[len(logs)-1]
	if last.Details["old_status"] != "processing" || last.Details["new_status"] != "shipped" {
		t.Fatalf("unexpected details %v", last.Details)
	}
	if last.UserID == nil || *last.UserID != adminID {
		t.Fatalf("activity should reference the acting admin")
	}
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	svc, conn, _, node := setupOrderService(t)
	userID := seedUser(t, conn, node, "buyer@example.com")
	adminID := seedUser(t, conn, node, "admin@example.com")
	productID := seedProduct(t, conn, node, "Iris Veil", 95, 10)
	seedCartItem(t, conn, node, userID, productID, 1)

	order, err := svc.Place(context.Background(), userID, validShipping())
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), order.ID, adminID, domain.StatusUpdateRequest{Status: domain.StatusDelivered})
	var illegal *domain.IllegalTransitionError
	if !errors.As(err, &illegal) {
		t.Fatalf("expected IllegalTransitionError, got %v", err)
	}
	if illegal.From != "pending" || illegal.To != "delivered" {
		t.Fatalf("unexpected transition %s -> %s", illegal.From, illegal.To)
	}

	_, err = svc.UpdateStatus(context.Background(), order.ID, adminID, domain.StatusUpdateRequest{Status: "teleported"})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdatePaymentLifecycle(t *testing.T) {
	svc, conn, _, node := setupOrderService(t)
	userID := seedUser(t, conn, node, "buyer@example.com")
	adminID := seedUser(t, conn, node, "admin@example.com")
	productID := seedProduct(t, conn, node, "Neroli Sun", 85, 10)
	seedCartItem(t, conn, node, userID, productID, 1)

	order, err := svc.Place(context.Background(), userID, validShipping())
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	updated, err := svc.UpdatePayment(context.Background(), order.ID, adminID, domain.PaymentPaid)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if updated.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("expected paid, got %s", updated.PaymentStatus)
	}

	// Paid can only move to refunded.
	_, err = svc.UpdatePayment(context.Background(), order.ID, adminID, domain.PaymentFailed)
	var illegal *domain.IllegalTransitionError
	if !errors.As(err, &illegal) {
		t.Fatalf("expected IllegalTransitionError, got %v", err)
	}
	if _, err := svc.UpdatePayment(context.Background(), order.ID, adminID, domain.PaymentRefunded); err != nil {
		t.Fatalf("refund: %v", err)
	}
}

func TestStatsSummaryBucketsRevenueByMonth(t *testing.T) {
	svc, conn, fc, node := setupOrderService(t)
	userID := seedUser(t, conn, node, "buyer@example.com")
	productID := seedProduct(t, conn, node, "Fig Grove", 50, 100)

	for i := 0; i < 3; i++ {
		seedCartItem(t, conn, node, userID, productID, 2)
		if _, err := svc.Place(context.Background(), userID, validShipping()); err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
		fc.Advance(40 * 24 * time.Hour)
	}

	summary, err := svc.StatsSummary(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if summary.Stats.TotalOrders != 3 {
		t.Fatalf("expected 3 orders, got %d", summary.Stats.TotalOrders)
	}
	if summary.Stats.TotalRevenue != 300 {
		t.Fatalf("expected revenue 300, got %f", summary.Stats.TotalRevenue)
	}
	if len(summary.MonthlyRevenue) < 2 {
		t.Fatalf("expected orders spread over months, got %v", summary.MonthlyRevenue)
	}
	// Newest month first.
	for i := 1; i < len(summary.MonthlyRevenue); i++ {
		if summary.MonthlyRevenue[i-1].Month < summary.MonthlyRevenue[i].Month {
			t.Fatalf("months not sorted descending: %v", summary.MonthlyRevenue)
		}
	}
}
