package service

import (
	"context"
	"encoding/json"

	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/config"
	contactdomain "github.com/novayra/storefront/internal/contact/domain"
	"github.com/novayra/storefront/internal/dashboard/domain"
	orderdomain "github.com/novayra/storefront/internal/order/domain"
	productdomain "github.com/novayra/storefront/internal/product/domain"
	sampledomain "github.com/novayra/storefront/internal/sample/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Clock    clock.Clock
	Store    *config.StoreConfigHolder
	Repo     domain.Repository
	Orders   orderdomain.Repository
	Products productdomain.Repository
	Contacts contactdomain.Repository
	Samples  sampledomain.Repository
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	store    *config.StoreConfigHolder
	repo     domain.Repository
	orders   orderdomain.Repository
	products productdomain.Repository
	contacts contactdomain.Repository
	samples  sampledomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("dashboard.service"),
		clock:    p.Clock,
		store:    p.Store,
		repo:     p.Repo,
		orders:   p.Orders,
		products: p.Products,
		contacts: p.Contacts,
		samples:  p.Samples,
	}
}

func (s *Service) Stats(ctx context.Context) (map[string]domain.StatValue, error) {
	threshold := s.store.Get().LowStockThreshold

	orderStats, err := s.orders.Stats(ctx)
	if err != nil {
		return nil, err
	}
	productStats, err := s.products.Stats(ctx, threshold)
	if err != nil {
		return nil, err
	}
	newContacts, err := s.contacts.CountNew(ctx)
	if err != nil {
		return nil, err
	}

	var pendingSamples int64
	sampleCounts, err := s.samples.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, sc := range sampleCounts {
		if sc.Status == sampledomain.StatusPending {
			pendingSamples = sc.Count
		}
	}

	fresh := map[string]domain.StatValue{
		"total_orders":       {Value: float64(orderStats.TotalOrders), Period: "all_time"},
		"total_revenue":      {Value: orderStats.TotalRevenue, Period: "all_time"},
		"total_products":     {Value: float64(productStats.TotalProducts), Period: "all_time"},
		"pending_orders":     {Value: float64(orderStats.PendingOrders), Period: "current"},
		"processing_orders":  {Value: float64(orderStats.ProcessingOrders), Period: "current"},
		"low_stock_products": {Value: float64(productStats.LowStock), Period: "current"},
		"new_contacts":       {Value: float64(newContacts), Period: "current"},
		"pending_samples":    {Value: float64(pendingSamples), Period: "current"},
	}

	now := s.clock.Now().UTC()
	for name, value := range fresh {
		payload, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		stat := &domain.DashboardStat{
			StatName:  name,
			StatValue: datatypes.JSON(payload),
			UpdatedAt: now,
		}
		// The snapshot is convenience state; losing a write only costs
		// staleness until the next fetch.
		if err := s.repo.UpsertStat(ctx, stat); err != nil {
			s.log.Warn("failed to persist dashboard stat",
				zap.String("stat", name), zap.Error(err))
		}
	}

	return fresh, nil
}

func (s *Service) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityView, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.repo.RecentActivity(ctx, limit)
}

func (s *Service) RecentOrders(ctx context.Context, limit int) ([]orderdomain.AdminOrder, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	return s.orders.Recent(ctx, limit)
}

func (s *Service) LowStock(ctx context.Context, threshold int) ([]productdomain.Product, error) {
	if threshold <= 0 {
		threshold = s.store.Get().LowStockThreshold
	}
	return s.products.LowStock(ctx, threshold)
}
