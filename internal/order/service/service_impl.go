package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
	cartdomain "github.com/novayra/storefront/internal/cart/domain"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/order/domain"
	"github.com/novayra/storefront/pkg/db"
	"github.com/novayra/storefront/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// orderNumberAttempts bounds retries when a generated order number collides
// with the unique constraint.
const orderNumberAttempts = 5

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Clock    clock.Clock
	GenID    *snowflake.Node
	Repo     domain.Repository
	Cart     cartdomain.Repository
	Activity activitydomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	clock    clock.Clock
	genID    *snowflake.Node
	repo     domain.Repository
	cart     cartdomain.Repository
	activity activitydomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("order.service"),
		clock:    p.Clock,
		genID:    p.GenID,
		repo:     p.Repo,
		cart:     p.Cart,
		activity: p.Activity,
	}
}

func (s *Service) Place(ctx context.Context, userID snowflake.ID, req domain.PlaceRequest) (*domain.Order, error) {
	address := strings.TrimSpace(req.ShippingAddress)
	city := strings.TrimSpace(req.ShippingCity)
	state := strings.TrimSpace(req.ShippingState)
	postalCode := strings.TrimSpace(req.ShippingPostalCode)
	if len(address) < 10 || len(city) < 2 || len(state) < 2 || len(postalCode) < 5 {
		return nil, domain.ErrInvalidShipping
	}

	country := strings.TrimSpace(req.ShippingCountry)
	if country == "" {
		country = "India"
	}

	switch req.PaymentMethod {
	case "cod", "online", "card":
	default:
		return nil, domain.ErrInvalidPayment
	}

	lines, err := s.cart.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		if line.Quantity > line.StockQuantity {
			return nil, &domain.OutOfStockError{
				ProductName: line.Name,
				Available:   line.StockQuantity,
			}
		}
		total += line.Price * float64(line.Quantity)
	}

	now := s.clock.Now().UTC()
	order := &domain.Order{
		UserID:             userID,
		TotalAmount:        total,
		Status:             domain.StatusPending,
		PaymentStatus:      domain.PaymentPending,
		PaymentMethod:      req.PaymentMethod,
		ShippingAddress:    address,
		ShippingCity:       city,
		ShippingState:      state,
		ShippingPostalCode: postalCode,
		ShippingCountry:    country,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		order.Notes = &notes
	}

	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order.ID = s.genID.Generate()
		order.OrderNumber = s.newOrderNumber()

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.repo.Insert(ctx, tx, order); err != nil {
				return err
			}

			items := make([]domain.OrderItem, 0, len(lines))
			for _, line := range lines {
				items = append(items, domain.OrderItem{
					ID:           s.genID.Generate(),
					OrderID:      order.ID,
					ProductID:    line.ProductID,
					ProductName:  line.Name,
					ProductPrice: line.Price,
					Quantity:     line.Quantity,
					Subtotal:     line.Price * float64(line.Quantity),
					CreatedAt:    now,
				})
			}
			if err := s.repo.InsertItems(ctx, tx, items); err != nil {
				return err
			}

			// The decrement is conditional on remaining stock; a zero
			// row count means another order won the race and this one
			// must fail whole.
			for _, line := range lines {
				affected, err := s.repo.DecrementStock(ctx, tx, line.ProductID, line.Quantity)
				if err != nil {
					return err
				}
				if affected == 0 {
					available, err := s.repo.StockQuantity(ctx, tx, line.ProductID)
					if err != nil {
						return err
					}
					return &domain.OutOfStockError{
						ProductName: line.Name,
						Available:   available,
					}
				}
			}

			order.Items = items
			return s.repo.ClearCart(ctx, tx, userID)
		})
		if err == nil {
			break
		}
		if db.IsDuplicateKeyErr(err) {
			s.log.Warn("order number collision, retrying",
				zap.String("order_number", order.OrderNumber))
			continue
		}
		return nil, err
	}
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrOrderNumberExhausted
		}
		return nil, err
	}

	s.log.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.TotalAmount),
	)
	return order, nil
}

func (s *Service) ListMine(ctx context.Context, userID snowflake.ID) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id, requesterID snowflake.ID, isAdmin bool) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && !isAdmin {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (s *Service) AdminList(ctx context.Context, req domain.AdminListRequest) (domain.AdminListResponse, error) {
	page := req.Pagination.Normalize(100)

	filter := domain.ListFilter{Search: req.Search}
	if status := domain.Status(req.Status); status != "" {
		if !domain.ValidStatus(status) {
			return domain.AdminListResponse{}, domain.ErrInvalidStatus
		}
		filter.Status = status
	}
	if ps := domain.PaymentStatus(req.PaymentStatus); ps != "" {
		if !domain.ValidPaymentStatus(ps) {
			return domain.AdminListResponse{}, domain.ErrInvalidPaymentStatus
		}
		filter.PaymentStatus = ps
	}
	if from := strings.TrimSpace(req.DateFrom); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err == nil {
			filter.DateFrom = &t
		}
	}
	if to := strings.TrimSpace(req.DateTo); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err == nil {
			end := t.AddDate(0, 0, 1)
			filter.DateTo = &end
		}
	}

	orders, total, err := s.repo.AdminList(ctx, filter, page)
	if err != nil {
		return domain.AdminListResponse{}, err
	}
	return domain.AdminListResponse{
		PageInfo: pagination.BuildPageInfo(page, total),
		Orders:   orders,
	}, nil
}

func (s *Service) AdminGet(ctx context.Context, id snowflake.ID) (*domain.AdminOrder, error) {
	return s.repo.FindAdminByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id snowflake.ID, adminID snowflake.ID, req domain.StatusUpdateRequest) (*domain.Order, error) {
	if !domain.ValidStatus(req.Status) {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.Status, req.Status) {
		return nil, &domain.IllegalTransitionError{
			From: string(order.Status),
			To:   string(req.Status),
		}
	}

	fields := map[string]any{
		"status":     req.Status,
		"updated_at": s.clock.Now().UTC(),
	}
	if req.AdminNotes != nil {
		fields["admin_notes"] = strings.TrimSpace(*req.AdminNotes)
	}
	if req.TrackingNumber != nil {
		fields["tracking_number"] = strings.TrimSpace(*req.TrackingNumber)
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	details := map[string]any{
		"old_status": string(order.Status),
		"new_status": string(req.Status),
	}
	if req.TrackingNumber != nil {
		details["tracking_number"] = strings.TrimSpace(*req.TrackingNumber)
	}
	s.activity.Record(ctx, activitydomain.Entry{
		UserID:     &adminID,
		Action:     "UPDATE_ORDER_STATUS",
		EntityType: "orders",
		EntityID:   id.String(),
		Details:    details,
	})

	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdatePayment(ctx context.Context, id snowflake.ID, adminID snowflake.ID, status domain.PaymentStatus) (*domain.Order, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, domain.ErrInvalidPaymentStatus
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransitionPayment(order.PaymentStatus, status) {
		return nil, &domain.IllegalTransitionError{
			From: string(order.PaymentStatus),
			To:   string(status),
		}
	}

	err = s.repo.UpdateFields(ctx, id, map[string]any{
		"payment_status": status,
		"updated_at":     s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, activitydomain.Entry{
		UserID:     &adminID,
		Action:     "UPDATE_PAYMENT_STATUS",
		EntityType: "orders",
		EntityID:   id.String(),
		Details: map[string]any{
			"old_payment_status": string(order.PaymentStatus),
			"new_payment_status": string(status),
		},
	})

	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdateNotes(ctx context.Context, id snowflake.ID, adminID snowflake.ID, notes string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	err := s.repo.UpdateFields(ctx, id, map[string]any{
		"admin_notes": strings.TrimSpace(notes),
		"updated_at":  s.clock.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.activity.Record(ctx, activitydomain.Entry{
		UserID:     &adminID,
		Action:     "UPDATE_ORDER_NOTES",
		EntityType: "orders",
		EntityID:   id.String(),
	})
	return nil
}

func (s *Service) StatsSummary(ctx context.Context) (domain.StatsSummary, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.StatsSummary{}, err
	}

	since := s.clock.Now().UTC().AddDate(0, -6, 0)
	rows, err := s.repo.RevenueRows(ctx, since)
	if err != nil {
		return domain.StatsSummary{}, err
	}

	return domain.StatsSummary{
		Stats:          stats,
		MonthlyRevenue: bucketByMonth(rows),
	}, nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]domain.AdminOrder, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.repo.Recent(ctx, limit)
}

func (s *Service) newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("NOV-%d-%s", s.clock.Now().UnixMilli(), suffix)
}

func bucketByMonth(rows []domain.RevenueRow) []domain.MonthlyRevenue {
	buckets := map[string]*domain.MonthlyRevenue{}
	for _, row := range rows {
		month := row.CreatedAt.UTC().Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &domain.MonthlyRevenue{Month: month}
			buckets[month] = b
		}
		b.Revenue += row.TotalAmount
		b.Orders++
	}

	out := make([]domain.MonthlyRevenue, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}
