package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/order/domain"
	"github.com/novayra/storefront/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Create(order).Error
}

func (r *repo) InsertItems(ctx context.Context, db *gorm.DB, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&items).Error
}

func (r *repo) DecrementStock(ctx context.Context, db *gorm.DB, productID snowflake.ID, qty int) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE products
		 SET stock_quantity = stock_quantity - ?
		 WHERE id = ? AND stock_quantity >= ?`,
		qty, productID, qty,
	)
	return res.RowsAffected, res.Error
}

func (r *repo) StockQuantity(ctx context.Context, db *gorm.DB, productID snowflake.ID) (int, error) {
	var qty int
	err := db.WithContext(ctx).Raw(
		`SELECT stock_quantity FROM products WHERE id = ?`, productID,
	).Scan(&qty).Error
	return qty, err
}

func (r *repo) ClearCart(ctx context.Context, db *gorm.DB, userID snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM cart WHERE user_id = ?`, userID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repo) FindAdminByID(ctx context.Context, id snowflake.ID) (*domain.AdminOrder, error) {
	order, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	row := domain.AdminOrder{Order: *order}
	err = r.db.WithContext(ctx).Raw(
		`SELECT first_name || ' ' || last_name AS customer_name, email AS customer_email
		 FROM users WHERE id = ?`,
		order.UserID,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) ListByUser(ctx context.Context, userID snowflake.ID) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&orders).Error
	return orders, err
}

func (r *repo) AdminList(ctx context.Context, filter domain.ListFilter, page pagination.Pagination) ([]domain.AdminOrder, int64, error) {
	base := r.db.WithContext(ctx).
		Table("orders o").
		Joins("JOIN users u ON u.id = o.user_id")

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		base = base.Where(
			"o.order_number LIKE ? OR u.first_name LIKE ? OR u.last_name LIKE ? OR u.email LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Status != "" {
		base = base.Where("o.status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		base = base.Where("o.payment_status = ?", filter.PaymentStatus)
	}
	if filter.DateFrom != nil {
		base = base.Where("o.created_at >= ?", filter.DateFrom.UTC())
	}
	if filter.DateTo != nil {
		base = base.Where("o.created_at < ?", filter.DateTo.UTC())
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []domain.AdminOrder
	err := base.
		Select("o.*, u.first_name || ' ' || u.last_name AS customer_name, u.email AS customer_email").
		Order("o.created_at desc, o.id desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Scan(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range orders {
		var items []domain.OrderItem
		if err := r.db.WithContext(ctx).
			Where("order_id = ?", orders[i].ID).
			Find(&items).Error; err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}
	return orders, total, nil
}

func (r *repo) Recent(ctx context.Context, limit int) ([]domain.AdminOrder, error) {
	var orders []domain.AdminOrder
	err := r.db.WithContext(ctx).
		Table("orders o").
		Joins("JOIN users u ON u.id = o.user_id").
		Select("o.*, u.first_name || ' ' || u.last_name AS customer_name, u.email AS customer_email").
		Order("o.created_at desc, o.id desc").
		Limit(limit).
		Scan(&orders).Error
	return orders, err
}

func (r *repo) UpdateFields(ctx context.Context, id snowflake.ID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	err := r.db.WithContext(ctx).Raw(
		`SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_orders,
			COALESCE(SUM(CASE WHEN status = 'processing' THEN 1 ELSE 0 END), 0) AS processing_orders,
			COALESCE(SUM(CASE WHEN status = 'shipped' THEN 1 ELSE 0 END), 0) AS shipped_orders,
			COALESCE(SUM(CASE WHEN status = 'delivered' THEN 1 ELSE 0 END), 0) AS delivered_orders,
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled_orders,
			COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_payments,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN 1 ELSE 0 END), 0) AS paid_orders,
			COALESCE(SUM(CASE WHEN payment_status = 'failed' THEN 1 ELSE 0 END), 0) AS failed_payments
		 FROM orders`,
	).Scan(&stats).Error
	return stats, err
}

func (r *repo) RevenueRows(ctx context.Context, since time.Time) ([]domain.RevenueRow, error) {
	var rows []domain.RevenueRow
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("created_at, total_amount").
		Where("created_at >= ?", since.UTC()).
		Find(&rows).Error
	return rows, err
}
