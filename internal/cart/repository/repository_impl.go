package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/cart/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) FindItem(ctx context.Context, userID, productID snowflake.ID) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) FindItemByID(ctx context.Context, userID, itemID snowflake.ID) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) Insert(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repo) UpdateQuantity(ctx context.Context, itemID snowflake.ID, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *repo) Delete(ctx context.Context, itemID snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&domain.CartItem{}).Error
}

func (r *repo) DeleteAll(ctx context.Context, userID snowflake.ID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.CartItem{}).Error
}

func (r *repo) ListLines(ctx context.Context, userID snowflake.ID) ([]domain.Line, error) {
	var lines []domain.Line
	err := r.db.WithContext(ctx).Raw(
		`SELECT
			c.id,
			c.product_id,
			p.name,
			p.price,
			p.image_url,
			p.stock_quantity,
			c.quantity,
			p.price * c.quantity AS subtotal
		 FROM cart c
		 JOIN products p ON p.id = c.product_id AND p.is_active = ?
		 WHERE c.user_id = ?
		 ORDER BY c.created_at DESC`,
		true,
		userID,
	).Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
