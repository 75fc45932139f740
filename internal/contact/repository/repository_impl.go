package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/contact/domain"
	"github.com/novayra/storefront/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *repo) List(ctx context.Context, status domain.Status, page pagination.Pagination) ([]domain.Message, int64, error) {
	stmt := r.db.WithContext(ctx).Model(&domain.Message{})
	if status != "" {
		stmt = stmt.Where("status = ?", status)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []domain.Message
	err := stmt.
		Order("created_at desc, id desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *repo) UpdateStatus(ctx context.Context, id snowflake.ID, status domain.Status, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) CountNew(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("status = ?", domain.StatusNew).
		Count(&count).Error
	return count, err
}
