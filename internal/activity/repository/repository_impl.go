package repository

import (
	"context"
	"strings"

	"github.com/novayra/storefront/internal/activity/domain"
	"github.com/novayra/storefront/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, entry *domain.ActivityLog) error {
	if entry == nil {
		return nil
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repo) List(ctx context.Context, filter domain.ListFilter, page pagination.Pagination) ([]domain.ActivityLog, int64, error) {
	stmt := r.db.WithContext(ctx).Model(&domain.ActivityLog{})

	if action := strings.TrimSpace(filter.Action); action != "" {
		stmt = stmt.Where("action = ?", action)
	}
	if filter.UserID != nil {
		stmt = stmt.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []domain.ActivityLog
	err := stmt.
		Order("created_at desc, id desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
