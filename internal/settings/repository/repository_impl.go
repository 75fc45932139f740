package repository

import (
	"context"
	"time"

	"github.com/novayra/storefront/internal/settings/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) ListAll(ctx context.Context) ([]domain.Setting, error) {
	var settings []domain.Setting
	err := r.db.WithContext(ctx).
		Order("setting_key").
		Find(&settings).Error
	return settings, err
}

func (r *repo) ListByPrefix(ctx context.Context, prefix string) ([]domain.Setting, error) {
	var settings []domain.Setting
	err := r.db.WithContext(ctx).
		Where("setting_key LIKE ?", prefix+"%").
		Order("setting_key").
		Find(&settings).Error
	return settings, err
}

func (r *repo) UpdateValue(ctx context.Context, key, value string, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Setting{}).
		Where("setting_key = ?", key).
		Updates(map[string]any{
			"setting_value": value,
			"updated_at":    now,
		}).Error
}

func (r *repo) Upsert(ctx context.Context, setting *domain.Setting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).
		Create(setting).Error
}
