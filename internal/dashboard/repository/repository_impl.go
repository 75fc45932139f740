package repository

import (
	"context"

	"github.com/novayra/storefront/internal/dashboard/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) UpsertStat(ctx context.Context, stat *domain.DashboardStat) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "stat_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"stat_value", "updated_at"}),
		}).
		Create(stat).Error
}

func (r *repo) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityView, error) {
	var views []domain.ActivityView
	err := r.db.WithContext(ctx).Raw(
		`SELECT
			al.action,
			al.entity_type,
			al.entity_id,
			al.details,
			al.created_at,
			u.first_name,
			u.last_name
		 FROM activity_logs al
		 JOIN users u ON u.id = al.user_id
		 ORDER BY al.created_at DESC
		 LIMIT ?`,
		limit,
	).Scan(&views).Error
	return views, err
}
