package domain

import "context"

type Repository interface {
	UpsertStat(ctx context.Context, stat *DashboardStat) error
	RecentActivity(ctx context.Context, limit int) ([]ActivityView, error)
}
