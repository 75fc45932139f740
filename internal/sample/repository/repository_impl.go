package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/sample/domain"
	"github.com/novayra/storefront/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

const viewSelect = `sr.*, p.name AS product_name, p.image_url AS product_image_url`

func (r *repo) Insert(ctx context.Context, req *domain.SampleRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.View, error) {
	var view domain.View
	err := r.db.WithContext(ctx).
		Table("sample_requests sr").
		Joins("JOIN products p ON p.id = sr.product_id").
		Select(viewSelect).
		Where("sr.id = ?", id).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	if view.ID == 0 {
		return nil, domain.ErrNotFound
	}
	return &view, nil
}

func (r *repo) HasOpenRequest(ctx context.Context, userID, productID snowflake.ID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SampleRequest{}).
		Where("user_id = ? AND product_id = ? AND status IN ?", userID, productID,
			[]domain.Status{domain.StatusPending, domain.StatusApproved}).
		Count(&count).Error
	return count > 0, err
}

func (r *repo) ListByUser(ctx context.Context, userID snowflake.ID) ([]domain.View, error) {
	var views []domain.View
	err := r.db.WithContext(ctx).
		Table("sample_requests sr").
		Joins("JOIN products p ON p.id = sr.product_id").
		Select(viewSelect).
		Where("sr.user_id = ?", userID).
		Order("sr.created_at desc, sr.id desc").
		Scan(&views).Error
	return views, err
}

func (r *repo) List(ctx context.Context, status domain.Status, page pagination.Pagination) ([]domain.View, int64, error) {
	stmt := r.db.WithContext(ctx).
		Table("sample_requests sr").
		Joins("JOIN products p ON p.id = sr.product_id")
	if status != "" {
		stmt = stmt.Where("sr.status = ?", status)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var views []domain.View
	err := stmt.
		Select(viewSelect).
		Order("sr.created_at desc, sr.id desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Scan(&views).Error
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *repo) UpdateStatus(ctx context.Context, id snowflake.ID, status domain.Status, adminNotes *string, now time.Time) error {
	fields := map[string]any{
		"status":     status,
		"updated_at": now,
	}
	if adminNotes != nil {
		fields["admin_notes"] = *adminNotes
	}

	res := r.db.WithContext(ctx).
		Model(&domain.SampleRequest{}).
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

func (r *repo) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	var counts []domain.StatusCount
	err := r.db.WithContext(ctx).
		Model(&domain.SampleRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (r *repo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SampleRequest{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *repo) PopularProducts(ctx context.Context, limit int) ([]domain.PopularProduct, error) {
	var products []domain.PopularProduct
	err := r.db.WithContext(ctx).
		Table("sample_requests sr").
		Joins("JOIN products p ON p.id = sr.product_id").
		Select("p.name, COUNT(*) AS request_count").
		Group("sr.product_id, p.name").
		Order("request_count desc").
		Limit(limit).
		Scan(&products).Error
	return products, err
}
