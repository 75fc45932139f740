package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/novayra/storefront/internal/product/domain"
	"github.com/novayra/storefront/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repo) FindActiveByID(ctx context.Context, id snowflake.ID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repo) ListActive(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at desc, id desc").
		Find(&products).Error
	return products, err
}

func (r *repo) ListActiveByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND category = ?", true, category).
		Order("created_at desc, id desc").
		Find(&products).Error
	return products, err
}

func (r *repo) List(ctx context.Context, filter domain.ListFilter, page pagination.Pagination) ([]domain.Product, int64, error) {
	stmt := r.db.WithContext(ctx).Model(&domain.Product{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		stmt = stmt.Where(
			"name LIKE ? OR description LIKE ? OR fragrance_notes LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		stmt = stmt.Where("category = ?", category)
	}
	if filter.Active != nil {
		stmt = stmt.Where("is_active = ?", *filter.Active)
	}
	if filter.MinPrice != nil {
		stmt = stmt.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		stmt = stmt.Where("price <= ?", *filter.MaxPrice)
	}
	switch filter.StockStatus {
	case "in_stock":
		stmt = stmt.Where("stock_quantity > 0")
	case "out_of_stock":
		stmt = stmt.Where("stock_quantity = 0")
	case "low_stock":
		stmt = stmt.Where("stock_quantity > 0 AND stock_quantity <= ?", 10)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := stmt.
		Order("created_at desc, id desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *repo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *repo) UpdateFields(ctx context.Context, id snowflake.ID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&domain.Product{}).
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

func (r *repo) AddImage(ctx context.Context, image *domain.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *repo) ListImages(ctx context.Context, productID snowflake.ID) ([]domain.ProductImage, error) {
	var images []domain.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("is_primary desc, created_at asc").
		Find(&images).Error
	return images, err
}

func (r *repo) Stats(ctx context.Context, lowStockThreshold int) (domain.Stats, error) {
	var stats domain.Stats
	err := r.db.WithContext(ctx).Raw(
		`SELECT
			COUNT(*) AS total_products,
			COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active_products,
			COALESCE(SUM(CASE WHEN stock_quantity > 0 AND stock_quantity <= ? THEN 1 ELSE 0 END), 0) AS low_stock,
			COALESCE(SUM(CASE WHEN stock_quantity = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock,
			COALESCE(SUM(price * stock_quantity), 0) AS inventory_value
		 FROM products`,
		lowStockThreshold,
	).Scan(&stats).Error
	return stats, err
}

func (r *repo) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND stock_quantity <= ?", true, threshold).
		Order("stock_quantity asc, name asc").
		Find(&products).Error
	return products, err
}
