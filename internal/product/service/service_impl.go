package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/novayra/storefront/internal/clock"
	"github.com/novayra/storefront/internal/product/domain"
	"github.com/novayra/storefront/pkg/db"
	"github.com/novayra/storefront/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const defaultLowStockThreshold = 10

type Params struct {
	fx.In

	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("product.service"),
		clock: p.Clock,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) GetActive(ctx context.Context, id snowflake.ID) (*domain.Product, error) {
	return s.repo.FindActiveByID(ctx, id)
}

func (s *Service) ListActiveByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.ListActiveByCategory(ctx, strings.TrimSpace(category))
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		return nil, domain.ErrInvalidName
	}
	description := strings.TrimSpace(req.Description)
	if len(description) < 10 {
		return nil, domain.ErrInvalidDescription
	}
	if req.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if req.StockQuantity < 0 {
		return nil, domain.ErrInvalidStock
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "perfume"
	}

	now := s.clock.Now().UTC()
	product := &domain.Product{
		ID:            s.genID.Generate(),
		Name:          name,
		Slug:          slug.Make(name),
		Description:   description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      category,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	product.ImageURL = trimmedPtr(req.ImageURL)
	product.FragranceNotes = trimmedPtr(req.FragranceNotes)
	product.BottleSize = trimmedPtr(req.BottleSize)

	if err := s.repo.Create(ctx, product); err != nil {
		// Slug collision with an existing product of the same name; the
		// id suffix keeps it stable and unique.
		if db.IsDuplicateKeyErr(err) {
			product.Slug = fmt.Sprintf("%s-%s", product.Slug, product.ID.String())
			err = s.repo.Create(ctx, product)
		}
		if err != nil {
			return nil, err
		}
	}

	s.log.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("slug", product.Slug),
	)
	return product, nil
}

func (s *Service) Update(ctx context.Context, id snowflake.ID, req domain.UpdateRequest) (*domain.Product, error) {
	fields := map[string]any{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 2 {
			return nil, domain.ErrInvalidName
		}
		fields["name"] = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if len(description) < 10 {
			return nil, domain.ErrInvalidDescription
		}
		fields["description"] = description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		fields["price"] = *req.Price
	}
	if req.StockQuantity != nil {
		if *req.StockQuantity < 0 {
			return nil, domain.ErrInvalidStock
		}
		fields["stock_quantity"] = *req.StockQuantity
	}
	if req.ImageURL != nil {
		fields["image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if req.Category != nil {
		if category := strings.TrimSpace(*req.Category); category != "" {
			fields["category"] = category
		}
	}
	if req.FragranceNotes != nil {
		fields["fragrance_notes"] = strings.TrimSpace(*req.FragranceNotes)
	}
	if req.BottleSize != nil {
		fields["bottle_size"] = strings.TrimSpace(*req.BottleSize)
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) == 0 {
		return nil, domain.ErrNothingToUpdate
	}
	fields["updated_at"] = s.clock.Now().UTC()

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Deactivate soft-deletes a product. The row stays so order items keep a
// valid reference; it just disappears from the public catalog.
func (s *Service) Deactivate(ctx context.Context, id snowflake.ID) error {
	return s.repo.UpdateFields(ctx, id, map[string]any{
		"is_active":  false,
		"updated_at": s.clock.Now().UTC(),
	})
}

func (s *Service) AdminList(ctx context.Context, req domain.AdminListRequest) (domain.AdminListResponse, error) {
	page := req.Pagination.Normalize(100)

	products, total, err := s.repo.List(ctx, domain.ListFilter{
		Search:      req.Search,
		Category:    req.Category,
		Active:      req.Active,
		StockStatus: req.StockStatus,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
	}, page)
	if err != nil {
		return domain.AdminListResponse{}, err
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return domain.AdminListResponse{}, err
	}

	return domain.AdminListResponse{
		PageInfo:   pagination.BuildPageInfo(page, total),
		Products:   products,
		Categories: categories,
	}, nil
}

func (s *Service) AdminGet(ctx context.Context, id snowflake.ID) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := s.repo.ListImages(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Images = images
	return product, nil
}

func (s *Service) AddImages(ctx context.Context, id snowflake.ID, images []domain.ImageRequest) ([]domain.ProductImage, error) {
	if len(images) == 0 {
		return nil, domain.ErrNoImages
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	created := make([]domain.ProductImage, 0, len(images))
	for _, img := range images {
		url := strings.TrimSpace(img.ImageURL)
		if url == "" {
			continue
		}
		row := domain.ProductImage{
			ID:        s.genID.Generate(),
			ProductID: id,
			ImageURL:  url,
			AltText:   trimmedPtr(img.AltText),
			IsPrimary: img.IsPrimary,
			CreatedAt: now,
		}
		if err := s.repo.AddImage(ctx, &row); err != nil {
			return nil, err
		}
		created = append(created, row)
	}
	if len(created) == 0 {
		return nil, domain.ErrNoImages
	}
	return created, nil
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	return s.repo.Stats(ctx, defaultLowStockThreshold)
}

func (s *Service) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	return s.repo.LowStock(ctx, threshold)
}

func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
