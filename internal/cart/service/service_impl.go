package service

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	cartdomain "github.com/novayra/storefront/internal/cart/domain"
	"github.com/novayra/storefront/internal/clock"
	productdomain "github.com/novayra/storefront/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Clock    clock.Clock
	GenID    *snowflake.Node
	Repo     cartdomain.Repository
	Products productdomain.Repository
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	genID    *snowflake.Node
	repo     cartdomain.Repository
	products productdomain.Repository
}

func New(p Params) cartdomain.Service {
	return &Service{
		log:      p.Log.Named("cart.service"),
		clock:    p.Clock,
		genID:    p.GenID,
		repo:     p.Repo,
		products: p.Products,
	}
}

func (s *Service) Get(ctx context.Context, userID snowflake.ID) (cartdomain.Cart, error) {
	return s.buildCart(ctx, userID)
}

func (s *Service) Add(ctx context.Context, userID, productID snowflake.ID, quantity int) (cartdomain.Cart, error) {
	if quantity < cartdomain.MinQuantity || quantity > cartdomain.MaxQuantity {
		return cartdomain.Cart{}, cartdomain.ErrInvalidQuantity
	}

	product, err := s.products.FindActiveByID(ctx, productID)
	if err != nil {
		return cartdomain.Cart{}, err
	}

	existing, err := s.repo.FindItem(ctx, userID, productID)
	if err != nil && !errors.Is(err, cartdomain.ErrItemNotFound) {
		return cartdomain.Cart{}, err
	}

	requested := quantity
	if existing != nil {
		requested += existing.Quantity
	}
	if requested > cartdomain.MaxQuantity {
		return cartdomain.Cart{}, cartdomain.ErrInvalidQuantity
	}
	if requested > product.StockQuantity {
		return cartdomain.Cart{}, &cartdomain.InsufficientStockError{
			ProductName: product.Name,
			Available:   product.StockQuantity,
		}
	}

	if existing != nil {
		if err := s.repo.UpdateQuantity(ctx, existing.ID, requested); err != nil {
			return cartdomain.Cart{}, err
		}
	} else {
		now := s.clock.Now().UTC()
		item := &cartdomain.CartItem{
			ID:        s.genID.Generate(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Insert(ctx, item); err != nil {
			return cartdomain.Cart{}, err
		}
	}

	return s.buildCart(ctx, userID)
}

func (s *Service) UpdateItem(ctx context.Context, userID, itemID snowflake.ID, quantity int) (cartdomain.Cart, error) {
	if quantity < cartdomain.MinQuantity || quantity > cartdomain.MaxQuantity {
		return cartdomain.Cart{}, cartdomain.ErrInvalidQuantity
	}

	item, err := s.repo.FindItemByID(ctx, userID, itemID)
	if err != nil {
		return cartdomain.Cart{}, err
	}

	product, err := s.products.FindActiveByID(ctx, item.ProductID)
	if err != nil {
		return cartdomain.Cart{}, err
	}
	if quantity > product.StockQuantity {
		return cartdomain.Cart{}, &cartdomain.InsufficientStockError{
			ProductName: product.Name,
			Available:   product.StockQuantity,
		}
	}

	if err := s.repo.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return cartdomain.Cart{}, err
	}
	return s.buildCart(ctx, userID)
}

func (s *Service) RemoveItem(ctx context.Context, userID, itemID snowflake.ID) (cartdomain.Cart, error) {
	item, err := s.repo.FindItemByID(ctx, userID, itemID)
	if err != nil {
		return cartdomain.Cart{}, err
	}
	if err := s.repo.Delete(ctx, item.ID); err != nil {
		return cartdomain.Cart{}, err
	}
	return s.buildCart(ctx, userID)
}

func (s *Service) Clear(ctx context.Context, userID snowflake.ID) error {
	return s.repo.DeleteAll(ctx, userID)
}

func (s *Service) buildCart(ctx context.Context, userID snowflake.ID) (cartdomain.Cart, error) {
	lines, err := s.repo.ListLines(ctx, userID)
	if err != nil {
		return cartdomain.Cart{}, err
	}

	cart := cartdomain.Cart{Items: lines}
	for _, line := range lines {
		cart.TotalItems += line.Quantity
		cart.TotalAmount += line.Subtotal
	}
	return cart, nil
}
