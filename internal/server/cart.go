package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	cartdomain "github.com/novayra/storefront/internal/cart/domain"
)

// CartSummary is the lightweight badge payload: counts and totals
// without the joined line items.
func (s *Server) CartSummary(c *gin.Context) {
	user := currentUser(c)

	cart, err := s.cartSvc.Get(c.Request.Context(), user.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"total_items":  cart.TotalItems,
		"total_amount": cart.TotalAmount,
	})
}

func (s *Server) GetCart(c *gin.Context) {
	user := currentUser(c)

	cart, err := s.cartSvc.Get(c.Request.Context(), user.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
}

type addToCartRequest struct {
	ProductID snowflake.ID `json:"product_id"`
	Quantity  int          `json:"quantity"`
}

func (s *Server) AddToCart(c *gin.Context) {
	user := currentUser(c)

	var req addToCartRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	cart, err := s.cartSvc.Add(c.Request.Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) UpdateCartItem(c *gin.Context) {
	user := currentUser(c)

	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		AbortWithError(c, cartdomain.ErrItemNotFound)
		return
	}

	var req updateCartItemRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	cart, err := s.cartSvc.UpdateItem(c.Request.Context(), user.ID, itemID, req.Quantity)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
}

func (s *Server) RemoveCartItem(c *gin.Context) {
	user := currentUser(c)

	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		AbortWithError(c, cartdomain.ErrItemNotFound)
		return
	}

	cart, err := s.cartSvc.RemoveItem(c.Request.Context(), user.ID, itemID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
}

func (s *Server) ClearCart(c *gin.Context) {
	user := currentUser(c)

	if err := s.cartSvc.Clear(c.Request.Context(), user.ID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
}
