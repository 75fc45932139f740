package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	productdomain "github.com/novayra/storefront/internal/product/domain"
)

func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.productSvc.ListActive(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

func (s *Server) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, productdomain.ErrNotFound)
		return
	}

	product, err := s.productSvc.GetActive(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (s *Server) ListProductsByCategory(c *gin.Context) {
	category := strings.TrimSpace(c.Param("category"))

	products, err := s.productSvc.ListActiveByCategory(c.Request.Context(), category)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}
