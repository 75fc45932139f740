package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/novayra/storefront/internal/order/domain"
)

func (s *Server) PlaceOrder(c *gin.Context) {
	user := currentUser(c)

	var req orderdomain.PlaceRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	order, err := s.orderSvc.Place(c.Request.Context(), user.ID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

func (s *Server) ListMyOrders(c *gin.Context) {
	user := currentUser(c)

	orders, err := s.orderSvc.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (s *Server) GetOrder(c *gin.Context) {
	user := currentUser(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, orderdomain.ErrNotFound)
		return
	}

	order, err := s.orderSvc.Get(c.Request.Context(), id, user.ID, user.IsAdmin)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}
