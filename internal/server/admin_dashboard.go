package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) DashboardStats(c *gin.Context) {
	stats, err := s.dashboardSvc.Stats(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

func (s *Server) DashboardActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	activity, err := s.dashboardSvc.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "activity": activity})
}

func (s *Server) DashboardRecentOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	orders, err := s.dashboardSvc.RecentOrders(c.Request.Context(), limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (s *Server) DashboardLowStock(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "0"))

	products, err := s.dashboardSvc.LowStock(c.Request.Context(), threshold)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}
