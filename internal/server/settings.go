package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	settingsdomain "github.com/novayra/storefront/internal/settings/domain"
)

func (s *Server) AdminGetSettings(c *gin.Context) {
	grouped, err := s.settingsSvc.Grouped(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "settings": grouped})
}

type updateSettingsRequest struct {
	Settings []settingsdomain.KeyValue `json:"settings"`
}

func (s *Server) AdminUpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.settingsSvc.BulkUpdate(c.Request.Context(), currentUser(c).ID, req.Settings); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings updated"})
}

func (s *Server) AdminResetSettings(c *gin.Context) {
	count, err := s.settingsSvc.ResetDefaults(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Settings reset to defaults",
		"count":   count,
	})
}

type testEmailRequest struct {
	Email string `json:"email"`
}

func (s *Server) AdminTestEmail(c *gin.Context) {
	var req testEmailRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.settingsSvc.TestEmail(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message,
		"config":  result.Config,
	})
}
