package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
)

// recordActivity writes an activity entry for the acting admin. Writes
// are best-effort; the handler outcome never depends on them.
func (s *Server) recordActivity(c *gin.Context, action, entityType, entityID string, details map[string]any) {
	user := currentUser(c)
	if user == nil {
		return
	}

	s.activitySvc.Record(c.Request.Context(), activitydomain.Entry{
		UserID:     &user.ID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
}

func (s *Server) AdminListActivity(c *gin.Context) {
	var query struct {
		Page   int    `form:"page,default=1"`
		Limit  int    `form:"limit,default=20"`
		Action string `form:"action"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	req := activitydomain.ListRequest{Action: query.Action}
	req.Page = query.Page
	req.Limit = query.Limit

	resp, err := s.activitySvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"logs":       resp.Logs,
		"pagination": resp.PageInfo,
	})
}
