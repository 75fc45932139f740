package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	sampledomain "github.com/novayra/storefront/internal/sample/domain"
)

// RequestSample accepts both logged-in and anonymous shoppers; the
// duplicate-request guard only applies to the former.
func (s *Server) RequestSample(c *gin.Context) {
	var req sampledomain.CreateRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	var userID *snowflake.ID
	if user := currentUser(c); user != nil {
		userID = &user.ID
	}

	request, err := s.sampleSvc.Request(c.Request.Context(), userID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "request": request})
}

func (s *Server) ListMySampleRequests(c *gin.Context) {
	user := currentUser(c)

	requests, err := s.sampleSvc.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "requests": requests})
}

func (s *Server) AdminListSamples(c *gin.Context) {
	var req sampledomain.AdminListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.sampleSvc.AdminList(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"requests":   resp.Requests,
		"pagination": resp.PageInfo,
	})
}

func (s *Server) AdminGetSample(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, sampledomain.ErrNotFound)
		return
	}

	request, err := s.sampleSvc.AdminGet(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "request": request})
}

func (s *Server) AdminUpdateSampleStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, sampledomain.ErrNotFound)
		return
	}

	var req sampledomain.StatusUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.sampleSvc.UpdateStatus(c.Request.Context(), id, currentUser(c).ID, req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sample request updated"})
}

func (s *Server) AdminSampleStats(c *gin.Context) {
	overview, err := s.sampleSvc.StatsOverview(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": overview})
}
