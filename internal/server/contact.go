package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	contactdomain "github.com/novayra/storefront/internal/contact/domain"
)

func (s *Server) SubmitContact(c *gin.Context) {
	var req contactdomain.SubmitRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	message, err := s.contactSvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for contacting us, we will get back to you soon",
		"id":      message.ID,
	})
}

func (s *Server) AdminListContactMessages(c *gin.Context) {
	var req contactdomain.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.contactSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"messages":   resp.Messages,
		"pagination": resp.PageInfo,
	})
}

type contactStatusRequest struct {
	Status contactdomain.Status `json:"status"`
}

func (s *Server) AdminUpdateContactStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, contactdomain.ErrNotFound)
		return
	}

	var req contactStatusRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.contactSvc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message status updated"})
}
