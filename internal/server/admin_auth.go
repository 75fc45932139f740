package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	adminauthdomain "github.com/novayra/storefront/internal/adminauth/domain"
)

func (s *Server) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.adminAuthSvc.Login(c.Request.Context(), adminauthdomain.LoginRequest{
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetCookie(adminCookieName, result.RawToken, maxAge, "/", "", s.cfg.AuthCookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.RawToken,
		"user":    result.User,
	})
}

func (s *Server) AdminLogout(c *gin.Context) {
	raw := c.GetString(contextAdminTokenKey)
	if err := s.adminAuthSvc.Logout(c.Request.Context(), raw); err != nil {
		AbortWithError(c, err)
		return
	}

	c.SetCookie(adminCookieName, "", -1, "/", "", s.cfg.AuthCookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// AdminVerify exists for the admin panel to probe whether its stored
// token is still good; the middleware does the actual work.
func (s *Server) AdminVerify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "user": currentUser(c)})
}

func (s *Server) AdminProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "user": currentUser(c)})
}
