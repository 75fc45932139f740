package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
	"github.com/novayra/storefront/internal/ratelimit"
	"go.uber.org/zap"
)

const (
	contextUserKey       = "current_user"
	contextAdminTokenKey = "admin_token"
	adminCookieName      = "adminToken"
)

// AuthRequired resolves a customer bearer token to a live user row.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		user, err := s.authSvc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// OptionalAuth resolves a bearer token when present; invalid or missing
// tokens leave the request anonymous.
func (s *Server) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearerToken(c); raw != "" {
			if user, err := s.authSvc.Authenticate(c.Request.Context(), raw); err == nil {
				c.Set(contextUserKey, user)
			}
		}
		c.Next()
	}
}

// AdminAuthRequired revalidates the opaque admin session on every request.
// Token precedence: Authorization bearer, then the adminToken cookie, then
// the token query param (receipt downloads open in a new tab).
func (s *Server) AdminAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := adminToken(c)
		if raw == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		user, err := s.adminAuthSvc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserKey, user)
		c.Set(contextAdminTokenKey, raw)
		c.Next()
	}
}

// RequireAdmin gates a customer-authenticated route on the is_admin flag.
func (s *Server) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if !user.IsAdmin {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

// RateLimit throttles by client IP through the redis token bucket. When
// the limiter is not configured it is a no-op; when redis is unreachable
// requests pass (fail open).
func (s *Server) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Enabled() {
			c.Next()
			return
		}

		res, err := s.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			s.log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(ratelimit.RetryAfterSeconds(res.RetryAfter)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}

func currentUser(c *gin.Context) *authdomain.User {
	value, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func adminToken(c *gin.Context) string {
	if raw := bearerToken(c); raw != "" {
		return raw
	}
	if cookie, err := c.Cookie(adminCookieName); err == nil && strings.TrimSpace(cookie) != "" {
		return strings.TrimSpace(cookie)
	}
	return strings.TrimSpace(c.Query("token"))
}
