package observability

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novayra/storefront/internal/reqcontext"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// RequestLogger logs each request with a correlation id and safe fields.
// It also stamps the request context with the caller's IP and user agent
// so the activity log can pick them up downstream.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := ensureRequestID(c)

		ctx := c.Request.Context()
		ctx = reqcontext.WithRequestID(ctx, requestID)
		ctx = reqcontext.WithIPAddress(ctx, c.ClientIP())
		ctx = reqcontext.WithUserAgent(ctx, c.Request.UserAgent())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if lastErr := c.Errors.Last(); lastErr != nil {
			fields = append(fields, zap.Error(lastErr.Err))
		}

		switch {
		case route == "/metrics":
			log.Debug("http_request", fields...)
		case status >= http.StatusInternalServerError:
			log.Error("http_request", fields...)
		default:
			log.Info("http_request", fields...)
		}
	}
}

func ensureRequestID(c *gin.Context) string {
	requestID := strings.TrimSpace(c.GetHeader("X-Request-Id"))
	if requestID == "" {
		requestID = ulid.Make().String()
	}
	c.Header("X-Request-Id", requestID)
	return requestID
}
