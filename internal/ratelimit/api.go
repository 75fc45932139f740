package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/novayra/storefront/internal/config"
	redis "github.com/redis/go-redis/v9"
)

const keyAPIClient = "api:client:%s"

// APILimiter throttles API traffic per client IP. A nil limiter (rate
// limiting disabled) allows everything.
type APILimiter struct {
	enabled bool

	bucket *TokenBucket

	rate  float64
	burst int
}

func NewAPILimiter(cfg config.Config) (*APILimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.Rate <= 0 || limitCfg.Burst <= 0 {
		return nil, errors.New("rate limit rate and burst must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})

	return &APILimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    limitCfg.Rate,
		burst:   limitCfg.Burst,
	}, nil
}

func (l *APILimiter) Enabled() bool {
	return l != nil && l.enabled
}

func (l *APILimiter) Allow(ctx context.Context, clientIP string) (*RateLimitResult, error) {
	if !l.Enabled() {
		return &RateLimitResult{Allowed: true}, nil
	}
	key := fmt.Sprintf(keyAPIClient, strings.TrimSpace(clientIP))
	return l.bucket.Allow(ctx, key, l.rate, l.burst)
}

// RetryAfterSeconds rounds up for the Retry-After response header.
func RetryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 1
	}
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
