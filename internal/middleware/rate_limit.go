package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/internal/pkg/logger"
	"github.com/pageza/recipes/backend/internal/types"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter counts requests per client in fixed windows stored in Redis
type RateLimiter struct {
	redis   redis.Cmdable
	config  RateLimitConfig
	metrics *Metrics
	now     func() time.Time
}

// NewRateLimiter creates a new rate limiter instance. metrics may be nil.
func NewRateLimiter(client redis.Cmdable, config RateLimitConfig, metrics *Metrics) *RateLimiter {
	return &RateLimiter{
		redis:   client,
		config:  config,
		metrics: metrics,
		now:     time.Now,
	}
}

// NewRecipeWriteRateLimiter limits create, update and delete calls per client IP
func NewRecipeWriteRateLimiter(client redis.Cmdable, limit int, window time.Duration, metrics *Metrics) *RateLimiter {
	return NewRateLimiter(client, RateLimitConfig{
		Window:    window,
		Limit:     limit,
		KeyPrefix: "rate_limit:recipe_write",
	}, metrics)
}

// Middleware returns a Gin middleware that enforces the limit per client IP
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Fail open: Redis trouble must not take the API down.
			logger.L().Warn("rate limit check failed", zap.Error(err))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			rl.metrics.RateLimitRejected()
			retryAfter := int(resetTime.Sub(rl.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.MessageResponse{Message: types.MsgTooManyRequests})
			return
		}

		c.Next()
	}
}

// IsAllowed counts a request from the given client against its window.
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, client string) (bool, int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	key := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, client, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}
