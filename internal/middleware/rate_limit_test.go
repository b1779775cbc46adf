package middleware

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipes/backend/internal/testhelpers"
)

func newLimiter(t *testing.T, limit int) (*RateLimiter, *miniredis.Miniredis, *Metrics) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	metrics := NewMetrics(prometheus.NewRegistry())
	rl := NewRecipeWriteRateLimiter(client, limit, time.Minute, metrics)
	rl.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 30, 0, time.UTC) }
	return rl, mr, metrics
}

func TestIsAllowed(t *testing.T) {
	rl, mr, _ := newLimiter(t, 2)
	ctx := context.Background()

	allowed, remaining, reset, err := rl.IsAllowed(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 1, 0, 0, time.UTC), reset.UTC())

	allowed, remaining, _, err = rl.IsAllowed(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, remaining, _, err = rl.IsAllowed(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// Other clients have their own window.
	allowed, _, _, err = rl.IsAllowed(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	key := "rate_limit:recipe_write:10.0.0.1:" + "1792400400"
	assert.True(t, mr.Exists(key), "keys: %v", mr.Keys())
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl, _, metrics := newLimiter(t, 1)

	router := gin.New()
	router.POST("/recipes", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := testhelpers.PerformRequest(t, router, http.MethodPost, "/recipes", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = testhelpers.PerformRequest(t, router, http.MethodPost, "/recipes", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"Too many requests"}`, w.Body.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.rateLimitRejects))
}

func TestRateLimitMiddlewareFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl, mr, _ := newLimiter(t, 1)
	mr.Close()

	router := gin.New()
	router.DELETE("/recipes/:id", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := testhelpers.PerformRequest(t, router, http.MethodDelete, "/recipes/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}
