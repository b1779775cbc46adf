package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/testhelpers"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:         config.Test,
		ServerHost:  "127.0.0.1",
		ServerPort:  "0",
		DBDriver:    config.DriverSQLite,
		DBDSN:       ":memory:",
		RateLimit:   2,
		RateWindow:  time.Minute,
		CORSOrigins: []string{"http://localhost:5173"},
	}
}

func TestServerRecipeLifecycle(t *testing.T) {
	srv := NewServer(testConfig(), testhelpers.SetupTestDatabase(t), nil)
	h := srv.Handler()

	w := testhelpers.PerformRequest(t, h, http.MethodPost, "/recipes", testhelpers.TeaRecipe())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = testhelpers.PerformRequest(t, h, http.MethodPatch, "/recipes/1", map[string]string{"cost": "60"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipe []struct {
			Cost  string `json:"cost"`
			Title string `json:"title"`
		} `json:"recipe"`
	}
	testhelpers.DecodeBody(t, w, &resp)
	require.Len(t, resp.Recipe, 1)
	assert.Equal(t, "60", resp.Recipe[0].Cost)
	assert.Equal(t, "Tea", resp.Recipe[0].Title)

	w = testhelpers.PerformRequest(t, h, http.MethodDelete, "/recipes/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testhelpers.PerformRequest(t, h, http.MethodGet, "/recipes/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No recipe found"}`, w.Body.String())

	// Writes are not limited without Redis.
	for i := 0; i < 5; i++ {
		w = testhelpers.PerformRequest(t, h, http.MethodPost, "/recipes", testhelpers.TeaRecipe())
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestServerMetricsAndHealth(t *testing.T) {
	srv := NewServer(testConfig(), testhelpers.SetupTestDatabase(t), nil)
	h := srv.Handler()

	w := testhelpers.PerformRequest(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	testhelpers.PerformRequest(t, h, http.MethodGet, "/recipes", nil)

	w = testhelpers.PerformRequest(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `recipes_http_requests_total{method="GET",path="/recipes",status="200"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestServerRateLimitsWrites(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := testConfig()
	cfg.RateWindow = time.Hour
	srv := NewServer(cfg, testhelpers.SetupTestDatabase(t), client)
	h := srv.Handler()

	for i := 0; i < 2; i++ {
		w := testhelpers.PerformRequest(t, h, http.MethodPost, "/recipes", testhelpers.TeaRecipe())
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := testhelpers.PerformRequest(t, h, http.MethodPost, "/recipes", testhelpers.TeaRecipe())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Reads are never limited.
	w = testhelpers.PerformRequest(t, h, http.MethodGet, "/recipes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testhelpers.PerformRequest(t, h, http.MethodGet, "/metrics", nil)
	assert.Contains(t, w.Body.String(), "recipes_rate_limit_rejects_total 1")
}

func TestServerStartShutdown(t *testing.T) {
	srv := NewServer(testConfig(), testhelpers.SetupTestDatabase(t), nil)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
