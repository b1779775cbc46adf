package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/api"
	"github.com/pageza/recipes/backend/internal/middleware"
	"github.com/pageza/recipes/backend/internal/pkg/logger"
	"github.com/pageza/recipes/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// NewServer wires the middleware chain and routes. redisClient may be nil,
// in which case mutating routes are not rate limited.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	if cfg.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		ginzap.Ginzap(logger.L(), time.RFC3339, true),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSOrigins),
		metrics.Middleware(),
		middleware.ErrorHandler(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	var writeMiddleware []gin.HandlerFunc
	if redisClient != nil {
		limiter := middleware.NewRecipeWriteRateLimiter(redisClient, cfg.RateLimit, cfg.RateWindow, metrics)
		writeMiddleware = append(writeMiddleware, limiter.Middleware())
	}

	api.RegisterRoutes(router, db, service.NewRecipeService(db), writeMiddleware...)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and blocks until the server
// stops. A graceful Shutdown is not reported as an error.
func (s *Server) Start() error {
	logger.L().Info("server running", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
