package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/database"
	"github.com/pageza/recipes/backend/internal/pkg/logger"
	"github.com/pageza/recipes/backend/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	lg := logger.L()

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		lg.Fatal("failed to prepare schema", zap.Error(err))
	}

	// Rate limiting is optional; run without it if Redis is unreachable
	var redisClient *redis.Client
	if cfg.RateLimitEnabled() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			lg.Warn("rate limiting disabled", zap.Error(err))
			redisClient = nil
		}
	}

	srv := server.NewServer(cfg, db, redisClient)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			lg.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		lg.Info("received signal", zap.String("signal", sig.String()))
	}

	lg.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error("server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := database.Close(db); err != nil {
		lg.Error("failed to close database", zap.Error(err))
	}
	lg.Info("server stopped")
}
