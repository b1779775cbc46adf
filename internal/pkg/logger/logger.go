// Package logger provides the process-wide structured logger.
//
// JSON output in production, console output for local development.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu          sync.RWMutex
	global      = zap.NewNop()
	atomicLevel = zap.NewAtomicLevel()
)

// Init builds the global logger.
// level: debug, info, warn, error
// format: json or console
func Init(level, format string) error {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json", "":
		cfg = zap.NewProductionConfig()
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = lvl

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	mu.Lock()
	global = l
	atomicLevel = lvl
	mu.Unlock()
	return nil
}

// Set replaces the global logger. Tests use it with zaptest/observer.
func Set(l *zap.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

// L returns the global logger. It is a no-op logger until Init is called.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Level returns the current log level.
func Level() zapcore.Level {
	mu.RLock()
	defer mu.RUnlock()
	return atomicLevel.Level()
}

// Sync flushes any buffered log entries.
func Sync() error {
	return L().Sync()
}
