package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver string
	DBDSN    string

	// Rate limiting. Disabled when RedisURL is empty.
	RedisURL   string
	RateLimit  int
	RateWindow time.Duration

	CORSOrigins []string

	// Logging
	LogLevel  string
	LogFormat string
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RateLimitEnabled reports whether mutating routes should be rate limited
func (c *Config) RateLimitEnabled() bool {
	return c.RedisURL != ""
}

func setDefaults(v *viper.Viper, env Environment) {
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_DSN", ":memory:")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_LIMIT", 60)
	v.SetDefault("RATE_WINDOW", time.Minute)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", env.DefaultLogFormat())
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to defaults that run the service against an in-memory database
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v, env)

	cfg := &Config{
		Env:         env,
		ServerPort:  v.GetString("SERVER_PORT"),
		ServerHost:  v.GetString("SERVER_HOST"),
		DBDriver:    strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:       v.GetString("DB_DSN"),
		RedisURL:    v.GetString("REDIS_URL"),
		RateLimit:   v.GetInt("RATE_LIMIT"),
		RateWindow:  v.GetDuration("RATE_WINDOW"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
