package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded values can actually be used to
// start the server
func ValidateConfig(cfg *Config) error {
	var errs []error

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.DBDSN == "" {
		errs = append(errs, ValidationError{Field: "DB_DSN", Message: "must not be empty"})
	}

	for _, origin := range cfg.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, ValidationError{Field: "CORS_ORIGINS", Message: fmt.Sprintf("invalid origin %q", origin)})
		}
	}

	if cfg.RateLimitEnabled() {
		if cfg.RateLimit <= 0 {
			errs = append(errs, ValidationError{Field: "RATE_LIMIT", Message: "must be positive"})
		}
		if cfg.RateWindow <= 0 {
			errs = append(errs, ValidationError{Field: "RATE_WINDOW", Message: "must be positive"})
		}
	}

	return errors.Join(errs...)
}
