package config

import (
	"os"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	// CI environment is automatically detected
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch env := Environment(os.Getenv("ENV")); env {
	case Production, Test, Development:
		return env
	default:
		return Development
	}
}

// DefaultLogFormat returns console output for local work and JSON elsewhere
func (e Environment) DefaultLogFormat() string {
	if e == Development {
		return "console"
	}
	return "json"
}

// IsProduction returns true if the environment is production
func (e Environment) IsProduction() bool {
	return e == Production
}
