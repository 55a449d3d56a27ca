// Package pagination provides count-only ("fake") pagination for search results:
// page arithmetic from a total count, page number parsing from request
// parameters, and the offset window handed to the search backend.
package pagination

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultPageParam is the query parameter holding the page number.
	DefaultPageParam = "p"
	// DefaultPageSize is the number of items per page when none is configured.
	DefaultPageSize = 25
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	PageParam string // Query parameter carrying the page number (typically "p")
	PageSize  int    // Items per page (typically 25)
}

// DefaultConfig returns the default pagination configuration.
// Default values: param=p, size=25
func DefaultConfig() Config {
	return Config{
		PageParam: DefaultPageParam,
		PageSize:  DefaultPageSize,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_PAGE_PARAM: Name of the page query parameter
//   - PAGINATION_PAGE_SIZE: Items per page
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	cfg := DefaultConfig()
	if param := os.Getenv("PAGINATION_PAGE_PARAM"); param != "" {
		cfg.PageParam = param
	}
	cfg.PageSize = getEnvAsInt("PAGINATION_PAGE_SIZE", cfg.PageSize)
	return cfg
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.PageParam == "" {
		return fmt.Errorf("page param cannot be empty")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be a positive integer, got %d", c.PageSize)
	}
	return nil
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
