// Package config holds small helpers for reading typed settings from the
// environment. Invalid values fall back to the default with a warning, so a
// typo in one variable never prevents startup on its own; callers validate
// the resulting struct.
package config

import (
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of key, or defaultValue when unset or empty.
//
//	index := GetEnvString("SEARCH_DEFAULT_INDEX", "")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns key parsed as a base-10 integer.
//
//	size := GetEnvInt("SEARCH_PAGE_SIZE", 50)
func GetEnvInt(key string, defaultValue int) int {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		warnInvalid(key, valueStr, strconv.Itoa(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvBool returns key parsed by strconv.ParseBool.
//
//	enabled := GetEnvBool("SEARCH_BREAKER_ENABLED", false)
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		warnInvalid(key, valueStr, strconv.FormatBool(defaultValue), err)
		return defaultValue
	}
	return value
}

// GetEnvDuration returns key parsed by time.ParseDuration ("500ms", "10s").
//
//	timeout := GetEnvDuration("ELASTICSEARCH_TIMEOUT", 10*time.Second)
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		warnInvalid(key, valueStr, defaultValue.String(), err)
		return defaultValue
	}
	return value
}

// GetEnvStringList returns a comma-separated list. Items are trimmed and
// empty items dropped; an all-empty value yields defaultValue.
//
//	// ELASTICSEARCH_URLS="http://es1:9200, http://es2:9200"
//	urls := GetEnvStringList("ELASTICSEARCH_URLS", []string{"http://localhost:9200"})
func GetEnvStringList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}

// ValidateURLs checks that every entry is an absolute http or https URL.
func ValidateURLs(urls []string) error {
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil {
			return &InvalidValueError{Value: raw, Reason: err.Error()}
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return &InvalidValueError{Value: raw, Reason: "scheme must be http or https"}
		}
		if u.Host == "" {
			return &InvalidValueError{Value: raw, Reason: "host is required"}
		}
	}
	return nil
}

func warnInvalid(key, value, defaultValue string, err error) {
	slog.Warn("invalid value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", value),
		slog.String("default", defaultValue),
		slog.String("error", err.Error()))
}
