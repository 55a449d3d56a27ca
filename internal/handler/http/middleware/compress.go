package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"elastic-views/pkg/config"
)

// CompressConfig configures gzip compression of responses.
type CompressConfig struct {
	Enabled bool
	// MinSize is the smallest body, in bytes, worth compressing.
	MinSize int
}

// LoadCompressConfig reads SEARCH_GZIP_ENABLED (default true) and
// SEARCH_GZIP_MIN_SIZE (default 1024).
func LoadCompressConfig() CompressConfig {
	return CompressConfig{
		Enabled: config.GetEnvBool("SEARCH_GZIP_ENABLED", true),
		MinSize: config.GetEnvInt("SEARCH_GZIP_MIN_SIZE", gzhttp.DefaultMinSize),
	}
}

// Compress gzips responses for clients that accept it. Result pages are
// repetitive HTML/JSON and compress well.
func Compress(cfg CompressConfig) (func(http.Handler) http.Handler, error) {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }, nil
	}
	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(cfg.MinSize))
	if err != nil {
		return nil, fmt.Errorf("gzip wrapper: %w", err)
	}
	return func(next http.Handler) http.Handler {
		return wrapper(next)
	}, nil
}
