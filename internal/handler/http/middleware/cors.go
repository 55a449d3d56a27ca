package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"elastic-views/pkg/config"
)

// CORSConfig configures cross-origin access to the JSON search route.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// LoadCORSConfig reads CORS_ALLOWED_ORIGINS (comma-separated, default none)
// and CORS_MAX_AGE. Only read-only methods are ever allowed.
func LoadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: config.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         config.GetEnvInt("CORS_MAX_AGE", 600),
	}
}

// CORS returns a middleware built on rs/cors. With no allowed origins it
// is a pass-through and emits no CORS headers at all (rs/cors would
// otherwise default to every origin).
func CORS(cfg CORSConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{"X-Request-ID", "X-Trace-Id"},
		MaxAge:           cfg.MaxAge,
		AllowCredentials: false,
	})
	if logger != nil {
		logger.Info("CORS configured",
			slog.Any("allowed_origins", cfg.AllowedOrigins),
			slog.Int("max_age", cfg.MaxAge))
	}
	return c.Handler
}
