// Package http provides the HTTP surface of the search service: health check
// endpoints, metrics collection and the middleware chain shared by the
// search views.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy", "degraded" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// Pinger is satisfied by the Elasticsearch client.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerState reports whether the backend circuit breaker currently rejects calls.
type BreakerState interface {
	IsOpen() bool
}

// HealthHandler handles health check endpoint requests.
// It pings the search backend and reports circuit breaker status.
type HealthHandler struct {
	Backend Pinger
	Index   string
	Version string

	// Breaker is optional; nil when the breaker is disabled.
	Breaker BreakerState
}

// ServeHTTP performs health checks and returns the application health status.
// Returns 200 OK if healthy, or 503 Service Unavailable if any check fails.
// An open circuit breaker is reported as "degraded", not as a failure.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	// バックエンド接続チェック
	if h.Backend != nil {
		check := h.checkBackend(ctx)
		checks["elasticsearch"] = check
		if check.Status == "unhealthy" {
			allHealthy = false
		}
	} else {
		checks["elasticsearch"] = CheckStatus{
			Status:  "unhealthy",
			Message: "not configured",
		}
		allHealthy = false
	}

	if h.Breaker != nil {
		checks["circuit_breaker"] = h.checkBreaker()
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Warn("health: failed to encode response", slog.Any("error", err))
	}
}

func (h *HealthHandler) checkBackend(ctx context.Context) CheckStatus {
	start := time.Now()
	if err := h.Backend.Ping(ctx); err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "ping failed",
		}
	}
	details := map[string]any{
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if h.Index != "" {
		details["index"] = h.Index
	}
	return CheckStatus{
		Status:  "healthy",
		Details: details,
	}
}

func (h *HealthHandler) checkBreaker() CheckStatus {
	if h.Breaker.IsOpen() {
		return CheckStatus{
			Status:  "degraded",
			Message: "circuit breaker open, backend calls rejected",
		}
	}
	return CheckStatus{Status: "healthy"}
}

// ReadyHandler handles Kubernetes readiness probe requests.
// It checks that the search backend answers a ping.
type ReadyHandler struct {
	Backend Pinger
}

// ServeHTTP returns 200 OK if ready, or 503 Service Unavailable if the
// backend is not reachable.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Backend == nil {
		http.Error(w, "search backend not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.Backend.Ping(ctx); err != nil {
		http.Error(w, "search backend not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Warn("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler handles Kubernetes liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 OK while the process is able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Warn("alive: failed to write response", slog.Any("error", err))
	}
}
