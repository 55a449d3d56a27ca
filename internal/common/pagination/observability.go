package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a paginated request with structured fields.
func LogRequest(logger *slog.Logger, requestID string, page int, window Window) {
	logger.Info("Paginated request",
		"request_id", requestID,
		"page", page,
		"limit", window.Size(),
		"range_start", window.Start,
		"range_end", window.End)
}

// LogResponse logs a paginated response with duration and status.
func LogResponse(logger *slog.Logger, requestID string, page Page, returnedCount int, duration time.Duration, statusCode int) {
	logger.Info("Paginated response",
		"request_id", requestID,
		"page", page.Number,
		"num_pages", page.NumPages,
		"total", page.Count,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError logs a failed paginated request. errMsg must already be safe to
// log; callers sanitize backend errors first.
func LogError(logger *slog.Logger, requestID string, page int, statusCode int, errMsg string, errorType string) {
	logger.Error("Pagination error",
		"request_id", requestID,
		"page", page,
		"status", statusCode,
		"error", errMsg,
		"error_type", errorType)
}
