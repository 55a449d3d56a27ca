package search

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"elastic-views/internal/common/pagination"
	"elastic-views/internal/domain/entity"
	"elastic-views/internal/handler/http/requestid"
	"elastic-views/internal/handler/http/respond"
	"elastic-views/internal/resilience/circuitbreaker"
	searchUC "elastic-views/internal/usecase/search"
)

// Error types reported through pagination.RecordError.
const (
	errTypeNotFound = "not_found"
	errTypeBackend  = "backend"
	errTypeConfig   = "config"
	errTypeRender   = "render"
)

// classify maps a failure of the search flow to a status code and a message
// that is safe to show. Backend details only reach the log.
func classify(err error) (int, string) {
	switch {
	case searchUC.IsNotFound(err):
		return http.StatusNotFound, "search term not found"
	case errors.Is(err, circuitbreaker.ErrOpenState), errors.Is(err, circuitbreaker.ErrTooManyRequests):
		return http.StatusServiceUnavailable, "search temporarily unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "search timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// errorType labels err for the pagination error counter.
func errorType(err error) string {
	var vErr *entity.ValidationError
	switch {
	case searchUC.IsNotFound(err):
		return errTypeNotFound
	case errors.Is(err, searchUC.ErrIndexNotConfigured),
		errors.Is(err, pagination.ErrTotalCountNotConfigured),
		errors.Is(err, pagination.ErrInvalidPageSize),
		errors.As(err, &vErr):
		return errTypeConfig
	default:
		return errTypeBackend
	}
}

// observeFailure counts a failed request and logs it when it is the server's fault.
func observeFailure(ctx context.Context, logger *slog.Logger, view string, page, code int, errType string, err error) {
	pagination.RecordRequest(code, page)
	pagination.RecordError(errType)
	if code < http.StatusInternalServerError {
		return
	}
	pagination.LogError(logger.With(slog.String("view", view)),
		requestid.FromContext(ctx), page, code, respond.SanitizeError(err), errType)
}

// observeSuccess counts a served page and logs its size and latency.
func observeSuccess(ctx context.Context, logger *slog.Logger, view string, data *searchUC.Data, start time.Time) {
	elapsed := time.Since(start)
	pagination.RecordDuration("handler", elapsed.Seconds())
	pagination.RecordRequest(http.StatusOK, data.Page.Number)
	pagination.LogResponse(logger.With(slog.String("view", view)),
		requestid.FromContext(ctx), data.Page, len(data.Results), elapsed, http.StatusOK)
}
