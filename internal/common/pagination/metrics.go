package pagination

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts the total number of paginated search requests.
	// Labels: status (HTTP status code), page_range (page bucket: 1-10, 11-50, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_pagination_requests_total",
			Help: "Total number of paginated search requests",
		},
		[]string{"status", "page_range"},
	)

	// DurationSeconds tracks request duration distribution.
	// Labels: operation (handler, backend)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_pagination_duration_seconds",
			Help:    "Request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// NormalizedTotal counts page numbers that were clamped to the first or last page.
	// Labels: reason (not_an_integer, empty_page)
	NormalizedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_pagination_normalized_total",
			Help: "Total number of requested pages resolved to the first or last page",
		},
		[]string{"reason"},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (not_found, backend, config, render)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a pagination request metric.
func RecordRequest(statusCode int, page int) {
	pageRange := getPageRangeBucket(page)
	RequestsTotal.WithLabelValues(
		fmt.Sprintf("%d", statusCode),
		pageRange,
	).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// RecordNormalized records a page number resolved by the fallback policy.
func RecordNormalized(reason string) {
	NormalizedTotal.WithLabelValues(reason).Inc()
}

// RecordError records an error metric.
// errorType should be one of: "not_found", "backend", "config", "render"
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// getPageRangeBucket returns the page range bucket for a given page number.
func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
