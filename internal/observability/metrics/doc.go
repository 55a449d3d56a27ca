// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the service-wide metrics:
//   - HTTP request metrics (duration, count, size)
//   - Search backend metrics (queries, latency, hit counts)
//   - Circuit breaker state
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "elastic-views/internal/observability/metrics"
//
//	func search(index string) {
//	    start := time.Now()
//	    // ... query Elasticsearch ...
//	    metrics.RecordSearch(index, metrics.StatusSuccess, time.Since(start), 42)
//	}
package metrics
