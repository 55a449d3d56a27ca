// Package resilience provides fault tolerance patterns for calls to the
// search backend.
//
// The package supports:
//   - Circuit breakers for Elasticsearch queries (fail fast, no retries)
//
// Usage Example:
//
//	repo := circuitbreaker.NewSearchBreaker(elasticClient)
//	result, err := repo.Search(ctx, "articles", query)
//	if errors.Is(err, circuitbreaker.ErrOpenState) {
//	    // backend considered unavailable
//	}
package resilience
