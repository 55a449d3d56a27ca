package circuitbreaker

import (
	"context"
	"errors"

	"elastic-views/internal/domain/entity"
	"elastic-views/internal/repository"
)

// SearchBreaker protects a SearchRepository. While the circuit is open,
// Search fails immediately with ErrOpenState and the backend is not
// contacted. Failed calls are never retried.
type SearchBreaker struct {
	cb   *CircuitBreaker
	next repository.SearchRepository
}

// NewSearchBreaker wraps next with ElasticsearchConfig.
func NewSearchBreaker(next repository.SearchRepository) *SearchBreaker {
	return NewSearchBreakerWithConfig(next, ElasticsearchConfig())
}

// NewSearchBreakerWithConfig wraps next with a custom configuration.
// Cancelled requests are not counted as failures unless cfg says otherwise.
func NewSearchBreakerWithConfig(next repository.SearchRepository, cfg Config) *SearchBreaker {
	if cfg.IsSuccessful == nil {
		cfg.IsSuccessful = func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		}
	}
	return &SearchBreaker{cb: New(cfg), next: next}
}

// Search runs the query through the circuit breaker.
func (b *SearchBreaker) Search(ctx context.Context, index string, q *entity.Query) (*entity.SearchResult, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Search(ctx, index, q)
	})
	if err != nil {
		return nil, err
	}
	return res.(*entity.SearchResult), nil
}

// IsOpen reports whether searches are currently rejected.
func (b *SearchBreaker) IsOpen() bool {
	return b.cb.IsOpen()
}

// Breaker returns the underlying circuit breaker.
func (b *SearchBreaker) Breaker() *CircuitBreaker {
	return b.cb
}
