package search_test

import (
	"context"

	"elastic-views/internal/domain/entity"
)

// fakeRepo is a SearchRepository that records every call.
type fakeRepo struct {
	result  *entity.SearchResult
	err     error
	calls   int
	queries []*entity.Query
	indexes []string
}

func (f *fakeRepo) Search(_ context.Context, index string, q *entity.Query) (*entity.SearchResult, error) {
	f.calls++
	f.indexes = append(f.indexes, index)
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
