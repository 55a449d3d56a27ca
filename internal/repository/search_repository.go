// Package repository declares the storage-side interfaces consumed by the use cases.
package repository

import (
	"context"

	"elastic-views/internal/domain/entity"
)

// SearchRepository executes a query body against a named search index.
type SearchRepository interface {
	// Search runs q against index. The result carries the hits of the
	// window selected by q.From/q.Size and the total number of matches.
	// Backend failures (connection, malformed query, timeout) are returned
	// as errors and are never retried.
	Search(ctx context.Context, index string, q *entity.Query) (*entity.SearchResult, error)
}
