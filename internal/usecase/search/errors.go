// Package search provides the keyword search use case: it reads the search
// term and page from request parameters, builds the backend query, executes
// it once per request and formats the hits for display.
package search

import "errors"

// Sentinel errors for search use case operations.
var (
	// ErrQueryTermNotFound indicates that the request carries no search term.
	// A missing or empty term is an invalid resource request, not an
	// empty result set, and is surfaced to clients as 404.
	ErrQueryTermNotFound = errors.New("search term not found")

	// ErrIndexNotConfigured indicates that no index name was configured.
	ErrIndexNotConfigured = errors.New("search index is required")

	// ErrRepositoryNotConfigured indicates that NewService got no backend.
	ErrRepositoryNotConfigured = errors.New("search repository is required")
)
