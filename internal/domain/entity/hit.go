// Package entity defines the core domain entities of the search layer.
// It contains the raw hits returned by the search backend, the query
// request built per HTTP request, and the backend query body.
package entity

// Hit represents one raw match returned by the search backend.
type Hit struct {
	ID     string
	Index  string
	Score  float64
	Source map[string]any
}

// SourceString returns the string value of a top-level _source field.
// Returns "" when the field is missing or not a string.
func (h Hit) SourceString(field string) string {
	if h.Source == nil {
		return ""
	}
	s, _ := h.Source[field].(string)
	return s
}

// SearchResult is the raw backend answer for one query.
// Total is the number of matching documents across all pages,
// Hits holds only the documents of the requested window.
type SearchResult struct {
	Total int64
	Hits  []Hit
}
