package entity

import "fmt"

// QueryRequest is the backend-independent description of one search:
// the raw term plus the offset window. It is a value type and is never
// mutated after construction.
type QueryRequest struct {
	Term   string
	Offset int
	Limit  int
}

// NewQueryRequest validates and returns a QueryRequest.
func NewQueryRequest(term string, offset, limit int) (QueryRequest, error) {
	if term == "" {
		return QueryRequest{}, &ValidationError{Field: "term", Message: "is required"}
	}
	if offset < 0 {
		return QueryRequest{}, &ValidationError{Field: "offset", Message: fmt.Sprintf("must be >= 0, got %d", offset)}
	}
	if limit <= 0 {
		return QueryRequest{}, &ValidationError{Field: "limit", Message: fmt.Sprintf("must be > 0, got %d", limit)}
	}
	return QueryRequest{Term: term, Offset: offset, Limit: limit}, nil
}

// Query is the request body sent to the Elasticsearch _search endpoint.
//
// Sort and Aggregations are always present and empty. They are kept as
// inert pass-through sections so callers can extend the body.
type Query struct {
	Query        BoolQuery      `json:"query"`
	From         int            `json:"from"`
	Size         int            `json:"size"`
	Sort         []any          `json:"sort"`
	Aggregations map[string]any `json:"aggs"`
}

// BoolQuery wraps the bool compound clause.
type BoolQuery struct {
	Bool BoolClause `json:"bool"`
}

// BoolClause holds the must / must_not / should clause lists.
type BoolClause struct {
	Must    []QueryClause `json:"must"`
	MustNot []QueryClause `json:"must_not"`
	Should  []QueryClause `json:"should"`
}

// QueryClause is a single leaf clause. Only query_string is used.
type QueryClause struct {
	QueryString *QueryString `json:"query_string,omitempty"`
}

// QueryString is a full-text match over DefaultField with the raw term.
type QueryString struct {
	DefaultField string `json:"default_field"`
	Query        string `json:"query"`
}

// Term returns the term of the first query_string clause, or "".
func (q *Query) Term() string {
	for _, c := range q.Query.Bool.Must {
		if c.QueryString != nil {
			return c.QueryString.Query
		}
	}
	return ""
}
