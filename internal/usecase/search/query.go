package search

import (
	"net/url"

	"elastic-views/internal/domain/entity"
)

const (
	// DefaultTermParam is the query parameter holding the search term.
	DefaultTermParam = "q"
	// DefaultField is the query_string default field. "*" matches all
	// indexed fields; clusters older than 6.0 use "_all".
	DefaultField = "*"
)

// TermFunc extracts the search term from request parameters.
type TermFunc func(values url.Values) (string, error)

// QueryTerm returns the value of param, or ErrQueryTermNotFound when the
// parameter is absent or empty. The term is passed to the backend as is.
func QueryTerm(values url.Values, param string) (string, error) {
	if param == "" {
		param = DefaultTermParam
	}
	term := values.Get(param)
	if term == "" {
		return "", ErrQueryTermNotFound
	}
	return term, nil
}

// ParamTerm returns a TermFunc reading param.
func ParamTerm(param string) TermFunc {
	return func(values url.Values) (string, error) {
		return QueryTerm(values, param)
	}
}

// QueryBuilder turns a QueryRequest into an Elasticsearch query body.
type QueryBuilder struct {
	DefaultField string
}

// Build returns a full-text query_string match of req.Term over the default
// field, windowed by req.Offset and req.Limit. Sort and aggregation sections
// are present and empty. Build is pure: every call returns a fresh body.
func (b QueryBuilder) Build(req entity.QueryRequest) *entity.Query {
	field := b.DefaultField
	if field == "" {
		field = DefaultField
	}
	return &entity.Query{
		Query: entity.BoolQuery{
			Bool: entity.BoolClause{
				Must: []entity.QueryClause{{
					QueryString: &entity.QueryString{
						DefaultField: field,
						Query:        req.Term,
					},
				}},
				MustNot: []entity.QueryClause{},
				Should:  []entity.QueryClause{},
			},
		},
		From:         req.Offset,
		Size:         req.Limit,
		Sort:         []any{},
		Aggregations: map[string]any{},
	}
}
