package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		term      string
		offset    int
		limit     int
		wantField string
	}{
		{name: "valid", term: "foo", offset: 50, limit: 25},
		{name: "first window", term: "foo bar", offset: 0, limit: 1},
		{name: "empty term", term: "", offset: 0, limit: 25, wantField: "term"},
		{name: "whitespace term", term: "   ", offset: 0, limit: 25},
		{name: "negative offset", term: "foo", offset: -1, limit: 25, wantField: "offset"},
		{name: "zero limit", term: "foo", offset: 0, limit: 0, wantField: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := NewQueryRequest(tt.term, tt.offset, tt.limit)
			if tt.wantField != "" {
				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.wantField, vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, QueryRequest{Term: tt.term, Offset: tt.offset, Limit: tt.limit}, req)
		})
	}
}

func TestQuery_Term(t *testing.T) {
	q := &Query{Query: BoolQuery{Bool: BoolClause{Must: []QueryClause{
		{QueryString: &QueryString{DefaultField: "*", Query: "golang"}},
	}}}}
	assert.Equal(t, "golang", q.Term())

	assert.Equal(t, "", (&Query{}).Term())
}

func TestHit_SourceString(t *testing.T) {
	h := Hit{ID: "1", Source: map[string]any{"title": "Go", "views": 3}}
	assert.Equal(t, "Go", h.SourceString("title"))
	assert.Equal(t, "", h.SourceString("views"))
	assert.Equal(t, "", h.SourceString("missing"))
	assert.Equal(t, "", Hit{}.SourceString("title"))
}
