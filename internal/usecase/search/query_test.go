package search_test

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elastic-views/internal/domain/entity"
	"elastic-views/internal/usecase/search"
)

func TestQueryTerm(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		param   string
		want    string
		wantErr bool
	}{
		{name: "default param", values: url.Values{"q": {"golang"}}, want: "golang"},
		{name: "custom param", values: url.Values{"term": {"rust"}}, param: "term", want: "rust"},
		{name: "raw term passed through", values: url.Values{"q": {`title:"go" AND tag:web`}}, want: `title:"go" AND tag:web`},
		{name: "missing", values: url.Values{}, wantErr: true},
		{name: "empty", values: url.Values{"q": {""}}, wantErr: true},
		{name: "whitespace kept as is", values: url.Values{"q": {"   "}}, want: "   "},
		{name: "wrong param", values: url.Values{"query": {"go"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := search.QueryTerm(tt.values, tt.param)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, search.ErrQueryTermNotFound))
				assert.True(t, search.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryBuilder_Build(t *testing.T) {
	t.Parallel()

	req, err := entity.NewQueryRequest("foo", 50, 25)
	require.NoError(t, err)

	q := search.QueryBuilder{DefaultField: "_all"}.Build(req)

	got, err := json.Marshal(q)
	require.NoError(t, err)

	var gotBody, wantBody map[string]any
	require.NoError(t, json.Unmarshal(got, &gotBody))
	require.NoError(t, json.Unmarshal([]byte(`{
		"query": {"bool": {
			"must": [{"query_string": {"default_field": "_all", "query": "foo"}}],
			"must_not": [],
			"should": []
		}},
		"from": 50,
		"size": 25,
		"sort": [],
		"aggs": {}
	}`), &wantBody))

	if diff := cmp.Diff(wantBody, gotBody); diff != "" {
		t.Errorf("query body mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "foo", q.Term())
}

func TestQueryBuilder_DefaultField(t *testing.T) {
	t.Parallel()

	req, err := entity.NewQueryRequest("bar", 0, 10)
	require.NoError(t, err)

	q := search.QueryBuilder{}.Build(req)

	require.Len(t, q.Query.Bool.Must, 1)
	assert.Equal(t, search.DefaultField, q.Query.Bool.Must[0].QueryString.DefaultField)
	assert.Equal(t, 0, q.From)
	assert.Equal(t, 10, q.Size)
}

func TestQueryBuilder_FreshBodyPerBuild(t *testing.T) {
	t.Parallel()

	req, err := entity.NewQueryRequest("foo", 0, 10)
	require.NoError(t, err)
	b := search.QueryBuilder{}

	first := b.Build(req)
	first.Sort = append(first.Sort, "_score")
	first.Aggregations["tags"] = map[string]any{}

	second := b.Build(req)
	assert.Empty(t, second.Sort)
	assert.Empty(t, second.Aggregations)
}
