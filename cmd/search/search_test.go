package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const clusterResponse = `{
  "took": 2,
  "hits": {
    "total": {"value": 120, "relation": "eq"},
    "hits": [
      {"_index": "articles", "_id": "a1", "_score": 2.5, "_source": {"title": "Go"}},
      {"_index": "articles", "_id": "a2", "_score": 1.5, "_source": {"title": "Rust"}}
    ]
  }
}`

type fakeCluster struct {
	paths  []string
	bodies []string
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	f.paths = append(f.paths, r.URL.Path)
	f.bodies = append(f.bodies, string(raw))

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, clusterResponse)
}

func setupEnv(t *testing.T) *fakeCluster {
	t.Helper()
	for _, key := range []string{
		"SEARCH_CONFIG_FILE", "PAGINATION_PAGE_PARAM", "PAGINATION_PAGE_SIZE",
		"ELASTICSEARCH_USERNAME", "ELASTICSEARCH_PASSWORD", "ELASTICSEARCH_API_KEY",
		"SEARCH_PAGE_SIZE", "SEARCH_PAGE_PARAM", "SEARCH_TERM_PARAM", "SEARCH_DEFAULT_FIELD",
		"SEARCH_RESULT_NAME_FIELD", "SEARCH_RESULT_URL_TEMPLATE", "SEARCH_BREAKER_ENABLED",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("SEARCH_DEFAULT_INDEX", "articles")
	t.Chdir(t.TempDir())

	cluster := &fakeCluster{}
	srv := httptest.NewServer(cluster)
	t.Cleanup(srv.Close)
	t.Setenv("ELASTICSEARCH_URLS", srv.URL)
	return cluster
}

func TestSearchCommand(t *testing.T) {
	cluster := setupEnv(t)

	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(),
		[]string{"search", "--page", "2", "--index", "docs", "golang", "generics"})
	require.NoError(t, err)

	require.Len(t, cluster.bodies, 1)
	assert.Equal(t, "/docs/_search", cluster.paths[0])
	body := gjson.Parse(cluster.bodies[0])
	assert.Equal(t, int64(50), body.Get("from").Int())
	assert.Equal(t, int64(50), body.Get("size").Int())
	assert.Equal(t, "golang generics", body.Get("query.bool.must.0.query_string.query").String())

	out := gjson.Parse(stdout.String())
	assert.Equal(t, int64(120), out.Get("data.total_results").Int())
	assert.Equal(t, "docs", out.Get("data.elastic_index").String())
	assert.Equal(t, "golang generics", out.Get("data.elastic_query").String())
	assert.Equal(t, int64(2), out.Get("data.page.number").Int())
	assert.Equal(t, int64(3), out.Get("data.page.num_pages").Int())
	assert.Equal(t, "a1", out.Get("data.object_list.0.id").String())
	assert.Equal(t, 2.5, out.Get("data.object_list.0.score").Float())
}

func TestSearchCommand_Pretty(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(), []string{"search", "--pretty", "go"})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "\n  \"data\": {")
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Contains(t, decoded, "data")
}

func TestSearchCommand_MissingTerm(t *testing.T) {
	cluster := setupEnv(t)

	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(), []string{"search", "  "})

	require.ErrorIs(t, err, errNoTerm)
	assert.Empty(t, cluster.bodies)
	assert.Empty(t, stdout.String())
}

func TestSearchCommand_InvalidConfig(t *testing.T) {
	setupEnv(t)
	t.Setenv("SEARCH_PAGE_SIZE", "0")

	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(), []string{"search", "go"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
	assert.Empty(t, stdout.String())
}

func TestSearchCommand_TextFormat(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(), []string{"search", "--format", "text", "go"})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, `120 results for "go" in articles`)
	assert.Contains(t, out, "  1. [2.500] a1")
	assert.Contains(t, out, "  2. [1.500] a2")
	assert.Contains(t, out, "page 1 of 3")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes when not writing to a terminal")
}

func TestSearchCommand_UnknownFormat(t *testing.T) {
	cluster := setupEnv(t)

	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(), []string{"search", "--format", "xml", "go"})

	require.ErrorContains(t, err, `unknown format "xml"`)
	assert.Empty(t, cluster.bodies)
}
