package elastic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elastic-views/internal/domain/entity"
)

// fakeCluster answers like an Elasticsearch node.
type fakeCluster struct {
	status   int
	body     string
	delay    time.Duration
	requests []*http.Request
	bodies   []string
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	f.requests = append(f.requests, r)
	f.bodies = append(f.bodies, string(raw))
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodHead {
		w.WriteHeader(f.status)
		return
	}
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func newTestClient(t *testing.T, cluster *fakeCluster, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(cluster)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{Addresses: []string{srv.URL}, Timeout: timeout})
	require.NoError(t, err)
	return c
}

func testQuery() *entity.Query {
	return &entity.Query{
		Query: entity.BoolQuery{Bool: entity.BoolClause{
			Must: []entity.QueryClause{{QueryString: &entity.QueryString{DefaultField: "*", Query: "foo"}}},
			MustNot: []entity.QueryClause{},
			Should:  []entity.QueryClause{},
		}},
		From:         50,
		Size:         25,
		Sort:         []any{},
		Aggregations: map[string]any{},
	}
}

const modernResponse = `{
  "took": 3,
  "hits": {
    "total": {"value": 120, "relation": "eq"},
    "max_score": 2.5,
    "hits": [
      {"_index": "articles", "_id": "1", "_score": 2.5, "_source": {"title": "Go", "slug": "go"}},
      {"_index": "articles", "_id": "2", "_score": 1.25, "_source": {"title": "Rust"}}
    ]
  }
}`

func TestClient_Search(t *testing.T) {
	cluster := &fakeCluster{status: http.StatusOK, body: modernResponse}
	c := newTestClient(t, cluster, 0)

	res, err := c.Search(context.Background(), "articles", testQuery())

	require.NoError(t, err)
	assert.Equal(t, int64(120), res.Total)
	want := []entity.Hit{
		{ID: "1", Index: "articles", Score: 2.5, Source: map[string]any{"title": "Go", "slug": "go"}},
		{ID: "2", Index: "articles", Score: 1.25, Source: map[string]any{"title": "Rust"}},
	}
	if diff := cmp.Diff(want, res.Hits); diff != "" {
		t.Errorf("hits mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, cluster.requests, 1)
	req := cluster.requests[0]
	assert.Equal(t, "/articles/_search", req.URL.Path)
	assert.Equal(t, "true", req.URL.Query().Get("track_total_hits"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(cluster.bodies[0]), &sent))
	assert.Equal(t, float64(50), sent["from"])
	assert.Equal(t, float64(25), sent["size"])
	assert.Equal(t, map[string]any{}, sent["aggs"])
	assert.Equal(t, []any{}, sent["sort"])
}

func TestParseSearchResponse(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTotal int64
		wantHits  int
		wantErr   error
	}{
		{
			name:      "object total",
			body:      `{"hits":{"total":{"value":7,"relation":"eq"},"hits":[{"_id":"a","_score":1}]}}`,
			wantTotal: 7,
			wantHits:  1,
		},
		{
			name:      "legacy integer total",
			body:      `{"hits":{"total":42,"hits":[{"_id":"a","_score":1},{"_id":"b","_score":0.5}]}}`,
			wantTotal: 42,
			wantHits:  2,
		},
		{
			name:      "no hits",
			body:      `{"hits":{"total":{"value":0},"hits":[]}}`,
			wantTotal: 0,
			wantHits:  0,
		},
		{
			name:    "invalid json",
			body:    `{"hits":`,
			wantErr: ErrMalformedResponse,
		},
		{
			name:    "missing hits",
			body:    `{"acknowledged":true}`,
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := parseSearchResponse([]byte(tt.body))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Len(t, res.Hits, tt.wantHits)
		})
	}
}

func TestParseSearchResponse_NullScoreAndSource(t *testing.T) {
	res, err := parseSearchResponse([]byte(`{"hits":{"total":1,"hits":[{"_id":"a","_index":"i","_score":null}]}}`))

	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, entity.Hit{ID: "a", Index: "i"}, res.Hits[0])
}

func TestClient_Search_BackendError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantType   string
		wantReason string
		client     bool
	}{
		{
			name:       "query parse failure",
			status:     http.StatusBadRequest,
			body:       `{"error":{"type":"search_phase_execution_exception","reason":"all shards failed"},"status":400}`,
			wantType:   "search_phase_execution_exception",
			wantReason: "all shards failed",
			client:     true,
		},
		{
			name:       "missing index",
			status:     http.StatusNotFound,
			body:       `{"error":{"type":"index_not_found_exception","reason":"no such index [articles]"},"status":404}`,
			wantType:   "index_not_found_exception",
			wantReason: "no such index [articles]",
			client:     true,
		},
		{
			name:       "legacy string error",
			status:     http.StatusInternalServerError,
			body:       `{"error":"SearchPhaseExecutionException[boom]","status":500}`,
			wantReason: "SearchPhaseExecutionException[boom]",
		},
		{
			name:       "throttled",
			status:     http.StatusTooManyRequests,
			body:       `{}`,
			wantReason: "Too Many Requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, &fakeCluster{status: tt.status, body: tt.body}, 0)

			res, err := c.Search(context.Background(), "articles", testQuery())

			require.Error(t, err)
			assert.Nil(t, res)
			var be *BackendError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tt.status, be.StatusCode)
			assert.Equal(t, tt.wantType, be.Type)
			assert.Equal(t, tt.wantReason, be.Reason)
			assert.Equal(t, tt.client, IsClientError(err))
		})
	}
}

func TestClient_Search_Timeout(t *testing.T) {
	c := newTestClient(t, &fakeCluster{status: http.StatusOK, body: modernResponse, delay: time.Second}, 50*time.Millisecond)

	_, err := c.Search(context.Background(), "articles", testQuery())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Ping(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		c := newTestClient(t, &fakeCluster{status: http.StatusOK}, 0)
		assert.NoError(t, c.Ping(context.Background()))
	})

	t.Run("unavailable", func(t *testing.T) {
		c := newTestClient(t, &fakeCluster{status: http.StatusServiceUnavailable}, 0)

		err := c.Ping(context.Background())

		var be *BackendError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, http.StatusServiceUnavailable, be.StatusCode)
	})
}

func TestIsClientError(t *testing.T) {
	assert.False(t, IsClientError(nil))
	assert.False(t, IsClientError(errors.New("dial tcp: refused")))
	assert.True(t, IsClientError(&BackendError{StatusCode: 400}))
	assert.False(t, IsClientError(&BackendError{StatusCode: 503}))
}
