// Package elastic implements the search repository on top of the official
// Elasticsearch Go client.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/tidwall/gjson"

	"elastic-views/internal/domain/entity"
	"elastic-views/internal/observability/metrics"
	"elastic-views/internal/repository"
)

var _ repository.SearchRepository = (*Client)(nil)

// ErrMalformedResponse is returned when the backend answers with a body
// that is not a search response.
var ErrMalformedResponse = errors.New("elasticsearch: malformed search response")

// Config holds the connection settings of the Elasticsearch client.
type Config struct {
	Addresses []string
	Username  string
	Password  string
	APIKey    string

	// Timeout bounds one search round-trip. Zero disables it.
	Timeout time.Duration

	// Transport overrides the HTTP transport (used by tests).
	Transport http.RoundTripper
}

// Client queries Elasticsearch. It is safe for concurrent use.
type Client struct {
	es      *elasticsearch.Client
	timeout time.Duration
}

// NewClient creates a Client. No request is sent until the first search.
func NewClient(cfg Config) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		APIKey:    cfg.APIKey,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return &Client{es: es, timeout: cfg.Timeout}, nil
}

// Search runs q against index and returns the total hit count plus the
// hits of the requested window.
func (c *Client) Search(ctx context.Context, index string, q *entity.Query) (*entity.SearchResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(q); err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	start := time.Now()
	result, err := c.search(ctx, index, &body)
	duration := time.Since(start)

	switch {
	case err == nil:
		metrics.RecordSearch(index, metrics.StatusSuccess, duration, result.Total)
		slog.DebugContext(ctx, "elasticsearch search completed",
			slog.String("index", index),
			slog.Int64("total", result.Total),
			slog.Int("hits", len(result.Hits)),
			slog.Duration("duration", duration))
	case IsClientError(err):
		metrics.RecordSearch(index, metrics.StatusRejected, duration, 0)
	default:
		metrics.RecordSearch(index, metrics.StatusError, duration, 0)
	}
	return result, err
}

func (c *Client) search(ctx context.Context, index string, body io.Reader) (*entity.SearchResult, error) {
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(body),
		c.es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch search: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if res.IsError() {
		return nil, newBackendError(res.StatusCode, raw)
	}
	return parseSearchResponse(raw)
}

// Ping checks that the cluster answers.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch ping: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return &BackendError{StatusCode: res.StatusCode, Reason: res.Status()}
	}
	return nil
}

// parseSearchResponse reads hits.total (an integer before 7.0, an object
// with a value field since) and hits.hits.
func parseSearchResponse(raw []byte) (*entity.SearchResult, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrMalformedResponse
	}
	hits := gjson.GetBytes(raw, "hits")
	if !hits.IsObject() {
		return nil, ErrMalformedResponse
	}

	total := hits.Get("total")
	if total.IsObject() {
		total = total.Get("value")
	}

	docs := hits.Get("hits").Array()
	result := &entity.SearchResult{
		Total: total.Int(),
		Hits:  make([]entity.Hit, 0, len(docs)),
	}
	for _, doc := range docs {
		hit := entity.Hit{
			ID:    doc.Get("_id").String(),
			Index: doc.Get("_index").String(),
			Score: doc.Get("_score").Float(),
		}
		if src, ok := doc.Get("_source").Value().(map[string]interface{}); ok {
			hit.Source = src
		}
		result.Hits = append(result.Hits, hit)
	}
	return result, nil
}
