package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	require.NotNil(t, wrapped)
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
	assert.False(t, wrapped.Written())
}

func TestWrap_Idempotent(t *testing.T) {
	outer := Wrap(httptest.NewRecorder())
	inner := Wrap(outer)

	assert.Same(t, outer, inner)

	inner.WriteHeader(http.StatusNotFound)
	_, _ = inner.Write([]byte("missing"))

	assert.Equal(t, http.StatusNotFound, outer.StatusCode())
	assert.Equal(t, len("missing"), outer.BytesWritten())
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "status 200", statusCode: http.StatusOK},
		{name: "status 404", statusCode: http.StatusNotFound},
		{name: "status 429", statusCode: http.StatusTooManyRequests},
		{name: "status 500", statusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			wrapped := Wrap(rec)

			wrapped.WriteHeader(tt.statusCode)

			assert.Equal(t, tt.statusCode, wrapped.StatusCode())
			assert.True(t, wrapped.Written())
			assert.Equal(t, tt.statusCode, rec.Code)
		})
	}
}

func TestResponseWriter_WriteHeader_MultipleCallsIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusServiceUnavailable)
	wrapped.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusServiceUnavailable, wrapped.StatusCode())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n, err := wrapped.Write([]byte(`{"data":`))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = wrapped.Write([]byte(`{}}`))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, 11, wrapped.BytesWritten())
	assert.Equal(t, http.StatusOK, wrapped.StatusCode(), "implicit 200")
	assert.True(t, wrapped.Written())
	assert.Equal(t, `{"data":{}}`, rec.Body.String())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, wrapped.Written())
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.Equal(t, rec, wrapped.Unwrap())
}

func TestResponseWriter_WithHandler(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "query term not found", http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)
	handler.ServeHTTP(wrapped, httptest.NewRequest(http.MethodGet, "/search/", nil))

	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode())
	assert.Equal(t, rec.Body.Len(), wrapped.BytesWritten())
}
