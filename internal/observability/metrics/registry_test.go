package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/search/", "200"))

	RecordHTTPRequest("GET", "/search/", "200", 15*time.Millisecond, 512)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/search/", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordSearch(t *testing.T) {
	tests := []struct {
		name   string
		index  string
		status string
		total  int64
	}{
		{name: "success", index: "metrics-test", status: StatusSuccess, total: 120},
		{name: "error", index: "metrics-test", status: StatusError},
		{name: "rejected", index: "metrics-test", status: StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(SearchQueriesTotal.WithLabelValues(tt.index, tt.status))

			assert.NotPanics(t, func() {
				RecordSearch(tt.index, tt.status, 20*time.Millisecond, tt.total)
			})

			after := testutil.ToFloat64(SearchQueriesTotal.WithLabelValues(tt.index, tt.status))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("metrics-test", 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("metrics-test")))

	SetCircuitBreakerState("metrics-test", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("metrics-test")))
}
