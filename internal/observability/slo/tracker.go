package slo

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"slices"
	"sync"
	"time"

	"elastic-views/internal/handler/http/responsewriter"
)

// DefaultMaxSamples bounds the latency samples kept per window.
const DefaultMaxSamples = 10000

// Snapshot summarises one window.
type Snapshot struct {
	Requests     int
	ServerErrors int
	Availability float64
	ErrorRate    float64
	LatencyP95   time.Duration
	LatencyP99   time.Duration
}

// Tracker collects request outcomes and publishes them to the SLO gauges.
// It is safe for concurrent use.
type Tracker struct {
	mu         sync.Mutex
	requests   int
	serverErrs int
	latencies  []time.Duration
	maxSamples int
}

// NewTracker returns a Tracker keeping at most maxSamples latencies per
// window. maxSamples <= 0 means DefaultMaxSamples.
func NewTracker(maxSamples int) *Tracker {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	return &Tracker{maxSamples: maxSamples}
}

// Observe records one response.
func (t *Tracker) Observe(status int, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests++
	if status >= 500 {
		t.serverErrs++
	}
	if len(t.latencies) < t.maxSamples {
		t.latencies = append(t.latencies, d)
	}
}

// Snapshot returns the current window without resetting it.
// An empty window reports full availability.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() Snapshot {
	s := Snapshot{Requests: t.requests, ServerErrors: t.serverErrs, Availability: 1}
	if t.requests == 0 {
		return s
	}
	s.ErrorRate = float64(t.serverErrs) / float64(t.requests)
	s.Availability = 1 - s.ErrorRate

	sorted := slices.Clone(t.latencies)
	slices.Sort(sorted)
	s.LatencyP95 = percentile(sorted, 0.95)
	s.LatencyP99 = percentile(sorted, 0.99)
	return s
}

// Flush publishes the current window to the gauges and starts a new one.
func (t *Tracker) Flush() Snapshot {
	t.mu.Lock()
	s := t.snapshotLocked()
	t.requests, t.serverErrs = 0, 0
	t.latencies = t.latencies[:0]
	t.mu.Unlock()

	UpdateAvailability(s.Availability)
	UpdateErrorRate(s.ErrorRate)
	UpdateLatencyP95(s.LatencyP95.Seconds())
	UpdateLatencyP99(s.LatencyP99.Seconds())
	return s
}

// Run flushes every interval until ctx is cancelled.
func (t *Tracker) Run(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := t.Flush()
			if s.Requests == 0 {
				continue
			}
			if s.Availability*100 < AvailabilitySLO {
				logger.Warn("search availability below SLO",
					slog.Float64("availability", s.Availability),
					slog.Int("requests", s.Requests),
					slog.Int("server_errors", s.ServerErrors))
			}
			if s.LatencyP95.Seconds() > LatencyP95SLO {
				logger.Warn("search p95 latency above SLO",
					slog.Duration("p95", s.LatencyP95),
					slog.Int("requests", s.Requests))
			}
		}
	}
}

// Middleware observes every response of next.
func (t *Tracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := responsewriter.Wrap(w)
		next.ServeHTTP(wrapped, r)
		t.Observe(wrapped.StatusCode(), time.Since(start))
	})
}

// percentile uses the nearest-rank method on sorted samples.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	return sorted[rank]
}
