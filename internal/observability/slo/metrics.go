// Package slo tracks the search views against their service level objectives.
package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets for the search views.
const (
	// AvailabilitySLO is the target share of non-5xx responses, in percent.
	AvailabilitySLO = 99.9

	// LatencyP95SLO is the p95 latency target in seconds.
	LatencyP95SLO = 0.300

	// LatencyP99SLO is the p99 latency target in seconds.
	LatencyP99SLO = 1.0

	// ErrorRateSLO is the maximum 5xx ratio.
	ErrorRateSLO = 0.001
)

// Gauges published by Tracker.Flush. Each describes the window since the
// previous flush.
var (
	// SLOAvailability is (requests - 5xx) / requests.
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_slo_availability_ratio",
			Help: "Search availability ratio (0-1) over the last window, target: 0.999",
		},
	)

	SLOLatencyP95 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_slo_latency_p95_seconds",
			Help: "Search p95 latency in seconds over the last window, target: 0.300",
		},
	)

	SLOLatencyP99 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_slo_latency_p99_seconds",
			Help: "Search p99 latency in seconds over the last window, target: 1.0",
		},
	)

	// SLOErrorRate is 5xx / requests.
	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_slo_error_rate_ratio",
			Help: "Search error rate ratio (0-1) over the last window, target: 0.001",
		},
	)
)

// UpdateAvailability sets the availability gauge.
func UpdateAvailability(ratio float64) {
	SLOAvailability.Set(ratio)
}

// UpdateLatencyP95 sets the p95 latency gauge.
func UpdateLatencyP95(seconds float64) {
	SLOLatencyP95.Set(seconds)
}

// UpdateLatencyP99 sets the p99 latency gauge.
func UpdateLatencyP99(seconds float64) {
	SLOLatencyP99.Set(seconds)
}

// UpdateErrorRate sets the error rate gauge.
func UpdateErrorRate(ratio float64) {
	SLOErrorRate.Set(ratio)
}
