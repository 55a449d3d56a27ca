package config

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config sources, in the order they are applied.
const (
	SourceDefaults = "defaults"
	SourceDotEnv   = "dotenv"
	SourceFile     = "file"
	SourceEnv      = "env"
)

// ConfigMetrics exposes how the configuration of a component was loaded.
type ConfigMetrics struct {
	// LoadTimestamp is the Unix time of the last successful load.
	LoadTimestamp prometheus.Gauge

	// ValidationErrorsTotal counts rejected values by field.
	ValidationErrorsTotal *prometheus.CounterVec

	// SourceActive is 1 for every source that contributed to the last load.
	SourceActive *prometheus.GaugeVec
}

// NewConfigMetrics registers the collectors for componentName.
// Must be called once per component; promauto panics on duplicates.
func NewConfigMetrics(componentName string) *ConfigMetrics {
	return &ConfigMetrics{
		LoadTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_load_timestamp", componentName),
			Help: fmt.Sprintf("Unix timestamp of last %s configuration load", componentName),
		}),
		ValidationErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_config_validation_errors_total", componentName),
			Help: fmt.Sprintf("Total number of %s configuration validation errors", componentName),
		}, []string{"field"}),
		SourceActive: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_source_active", componentName),
			Help: fmt.Sprintf("1 if the source contributed to the last %s configuration load", componentName),
		}, []string{"source"}),
	}
}

// RecordLoadTimestamp sets the load timestamp to now.
func (m *ConfigMetrics) RecordLoadTimestamp() {
	m.LoadTimestamp.SetToCurrentTime()
}

// RecordValidationError counts one rejected value of field.
func (m *ConfigMetrics) RecordValidationError(field string) {
	m.ValidationErrorsTotal.WithLabelValues(field).Inc()
}

// SetSources marks exactly the given sources as active.
func (m *ConfigMetrics) SetSources(sources ...string) {
	for _, s := range []string{SourceDefaults, SourceDotEnv, SourceFile, SourceEnv} {
		m.SourceActive.WithLabelValues(s).Set(0)
	}
	for _, s := range sources {
		m.SourceActive.WithLabelValues(s).Set(1)
	}
}

var searchMetrics = NewConfigMetrics("search")
