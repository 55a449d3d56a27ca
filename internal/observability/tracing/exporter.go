package tracing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"elastic-views/pkg/config"
)

// ExporterConfig selects where spans are shipped.
type ExporterConfig struct {
	// Endpoint is the OTLP/gRPC collector address (host:port). Empty
	// disables exporting.
	Endpoint string
	Insecure bool
	// SampleRatio is the fraction of root spans recorded, 0 to 1.
	SampleRatio float64
}

// LoadExporterConfig reads OTEL_EXPORTER_OTLP_ENDPOINT,
// OTEL_EXPORTER_OTLP_INSECURE (default false) and OTEL_TRACES_SAMPLER_ARG
// (default 1). An endpoint given as a URL is reduced to host:port, and an
// http:// scheme implies insecure.
func LoadExporterConfig() ExporterConfig {
	cfg := ExporterConfig{
		Endpoint:    strings.TrimSpace(config.GetEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", "")),
		Insecure:    config.GetEnvBool("OTEL_EXPORTER_OTLP_INSECURE", false),
		SampleRatio: 1,
	}
	if after, ok := strings.CutPrefix(cfg.Endpoint, "http://"); ok {
		cfg.Endpoint, cfg.Insecure = after, true
	}
	cfg.Endpoint = strings.TrimSuffix(strings.TrimPrefix(cfg.Endpoint, "https://"), "/")

	if raw := config.GetEnvString("OTEL_TRACES_SAMPLER_ARG", ""); raw != "" {
		if ratio, err := strconv.ParseFloat(raw, 64); err == nil && ratio >= 0 && ratio <= 1 {
			cfg.SampleRatio = ratio
		}
	}
	return cfg
}

// NewExporters returns the span exporters for cfg; none when no endpoint
// is configured. The gRPC connection is established lazily, so a
// collector that is down does not fail startup.
func NewExporters(ctx context.Context, cfg ExporterConfig) ([]sdktrace.SpanExporter, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exp, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp trace exporter: %w", err)
	}
	return []sdktrace.SpanExporter{exp}, nil
}
