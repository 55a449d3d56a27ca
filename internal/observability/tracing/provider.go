package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ProviderConfig configures the process-wide tracer provider.
type ProviderConfig struct {
	ServiceName string
	Version     string
	// SampleRatio is the fraction of root spans recorded, 0 to 1.
	SampleRatio float64
	// Exporters receive finished spans. Without any, spans still carry
	// valid trace IDs for log correlation but are not shipped anywhere.
	Exporters []sdktrace.SpanExporter
}

// InitProvider installs an SDK tracer provider and W3C propagation as the
// otel globals. Callers must Shutdown the returned provider on exit to
// flush pending spans.
func InitProvider(cfg ProviderConfig) *sdktrace.TracerProvider {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithResource(sdkresource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", cfg.Version),
		)),
	}
	for _, exp := range cfg.Exporters {
		opts = append(opts, sdktrace.WithBatcher(exp))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	tracer = tp.Tracer("elastic-views")
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp
}
