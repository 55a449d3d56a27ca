// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware opens a server span per request and returns its trace
// id in the X-Trace-Id header. Search execution opens a child span around
// each Elasticsearch round-trip. Exporters are configured by the process
// through the global otel TracerProvider.
//
// Example usage:
//
//	handler := tracing.Middleware(mux)
//
//	func search(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "search.execute")
//	    defer span.End()
//	}
package tracing
