// Package telemetry wires OpenTelemetry tracing for shinobiduel. Spans are
// exported over OTLP/HTTP, which Honeycomb accepts directly.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ServiceName is reported as service.name and prefixes every tracer.
	ServiceName    = "shinobiduel"
	serviceVersion = "0.1.0"
)

type options struct {
	exporter sdktrace.SpanExporter
	version  string
}

// Option configures Setup.
type Option func(*options)

// WithExporter replaces the OTLP exporter, e.g. with an in-memory one in tests.
func WithExporter(exp sdktrace.SpanExporter) Option {
	return func(o *options) { o.exporter = exp }
}

// WithVersion overrides the reported service.version.
func WithVersion(v string) Option {
	return func(o *options) { o.version = v }
}

// Setup installs a global tracer provider. Without WithExporter it uses an
// OTLP HTTP exporter configured from the standard OTEL_* variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT, e.g. https://api.honeycomb.io
//   - OTEL_EXPORTER_OTLP_HEADERS, e.g. x-honeycomb-team=<api-key>
//
// The returned shutdown flushes pending spans and must be called on exit.
func Setup(ctx context.Context, opts ...Option) (shutdown func(context.Context) error, err error) {
	o := options{version: serviceVersion}
	for _, opt := range opts {
		opt(&o)
	}

	if o.exporter == nil {
		o.exporter, err = otlptracehttp.New(ctx)
		if err != nil {
			return nil, err
		}
	}

	// Built without resource.Default() to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", ServiceName),
			attribute.String("service.version", o.version),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(o.exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for a component. Before Setup, or when it
// failed, this is the global no-op tracer.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(ServiceName + "/" + name)
}

// Flush exports every span ended so far. It is a no-op unless Setup installed
// the provider.
func Flush(ctx context.Context) error {
	if tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); ok {
		return tp.ForceFlush(ctx)
	}
	return nil
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
