package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/nati-tewolde/online-store"

// Config controls the process tracer provider.
type Config struct {
	ServiceName string
	Environment string
	Enabled     bool
}

// InitTracer installs an always-sampling tracer provider as the global
// provider. Spans are not exported anywhere; the provider exists so spans
// carry real trace and span IDs that the logger copies onto records.
// The returned shutdown function must be called on exit.
func InitTracer(cfg Config) (shutdown func(context.Context) error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("deployment.environment", cfg.Environment),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}

// Tracer returns a named tracer from the global provider. Without an
// installed provider the returned tracer is a no-op.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// TraceOperation starts an internal span for a store operation. The returned
// function must be called when the operation completes (typically via defer):
//
//	ctx, end := tracing.TraceOperation(ctx, "checkout.Checkout")
//	defer func() { end(err) }()
func TraceOperation(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := Tracer(tracerName).Start(ctx, operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// AddAttributes sets attributes on the span in ctx, if any.
func AddAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	trace.SpanFromContext(ctx).SetAttributes(attrs...)
}
