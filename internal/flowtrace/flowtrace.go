// Package flowtrace exports flow lifecycle events as OTLP spans. It is
// entirely optional: when no OTLP endpoint is configured, Install leaves the
// no-op observer in place.
package flowtrace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"screenflow/flow"
)

// Install wires an OTLP-over-HTTP span exporter into the flow observer hook
// if OTEL_EXPORTER_OTLP_ENDPOINT is set; otherwise it is a no-op. The
// returned shutdown function flushes pending spans and must be called before
// exit. Service name comes from OTEL_SERVICE_NAME, defaulting to "screenflow".
func Install(ctx context.Context) (func(context.Context) error, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "screenflow"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	flow.SetObserver(&spanObserver{
		tracer: provider.Tracer("screenflow/flow"),
	})

	return provider.Shutdown, nil
}

// spanObserver emits one short span per flow event. Flow steps have no
// natural end time from the library's point of view (a step stays on screen
// until the user acts), so events are recorded as point spans keyed by the
// flow instance ID.
type spanObserver struct {
	tracer oteltrace.Tracer
}

var _ flow.Observer = (*spanObserver)(nil)

func (o *spanObserver) StepPushed(flowID string, depth int) {
	o.emit("flow.step", flowID, attribute.Int("flow.depth", depth))
}

func (o *spanObserver) FlowFinished(flowID string) {
	o.emit("flow.finished", flowID)
}

func (o *spanObserver) FlowCancelled(flowID string) {
	o.emit("flow.cancelled", flowID)
}

func (o *spanObserver) emit(name, flowID string, extra ...attribute.KeyValue) {
	attrs := append([]attribute.KeyValue{
		attribute.String("flow.id", flowID),
	}, extra...)
	_, span := o.tracer.Start(context.Background(), name,
		oteltrace.WithAttributes(attrs...))
	span.End()
}
