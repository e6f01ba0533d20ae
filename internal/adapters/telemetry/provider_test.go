package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/viewgraph/internal/adapters/telemetry"
)

func setupMonitor(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func attrsOf(kvs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestOTelTracer_Start(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(t.Context(), "prune")
	span.SetAttribute("view", "equity-risk")
	span.SetAttribute("nodes", 4)
	span.SetAttribute("removed", int64(2))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("stale", true)
	span.SetAttribute("configs", []string{"default", "stress"})
	span.SetAttribute("other", struct{ N int }{3})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "prune", spans[0].Name())

	attrs := attrsOf(spans[0].Attributes())
	assert.Equal(t, "equity-risk", attrs["view"].AsString())
	assert.Equal(t, int64(4), attrs["nodes"].AsInt64())
	assert.Equal(t, int64(2), attrs["removed"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0)
	assert.True(t, attrs["stale"].AsBool())
	assert.Equal(t, []string{"default", "stress"}, attrs["configs"].AsStringSlice())
	assert.Equal(t, "{3}", attrs["other"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(t.Context(), "resolve")
	span.RecordError(errors.New("resolver unavailable"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "resolver unavailable", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelTracer_EmitMissing(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	// No span in the context: nothing is recorded.
	tracer.EmitMissing(t.Context(), "default", []string{"PV"})
	assert.Empty(t, sr.Ended())

	ctx, span := tracer.Start(t.Context(), "prune")
	tracer.EmitMissing(ctx, "default", []string{"PV on EQUITY~ACME", "Delta on EQUITY~ACME"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "requirements_missing", events[0].Name)

	attrs := attrsOf(events[0].Attributes)
	assert.Equal(t, "default", attrs["calculation_configuration"].AsString())
	assert.Equal(t, []string{"PV on EQUITY~ACME", "Delta on EQUITY~ACME"}, attrs["requirements"].AsStringSlice())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "anything")
	assert.Equal(t, t.Context(), ctx)

	assert.NotPanics(t, func() {
		tracer.EmitMissing(ctx, "default", []string{"PV"})
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("boom"))
		span.End()
	})
}
