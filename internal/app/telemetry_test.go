package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/viewgraph/internal/adapters/telemetry"
	"go.trai.ch/viewgraph/internal/app"
	"go.trai.ch/viewgraph/internal/core/domain"
)

func TestPrune_Span(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	h := newHarness(t)
	h.app.WithTracer(telemetry.NewOTelTracer("test"))
	h.workspace(t)

	_, err := h.app.Prune(t.Context(), app.PruneOptions{
		ConfigPath: configPath,
		Invalid:    []domain.UniqueID{secV1},
	})
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "prune", spans[0].Name())

	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "requirements_missing", events[0].Name)

	attrs := make(map[string]int64)
	for _, kv := range spans[0].Attributes() {
		if kv.Value.Type() == attribute.INT64 {
			attrs[string(kv.Key)] = kv.Value.AsInt64()
		}
	}
	assert.Equal(t, int64(4), attrs["nodes"])
	assert.Equal(t, int64(3), attrs["removed"])
}

func TestResolve_SpanRecordsError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	h := newHarness(t)
	h.app.WithTracer(telemetry.NewOTelTracer("test"))
	h.loader.EXPECT().Load(configPath).Return(nil, domain.ErrConfigParseFailed)

	_, err := h.app.Resolve(t.Context(), app.ResolveOptions{ConfigPath: configPath, StatePath: statePath})
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}
