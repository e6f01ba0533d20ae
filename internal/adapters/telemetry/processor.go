package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/viewgraph/internal/core/ports"
)

// LogProcessor is an sdktrace.SpanProcessor that reports finished spans through a Logger.
type LogProcessor struct {
	logger ports.Logger
}

// NewLogProcessor returns a LogProcessor writing to logger.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart does nothing.
func (p *LogProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and duration. Failed spans are logged as warnings.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}
	attrs := []any{"span", s.Name(), "duration", s.EndTime().Sub(s.StartTime()).String()}
	if s.Status().Code == codes.Error {
		p.logger.Warn("span failed", append(attrs, "error", s.Status().Description)...)
		return
	}
	p.logger.Info("span finished", attrs...)
}

// ForceFlush does nothing.
func (p *LogProcessor) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *LogProcessor) Shutdown(context.Context) error {
	return nil
}

// InstallLogProvider registers a global tracer provider that reports spans to logger.
// The returned function shuts the provider down.
func InstallLogProvider(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogProcessor(logger)))
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
