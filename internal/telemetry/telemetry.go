// =============================================================================
// AgentPort OpenTelemetry plumbing
// =============================================================================
// Thin helpers over the otel API. The library never installs a provider of
// its own: spans go to whatever TracerProvider the host application set
// globally, and remain noop otherwise.
// =============================================================================

// Package telemetry provides internal tracing helpers.
// This package is internal and should not be imported by external projects.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/BaSui01/agentport"

// Start begins a span under the library's instrumentation scope.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(scopeName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// MarkFailed flags a validation span as failed with the issue count.
func MarkFailed(span trace.Span, issueCount int) {
	span.SetAttributes(attribute.Int("validation.issues", issueCount))
	span.SetStatus(codes.Error, "validation failed")
}

// RecordError records err on the span and flags the span as errored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// Target returns the standard attribute tagging a span with its
// translation target.
func Target(name string) attribute.KeyValue {
	return attribute.String("export.target", name)
}
