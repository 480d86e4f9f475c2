package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStart_RecordsSpansThroughGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	ctx, span := Start(context.Background(), "workflow.Validate", Target("n8n"))
	require.NotNil(t, ctx)
	MarkFailed(span, 3)
	span.End()

	_, span = Start(context.Background(), "export.MapWorkflow")
	RecordError(span, errors.New("boom"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "workflow.Validate", spans[0].Name())
	assert.Equal(t, "export.MapWorkflow", spans[1].Name())
	require.Len(t, spans[1].Events(), 1, "RecordError should add an exception event")
}
