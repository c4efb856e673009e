package telemetry

import (
	"context"
	"testing"
)

func TestTracerWithoutSetup(t *testing.T) {
	// The global provider is a no-op until Setup runs; spans must still work.
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()

	if span.SpanContext().IsSampled() {
		t.Error("span sampled without a configured provider")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	span.End()
	if span.IsRecording() {
		t.Error("noop span is recording")
	}
}
