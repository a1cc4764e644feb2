package instrumentation

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestSpanAttributeBuilder(t *testing.T) {
	attrs := NewSpanAttributeBuilder().
		WithTool("book_appointment").
		WithOperation(OperationInsertEvent).
		WithCalendar("primary").
		WithAccount("work").
		WithReadOnly(false).
		Build()

	if len(attrs) != 5 {
		t.Fatalf("expected 5 attributes, got %d", len(attrs))
	}

	byKey := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, kv := range attrs {
		byKey[kv.Key] = kv.Value
	}

	if got := byKey[SpanAttrTool].AsString(); got != "book_appointment" {
		t.Errorf("expected tool 'book_appointment', got %q", got)
	}
	if got := byKey[SpanAttrOperation].AsString(); got != OperationInsertEvent {
		t.Errorf("expected operation %q, got %q", OperationInsertEvent, got)
	}
	if got := byKey[SpanAttrCalendar].AsString(); got != "primary" {
		t.Errorf("expected calendar 'primary', got %q", got)
	}
	if byKey[SpanAttrReadOnly].AsBool() {
		t.Error("expected read_only to be false")
	}
}

func TestSpanAttributeBuilder_SkipsEmptyValues(t *testing.T) {
	attrs := NewSpanAttributeBuilder().
		WithCalendar("").
		WithAccount("").
		Build()

	if len(attrs) != 0 {
		t.Errorf("expected empty values to be skipped, got %d attributes", len(attrs))
	}
}

func TestStartSpanHelpers(t *testing.T) {
	ctx := context.Background()

	// The helpers must be safe regardless of which tracer provider is
	// installed globally.
	spanCtx, span := StartToolSpan(ctx, "check_availability")
	SetSpanSuccess(span)
	span.End()

	if GetTraceID(ctx) != "" {
		t.Error("expected empty trace ID without a span in context")
	}
	_ = GetTraceID(spanCtx)
	_ = GetSpanID(spanCtx)

	_, calSpan := StartCalendarSpan(ctx, OperationFreeBusy)
	SetSpanError(calSpan, errors.New("query failed"))
	AddSpanEvent(calSpan, "retry_skipped")
	calSpan.End()
}
