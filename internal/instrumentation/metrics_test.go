package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, ctx context.Context) *Provider {
	t.Helper()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	return provider
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "GET", "/mcp", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "POST", "/mcp", 500, 50*time.Millisecond)
}

func TestMetrics_RecordCalendarOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	// Should not panic
	metrics.RecordCalendarOperation(ctx, OperationListEvents, StatusSuccess, 200*time.Millisecond)
	metrics.RecordCalendarOperation(ctx, OperationFreeBusy, StatusSuccess, 100*time.Millisecond)
	metrics.RecordCalendarOperation(ctx, OperationInsertEvent, StatusError, 500*time.Millisecond)
}

func TestMetrics_RecordBooking(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	metrics.RecordBooking(ctx, StatusSuccess)
	metrics.RecordBooking(ctx, StatusError)
}

func TestMetrics_RecordOAuthAuth(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordOAuthAuth(ctx, OAuthResultFailure)
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	metrics := newTestProvider(t, ctx).Metrics()

	metrics.RecordToolInvocation(ctx, "check_availability", StatusSuccess, 100*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "book_appointment", StatusError, 250*time.Millisecond)
	metrics.RecordToolInvocationWithAccount(ctx, "list_upcoming_events", StatusSuccess, "work", 80*time.Millisecond)
}

func TestMetrics_UninitializedIsNoOp(t *testing.T) {
	ctx := context.Background()
	var metrics Metrics

	// All recorders must tolerate an uninitialized receiver.
	metrics.RecordHTTPRequest(ctx, "GET", "/healthz", 200, time.Millisecond)
	metrics.RecordCalendarOperation(ctx, OperationListEvents, StatusSuccess, time.Millisecond)
	metrics.RecordBooking(ctx, StatusSuccess)
	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordToolInvocation(ctx, "check_availability", StatusSuccess, time.Millisecond)
}
