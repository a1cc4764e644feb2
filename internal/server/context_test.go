package server

import (
	"testing"

	"github.com/calbook/calbook/internal/instrumentation"
	"github.com/calbook/calbook/internal/scheduling"
)

func newTestContext(t *testing.T) *ServerContext {
	t.Helper()

	cfg := scheduling.DefaultConfig()
	cfg.HostEmail = "host@example.com"

	sc, err := NewServerContext(t.Context(), scheduling.NewScheduler(cfg))
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	return sc
}

func TestServerContext_Scheduler(t *testing.T) {
	sc := newTestContext(t)

	if sc.Scheduler() == nil {
		t.Fatal("expected scheduler to be set")
	}
	if sc.Scheduler().Config().HostEmail != "host@example.com" {
		t.Errorf("unexpected host email %q", sc.Scheduler().Config().HostEmail)
	}
}

func TestServerContext_CalendarClientWithoutToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", "")

	sc := newTestContext(t)

	// No token on disk for this account, so no client can be built.
	if client := sc.CalendarClientForAccount("missing"); client != nil {
		t.Error("expected nil client for account without token")
	}
}

func TestServerContext_MetricsAccessors(t *testing.T) {
	sc := newTestContext(t)

	if sc.Metrics() != nil {
		t.Error("expected nil metrics before configuration")
	}
	if sc.AuditLogger() != nil {
		t.Error("expected nil audit logger before configuration")
	}

	sc.SetMetrics(&instrumentation.Metrics{})
	sc.SetAuditLogger(instrumentation.NewAuditLogger(nil))

	if sc.Metrics() == nil {
		t.Error("expected metrics after configuration")
	}
	if sc.AuditLogger() == nil {
		t.Error("expected audit logger after configuration")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc := newTestContext(t)

	if sc.IsShutdown() {
		t.Error("expected context to start not shut down")
	}

	if err := sc.Shutdown(); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("expected IsShutdown to report true")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("expected context to be canceled after shutdown")
	}

	// Second shutdown is a no-op.
	if err := sc.Shutdown(); err != nil {
		t.Errorf("repeated shutdown should not error, got %v", err)
	}
}
