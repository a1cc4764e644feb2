package booking_tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calbook/calbook/internal/calendar"
	"github.com/calbook/calbook/internal/scheduling"
	"github.com/calbook/calbook/internal/server"
)

// newTestServerContext builds a server context with no calendar client
// configured. HOME points at an empty directory so no stored token is
// picked up from the test machine.
func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", "")

	cfg := scheduling.DefaultConfig()
	sc, err := server.NewServerContext(context.Background(), scheduling.NewScheduler(cfg))
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("nil result")
	}
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("result content is %T, expected text", result.Content[0])
	}
	return text.Text
}

func TestRegisterBookingTools(t *testing.T) {
	sc := newTestServerContext(t)
	s := mcpserver.NewMCPServer("test-server", "0.0.1")

	if err := RegisterBookingTools(s, sc); err != nil {
		t.Fatalf("RegisterBookingTools() error = %v", err)
	}
}

func TestHandleCheckAvailability_MissingDate(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleCheckAvailability(context.Background(), toolRequest("check_availability", map[string]interface{}{}), sc)
	if err != nil {
		t.Errorf("handleCheckAvailability() unexpected error = %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result for missing date")
	}
	if text := resultText(t, result); !strings.Contains(text, "date is required") {
		t.Errorf("unexpected error text: %s", text)
	}
}

func TestHandleCheckAvailability_NoToken(t *testing.T) {
	sc := newTestServerContext(t)

	request := toolRequest("check_availability", map[string]interface{}{
		"date": "2025-04-24",
	})
	result, err := handleCheckAvailability(context.Background(), request, sc)
	if err != nil {
		t.Errorf("handleCheckAvailability() unexpected error = %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result when no token is stored")
	}
	if text := resultText(t, result); !strings.Contains(text, "OAuth token not found") {
		t.Errorf("expected authorization guidance, got: %s", text)
	}
}

func TestHandleBookAppointment_Validation(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantMsg string
	}{
		{
			name: "missing summary",
			args: map[string]interface{}{
				"start": "2025-04-24T10:30:00",
			},
			wantMsg: "summary is required",
		},
		{
			name: "missing start",
			args: map[string]interface{}{
				"summary": "Intro call",
			},
			wantMsg: "start is required",
		},
		{
			name: "empty summary",
			args: map[string]interface{}{
				"summary": "",
				"start":   "2025-04-24T10:30:00",
			},
			wantMsg: "summary is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleBookAppointment(context.Background(), toolRequest("book_appointment", tt.args), sc)
			if err != nil {
				t.Errorf("handleBookAppointment() unexpected error = %v", err)
			}
			if result == nil || !result.IsError {
				t.Fatal("expected error result")
			}
			if text := resultText(t, result); !strings.Contains(text, tt.wantMsg) {
				t.Errorf("error text %q does not mention %q", text, tt.wantMsg)
			}
		})
	}
}

func TestHandleListUpcoming_UnsupportedFormat(t *testing.T) {
	sc := newTestServerContext(t)

	request := toolRequest("list_upcoming_events", map[string]interface{}{
		"format": "xml",
	})
	result, err := handleListUpcoming(context.Background(), request, sc)
	if err != nil {
		t.Errorf("handleListUpcoming() unexpected error = %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result for unsupported format")
	}
	if text := resultText(t, result); !strings.Contains(text, "xml") {
		t.Errorf("error text should name the rejected format, got: %s", text)
	}
}

func TestFormatEventTime(t *testing.T) {
	tests := []struct {
		name     string
		et       calendar.EventTime
		expected string
	}{
		{
			name:     "timed with zone",
			et:       calendar.ZonedTime{DateTime: "2025-04-24T10:30:00", TimeZone: "America/Chicago"},
			expected: "2025-04-24T10:30:00 (America/Chicago)",
		},
		{
			name:     "timed without zone",
			et:       calendar.ZonedTime{DateTime: "2025-04-24T10:30:00-05:00"},
			expected: "2025-04-24T10:30:00-05:00",
		},
		{
			name:     "all day",
			et:       calendar.AllDayDate{Date: "2025-04-24"},
			expected: "2025-04-24 (all day)",
		},
		{
			name:     "missing",
			et:       nil,
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatEventTime(tt.et); got != tt.expected {
				t.Errorf("formatEventTime() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSchedulingErrorResult(t *testing.T) {
	result := schedulingErrorResult(scheduling.NewPolicyViolation("start 09:30:00 is before opening time 10:00:00"))
	text := resultText(t, result)
	if !strings.HasPrefix(text, "policy_violation:") {
		t.Errorf("expected policy_violation prefix, got: %s", text)
	}

	result = schedulingErrorResult(scheduling.NewParseError("invalid start time", nil))
	if text := resultText(t, result); !strings.HasPrefix(text, "parse_error:") {
		t.Errorf("expected parse_error prefix, got: %s", text)
	}
}
