package booking_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calbook/calbook/internal/calendar"
	"github.com/calbook/calbook/internal/instrumentation"
	"github.com/calbook/calbook/internal/server"
	"github.com/calbook/calbook/internal/tools/common"
)

// RegisterBookingTools registers the scheduling tools with the MCP server.
func RegisterBookingTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	checkAvailabilityTool := mcp.NewTool("check_availability",
		mcp.WithDescription("Check free/busy availability within business hours for a given date"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("The date to check, in YYYY-MM-DD format (e.g., '2025-04-24')"),
		),
	)

	s.AddTool(checkAvailabilityTool, common.InstrumentedToolHandlerWithOperation(
		"check_availability", instrumentation.OperationFreeBusy, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCheckAvailability(ctx, request, sc)
		}))

	bookAppointmentTool := mcp.NewTool("book_appointment",
		mcp.WithDescription("Book a fixed-length appointment within business hours; the host is always added as an attendee"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Appointment title/summary"),
		),
		mcp.WithString("description",
			mcp.Description("Appointment description"),
		),
		mcp.WithString("location",
			mcp.Description("Appointment location"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time as a local date-time, e.g., '2025-04-24T10:30:00'"),
		),
		mcp.WithString("timeZone",
			mcp.Description("IANA time zone for the appointment (defaults to the configured zone)"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
	)

	s.AddTool(bookAppointmentTool, common.InstrumentedToolHandlerWithOperation(
		"book_appointment", instrumentation.OperationInsertEvent, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleBookAppointment(ctx, request, sc)
		}))

	listUpcomingTool := mcp.NewTool("list_upcoming_events",
		mcp.WithDescription("List upcoming events from the configured calendar, ordered by start time"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("starting_from",
			mcp.Description("Starting instant, e.g., '2025-04-24T09:00:00' or with offset '2025-04-24T09:00:00-05:00' (default: now)"),
		),
		mcp.WithNumber("max_events",
			mcp.Description("Maximum number of events to return (default: 10)"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'text' (default) or 'ics' for an iCalendar document"),
		),
	)

	s.AddTool(listUpcomingTool, common.InstrumentedToolHandlerWithOperation(
		"list_upcoming_events", instrumentation.OperationListEvents, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListUpcoming(ctx, request, sc)
		}))

	return nil
}

// getCalendarClient retrieves or creates a calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !calendar.HasTokenForAccount(account) {
			authURL := calendar.GetAuthURLForAccount(account)
			return nil, fmt.Errorf(`Google OAuth token not found for account "%s". To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to Google Calendar
4. Copy the authorization code

5. Provide the authorization code to your AI agent
   The agent will use the google_save_auth_code tool with account="%s" to complete authentication.

Note: You only need to authorize once. The tokens will be automatically refreshed.`, account, authURL, account)
		}

		var err error
		client, err = calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
	}
	return client, nil
}
