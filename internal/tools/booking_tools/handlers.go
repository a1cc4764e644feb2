package booking_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/calbook/calbook/internal/calendar"
	"github.com/calbook/calbook/internal/ical"
	"github.com/calbook/calbook/internal/instrumentation"
	"github.com/calbook/calbook/internal/scheduling"
	"github.com/calbook/calbook/internal/server"
	"github.com/calbook/calbook/internal/tools/common"
)

func handleCheckAvailability(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	date, ok := args["date"].(string)
	if !ok || date == "" {
		return mcp.NewToolResultError("date is required"), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	availability, err := sc.Scheduler().CheckAvailability(ctx, client, date)
	if err != nil {
		return schedulingErrorResult(err), nil
	}

	if availability.Window.Empty() {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No availability on %s: the business-hours window has already passed.", date)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Availability for %s (window %s to %s):\n\n",
		date,
		availability.Window.Start.Format(time.RFC3339),
		availability.Window.End.Format(time.RFC3339))

	cfg := sc.Scheduler().Config()
	busy := availability.Busy.Calendars[cfg.CalendarID].Busy
	if len(busy) == 0 {
		sb.WriteString("Busy: none\n")
	} else {
		sb.WriteString("Busy:\n")
		for _, block := range busy {
			fmt.Fprintf(&sb, "  %s - %s\n", block.Start, block.End)
		}
	}

	if len(availability.Free) == 0 {
		sb.WriteString("Free: none\n")
	} else {
		sb.WriteString("Free:\n")
		for _, interval := range availability.Free {
			fmt.Fprintf(&sb, "  %s - %s\n",
				interval.Start.Format(time.RFC3339),
				interval.End.Format(time.RFC3339))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func handleBookAppointment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	summary, ok := args["summary"].(string)
	if !ok || summary == "" {
		return mcp.NewToolResultError("summary is required"), nil
	}

	start, ok := args["start"].(string)
	if !ok || start == "" {
		return mcp.NewToolResultError("start is required"), nil
	}

	req := scheduling.BookingRequest{
		Summary: summary,
		Start:   calendar.ZonedTime{DateTime: start},
	}
	if description, ok := args["description"].(string); ok {
		req.Description = description
	}
	if location, ok := args["location"].(string); ok {
		req.Location = location
	}
	if timeZone, ok := args["timeZone"].(string); ok {
		req.Start.TimeZone = timeZone
	}
	if attendeesStr, ok := args["attendees"].(string); ok && attendeesStr != "" {
		for _, email := range strings.Split(attendeesStr, ",") {
			req.Attendees = append(req.Attendees, strings.TrimSpace(email))
		}
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	created, err := sc.Scheduler().BookAppointment(ctx, client, req)
	if metrics := sc.Metrics(); metrics != nil {
		status := instrumentation.StatusSuccess
		if err != nil {
			status = instrumentation.StatusError
		}
		metrics.RecordBooking(ctx, status)
	}
	if err != nil {
		return schedulingErrorResult(err), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Appointment booked: %s", created.HTMLLink)), nil
}

func handleListUpcoming(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	var from *calendar.ZonedTime
	if startingFrom, ok := args["starting_from"].(string); ok && startingFrom != "" {
		from = &calendar.ZonedTime{DateTime: startingFrom}
	}

	maxEvents := 10
	if maxVal, ok := args["max_events"].(float64); ok {
		maxEvents = int(maxVal)
	}

	format := "text"
	if formatVal, ok := args["format"].(string); ok && formatVal != "" {
		format = formatVal
	}
	if format != "text" && format != "ics" {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q, must be 'text' or 'ics'", format)), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := sc.Scheduler().ListUpcoming(ctx, client, from, maxEvents)
	if err != nil {
		return schedulingErrorResult(err), nil
	}

	if len(events) == 0 {
		return mcp.NewToolResultText("No upcoming events found."), nil
	}

	if format == "ics" {
		doc, err := ical.EncodeEvents(events)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode events: %v", err)), nil
		}
		return mcp.NewToolResultText(doc), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d upcoming event(s):\n\n", len(events))
	for _, event := range events {
		fmt.Fprintf(&sb, "- %s\n", event.Summary)
		fmt.Fprintf(&sb, "  Start: %s\n", formatEventTime(event.Start))
		fmt.Fprintf(&sb, "  End: %s\n", formatEventTime(event.End))
		if event.Location != "" {
			fmt.Fprintf(&sb, "  Location: %s\n", event.Location)
		}
		if len(event.Attendees) > 0 {
			emails := make([]string, len(event.Attendees))
			for i, att := range event.Attendees {
				emails[i] = att.Email
			}
			fmt.Fprintf(&sb, "  Attendees: %s\n", strings.Join(emails, ", "))
		}
		if event.HTMLLink != "" {
			fmt.Fprintf(&sb, "  Link: %s\n", event.HTMLLink)
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// formatEventTime renders one boundary for display, dispatching on the
// time variant.
func formatEventTime(et calendar.EventTime) string {
	switch v := et.(type) {
	case calendar.ZonedTime:
		if v.TimeZone != "" {
			return fmt.Sprintf("%s (%s)", v.DateTime, v.TimeZone)
		}
		return v.DateTime
	case calendar.AllDayDate:
		return fmt.Sprintf("%s (all day)", v.Date)
	default:
		return "unknown"
	}
}

// schedulingErrorResult maps a scheduling error to a tool error result,
// prefixed with the error kind so callers can distinguish bad input from
// policy rejections and provider failures.
func schedulingErrorResult(err error) *mcp.CallToolResult {
	kind := scheduling.KindOf(err)
	if kind == scheduling.KindUnknown {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", kind, err.Error()))
}
