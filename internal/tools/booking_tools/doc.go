// Package booking_tools provides MCP (Model Context Protocol) tools for
// the calendar booking engine.
//
// It exposes three tools backed by Google Calendar: check_availability
// resolves the business-hours window for a date and reports busy and free
// intervals, book_appointment validates and creates a fixed-length
// appointment, and list_upcoming_events lists future events as text or as
// an iCalendar document.
//
// The tools support multi-account authentication; a missing token yields
// an error result with step-by-step authorization guidance.
package booking_tools
