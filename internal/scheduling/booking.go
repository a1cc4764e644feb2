package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/calbook/calbook/internal/calendar"
)

// BookingRequest is a proposed appointment before validation. Start is
// always a timed instant; all-day bookings do not exist in this system.
type BookingRequest struct {
	Summary     string
	Description string
	Location    string
	Start       calendar.ZonedTime
	Attendees   []string
}

// ValidateBooking checks a proposed appointment against business-hour and
// slot policy and assembles the event to submit: end time derived from the
// slot duration, attendee set deduplicated and always containing the host,
// time zones defaulted where absent. It is a pure transformation; the
// provider call is the caller's job.
//
// Boundary checks compare time-of-day only. A slot that would cross
// midnight is not detected; bookings are assumed to start and end on the
// same calendar date.
func ValidateBooking(cfg Config, req BookingRequest) (calendar.Event, error) {
	if req.Summary == "" {
		return calendar.Event{}, NewParseError("booking summary is required", nil)
	}

	start, err := parseLocalDateTime(req.Start.DateTime)
	if err != nil {
		return calendar.Event{}, NewParseError(fmt.Sprintf("invalid start time %q", req.Start.DateTime), err)
	}

	open, err := time.Parse(timeOfDayLayout, cfg.BusinessOpen)
	if err != nil {
		return calendar.Event{}, NewParseError(fmt.Sprintf("invalid business open time %q", cfg.BusinessOpen), err)
	}
	close, err := time.Parse(timeOfDayLayout, cfg.BusinessClose)
	if err != nil {
		return calendar.Event{}, NewParseError(fmt.Sprintf("invalid business close time %q", cfg.BusinessClose), err)
	}

	if clockOf(start) < clockOf(open) {
		return calendar.Event{}, NewPolicyViolation(
			fmt.Sprintf("booking starts before business opening time %s", cfg.BusinessOpen))
	}

	end := start.Add(cfg.SlotDuration)
	if clockOf(end) > clockOf(close) {
		return calendar.Event{}, NewPolicyViolation(
			fmt.Sprintf("booking ends after business closing time %s", cfg.BusinessClose))
	}

	zone := req.Start.TimeZone
	if zone == "" {
		zone = cfg.TimeZone
	}

	event := calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start:       calendar.ZonedTime{DateTime: req.Start.DateTime, TimeZone: zone},
		End:         calendar.ZonedTime{DateTime: end.Format(dateTimeLayout), TimeZone: zone},
		Attendees:   assembleAttendees(req.Attendees, cfg.HostEmail),
	}

	return event, nil
}

// assembleAttendees unions the caller-supplied list with the host email,
// with set semantics. Order is not meaningful; sorting keeps it
// deterministic.
func assembleAttendees(emails []string, hostEmail string) []calendar.Attendee {
	set := make(map[string]struct{}, len(emails)+1)
	for _, email := range emails {
		if email != "" {
			set[email] = struct{}{}
		}
	}
	if hostEmail != "" {
		set[hostEmail] = struct{}{}
	}

	unique := make([]string, 0, len(set))
	for email := range set {
		unique = append(unique, email)
	}
	sort.Strings(unique)

	attendees := make([]calendar.Attendee, len(unique))
	for i, email := range unique {
		attendees[i] = calendar.Attendee{Email: email}
	}
	return attendees
}

// parseLocalDateTime accepts the wire date-time layout with or without an
// explicit UTC offset.
func parseLocalDateTime(raw string) (time.Time, error) {
	if t, err := time.Parse(dateTimeLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// clockOf reduces an instant to its time-of-day component.
func clockOf(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}
