package calendar

import (
	"encoding/json"
	"fmt"
)

// EventTime is the start or end of an event. It has exactly two variants:
// ZonedTime for a timed event and AllDayDate for an all-day marker.
// Consumers dispatch with a type switch; an Event's start and end must
// carry the same variant.
type EventTime interface {
	isEventTime()
}

// ZonedTime is a local date-time with an optional IANA time zone.
// DateTime uses the wire layout `YYYY-MM-DDTHH:mm:ss`, optionally followed
// by a UTC offset or zone designator. An empty TimeZone is legal here;
// the booking validator fills in the configured default before any
// provider call.
type ZonedTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

func (ZonedTime) isEventTime() {}

// AllDayDate marks an all-day event with a `YYYY-MM-DD` calendar date.
type AllDayDate struct {
	Date string `json:"date"`
}

func (AllDayDate) isEventTime() {}

// decodeEventTime picks the variant based on which wire key is present.
func decodeEventTime(raw json.RawMessage) (EventTime, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var probe struct {
		DateTime *string `json:"dateTime"`
		TimeZone string  `json:"timeZone"`
		Date     *string `json:"date"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode event time: %w", err)
	}

	switch {
	case probe.DateTime != nil && probe.Date != nil:
		return nil, fmt.Errorf("event time cannot carry both dateTime and date")
	case probe.DateTime != nil:
		return ZonedTime{DateTime: *probe.DateTime, TimeZone: probe.TimeZone}, nil
	case probe.Date != nil:
		return AllDayDate{Date: *probe.Date}, nil
	default:
		return nil, fmt.Errorf("event time must carry either dateTime or date")
	}
}

// Attendee is a single event participant. Uniqueness within an event is
// enforced by the booking validator, not here.
type Attendee struct {
	Email string `json:"email"`
}

// Event is the canonical calendar event exchanged with the provider.
// ID and HTMLLink are provider-assigned and absent until the event has
// been created.
type Event struct {
	ID          string     `json:"id,omitempty"`
	Summary     string     `json:"summary"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	Start       EventTime  `json:"start"`
	End         EventTime  `json:"end"`
	Attendees   []Attendee `json:"attendees,omitempty"`
	HTMLLink    string     `json:"htmlLink,omitempty"`
}

// eventWire mirrors Event with raw start/end so the variant can be decided
// during decoding.
type eventWire struct {
	ID          string          `json:"id,omitempty"`
	Summary     string          `json:"summary"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Start       json.RawMessage `json:"start,omitempty"`
	End         json.RawMessage `json:"end,omitempty"`
	Attendees   []Attendee      `json:"attendees,omitempty"`
	HTMLLink    string          `json:"htmlLink,omitempty"`
}

// UnmarshalJSON decodes an event, resolving start/end into the proper
// EventTime variant.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w eventWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	start, err := decodeEventTime(w.Start)
	if err != nil {
		return fmt.Errorf("event start: %w", err)
	}
	end, err := decodeEventTime(w.End)
	if err != nil {
		return fmt.Errorf("event end: %w", err)
	}

	*e = Event{
		ID:          w.ID,
		Summary:     w.Summary,
		Description: w.Description,
		Location:    w.Location,
		Start:       start,
		End:         end,
		Attendees:   w.Attendees,
		HTMLLink:    w.HTMLLink,
	}
	return nil
}

// MarshalJSON encodes an event; only the active variant's fields appear in
// start/end.
func (e Event) MarshalJSON() ([]byte, error) {
	w := eventWire{
		ID:          e.ID,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Attendees:   e.Attendees,
		HTMLLink:    e.HTMLLink,
	}

	if e.Start != nil {
		raw, err := json.Marshal(e.Start)
		if err != nil {
			return nil, fmt.Errorf("event start: %w", err)
		}
		w.Start = raw
	}
	if e.End != nil {
		raw, err := json.Marshal(e.End)
		if err != nil {
			return nil, fmt.Errorf("event end: %w", err)
		}
		w.End = raw
	}

	return json.Marshal(w)
}

// Validate checks the structural invariants of an event: a summary is
// required and start/end must be present and carry the same variant.
func (e Event) Validate() error {
	if e.Summary == "" {
		return fmt.Errorf("event summary is required")
	}
	if e.Start == nil || e.End == nil {
		return fmt.Errorf("event start and end are required")
	}

	switch e.Start.(type) {
	case ZonedTime:
		if _, ok := e.End.(ZonedTime); !ok {
			return fmt.Errorf("event start is timed but end is all-day")
		}
	case AllDayDate:
		if _, ok := e.End.(AllDayDate); !ok {
			return fmt.Errorf("event start is all-day but end is timed")
		}
	default:
		return fmt.Errorf("unknown event time variant %T", e.Start)
	}
	return nil
}

// FreeBusyCalendar identifies one calendar in a free/busy query.
type FreeBusyCalendar struct {
	ID string `json:"id"`
}

// FreeBusyRequest is the provider-facing availability query. TimeMin must
// be strictly before TimeMax and Items must be non-empty for the query to
// be meaningful.
type FreeBusyRequest struct {
	TimeMin  string             `json:"timeMin"`
	TimeMax  string             `json:"timeMax"`
	TimeZone string             `json:"timeZone,omitempty"`
	Items    []FreeBusyCalendar `json:"items"`
}

// BusyBlock is one contiguous occupied interval, start strictly before end.
type BusyBlock struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CalendarBusy holds the busy blocks of one calendar in the order the
// provider returned them. Blocks are not guaranteed non-overlapping.
type CalendarBusy struct {
	Busy []BusyBlock `json:"busy"`
}

// FreeBusyResponse maps calendar identifiers to their busy intervals.
type FreeBusyResponse struct {
	Calendars map[string]CalendarBusy `json:"calendars"`
}
