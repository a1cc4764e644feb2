// Package ical renders calendar events as an RFC 5545 iCalendar document.
package ical

import (
	"bytes"
	"fmt"
	"time"

	goical "github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/calbook/calbook/internal/calendar"
)

const (
	productID      = "-//calbook//EN"
	dateTimeLayout = "2006-01-02T15:04:05"
	dateLayout     = "2006-01-02"
	compactDate    = "20060102"
)

// EncodeEvents serializes the given events into a single VCALENDAR
// document.
func EncodeEvents(events []calendar.Event) (string, error) {
	cal := goical.NewCalendar()
	cal.Props.SetText(goical.PropVersion, "2.0")
	cal.Props.SetText(goical.PropProductID, productID)

	for _, event := range events {
		ve, err := toVEvent(event)
		if err != nil {
			return "", fmt.Errorf("event %q: %w", event.Summary, err)
		}
		cal.Children = append(cal.Children, ve)
	}

	var buf bytes.Buffer
	if err := goical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.String(), nil
}

// toVEvent converts one event into a VEVENT component. Events without a
// provider identifier get a generated UID.
func toVEvent(event calendar.Event) (*goical.Component, error) {
	ve := goical.NewComponent(goical.CompEvent)

	uid := event.ID
	if uid == "" {
		uid = uuid.New().String()
	}
	ve.Props.SetText(goical.PropUID, uid)
	ve.Props.SetText(goical.PropSummary, event.Summary)
	ve.Props.SetDateTime(goical.PropDateTimeStamp, time.Now().UTC())

	if err := setEventTime(ve, goical.PropDateTimeStart, event.Start); err != nil {
		return nil, err
	}
	if err := setEventTime(ve, goical.PropDateTimeEnd, event.End); err != nil {
		return nil, err
	}

	if event.Description != "" {
		ve.Props.SetText(goical.PropDescription, event.Description)
	}
	if event.Location != "" {
		ve.Props.SetText(goical.PropLocation, event.Location)
	}
	for _, attendee := range event.Attendees {
		p := goical.NewProp(goical.PropAttendee)
		p.SetText(fmt.Sprintf("mailto:%s", attendee.Email))
		ve.Props.Add(p)
	}

	return ve, nil
}

// setEventTime writes one boundary property, dispatching on the time
// variant: timed instants become DATE-TIME values, all-day boundaries
// become DATE values.
func setEventTime(ve *goical.Component, name string, et calendar.EventTime) error {
	switch v := et.(type) {
	case calendar.ZonedTime:
		instant, err := parseZoned(v)
		if err != nil {
			return err
		}
		ve.Props.SetDateTime(name, instant)
		return nil
	case calendar.AllDayDate:
		day, err := time.Parse(dateLayout, v.Date)
		if err != nil {
			return fmt.Errorf("invalid all-day date %q: %w", v.Date, err)
		}
		p := goical.NewProp(name)
		p.SetValueType(goical.ValueDate)
		p.Value = day.Format(compactDate)
		ve.Props.Set(p)
		return nil
	case nil:
		return fmt.Errorf("event time is required")
	default:
		return fmt.Errorf("unsupported event time variant %T", et)
	}
}

// parseZoned resolves a timed boundary to an instant: values carrying
// their own offset parse directly, bare local values resolve in the
// event's zone (UTC when absent).
func parseZoned(v calendar.ZonedTime) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v.DateTime); err == nil {
		return t, nil
	}

	loc := time.UTC
	if v.TimeZone != "" {
		l, err := time.LoadLocation(v.TimeZone)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time zone %q: %w", v.TimeZone, err)
		}
		loc = l
	}

	t, err := time.ParseInLocation(dateTimeLayout, v.DateTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q: %w", v.DateTime, err)
	}
	return t, nil
}
