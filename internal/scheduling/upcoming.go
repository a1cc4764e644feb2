package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/calbook/calbook/internal/calendar"
)

// ListUpcoming returns up to maxEvents future events from the configured
// calendar, ordered by start time. A nil cursor means "from now" (UTC).
// maxEvents of zero or less yields an empty list without a provider call.
//
// The request is a single bounded page; if the provider truncates, callers
// only ever see the first page.
func (s *Scheduler) ListUpcoming(ctx context.Context, gw Gateway, from *calendar.ZonedTime, maxEvents int) ([]calendar.Event, error) {
	if maxEvents <= 0 {
		return []calendar.Event{}, nil
	}

	var cursor time.Time
	if from == nil {
		cursor = s.now().UTC()
	} else {
		var err error
		cursor, err = normalizeCursor(from.DateTime, s.cfg.FixedOffset)
		if err != nil {
			return nil, err
		}
	}

	events, err := gw.ListEvents(ctx, s.cfg.CalendarID, cursor, int64(maxEvents))
	if err != nil {
		return nil, NewProviderError("failed to list events", err)
	}

	return events, nil
}

// normalizeCursor parses an explicit starting instant. A value with its
// own offset or zone designator is used as-is; a bare local date-time gets
// the configured fixed offset appended.
func normalizeCursor(raw, fixedOffset string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	if _, err := time.Parse(dateTimeLayout, raw); err != nil {
		return time.Time{}, NewParseError(fmt.Sprintf("invalid starting time %q", raw), err)
	}

	t, err := time.Parse(time.RFC3339, raw+fixedOffset)
	if err != nil {
		return time.Time{}, NewParseError(
			fmt.Sprintf("invalid starting time %q with offset %q", raw, fixedOffset), err)
	}
	return t, nil
}
