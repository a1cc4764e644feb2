package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/calbook/calbook/internal/calendar"
)

// Interval is one free stretch of a resolved window.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Availability is the result of a free/busy check: the resolved window,
// the provider's raw busy blocks, and the window's free intervals derived
// from them.
type Availability struct {
	Window Window
	Busy   calendar.FreeBusyResponse
	Free   []Interval
}

// CheckAvailability resolves the business-hours window for the given date
// and queries the configured calendar's busy intervals within it. An empty
// or inverted window (date already past closing) yields an empty result
// without a provider call.
func (s *Scheduler) CheckAvailability(ctx context.Context, gw Gateway, date string) (*Availability, error) {
	window, err := ResolveWindow(s.cfg, date, s.now())
	if err != nil {
		return nil, err
	}

	if window.Empty() {
		return &Availability{
			Window: window,
			Busy:   calendar.FreeBusyResponse{Calendars: map[string]calendar.CalendarBusy{}},
		}, nil
	}

	req := calendar.FreeBusyRequest{
		TimeMin:  window.Start.Format(time.RFC3339),
		TimeMax:  window.End.Format(time.RFC3339),
		TimeZone: s.cfg.TimeZone,
		Items:    []calendar.FreeBusyCalendar{{ID: s.cfg.CalendarID}},
	}

	resp, err := gw.QueryFreeBusy(ctx, req)
	if err != nil {
		return nil, NewProviderError("failed to query free/busy", err)
	}

	free, err := FreeIntervals(window, resp.Calendars[s.cfg.CalendarID].Busy)
	if err != nil {
		return nil, err
	}

	return &Availability{Window: window, Busy: resp, Free: free}, nil
}

// FreeIntervals subtracts the busy blocks from the window:
// windowStart..firstBusy, the gaps between blocks, lastBusy..windowEnd,
// clipped to non-negative durations. Blocks are taken in the order the
// provider returned them; overlapping blocks collapse into the running
// cursor.
func FreeIntervals(window Window, busy []calendar.BusyBlock) ([]Interval, error) {
	var free []Interval

	cursor := window.Start
	for _, block := range busy {
		start, err := time.Parse(time.RFC3339, block.Start)
		if err != nil {
			return nil, NewProviderError(fmt.Sprintf("invalid busy block start %q", block.Start), err)
		}
		end, err := time.Parse(time.RFC3339, block.End)
		if err != nil {
			return nil, NewProviderError(fmt.Sprintf("invalid busy block end %q", block.End), err)
		}

		if start.After(cursor) && cursor.Before(window.End) {
			gapEnd := start
			if gapEnd.After(window.End) {
				gapEnd = window.End
			}
			free = append(free, Interval{Start: cursor, End: gapEnd})
		}
		if end.After(cursor) {
			cursor = end
		}
	}

	if cursor.Before(window.End) {
		free = append(free, Interval{Start: cursor, End: window.End})
	}

	return free, nil
}
