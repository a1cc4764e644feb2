package scheduling

import (
	"fmt"
	"time"
)

// Window bounds a single day's availability query.
type Window struct {
	Start time.Time
	End   time.Time
}

// Empty reports whether the window covers no time at all. A window whose
// start has been clamped past closing is empty, not an error; callers
// treat it as "no availability".
func (w Window) Empty() bool {
	return !w.Start.Before(w.End)
}

// ResolveWindow computes the effective query window for a calendar date:
// the day's business hours in the configured fixed offset, with the start
// clamped to now so a query never begins in the past.
//
// The instants are built by appending the configured time-of-day and
// offset to the date string; any malformed piece fails the RFC 3339 parse
// and is reported as a parse error.
func ResolveWindow(cfg Config, date string, now time.Time) (Window, error) {
	start, err := time.Parse(time.RFC3339, date+"T"+cfg.BusinessOpen+cfg.FixedOffset)
	if err != nil {
		return Window{}, NewParseError(fmt.Sprintf("invalid window start for date %q", date), err)
	}

	end, err := time.Parse(time.RFC3339, date+"T"+cfg.BusinessClose+cfg.FixedOffset)
	if err != nil {
		return Window{}, NewParseError(fmt.Sprintf("invalid window end for date %q", date), err)
	}

	if start.Before(now) {
		start = now
	}

	return Window{Start: start, End: end}, nil
}
