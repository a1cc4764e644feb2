package scheduling

import (
	"context"
	"time"

	"github.com/calbook/calbook/internal/calendar"
)

// Gateway is the narrow provider surface the engine calls. Each method
// performs exactly one round-trip; the engine never retries, and a
// cancelled context surfaces as a provider error rather than a hang.
type Gateway interface {
	// ListEvents returns up to maxResults future events starting at or
	// after timeMin, ordered by start time, recurring series already
	// expanded by the provider.
	ListEvents(ctx context.Context, calendarID string, timeMin time.Time, maxResults int64) ([]calendar.Event, error)

	// QueryFreeBusy returns busy intervals per calendar for the request's
	// time range.
	QueryFreeBusy(ctx context.Context, req calendar.FreeBusyRequest) (calendar.FreeBusyResponse, error)

	// InsertEvent creates the event and returns it with the
	// provider-assigned id and link populated.
	InsertEvent(ctx context.Context, calendarID string, event calendar.Event) (calendar.Event, error)
}

// Scheduler composes the window resolver and booking validator over a
// provider gateway. It holds no cross-invocation state; concurrent
// invocations need no coordination.
type Scheduler struct {
	cfg Config
	now func() time.Time
}

// NewScheduler creates a scheduler with the given policy configuration.
func NewScheduler(cfg Config) *Scheduler {
	return &Scheduler{cfg: cfg, now: time.Now}
}

// Config returns the scheduler's policy configuration.
func (s *Scheduler) Config() Config {
	return s.cfg
}

// BookAppointment validates the proposed appointment and, on success,
// submits it through the gateway. A validation failure never reaches the
// provider; a provider failure leaves no local state behind.
func (s *Scheduler) BookAppointment(ctx context.Context, gw Gateway, req BookingRequest) (calendar.Event, error) {
	event, err := ValidateBooking(s.cfg, req)
	if err != nil {
		return calendar.Event{}, err
	}

	created, err := gw.InsertEvent(ctx, s.cfg.CalendarID, event)
	if err != nil {
		return calendar.Event{}, NewProviderError("failed to create event", err)
	}

	return created, nil
}
