package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calbook/calbook/internal/calendar"
)

// fakeGateway records calls and serves canned responses.
type fakeGateway struct {
	listEventsCalls   int
	queryFreeBusyReqs []calendar.FreeBusyRequest
	insertCalls       int

	listTimeMin    time.Time
	listMaxResults int64
	insertedEvent  calendar.Event
	insertedCalID  string

	events       []calendar.Event
	freeBusyResp calendar.FreeBusyResponse
	created      calendar.Event
	err          error
}

func (f *fakeGateway) ListEvents(ctx context.Context, calendarID string, timeMin time.Time, maxResults int64) ([]calendar.Event, error) {
	f.listEventsCalls++
	f.listTimeMin = timeMin
	f.listMaxResults = maxResults
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeGateway) QueryFreeBusy(ctx context.Context, req calendar.FreeBusyRequest) (calendar.FreeBusyResponse, error) {
	f.queryFreeBusyReqs = append(f.queryFreeBusyReqs, req)
	if f.err != nil {
		return calendar.FreeBusyResponse{}, f.err
	}
	return f.freeBusyResp, nil
}

func (f *fakeGateway) InsertEvent(ctx context.Context, calendarID string, event calendar.Event) (calendar.Event, error) {
	f.insertCalls++
	f.insertedCalID = calendarID
	f.insertedEvent = event
	if f.err != nil {
		return calendar.Event{}, f.err
	}
	return f.created, nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.HostEmail = "host@example.com"
	return cfg
}

func testScheduler(t *testing.T, now string) *Scheduler {
	t.Helper()
	instant, err := time.Parse(time.RFC3339, now)
	require.NoError(t, err)

	s := NewScheduler(testConfig())
	s.now = func() time.Time { return instant }
	return s
}

func TestBookAppointment_Success(t *testing.T) {
	s := testScheduler(t, "2025-04-24T09:00:00Z")
	gw := &fakeGateway{
		created: calendar.Event{
			ID:       "evt-1",
			Summary:  "Consultation",
			HTMLLink: "https://calendar.google.com/event?eid=evt-1",
			Start:    calendar.ZonedTime{DateTime: "2025-04-24T10:30:00", TimeZone: "America/Chicago"},
			End:      calendar.ZonedTime{DateTime: "2025-04-24T11:00:00", TimeZone: "America/Chicago"},
		},
	}

	created, err := s.BookAppointment(context.Background(), gw, BookingRequest{
		Summary:   "Consultation",
		Start:     calendar.ZonedTime{DateTime: "2025-04-24T10:30:00"},
		Attendees: []string{"a@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, gw.insertCalls)
	assert.Equal(t, "primary", gw.insertedCalID)
	assert.Equal(t, "evt-1", created.ID)
	assert.Equal(t, "https://calendar.google.com/event?eid=evt-1", created.HTMLLink)
}

func TestBookAppointment_ValidationFailureNeverReachesProvider(t *testing.T) {
	s := testScheduler(t, "2025-04-24T09:00:00Z")
	gw := &fakeGateway{}

	_, err := s.BookAppointment(context.Background(), gw, BookingRequest{
		Summary: "Too early",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T09:30:00"},
	})
	require.Error(t, err)
	assert.Equal(t, KindPolicy, KindOf(err))
	assert.Equal(t, 0, gw.insertCalls, "a rejected booking must not reach the provider")
}

func TestBookAppointment_ProviderFailure(t *testing.T) {
	s := testScheduler(t, "2025-04-24T09:00:00Z")
	gw := &fakeGateway{err: errors.New("backend unavailable")}

	_, err := s.BookAppointment(context.Background(), gw, BookingRequest{
		Summary: "Consultation",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T10:30:00"},
	})
	require.Error(t, err)
	assert.Equal(t, KindProvider, KindOf(err))
	assert.ErrorContains(t, err, "backend unavailable")
}
