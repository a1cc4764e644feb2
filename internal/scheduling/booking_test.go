package scheduling

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calbook/calbook/internal/calendar"
)

func TestValidateBooking_DerivesEndFromSlotDuration(t *testing.T) {
	cfg := testConfig()

	event, err := ValidateBooking(cfg, BookingRequest{
		Summary: "Consultation",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T10:30:00"},
	})
	require.NoError(t, err)

	end, ok := event.End.(calendar.ZonedTime)
	require.True(t, ok, "end must be a timed instant")
	assert.Equal(t, "2025-04-24T11:00:00", end.DateTime)
}

func TestValidateBooking_BeforeOpening(t *testing.T) {
	cfg := testConfig()

	_, err := ValidateBooking(cfg, BookingRequest{
		Summary: "Too early",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T09:30:00"},
	})
	require.Error(t, err)
	assert.Equal(t, KindPolicy, KindOf(err))
	assert.ErrorContains(t, err, "10:00:00", "the violated bound must be named")
}

func TestValidateBooking_EndsAfterClosing(t *testing.T) {
	cfg := testConfig()

	_, err := ValidateBooking(cfg, BookingRequest{
		Summary: "Too late",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T17:45:00"},
	})
	require.Error(t, err)
	assert.Equal(t, KindPolicy, KindOf(err))
	assert.ErrorContains(t, err, "18:00:00", "the violated bound must be named")
}

func TestValidateBooking_BoundaryTimes(t *testing.T) {
	cfg := testConfig()

	// Exactly at opening is allowed.
	_, err := ValidateBooking(cfg, BookingRequest{
		Summary: "At open",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T10:00:00"},
	})
	assert.NoError(t, err)

	// Ending exactly at closing is allowed.
	_, err = ValidateBooking(cfg, BookingRequest{
		Summary: "Last slot",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T17:30:00"},
	})
	assert.NoError(t, err)
}

func TestValidateBooking_EmptySummary(t *testing.T) {
	cfg := testConfig()

	_, err := ValidateBooking(cfg, BookingRequest{
		Start: calendar.ZonedTime{DateTime: "2025-04-24T10:30:00"},
	})
	require.Error(t, err)
	assert.Equal(t, KindParse, KindOf(err))
}

func TestValidateBooking_MalformedStart(t *testing.T) {
	cfg := testConfig()

	tests := []string{"", "not-a-time", "2025-04-24", "24:99:00"}
	for _, raw := range tests {
		_, err := ValidateBooking(cfg, BookingRequest{
			Summary: "Bad start",
			Start:   calendar.ZonedTime{DateTime: raw},
		})
		require.Error(t, err, "start %q", raw)
		assert.Equal(t, KindParse, KindOf(err), "start %q", raw)
	}
}

func TestValidateBooking_AttendeeSetSemantics(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name      string
		attendees []string
		want      []string
	}{
		{
			name:      "duplicates collapse and host is added",
			attendees: []string{"a@x.com", "a@x.com"},
			want:      []string{"a@x.com", "host@example.com"},
		},
		{
			name:      "host supplied by caller appears once",
			attendees: []string{"host@example.com", "a@x.com"},
			want:      []string{"a@x.com", "host@example.com"},
		},
		{
			name:      "no attendees still includes host",
			attendees: nil,
			want:      []string{"host@example.com"},
		},
		{
			name:      "empty strings are dropped",
			attendees: []string{"", "a@x.com"},
			want:      []string{"a@x.com", "host@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := ValidateBooking(cfg, BookingRequest{
				Summary:   "Meeting",
				Start:     calendar.ZonedTime{DateTime: "2025-04-24T10:30:00"},
				Attendees: tt.attendees,
			})
			require.NoError(t, err)

			got := make([]string, len(event.Attendees))
			for i, att := range event.Attendees {
				got[i] = att.Email
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateBooking_TimeZoneDefaulting(t *testing.T) {
	cfg := testConfig()

	event, err := ValidateBooking(cfg, BookingRequest{
		Summary: "Default zone",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T10:30:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", event.Start.(calendar.ZonedTime).TimeZone)
	assert.Equal(t, "America/Chicago", event.End.(calendar.ZonedTime).TimeZone)

	event, err = ValidateBooking(cfg, BookingRequest{
		Summary: "Explicit zone",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T10:30:00", TimeZone: "Europe/Berlin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", event.Start.(calendar.ZonedTime).TimeZone)
	assert.Equal(t, "Europe/Berlin", event.End.(calendar.ZonedTime).TimeZone)
}

func TestValidateBooking_ResultIsUnsubmitted(t *testing.T) {
	cfg := testConfig()

	event, err := ValidateBooking(cfg, BookingRequest{
		Summary: "Meeting",
		Start:   calendar.ZonedTime{DateTime: "2025-04-24T10:30:00"},
	})
	require.NoError(t, err)
	assert.Empty(t, event.ID)
	assert.Empty(t, event.HTMLLink)
	assert.NoError(t, event.Validate())
}

func TestValidateBooking_RoundTrip(t *testing.T) {
	cfg := testConfig()

	event, err := ValidateBooking(cfg, BookingRequest{
		Summary:     "Consultation",
		Description: "Intro call",
		Location:    "Office",
		Start:       calendar.ZonedTime{DateTime: "2025-04-24T10:30:00"},
		Attendees:   []string{"a@x.com"},
	})
	require.NoError(t, err)

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded calendar.Event
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(event, decoded); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}
