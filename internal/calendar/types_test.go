package calendar

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeEventTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    EventTime
		wantErr bool
	}{
		{
			name: "zoned date-time with zone",
			raw:  `{"dateTime":"2025-04-24T10:00:00","timeZone":"America/Chicago"}`,
			want: ZonedTime{DateTime: "2025-04-24T10:00:00", TimeZone: "America/Chicago"},
		},
		{
			name: "zoned date-time without zone",
			raw:  `{"dateTime":"2025-04-24T10:00:00-05:00"}`,
			want: ZonedTime{DateTime: "2025-04-24T10:00:00-05:00"},
		},
		{
			name: "all-day date",
			raw:  `{"date":"2025-04-24"}`,
			want: AllDayDate{Date: "2025-04-24"},
		},
		{
			name:    "both variants present",
			raw:     `{"dateTime":"2025-04-24T10:00:00","date":"2025-04-24"}`,
			wantErr: true,
		},
		{
			name:    "neither variant present",
			raw:     `{"timeZone":"America/Chicago"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeEventTime(json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("event time mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEventRoundTrip(t *testing.T) {
	original := Event{
		Summary:     "Consultation",
		Description: "Intro call",
		Location:    "https://meet.example.com/abc",
		Start:       ZonedTime{DateTime: "2025-04-24T10:30:00", TimeZone: "America/Chicago"},
		End:         ZonedTime{DateTime: "2025-04-24T11:00:00", TimeZone: "America/Chicago"},
		Attendees: []Attendee{
			{Email: "a@example.com"},
			{Email: "host@example.com"},
		},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEventRoundTrip_AllDay(t *testing.T) {
	original := Event{
		Summary: "Company holiday",
		Start:   AllDayDate{Date: "2025-12-25"},
		End:     AllDayDate{Date: "2025-12-26"},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// The timed variant's keys must not leak into an all-day encoding.
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	var start map[string]string
	if err := json.Unmarshal(wire["start"], &start); err != nil {
		t.Fatalf("unmarshal start failed: %v", err)
	}
	if _, ok := start["dateTime"]; ok {
		t.Error("all-day start should not carry a dateTime key")
	}

	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEventValidate(t *testing.T) {
	tests := []struct {
		name    string
		event   Event
		wantErr bool
	}{
		{
			name: "timed start and end",
			event: Event{
				Summary: "ok",
				Start:   ZonedTime{DateTime: "2025-04-24T10:00:00"},
				End:     ZonedTime{DateTime: "2025-04-24T10:30:00"},
			},
		},
		{
			name: "all-day start and end",
			event: Event{
				Summary: "ok",
				Start:   AllDayDate{Date: "2025-04-24"},
				End:     AllDayDate{Date: "2025-04-25"},
			},
		},
		{
			name: "mismatched variants",
			event: Event{
				Summary: "bad",
				Start:   ZonedTime{DateTime: "2025-04-24T10:00:00"},
				End:     AllDayDate{Date: "2025-04-24"},
			},
			wantErr: true,
		},
		{
			name: "missing summary",
			event: Event{
				Start: AllDayDate{Date: "2025-04-24"},
				End:   AllDayDate{Date: "2025-04-25"},
			},
			wantErr: true,
		},
		{
			name:    "missing times",
			event:   Event{Summary: "bad"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
