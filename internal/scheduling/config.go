package scheduling

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the scheduling configuration.
const (
	DefaultCalendarID    = "primary"
	DefaultTimeZone      = "America/Chicago"
	DefaultBusinessOpen  = "10:00:00"
	DefaultBusinessClose = "18:00:00"
	DefaultFixedOffset   = "-05:00"
	DefaultSlotDuration  = 30 * time.Minute
)

// Wire layouts for the ISO-8601 fields the engine parses.
const (
	dateTimeLayout  = "2006-01-02T15:04:05"
	timeOfDayLayout = "15:04:05"
)

// Config holds the scheduling policy for one calendar: whose calendar is
// booked, the daily business-hours window, and the fixed slot length.
// It is constructed once at startup and passed by value into each
// operation; the engine keeps no ambient configuration state.
type Config struct {
	// CalendarID is the provider calendar identifier bookings and
	// availability queries run against.
	CalendarID string

	// HostEmail is always included in a booked event's attendee set.
	HostEmail string

	// TimeZone is the IANA zone applied to event times that arrive
	// without one, and the display zone for free/busy responses.
	TimeZone string

	// BusinessOpen and BusinessClose bound the daily booking window,
	// as HH:mm:ss time-of-day strings.
	BusinessOpen  string
	BusinessClose string

	// FixedOffset is the UTC offset appended to bare local date-times,
	// e.g. "-05:00".
	FixedOffset string

	// SlotDuration is the fixed length of every booked appointment.
	SlotDuration time.Duration
}

// DefaultConfig returns a Config with the stock defaults. HostEmail has no
// default and must be supplied.
func DefaultConfig() Config {
	return Config{
		CalendarID:    DefaultCalendarID,
		TimeZone:      DefaultTimeZone,
		BusinessOpen:  DefaultBusinessOpen,
		BusinessClose: DefaultBusinessClose,
		FixedOffset:   DefaultFixedOffset,
		SlotDuration:  DefaultSlotDuration,
	}
}

// LoadConfig builds the scheduling configuration from the environment,
// reading a .env file first when one exists.
//
// Recognized variables: CALENDAR_ID, HOST_EMAIL, TIME_ZONE, BUSINESS_OPEN,
// BUSINESS_CLOSE, FIXED_OFFSET, SLOT_DURATION_MINUTES.
func LoadConfig() (Config, error) {
	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("CALENDAR_ID"); v != "" {
		cfg.CalendarID = v
	}
	if v := os.Getenv("HOST_EMAIL"); v != "" {
		cfg.HostEmail = v
	}
	if v := os.Getenv("TIME_ZONE"); v != "" {
		cfg.TimeZone = v
	}
	if v := os.Getenv("BUSINESS_OPEN"); v != "" {
		cfg.BusinessOpen = v
	}
	if v := os.Getenv("BUSINESS_CLOSE"); v != "" {
		cfg.BusinessClose = v
	}
	if v := os.Getenv("FIXED_OFFSET"); v != "" {
		cfg.FixedOffset = v
	}
	if v := os.Getenv("SLOT_DURATION_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SLOT_DURATION_MINUTES %q: %w", v, err)
		}
		cfg.SlotDuration = time.Duration(minutes) * time.Minute
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configured bounds parse and are coherent.
func (c Config) Validate() error {
	if c.CalendarID == "" {
		return fmt.Errorf("calendar id is required")
	}
	if c.HostEmail == "" {
		return fmt.Errorf("host email is required")
	}
	open, err := time.Parse(timeOfDayLayout, c.BusinessOpen)
	if err != nil {
		return fmt.Errorf("invalid business open time %q: %w", c.BusinessOpen, err)
	}
	close, err := time.Parse(timeOfDayLayout, c.BusinessClose)
	if err != nil {
		return fmt.Errorf("invalid business close time %q: %w", c.BusinessClose, err)
	}
	if !open.Before(close) {
		return fmt.Errorf("business open %s must be before business close %s", c.BusinessOpen, c.BusinessClose)
	}
	if _, err := time.Parse(time.RFC3339, "2025-01-01T00:00:00"+c.FixedOffset); err != nil {
		return fmt.Errorf("invalid fixed offset %q: %w", c.FixedOffset, err)
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	if c.SlotDuration <= 0 {
		return fmt.Errorf("slot duration must be positive, got %s", c.SlotDuration)
	}
	return nil
}
