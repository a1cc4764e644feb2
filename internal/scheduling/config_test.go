package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	clearSchedulingEnv(t)
	t.Setenv("HOST_EMAIL", "host@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "primary", cfg.CalendarID)
	assert.Equal(t, "host@example.com", cfg.HostEmail)
	assert.Equal(t, "America/Chicago", cfg.TimeZone)
	assert.Equal(t, "10:00:00", cfg.BusinessOpen)
	assert.Equal(t, "18:00:00", cfg.BusinessClose)
	assert.Equal(t, "-05:00", cfg.FixedOffset)
	assert.Equal(t, 30*time.Minute, cfg.SlotDuration)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearSchedulingEnv(t)
	t.Setenv("CALENDAR_ID", "team@example.com")
	t.Setenv("HOST_EMAIL", "owner@example.com")
	t.Setenv("TIME_ZONE", "Europe/Berlin")
	t.Setenv("BUSINESS_OPEN", "08:00:00")
	t.Setenv("BUSINESS_CLOSE", "16:00:00")
	t.Setenv("FIXED_OFFSET", "+02:00")
	t.Setenv("SLOT_DURATION_MINUTES", "45")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "team@example.com", cfg.CalendarID)
	assert.Equal(t, "owner@example.com", cfg.HostEmail)
	assert.Equal(t, "Europe/Berlin", cfg.TimeZone)
	assert.Equal(t, "08:00:00", cfg.BusinessOpen)
	assert.Equal(t, "16:00:00", cfg.BusinessClose)
	assert.Equal(t, "+02:00", cfg.FixedOffset)
	assert.Equal(t, 45*time.Minute, cfg.SlotDuration)
}

func TestLoadConfig_InvalidSlotDuration(t *testing.T) {
	clearSchedulingEnv(t)
	t.Setenv("HOST_EMAIL", "host@example.com")
	t.Setenv("SLOT_DURATION_MINUTES", "half an hour")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorContains(t, err, "SLOT_DURATION_MINUTES")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults with host email are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing calendar id",
			mutate:  func(c *Config) { c.CalendarID = "" },
			wantErr: "calendar id",
		},
		{
			name:    "missing host email",
			mutate:  func(c *Config) { c.HostEmail = "" },
			wantErr: "host email",
		},
		{
			name:    "malformed business open",
			mutate:  func(c *Config) { c.BusinessOpen = "ten" },
			wantErr: "business open",
		},
		{
			name:    "malformed business close",
			mutate:  func(c *Config) { c.BusinessClose = "6pm" },
			wantErr: "business close",
		},
		{
			name:    "open not before close",
			mutate:  func(c *Config) { c.BusinessOpen, c.BusinessClose = "18:00:00", "10:00:00" },
			wantErr: "must be before",
		},
		{
			name:    "malformed fixed offset",
			mutate:  func(c *Config) { c.FixedOffset = "CST" },
			wantErr: "fixed offset",
		},
		{
			name:    "unknown time zone",
			mutate:  func(c *Config) { c.TimeZone = "Mars/Olympus" },
			wantErr: "time zone",
		},
		{
			name:    "non-positive slot duration",
			mutate:  func(c *Config) { c.SlotDuration = 0 },
			wantErr: "slot duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

// clearSchedulingEnv unsets every recognized variable so a developer's own
// environment or .env file cannot leak into the assertions.
func clearSchedulingEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CALENDAR_ID", "HOST_EMAIL", "TIME_ZONE",
		"BUSINESS_OPEN", "BUSINESS_CLOSE", "FIXED_OFFSET",
		"SLOT_DURATION_MINUTES",
	} {
		t.Setenv(key, "")
	}
}
