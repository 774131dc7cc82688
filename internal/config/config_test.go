package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-numerology/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DateFormatInput", config.DateFormatInput},
		{"DateFormatDisplay", config.DateFormatDisplay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Numerology/"))
}

func TestDateLayouts(t *testing.T) {
	d, err := time.Parse(config.DateFormatInput, "5/3/1990")
	require.NoError(t, err)
	assert.Equal(t, "05/03/1990", d.Format(config.DateFormatDisplay))
}

func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second)
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute)
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second)
	assert.Greater(t, config.MaxHTTPResponseSize, 0)
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024*1024))
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	s, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), s)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	yaml := `language: en
reference_year: 2023
server:
  port: "9090"
  refresh_interval_min: 15
source:
  mode: web
  url: https://dav.example.com/book
  user: mario
reminder:
  enabled: true
  value: 2
  unit: h
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), config.FilePermUserRW))
	t.Setenv("GO_NUMEROLOGY_SERVER_PORT", "9191")
	t.Setenv("GO_NUMEROLOGY_REFERENCE_YEAR", "2024")

	s, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en", s.Language)
	assert.Equal(t, 2024, s.ReferenceYear)
	assert.Equal(t, "9191", s.Server.Port)
	assert.Equal(t, 15, s.Server.RefreshMin)
	assert.Equal(t, config.SourceModeWeb, s.Source.Mode)
	assert.Equal(t, "mario", s.Source.User)
	assert.Equal(t, config.DirBefore, s.Reminder.Direction, "unset keys keep defaults")
	assert.Equal(t, config.DefaultMinBirthYear, s.MinBirthYear)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), config.FilePermUserRW))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSettingsParse)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("GO_NUMEROLOGY_REFERENCE_YEAR", "soon")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrParseEnv)
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, config.ValidatePort("18080"))
	assert.EqualError(t, config.ValidatePort(""), config.ErrPortRequired)
	assert.ErrorContains(t, config.ValidatePort("http"), config.ErrPortNumber)
	assert.EqualError(t, config.ValidatePort("0"), config.ErrPortRange)
	assert.EqualError(t, config.ValidatePort("70000"), config.ErrPortRange)
}

func TestReminderTrigger(t *testing.T) {
	tests := []struct {
		name string
		in   config.ReminderSettings
		want string
	}{
		{"disabled", config.ReminderSettings{Value: 1, Unit: config.UnitDays, Direction: config.DirBefore}, ""},
		{"one day before", config.ReminderSettings{Enabled: true, Value: 1, Unit: config.UnitDays, Direction: config.DirBefore}, "-P1D"},
		{"two hours after", config.ReminderSettings{Enabled: true, Value: 2, Unit: config.UnitHours, Direction: config.DirAfter}, "PT2H"},
		{"thirty minutes before", config.ReminderSettings{Enabled: true, Value: 30, Unit: config.UnitMinutes, Direction: config.DirBefore}, "-PT30M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Trigger()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := config.ReminderSettings{Enabled: true, Value: 1, Unit: "w", Direction: config.DirBefore}.Trigger()
	assert.ErrorContains(t, err, config.ErrReminderUnit)

	_, err = config.ReminderSettings{Enabled: true, Value: 1, Unit: config.UnitDays, Direction: "later"}.Trigger()
	assert.ErrorContains(t, err, config.ErrReminderDir)
}
