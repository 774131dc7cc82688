package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Settings holds the runtime configuration. Values are resolved in order:
// built-in defaults, then the optional YAML file, then environment variables.
type Settings struct {
	Language      string `yaml:"language" env:"GO_NUMEROLOGY_LANGUAGE"`
	ReferenceYear int    `yaml:"reference_year" env:"GO_NUMEROLOGY_REFERENCE_YEAR"`
	MinBirthYear  int    `yaml:"min_birth_year" env:"GO_NUMEROLOGY_MIN_BIRTH_YEAR"`
	Format        string `yaml:"format" env:"GO_NUMEROLOGY_FORMAT"`

	Server   ServerSettings   `yaml:"server"`
	Source   SourceSettings   `yaml:"source"`
	Reminder ReminderSettings `yaml:"reminder"`
}

// ServerSettings configures the feed server and its refresh worker.
type ServerSettings struct {
	Port       string `yaml:"port" env:"GO_NUMEROLOGY_SERVER_PORT"`
	RefreshMin int    `yaml:"refresh_interval_min" env:"GO_NUMEROLOGY_REFRESH_INTERVAL_MIN"`
}

// SourceSettings locates the address book. The password is never stored
// here, it lives in the system keyring under KeyringService.
type SourceSettings struct {
	Mode      string `yaml:"mode" env:"GO_NUMEROLOGY_SOURCE_MODE"`
	LocalPath string `yaml:"local_path" env:"GO_NUMEROLOGY_LOCAL_PATH"`
	URL       string `yaml:"url" env:"GO_NUMEROLOGY_CARDDAV_URL"`
	User      string `yaml:"user" env:"GO_NUMEROLOGY_CARDDAV_USER"`
}

// ReminderSettings describes the optional VALARM attached to calendar events.
type ReminderSettings struct {
	Enabled   bool   `yaml:"enabled" env:"GO_NUMEROLOGY_REMINDER_ENABLED"`
	Value     int    `yaml:"value" env:"GO_NUMEROLOGY_REMINDER_VALUE"`
	Unit      string `yaml:"unit" env:"GO_NUMEROLOGY_REMINDER_UNIT"`
	Direction string `yaml:"direction" env:"GO_NUMEROLOGY_REMINDER_DIRECTION"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Language:     DefaultLanguage,
		MinBirthYear: DefaultMinBirthYear,
		Format:       DefaultFormat,
		Server: ServerSettings{
			Port:       DefaultPort,
			RefreshMin: DefaultRefreshMin,
		},
		Source: SourceSettings{
			Mode: SourceModeLocal,
		},
		Reminder: ReminderSettings{
			Value:     DefaultReminderValue,
			Unit:      UnitDays,
			Direction: DirBefore,
		},
	}
}

// DefaultPath returns the settings file location inside the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppID, SettingsFileName), nil
}

// Load resolves the settings. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Defaults()
	log := slog.With(LogKeyComponent, CompConfig, LogKeyFile, path)

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debug(MsgNoSettings)
		case err != nil:
			return s, fmt.Errorf("%s: %w", ErrSettingsRead, err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("%s: %w", ErrSettingsParse, err)
			}
			log.Debug(MsgSettingsFile)
		}
	}

	if err := ParseEnv(&s); err != nil {
		return s, err
	}

	if s.Server.RefreshMin <= 0 {
		s.Server.RefreshMin = DefaultRefreshMin
	}
	if s.MinBirthYear <= 0 {
		s.MinBirthYear = DefaultMinBirthYear
	}
	return s, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("%s: %w", ErrParseEnv, err)
	}
	return nil
}

// ValidatePort checks that port is a number within the TCP range.
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrPortNumber, err)
	}
	if n < MinPort || n > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}

// Trigger renders the reminder as an ISO 8601 duration ("-P1D", "PT2H").
// It returns an empty string when reminders are disabled.
func (r ReminderSettings) Trigger() (string, error) {
	if !r.Enabled {
		return "", nil
	}

	var sign string
	switch r.Direction {
	case DirBefore:
		sign = ISONegativePrefix
	case DirAfter:
		sign = ISOPeriodPrefix
	default:
		return "", fmt.Errorf("%s: %q", ErrReminderDir, r.Direction)
	}

	switch r.Unit {
	case UnitDays:
		return fmt.Sprintf("%s%d%s", sign, r.Value, ISODay), nil
	case UnitHours:
		return fmt.Sprintf("%s%s%d%s", sign, ISOTimePrefix, r.Value, ISOHour), nil
	case UnitMinutes:
		return fmt.Sprintf("%s%s%d%s", sign, ISOTimePrefix, r.Value, ISOMinute), nil
	default:
		return "", fmt.Errorf("%s: %q", ErrReminderUnit, r.Unit)
	}
}
