// Package app runs the long-lived feed service: a worker that refreshes the
// address-book profiles on a schedule and publishes them to the server.
package app

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/engine"
	"github.com/tartampluch/go-numerology/internal/export"
	"github.com/tartampluch/go-numerology/internal/interpret"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

// Publisher receives every successful refresh.
type Publisher interface {
	UpdateCalendar(data []byte)
	UpdateProfiles(data []byte)
}

// Service owns the refresh schedule and the latest profiles.
type Service struct {
	Publisher Publisher
	Fetcher   engine.VCardFetcher
	Clock     engine.Clock
	Catalog   *interpret.Catalog // optional, localizes event summaries

	configChan chan struct{}

	mu       sync.RWMutex
	settings config.Settings
	entries  []engine.ProfileEntry
	lastErr  error
}

// NewService wires a service with the real clock.
func NewService(s config.Settings, pub Publisher, fetcher engine.VCardFetcher, cat *interpret.Catalog) *Service {
	return &Service{
		Publisher:  pub,
		Fetcher:    fetcher,
		Clock:      engine.RealClock{},
		Catalog:    cat,
		configChan: make(chan struct{}, config.ChannelBufferSize),
		settings:   s,
	}
}

// Settings returns the active settings.
func (s *Service) Settings() config.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings swaps the settings and wakes the worker so a new refresh
// interval takes effect without waiting for the current tick.
func (s *Service) UpdateSettings(next config.Settings) {
	s.mu.Lock()
	s.settings = next
	s.mu.Unlock()

	select {
	case s.configChan <- struct{}{}:
	default:
	}
}

// Entries returns a copy of the profiles from the last successful refresh.
func (s *Service) Entries() []engine.ProfileEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// LastError reports the outcome of the most recent refresh.
func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Run refreshes once, then on every tick until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	_ = s.Sync(ctx, false)

	currentDuration := s.interval()
	ticker := time.NewTicker(currentDuration)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, currentDuration)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-s.configChan:
			newDuration := s.interval()
			if newDuration != currentDuration {
				log.Info(config.MsgUpdateSync, config.LogKeyOld, currentDuration, config.LogKeyNew, newDuration)
				currentDuration = newDuration
				ticker.Reset(currentDuration)
			}
			_ = s.Sync(ctx, true)

		case <-ticker.C:
			_ = s.Sync(ctx, false)
		}
	}
}

func (s *Service) interval() time.Duration {
	minutes := s.Settings().Server.RefreshMin
	if minutes <= 0 {
		minutes = config.DefaultRefreshMin
	}
	return time.Duration(minutes) * time.Minute
}

// Sync runs the pipeline once and publishes the result. On failure the
// previously published documents stay in place.
func (s *Service) Sync(ctx context.Context, manual bool) error {
	slog.Info(config.MsgSyncReq,
		config.LogKeyComponent, config.CompWorker,
		config.LogKeyManual, manual)

	err := s.sync(ctx)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		slog.Error(config.MsgSyncFailed,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyError, err)
	}
	return err
}

func (s *Service) sync(ctx context.Context) error {
	settings := s.Settings()
	cfg, err := SyncConfigFrom(settings)
	if err != nil {
		return err
	}

	gen := NewGenerator(s.Clock, s.Fetcher, s.Catalog)
	res, err := gen.RunSync(ctx, cfg)
	if err != nil {
		return err
	}

	var profiles bytes.Buffer
	if err := export.Encode(&profiles, engine.Documents(res.Entries), config.FormatJSON); err != nil {
		return fmt.Errorf("%s: %w", config.ErrProfileMarshal, err)
	}

	s.mu.Lock()
	s.entries = res.Entries
	s.mu.Unlock()

	if s.Publisher != nil {
		s.Publisher.UpdateCalendar(res.ICS)
		s.Publisher.UpdateProfiles(profiles.Bytes())
	}
	return nil
}

// SyncConfigFrom assembles the engine configuration from the settings and
// the keyring. A missing password is not an error: the collection may be
// public.
func SyncConfigFrom(s config.Settings) (engine.SyncConfig, error) {
	trigger, err := s.Reminder.Trigger()
	if err != nil {
		return engine.SyncConfig{}, err
	}

	cfg := engine.SyncConfig{
		Mode:            s.Source.Mode,
		LocalPath:       s.Source.LocalPath,
		WebURL:          s.Source.URL,
		WebUser:         s.Source.User,
		ReminderTrigger: trigger,
		ReferenceYear:   s.ReferenceYear,
		MinBirthYear:    s.MinBirthYear,
	}

	if cfg.Mode == config.SourceModeWeb && cfg.WebUser != "" {
		if p, err := LoadPassword(cfg.WebUser); err == nil {
			cfg.WebPass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyComponent, config.CompWorker,
				config.LogKeyUser, cfg.WebUser,
				config.LogKeyError, err)
		}
	}
	return cfg, nil
}

// NewGenerator returns an engine generator whose event texts come from cat.
// A nil catalog keeps the engine's plain fallbacks.
func NewGenerator(clock engine.Clock, fetcher engine.VCardFetcher, cat *interpret.Catalog) *engine.Generator {
	gen := &engine.Generator{Clock: clock, Fetcher: fetcher}
	if cat == nil {
		return gen
	}

	gen.FormatQuadrimester = func(name string, w numerology.CalendarWindow) string {
		return cat.MsgWith(config.TKeyEvtQuadrimester, map[string]any{
			"Name": name, "Label": w.Label, "Value": w.Value.String(),
		})
	}
	gen.FormatTrimester = func(name string, w numerology.TrimesterWindow) string {
		return cat.MsgWith(config.TKeyEvtTrimester, map[string]any{
			"Name": name, "Label": w.Label,
			"Pinnacle": w.Pinnacle.String(), "Challenge": w.Challenge.String(),
		})
	}
	gen.FormatDescription = func(start, end time.Time) string {
		return cat.MsgWith(config.TKeyEvtDescription, map[string]any{
			"Start": start.Format(config.DateFormatDisplay),
			"End":   end.Format(config.DateFormatDisplay),
		})
	}
	return gen
}
