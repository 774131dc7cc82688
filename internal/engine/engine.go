// Package engine turns address books into numerological profiles and
// publishes their micro-cycle calendars as an iCalendar feed.
package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

// SyncConfig contains all parameters required to perform a synchronization.
type SyncConfig struct {
	Mode            string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath       string // Path to the .vcf file
	WebURL          string // CardDAV or WebDAV URL
	WebUser         string // HTTP Basic Auth Username
	WebPass         string // HTTP Basic Auth Password
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D")

	// ReferenceYear pins the profiles and calendars. Zero follows the clock.
	ReferenceYear int
	// MinBirthYear rejects implausible birth dates. Zero uses the default.
	MinBirthYear int
}

// Result is the outcome of one synchronization.
type Result struct {
	ICS     []byte
	Entries []ProfileEntry
	Events  int
}

// Generator reads contacts and builds their profiles and calendar feed.
type Generator struct {
	Clock   Clock
	Fetcher VCardFetcher

	// Optional localized event texts. Nil fields use the config.Fallback* formats.
	FormatQuadrimester func(name string, w numerology.CalendarWindow) string
	FormatTrimester    func(name string, w numerology.TrimesterWindow) string
	FormatDescription  func(start, end time.Time) string
}

type syncStats struct {
	processed, profiles, events int
}

// RunSync executes the fetch, parse and generate pipeline.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) (*Result, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	reader, err := g.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, stats, err := g.readProfiles(ctx, reader, cfg)
	if err != nil {
		return nil, err
	}

	ics, events, err := g.EncodeICS(entries, cfg.ReminderTrigger)
	if err != nil {
		return nil, err
	}
	stats.events = events
	logSuccess(stats)

	log.Debug(config.MsgSyncFinished, config.LogKeyDuration, time.Since(start).Milliseconds())
	return &Result{ICS: ics, Entries: entries, Events: events}, nil
}

// acquireStream opens the appropriate data source based on configuration.
func (g *Generator) acquireStream(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if g.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return g.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// readProfiles decodes every card of r and computes a profile for each
// contact with a name and a full birth date. Cards that cannot be used are
// logged and skipped. Entries are sorted by name.
func (g *Generator) readProfiles(ctx context.Context, r io.Reader, cfg SyncConfig) ([]ProfileEntry, syncStats, error) {
	now := g.now()
	minYear := cfg.MinBirthYear
	if minYear <= 0 {
		minYear = config.DefaultMinBirthYear
	}

	var (
		stats   syncStats
		entries []ProfileEntry
		seen    = make(map[string]bool)
	)
	decoder := vcard.NewDecoder(r)
	for {
		if ctx.Err() != nil {
			return nil, stats, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, ErrTooLarge) {
			return nil, stats, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			if errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			continue
		}
		stats.processed++

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}
		birth, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}

		first, last := personName(card)
		if !yearKnown {
			slog.Debug(config.MsgSkippedNoYear,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, strings.TrimSpace(first+" "+last))
			continue
		}

		person := numerology.Person{FirstName: first, LastName: last, Birth: numerology.FromTime(birth)}
		if err := person.Validate(now, minYear); err != nil {
			slog.Warn(config.MsgSkippedPerson,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, person.FullName(),
				config.LogKeyError, err)
			continue
		}

		entry := NewEntry(person, now, cfg.ReferenceYear)
		if seen[entry.UID] {
			continue
		}
		seen[entry.UID] = true
		entries = append(entries, entry)
		stats.profiles++

		slog.Debug(config.MsgProfileBuilt,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyName, entry.Name,
			config.LogKeyDOB, person.Birth.String(),
			config.LogKeyYear, entry.Calendar.ReferenceYear)
	}

	slices.SortFunc(entries, func(a, b ProfileEntry) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.UID, b.UID)
	})
	return entries, stats, nil
}

// personName prefers the structured N property and falls back to splitting
// FN on its first space.
func personName(card vcard.Card) (first, last string) {
	if n := card.Name(); n != nil {
		first = strings.TrimSpace(n.GivenName)
		last = strings.TrimSpace(n.FamilyName)
		if first != "" && last != "" {
			return first, last
		}
	}

	fn := card.Get(config.VCardFN)
	if fn == nil {
		return first, last
	}
	fields := strings.Fields(fn.Value)
	switch len(fields) {
	case 0:
		return first, last
	case 1:
		return fields[0], last
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

func logSuccess(stats syncStats) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyProfiles, stats.profiles),
			slog.Int(config.LogKeyEvents, stats.events),
		),
	)
}

// parseDate handles the vCard date forms. Year-less forms ("--MM-DD") parse
// successfully with yearKnown false.
func parseDate(value string) (t time.Time, yearKnown bool, err error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(f, value); err == nil {
			return t, false, nil
		}
	}
	return time.Time{}, false, errors.New(config.ErrDateParse)
}
