package engine

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/export"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

// ProfileEntry is one address-book contact turned into a numerological map.
type ProfileEntry struct {
	// UID is a hash of name and birth date, stable across refreshes.
	UID  string `json:"uid" yaml:"uid"`
	Name string `json:"name" yaml:"name"`

	Profile  numerology.Profile  `json:"profile" yaml:"profile"`
	Calendar numerology.Calendar `json:"calendar" yaml:"calendar"`

	// Windows active on the day the entry was built. Nil when the day
	// falls outside the calendar span.
	Quadrimester *numerology.CalendarWindow  `json:"quadrimester,omitempty" yaml:"quadrimester,omitempty"`
	Trimester    *numerology.TrimesterWindow `json:"trimester,omitempty" yaml:"trimester,omitempty"`
}

// NewEntry computes the profile of p for referenceYear and its calendar.
// A zero referenceYear means "now": the core numbers use the current year
// and the calendar starts at the most recent birthday.
func NewEntry(p numerology.Person, now time.Time, referenceYear int) ProfileEntry {
	var cal numerology.Calendar
	year := referenceYear
	if year == 0 {
		year = now.Year()
	}
	profile := numerology.NewProfile(p, year)
	if referenceYear == 0 {
		cal = profile.CalendarAt(now)
	} else {
		cal = profile.Calendar(referenceYear)
	}

	e := ProfileEntry{
		UID:      entryUID(p),
		Name:     p.FullName(),
		Profile:  profile,
		Calendar: cal,
	}
	if w, ok := cal.ActiveQuadrimester(now); ok {
		e.Quadrimester = &w
	}
	if w, ok := cal.ActiveTrimester(now); ok {
		e.Trimester = &w
	}
	return e
}

// Document flattens the entry into the export map, calendar included.
func (e ProfileEntry) Document() *export.Document {
	return export.FromProfile(e.Profile).WithCalendar(e.Calendar)
}

// Documents flattens every entry, keeping their order.
func Documents(entries []ProfileEntry) []*export.Document {
	docs := make([]*export.Document, len(entries))
	for i, e := range entries {
		docs[i] = e.Document()
	}
	return docs
}

func entryUID(p numerology.Person) string {
	input := fmt.Sprintf(config.FormatHashInput, p.FullName(), p.Birth.Time().Format(config.DateFormatFullDash), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
