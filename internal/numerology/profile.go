package numerology

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-numerology/internal/config"
)

// SpecialEntry is a Master or Karmic number found at a named position.
type SpecialEntry struct {
	Position string  `json:"position" yaml:"position"`
	Value    int     `json:"value" yaml:"value"`
	Special  Special `json:"-" yaml:"-"`
}

// String formats the entry as "Position (value(Tag N))".
func (e SpecialEntry) String() string {
	return fmt.Sprintf(config.FormatSpecialEntry, e.Position, e.Value, e.Special)
}

// Profile is the full numerological map of one person for a reference year.
type Profile struct {
	Person        Person         `json:"person" yaml:"person"`
	ReferenceYear int            `json:"reference_year" yaml:"reference_year"`
	Core          CoreNumbers    `json:"core" yaml:"core"`
	Cycles        LifeCycles     `json:"cycles" yaml:"cycles"`
	Specials      []SpecialEntry `json:"specials" yaml:"specials"`
}

// NewProfile runs every calculator for p.
func NewProfile(p Person, referenceYear int) Profile {
	core := ComputeCore(p, referenceYear)
	cycles := ComputeLifeCycles(core)
	return Profile{
		Person:        p,
		ReferenceYear: referenceYear,
		Core:          core,
		Cycles:        cycles,
		Specials:      detectSpecials(core, cycles),
	}
}

// Timeline returns the 0-80 age table.
func (p Profile) Timeline() []TimelineRow {
	return Timeline(p.Person.Birth, p.Cycles)
}

// Calendar builds the micro-cycle calendar for referenceYear using the
// profile's Life Path 1 and Strength.
func (p Profile) Calendar(referenceYear int) Calendar {
	return BuildCalendar(p.Person.Birth, referenceYear, p.Core.LifePath1.Final, p.Core.Strength.Final)
}

// CalendarAt builds the calendar for the most recent birthday before now.
func (p Profile) CalendarAt(now time.Time) Calendar {
	return p.Calendar(LastBirthdayYear(p.Person.Birth, now))
}

type position struct {
	label string
	value int
}

func stages(r ReducedNumber, label string) []position {
	return []position{
		{label + config.SuffixWhole, r.Raw},
		{label + config.SuffixFirst, r.First},
		{label + config.SuffixFinal, r.Final},
	}
}

// detectSpecials classifies every raw, first and final value in report order.
func detectSpecials(c CoreNumbers, lc LifeCycles) []SpecialEntry {
	var all []position
	all = append(all,
		position{config.PosExpression, c.Expression.Raw},
		position{config.PosExpression + config.SuffixFirst, c.Expression.First},
		position{config.PosExpression + config.SuffixFinal, c.Expression.Final},
		position{config.PosSoul, c.Soul.Raw},
		position{config.PosSoul + config.SuffixFirst, c.Soul.First},
		position{config.PosSoul + config.SuffixFinal, c.Soul.Final},
		position{config.PosPersonality, c.Personality.Raw},
		position{config.PosPersonality + config.SuffixFirst, c.Personality.First},
		position{config.PosPersonality + config.SuffixFinal, c.Personality.Final},
		position{config.PosStrength, c.Strength.Raw},
		position{config.PosStrengthShort + config.SuffixFirst, c.Strength.First},
		position{config.PosStrengthShort + config.SuffixFinal, c.Strength.Final},
		position{config.PosGift, c.Gift.Raw},
		position{config.PosGift + config.SuffixFirst, c.Gift.First},
		position{config.PosGift + config.SuffixFinal, c.Gift.Final},
	)
	all = append(all, stages(c.LifePath1, config.PosLifePath1)...)
	all = append(all, stages(c.LifePath2, config.PosLifePath2)...)
	all = append(all, stages(c.Quintessence, config.PosQuintessence)...)
	all = append(all, stages(c.Initiation, config.PosInitiation)...)
	for _, cy := range lc.Cycles() {
		all = append(all, position{config.PosCyclePrefix + cy.Name, cy.Value})
	}
	for _, s := range lc.Pinnacles {
		all = append(all, position{fmt.Sprintf(config.FormatPosPinnacle, s.Index), s.Value.Final})
	}
	for _, s := range lc.Challenges {
		all = append(all, position{fmt.Sprintf(config.FormatPosChallenge, s.Index), s.Value.Final})
	}
	all = append(all,
		position{config.PosUniversalYear + config.SuffixR1, c.UniversalYear.First},
		position{config.PosUniversalYear + config.SuffixR2, c.UniversalYear.Final},
		position{config.PosPersonalYear + config.SuffixR1, c.PersonalYear.First},
		position{config.PosPersonalYear + config.SuffixR2, c.PersonalYear.Final},
	)

	var found []SpecialEntry
	for _, p := range all {
		if s := Classify(p.value); !s.IsZero() {
			found = append(found, SpecialEntry{Position: p.label, Value: p.value, Special: s})
		}
	}
	return found
}
