package numerology

import (
	"fmt"

	"github.com/tartampluch/go-numerology/internal/config"
)

// Life cycle durations in years.
const (
	cycleBase        = 36
	powerCycleLength = 27
	stageLength      = 9
)

// AgeWindow is an inclusive age range. An open window has no upper bound.
type AgeWindow struct {
	From int  `json:"from" yaml:"from"`
	To   int  `json:"to,omitempty" yaml:"to,omitempty"`
	Open bool `json:"open,omitempty" yaml:"open,omitempty"`
}

// Contains reports whether age falls inside the window.
func (w AgeWindow) Contains(age int) bool {
	if age < w.From {
		return false
	}
	return w.Open || age <= w.To
}

// Label renders the activation period the way reports print it.
func (w AgeWindow) Label() string {
	switch {
	case w.Open:
		return fmt.Sprintf(config.FormatPeriodOpen, w.From)
	case w.From == 0:
		return fmt.Sprintf(config.FormatPeriodFromBirth, w.To)
	default:
		return fmt.Sprintf(config.FormatPeriodRange, w.From, w.To)
	}
}

// Cycle is one of the three life cycles.
type Cycle struct {
	Name   string    `json:"name" yaml:"name"`
	Value  int       `json:"value" yaml:"value"`
	Window AgeWindow `json:"window" yaml:"window"`
}

// Stage is a Pinnacle or Challenge with its activation window.
type Stage struct {
	Index  int           `json:"index" yaml:"index"`
	Value  ReducedNumber `json:"value" yaml:"value"`
	Window AgeWindow     `json:"window" yaml:"window"`
}

// LifeCycles groups the cycles, pinnacles and challenges of a person.
// Cycles and stages share ExperienceEnd but are otherwise not aligned.
type LifeCycles struct {
	ExperienceEnd int `json:"experience_end" yaml:"experience_end"`
	PowerEnd      int `json:"power_end" yaml:"power_end"`

	Experience Cycle `json:"experience" yaml:"experience"`
	Power      Cycle `json:"power" yaml:"power"`
	Wisdom     Cycle `json:"wisdom" yaml:"wisdom"`

	Pinnacles  [4]Stage `json:"pinnacles" yaml:"pinnacles"`
	Challenges [4]Stage `json:"challenges" yaml:"challenges"`
}

// Cycles returns the three cycles in age order.
func (lc LifeCycles) Cycles() []Cycle {
	return []Cycle{lc.Experience, lc.Power, lc.Wisdom}
}

// CycleAt returns the cycle active at age.
func (lc LifeCycles) CycleAt(age int) Cycle {
	for _, c := range lc.Cycles() {
		if c.Window.Contains(age) {
			return c
		}
	}
	return lc.Wisdom
}

// ComputeLifeCycles derives cycles, pinnacles and challenges from the strict
// day, month and year components. The first boundary is 36 minus the
// single-digit form of Life Path 1 and always lies within 27..35.
func ComputeLifeCycles(c CoreNumbers) LifeCycles {
	d, m, y := c.DayReduced, c.MonthReduced, c.YearReduced
	expEnd := cycleBase - ReduceStrict(c.LifePath1.Final)
	powEnd := expEnd + powerCycleLength

	lc := LifeCycles{
		ExperienceEnd: expEnd,
		PowerEnd:      powEnd,
		Experience:    Cycle{Name: config.CycleExperience, Value: m, Window: AgeWindow{From: 0, To: expEnd}},
		Power:         Cycle{Name: config.CyclePower, Value: d, Window: AgeWindow{From: expEnd + 1, To: powEnd}},
		Wisdom:        Cycle{Name: config.CycleWisdom, Value: y, Window: AgeWindow{From: powEnd + 1, Open: true}},
	}

	windows := [4]AgeWindow{
		{From: 0, To: expEnd},
		{From: expEnd + 1, To: expEnd + stageLength},
		{From: expEnd + stageLength + 1, To: expEnd + 2*stageLength},
		{From: expEnd + 2*stageLength + 1, Open: true},
	}

	p1 := NewReduced(d+m, Strict)
	p2 := NewReduced(d+y, Strict)
	p3 := NewReduced(p1.Final+p2.Final, Strict)
	p4 := NewReduced(m+y, Strict)

	s1 := NewReduced(absDiff(d, m), Strict)
	s2 := NewReduced(absDiff(y, d), Strict)
	s3 := NewReduced(absDiff(s1.Final, s2.Final), Strict)
	s4 := NewReduced(absDiff(y, m), Strict)

	for i, v := range [4]ReducedNumber{p1, p2, p3, p4} {
		lc.Pinnacles[i] = Stage{Index: i + 1, Value: v, Window: windows[i]}
	}
	for i, v := range [4]ReducedNumber{s1, s2, s3, s4} {
		lc.Challenges[i] = Stage{Index: i + 1, Value: v, Window: windows[i]}
	}
	return lc
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
