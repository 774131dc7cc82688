package numerology

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-numerology/internal/config"
)

const (
	quadrimesterCount  = 6
	quadrimesterMonths = 4
	trimesterCount     = 8
	trimesterMonths    = 3
	rowsPerAnchor      = 3
	trimestersPerYear  = 4
)

// Anchor holds the yearly figures a micro-cycle table is built from.
type Anchor struct {
	ReferenceYear int `json:"reference_year" yaml:"reference_year"`
	Universal     int `json:"universal" yaml:"universal"`
	NextUniversal int `json:"next_universal" yaml:"next_universal"`
	RawPersonal   int `json:"raw_personal" yaml:"raw_personal"`
	Personal      int `json:"personal" yaml:"personal"`
}

// NewAnchor computes the anchor of a birthday-year using master-preserving
// reductions throughout.
func NewAnchor(b BirthDate, year int) Anchor {
	uni := UniversalYear(year).Final
	raw := ReduceMasterPreserving(b.Day) + ReduceMasterPreserving(b.Month) + uni
	return Anchor{
		ReferenceYear: year,
		Universal:     uni,
		NextUniversal: UniversalYear(year + 1).Final,
		RawPersonal:   raw,
		Personal:      ReduceMasterPreserving(raw),
	}
}

// CalendarWindow is a dated quadrimester micro-cycle.
type CalendarWindow struct {
	Label string        `json:"label" yaml:"label"`
	Start time.Time     `json:"start" yaml:"start"`
	End   time.Time     `json:"end" yaml:"end"`
	Value ReducedNumber `json:"value" yaml:"value"`
}

// Contains reports whether the calendar day of t lies within the window.
func (w CalendarWindow) Contains(t time.Time) bool {
	return dateWithin(t, w.Start, w.End)
}

// TrimesterWindow is a dated micro-pinnacle/micro-challenge window.
type TrimesterWindow struct {
	Label     string        `json:"label" yaml:"label"`
	Start     time.Time     `json:"start" yaml:"start"`
	End       time.Time     `json:"end" yaml:"end"`
	Pinnacle  ReducedNumber `json:"pinnacle" yaml:"pinnacle"`
	Challenge ReducedNumber `json:"challenge" yaml:"challenge"`
}

// Contains reports whether the calendar day of t lies within the window.
func (w TrimesterWindow) Contains(t time.Time) bool {
	return dateWithin(t, w.Start, w.End)
}

// Calendar is the two-year micro-cycle breakdown for a reference year.
type Calendar struct {
	ReferenceYear int               `json:"reference_year" yaml:"reference_year"`
	M1            Anchor            `json:"m1" yaml:"m1"`
	M2            Anchor            `json:"m2" yaml:"m2"`
	Quadrimesters []CalendarWindow  `json:"quadrimesters" yaml:"quadrimesters"`
	Trimesters    []TrimesterWindow `json:"trimesters" yaml:"trimesters"`
}

// BuildCalendar computes 6 quadrimesters from the birthday month of
// referenceYear and 8 trimesters from January of referenceYear. Rows 3 and 7
// of both tables depend on the two rows before them, so rows are built in
// order.
func BuildCalendar(b BirthDate, referenceYear, lifePath, strength int) Calendar {
	c := Calendar{
		ReferenceYear: referenceYear,
		M1:            NewAnchor(b, referenceYear),
		M2:            NewAnchor(b, referenceYear+1),
	}

	values := make([]ReducedNumber, 0, quadrimesterCount)
	for _, a := range []Anchor{c.M1, c.M2} {
		q1 := NewReduced(a.NextUniversal+a.Personal, MasterPreserving)
		q2 := NewReduced(lifePath+q1.Final, MasterPreserving)
		q3 := NewReduced(q1.Final+q2.Final, MasterPreserving)
		values = append(values, q1, q2, q3)
	}
	for i, v := range values {
		start, end := monthSpan(referenceYear, b.Month+i*quadrimesterMonths, quadrimesterMonths)
		c.Quadrimesters = append(c.Quadrimesters, CalendarWindow{
			Label: fmt.Sprintf(config.FormatQuadrimesterLabel, i+1),
			Start: start,
			End:   end,
			Value: v,
		})
	}

	for i, a := range []Anchor{c.M1, c.M2} {
		rows := trimesterValues(strength, a.Universal, a.Personal)
		for j, r := range rows {
			idx := i*trimestersPerYear + j
			start, end := monthSpan(referenceYear, 1+idx*trimesterMonths, trimesterMonths)
			c.Trimesters = append(c.Trimesters, TrimesterWindow{
				Label:     fmt.Sprintf(config.FormatTrimesterLabel, idx+1),
				Start:     start,
				End:       end,
				Pinnacle:  r[0],
				Challenge: r[1],
			})
		}
	}
	return c
}

// trimesterValues applies the four-case schedule for one anchor, with a the
// Strength number, b the anchor's Universal Year and c its Personal Year.
// Challenges are the absolute difference of the terms the pinnacle sums.
func trimesterValues(a, b, c int) [trimestersPerYear][2]ReducedNumber {
	var rows [trimestersPerYear][2]ReducedNumber
	rows[0] = [2]ReducedNumber{NewReduced(a+b, Strict), NewReduced(absDiff(a, b), Strict)}
	rows[1] = [2]ReducedNumber{NewReduced(a+c, Strict), NewReduced(absDiff(c, a), Strict)}
	rows[2] = [2]ReducedNumber{
		NewReduced(rows[0][0].Final+rows[1][0].Final, Strict),
		NewReduced(absDiff(rows[0][1].Final, rows[1][1].Final), Strict),
	}
	rows[3] = [2]ReducedNumber{NewReduced(b+c, Strict), NewReduced(absDiff(c, b), Strict)}
	return rows
}

// ActiveQuadrimester returns the quadrimester containing t.
func (c Calendar) ActiveQuadrimester(t time.Time) (CalendarWindow, bool) {
	for _, w := range c.Quadrimesters {
		if w.Contains(t) {
			return w, true
		}
	}
	return CalendarWindow{}, false
}

// ActiveTrimester returns the trimester containing t.
func (c Calendar) ActiveTrimester(t time.Time) (TrimesterWindow, bool) {
	for _, w := range c.Trimesters {
		if w.Contains(t) {
			return w, true
		}
	}
	return TrimesterWindow{}, false
}

// monthSpan returns the first day of month m (counted from January of year,
// overflowing into later years) and the last day of the n-th month after it.
func monthSpan(year, m, n int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(m+n), 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

func dateWithin(t, start, end time.Time) bool {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
