// Package compat compares the numerological profiles of two people using
// the symmetric interpretation tables of the catalog.
package compat

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

// Lookup resolves interpretation texts. *interpret.Catalog satisfies it.
type Lookup interface {
	Msg(key string) string
	MsgWith(key string, data map[string]any) string
	Compatibility(table string, a, b int) string
}

// Numbers are the single-digit indicators compared between two people.
// Every value uses the strict policy, masters included.
type Numbers struct {
	LifePath     int `json:"life_path" yaml:"life_path"`
	Expression   int `json:"expression" yaml:"expression"`
	Soul         int `json:"soul" yaml:"soul"`
	Personality  int `json:"personality" yaml:"personality"`
	Strength     int `json:"strength" yaml:"strength"`
	Quintessence int `json:"quintessence" yaml:"quintessence"`

	Cycles     [3]int `json:"cycles" yaml:"cycles"`
	Pinnacles  [4]int `json:"pinnacles" yaml:"pinnacles"`
	Challenges [4]int `json:"challenges" yaml:"challenges"`

	// Age at which the first pinnacle ends; the next two last nine years each.
	FirstStageEnd int `json:"first_stage_end" yaml:"first_stage_end"`
}

// NumbersOf extracts the comparison numbers from a profile.
func NumbersOf(p numerology.Profile) Numbers {
	c, lc := p.Core, p.Cycles
	n := Numbers{
		LifePath:      numerology.ReduceStrict(c.LifePath1.Raw),
		Expression:    numerology.ReduceStrict(c.Expression.Raw),
		Soul:          numerology.ReduceStrict(c.Soul.Raw),
		Personality:   numerology.ReduceStrict(c.Personality.Raw),
		Strength:      numerology.ReduceStrict(c.Strength.Raw),
		Quintessence:  numerology.ReduceStrict(c.Quintessence.Raw),
		FirstStageEnd: lc.ExperienceEnd,
	}
	for i, cy := range lc.Cycles() {
		n.Cycles[i] = cy.Value
	}
	for i := range lc.Pinnacles {
		n.Pinnacles[i] = lc.Pinnacles[i].Value.Final
		n.Challenges[i] = lc.Challenges[i].Value.Final
	}
	return n
}

// Indicator returns the static indicator stored for table.
func (n Numbers) Indicator(table string) (int, bool) {
	switch table {
	case config.TableLifePath:
		return n.LifePath, true
	case config.TableExpression:
		return n.Expression, true
	case config.TableSoul:
		return n.Soul, true
	case config.TablePersonality:
		return n.Personality, true
	case config.TableStrength:
		return n.Strength, true
	case config.TableQuintessence:
		return n.Quintessence, true
	}
	return 0, false
}

// StaticTables lists the core indicators in report order.
var StaticTables = []string{
	config.TableLifePath,
	config.TableExpression,
	config.TableSoul,
	config.TablePersonality,
	config.TableStrength,
	config.TableQuintessence,
}

// Finding is one compared pair with its interpretation.
type Finding struct {
	Table   string `json:"table" yaml:"table"`
	Slot    int    `json:"slot,omitempty" yaml:"slot,omitempty"`
	A       int    `json:"a" yaml:"a"`
	B       int    `json:"b" yaml:"b"`
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
	Text    string `json:"text" yaml:"text"`
}

// String joins the context and the interpretation.
func (f Finding) String() string {
	return strings.TrimSpace(f.Context + " " + f.Text)
}

// Section groups the findings of one table under its heading.
type Section struct {
	Table    string    `json:"table" yaml:"table"`
	Heading  string    `json:"heading" yaml:"heading"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Report is the full comparison of two people.
type Report struct {
	A          Numbers   `json:"a" yaml:"a"`
	B          Numbers   `json:"b" yaml:"b"`
	Static     []Section `json:"static" yaml:"static"`
	Dynamic    []Section `json:"dynamic" yaml:"dynamic"`
	Disclaimer string    `json:"disclaimer" yaml:"disclaimer"`
}

// Compare builds the report for a and b. Lookups never fail: pairs without
// a dedicated text resolve to the table default.
func Compare(l Lookup, a, b numerology.Profile) Report {
	return CompareNumbers(l, NumbersOf(a), NumbersOf(b))
}

// CompareNumbers is Compare for precomputed numbers.
func CompareNumbers(l Lookup, a, b Numbers) Report {
	r := Report{A: a, B: b, Disclaimer: l.Msg(config.TKeyCompatDisclaimer)}

	for _, table := range StaticTables {
		va, _ := a.Indicator(table)
		vb, _ := b.Indicator(table)
		r.Static = append(r.Static, Section{
			Table:    table,
			Heading:  heading(l, table),
			Findings: []Finding{{Table: table, A: va, B: vb, Text: l.Compatibility(table, va, vb)}},
		})
	}

	cycles := Section{Table: config.TableCycles, Heading: heading(l, config.TableCycles)}
	for i := range a.Cycles {
		cycles.Findings = append(cycles.Findings, Finding{
			Table:   config.TableCycles,
			Slot:    i + 1,
			A:       a.Cycles[i],
			B:       b.Cycles[i],
			Context: l.Msg(fmt.Sprintf("%s%d", config.TKeyCompatCtxCycle, i+1)),
			Text:    l.Compatibility(config.TableCycles, a.Cycles[i], b.Cycles[i]),
		})
	}

	r.Dynamic = []Section{
		cycles,
		stageSection(l, config.TablePinnacles, config.TKeyCompatCtxPinnacle, a, b, a.Pinnacles, b.Pinnacles),
		stageSection(l, config.TableChallenges, config.TKeyCompatCtxChallenge, a, b, a.Challenges, b.Challenges),
	}
	return r
}

func heading(l Lookup, table string) string {
	return l.Msg(config.TKeyCompatHeadingPrefix + table)
}

func stageSection(l Lookup, table, ctxPrefix string, a, b Numbers, va, vb [4]int) Section {
	s := Section{Table: table, Heading: heading(l, table)}
	for i := range va {
		s.Findings = append(s.Findings, Finding{
			Table:   table,
			Slot:    i + 1,
			A:       va[i],
			B:       vb[i],
			Context: l.MsgWith(fmt.Sprintf("%s%d", ctxPrefix, i+1), stageAges(i, a.FirstStageEnd, b.FirstStageEnd)),
			Text:    l.Compatibility(table, va[i], vb[i]),
		})
	}
	return s
}

// stageAges fills the template data of the slot-th pinnacle or challenge
// context. The last slot is open ended and reports the age it starts after.
func stageAges(slot, endA, endB int) map[string]any {
	const stageLength = 9
	data := map[string]any{}
	switch slot {
	case 0:
		data["ToA"], data["ToB"] = endA, endB
	case 1, 2:
		offset := (slot - 1) * stageLength
		data["FromA"], data["ToA"] = endA+offset+1, endA+offset+stageLength
		data["FromB"], data["ToB"] = endB+offset+1, endB+offset+stageLength
	default:
		data["AfterA"], data["AfterB"] = endA+2*stageLength, endB+2*stageLength
	}
	return data
}
