package render

import (
	"strconv"
	"time"

	"github.com/tartampluch/go-numerology/internal/compat"
	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/curiosity"
	"github.com/tartampluch/go-numerology/internal/engine"
	"github.com/tartampluch/go-numerology/internal/export"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

// Profile renders the map of p followed by its master/karmic summary.
func (r *Renderer) Profile(p numerology.Profile) string {
	doc := export.FromProfile(p)
	doc.Set(config.KeySpecials, nil)
	return join(r.Document(config.TKeyTitleMap, doc), r.Specials(p.Specials))
}

// Specials lists the master and karmic numbers found in a profile.
func (r *Renderer) Specials(entries []numerology.SpecialEntry) string {
	if len(entries) == 0 {
		return join(r.title(config.TKeyTitleSpecials), r.l.Msg(config.TKeyNone))
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Position, strconv.Itoa(e.Value), e.Special.String()})
	}
	headers := []string{r.l.Msg(config.TKeyColPosition), r.l.Msg(config.TKeyColValue), ""}
	return join(r.title(config.TKeyTitleSpecials), r.grid(headers, rows, nil))
}

// Timeline renders the yearly rows, highlighting currentAge.
func (r *Renderer) Timeline(rows []numerology.TimelineRow, currentAge int) string {
	headers := []string{
		r.l.Msg(config.TKeyColAge),
		r.l.Msg(config.TKeyColYear),
		r.l.Msg(config.TKeyColUniversal),
		r.l.Msg(config.TKeyColPersonal),
		r.l.Msg(config.TKeyColCycle),
		r.l.Msg(config.TKeyColSeason),
		r.l.Msg(config.TKeyColPeriod),
		r.l.Msg(config.TKeyColPinnacle),
		r.l.Msg(config.TKeyColChallenge),
	}
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			strconv.Itoa(row.Age),
			strconv.Itoa(row.Year),
			strconv.Itoa(row.UniversalYear),
			strconv.Itoa(row.PersonalYear),
			row.Cycle + " " + strconv.Itoa(row.CycleValue),
			row.Season,
			row.Period,
			strconv.Itoa(row.Pinnacle),
			strconv.Itoa(row.Challenge),
		})
	}
	return join(r.title(config.TKeyTitleTimeline), r.grid(headers, data, func(i int) bool {
		return rows[i].Age == currentAge
	}))
}

// Calendar renders both micro-cycle tables and marks the windows that
// contain now.
func (r *Renderer) Calendar(c numerology.Calendar, now time.Time) string {
	active := r.l.Msg(config.TKeyActiveNow)
	mark := func(on bool) string {
		if on {
			return config.MarkActive + " " + active
		}
		return ""
	}

	quads := make([][]string, 0, len(c.Quadrimesters))
	for _, w := range c.Quadrimesters {
		quads = append(quads, []string{
			w.Label,
			w.Start.Format(config.DateFormatDisplay),
			w.End.Format(config.DateFormatDisplay),
			w.Value.String(),
			mark(w.Contains(now)),
		})
	}
	tris := make([][]string, 0, len(c.Trimesters))
	for _, w := range c.Trimesters {
		tris = append(tris, []string{
			w.Label,
			w.Start.Format(config.DateFormatDisplay),
			w.End.Format(config.DateFormatDisplay),
			w.Pinnacle.String(),
			w.Challenge.String(),
			mark(w.Contains(now)),
		})
	}

	start, end := r.l.Msg(config.TKeyColStart), r.l.Msg(config.TKeyColEnd)
	col := r.l.Msg(config.TKeyColActive)
	return join(
		r.title(config.TKeyTitleQuadrimesters),
		r.grid(
			[]string{r.l.Msg(config.TKeyColQuadrimester), start, end, r.l.Msg(config.TKeyColMicroCycle), col},
			quads,
			func(i int) bool { return c.Quadrimesters[i].Contains(now) },
		),
		r.title(config.TKeyTitleTrimesters),
		r.grid(
			[]string{r.l.Msg(config.TKeyColTrimester), start, end,
				r.l.Msg(config.TKeyColMicroPinnacle), r.l.Msg(config.TKeyColMicroChallenge), col},
			tris,
			func(i int) bool { return c.Trimesters[i].Contains(now) },
		),
	)
}

// Compat renders the comparison of two people named nameA and nameB.
func (r *Renderer) Compat(rep compat.Report, nameA, nameB string) string {
	rows := make([][]string, 0, len(compat.StaticTables))
	for _, t := range compat.StaticTables {
		a, _ := rep.A.Indicator(t)
		b, _ := rep.B.Indicator(t)
		rows = append(rows, []string{r.l.Msg(config.TKeyIndPrefix + t), strconv.Itoa(a), strconv.Itoa(b)})
	}

	parts := []string{
		r.title(config.TKeyTitleCompat),
		r.grid([]string{r.l.Msg(config.TKeyColIndicator), nameA, nameB}, rows, nil),
	}
	parts = append(parts, r.sections(rep.Static)...)
	parts = append(parts, r.title(config.TKeyTitleCompatDyn))
	parts = append(parts, r.sections(rep.Dynamic)...)
	parts = append(parts, "", r.Styles.Muted.Render(rep.Disclaimer))
	return join(parts...)
}

func (r *Renderer) sections(sections []compat.Section) []string {
	var out []string
	for _, s := range sections {
		out = append(out, "", r.Styles.Heading.Render(s.Heading))
		for _, f := range s.Findings {
			out = append(out, r.paragraph(f.String()))
		}
	}
	return out
}

// Energy renders the schema with the short and the detailed reading of
// each point.
func (r *Renderer) Energy(e curiosity.Energy) string {
	labels := []string{config.KeyCohesiveUnion, config.KeyEnergeticUnion, config.KeyInterconnect}
	rows := make([][]string, 0, len(labels))
	var details []string
	for i, v := range e.Values() {
		short, _ := r.l.Digit(config.DigitTableEnergy, v)
		rows = append(rows, []string{labels[i], strconv.Itoa(v), plain(short)})
		if long, ok := r.l.Digit(config.DigitTableEnergyInfo, v); ok {
			details = append(details, "", r.paragraph(long))
		}
	}
	headers := []string{r.l.Msg(config.TKeyColIndicator), r.l.Msg(config.TKeyColValue), r.l.Msg(config.TKeyColAnalysis)}
	return join(append([]string{r.title(config.TKeyTitleEnergy), r.grid(headers, rows, nil)}, details...)...)
}

// Vibration renders a name reading. table selects the interpretation set
// (config.DigitTablePet or config.DigitTableArtName).
func (r *Renderer) Vibration(v curiosity.Vibration, table string) string {
	parts := []string{
		r.title(config.TKeyTitleVibration),
		r.paragraph(r.l.MsgWith(config.TKeyVibrationValue, map[string]any{"Name": v.Name, "Value": v.Value})),
	}
	if text, ok := r.l.Digit(table, v.Value); ok {
		parts = append(parts, r.paragraph(text))
	}
	if v.HasKarmicDebt() {
		parts = append(parts, "", r.paragraph(r.l.MsgWith(config.TKeyKarmicBase, map[string]any{"Raw": v.KarmicBase})))
		if text, ok := r.l.Digit(config.DigitTableKarmic, v.KarmicBase); ok {
			parts = append(parts, r.paragraph(text))
		}
	}
	return join(parts...)
}

// Address renders the reading of a home address.
func (r *Renderer) Address(a curiosity.Address) string {
	parts := []string{r.title(config.TKeyTitleAddress)}
	if a.Source != "" {
		parts = append(parts, r.paragraph(r.l.MsgWith(config.TKeyAddressSource+a.Source, map[string]any{"Matched": a.Matched})))
	}
	parts = append(parts, r.paragraph(r.l.MsgWith(config.TKeyAddressValue, map[string]any{"Value": a.Value})))
	if a.Meaningful() {
		if text, ok := r.l.Digit(config.DigitTableAddress, a.Value); ok {
			parts = append(parts, r.paragraph(text))
		}
	}
	return join(parts...)
}

// Contacts summarizes an address-book import, one row per profile with
// the windows active at import time.
func (r *Renderer) Contacts(entries []engine.ProfileEntry) string {
	none := r.l.Msg(config.TKeyNone)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		q, t := none, none
		if e.Quadrimester != nil {
			q = e.Quadrimester.Label + " " + e.Quadrimester.Value.String()
		}
		if e.Trimester != nil {
			t = e.Trimester.Label + " " + e.Trimester.Pinnacle.String() + " / " + e.Trimester.Challenge.String()
		}
		rows = append(rows, []string{
			e.Name,
			e.Profile.Person.Birth.String(),
			strconv.Itoa(e.Profile.Core.LifePath1.Final),
			q,
			t,
		})
	}
	headers := []string{
		r.l.Msg(config.TKeyColName),
		r.l.Msg(config.TKeyColDate),
		r.l.Msg(config.TKeyColLifePath),
		r.l.Msg(config.TKeyColQuadrimester),
		r.l.Msg(config.TKeyColTrimester),
	}
	return join(r.title(config.TKeyTitleContacts), r.grid(headers, rows, nil))
}
