package export

import (
	"fmt"

	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/curiosity"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

// FromProfile flattens p into the map document. Every reduced indicator is
// written with its whole value and both reduction stages.
func FromProfile(p numerology.Profile) *Document {
	c, lc := p.Core, p.Cycles
	d := New()

	d.Set(config.KeyFullName, p.Person.FullName()).
		Set(config.KeyBirthDate, p.Person.Birth.String()).
		Set(config.KeyReferenceYear, p.ReferenceYear)

	for _, n := range []struct {
		whole, first, final string
		v                   numerology.ReducedNumber
	}{
		{config.KeyUniversalYearWhole, config.KeyUniversalYearFirst, config.KeyUniversalYear, c.UniversalYear},
		{config.KeyPersonalYearWhole, config.KeyPersonalYearFirst, config.KeyPersonalYear, c.PersonalYear},
		{config.KeyExpressionWhole, config.KeyExpressionFirst, config.KeyExpression, c.Expression},
		{config.KeySoulWhole, config.KeySoulFirst, config.KeySoul, c.Soul},
		{config.KeyPersonalityWhole, config.KeyPersonalityFirst, config.KeyPersonality, c.Personality},
		{config.KeyStrengthWhole, config.KeyStrengthFirst, config.KeyStrength, c.Strength},
		{config.KeyGiftWhole, config.KeyGiftFirst, config.KeyGift, c.Gift},
		{config.KeyLifePath1Whole, config.KeyLifePath1First, config.KeyLifePath1, c.LifePath1},
		{config.KeyLifePath2Whole, config.KeyLifePath2First, config.KeyLifePath2, c.LifePath2},
		{config.KeyQuintessenceWhole, config.KeyQuintessenceFirst, config.KeyQuintessence, c.Quintessence},
		{config.KeyInitiationWhole, config.KeyInitiationFirst, config.KeyInitiation, c.Initiation},
	} {
		d.Set(n.whole, n.v.Raw).
			Set(n.first, n.v.First).
			Set(n.final, n.v.Final)
	}

	for _, cy := range lc.Cycles() {
		d.Set(fmt.Sprintf(config.FormatKeyCycle, cy.Name), cy.Value).
			Set(fmt.Sprintf(config.FormatKeyCyclePeriod, cy.Name), cy.Window.Label())
	}
	for _, s := range lc.Pinnacles {
		d.Set(fmt.Sprintf(config.FormatKeyPinnacleWhole, s.Index), s.Value.Raw).
			Set(fmt.Sprintf(config.FormatKeyPinnacleFirst, s.Index), s.Value.First).
			Set(fmt.Sprintf(config.FormatKeyPinnacleFinal, s.Index), s.Value.Final).
			Set(fmt.Sprintf(config.FormatKeyPinnaclePeriod, s.Index), s.Window.Label())
	}
	for _, s := range lc.Challenges {
		d.Set(fmt.Sprintf(config.FormatKeyChallengeWhole, s.Index), s.Value.Raw).
			Set(fmt.Sprintf(config.FormatKeyChallengeFirst, s.Index), s.Value.First).
			Set(fmt.Sprintf(config.FormatKeyChallengeFinal, s.Index), s.Value.Final).
			Set(fmt.Sprintf(config.FormatKeyChallengePeriod, s.Index), s.Window.Label())
	}

	d.Set(config.KeySpecials, specials(p.Specials))
	return d
}

// specials lists the entries, or the "none" marker for an empty summary.
func specials(entries []numerology.SpecialEntry) any {
	if len(entries) == 0 {
		return config.ValueNoSpecials
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

// WithCalendar adds the micro-cycle tables of c to d.
func (d *Document) WithCalendar(c numerology.Calendar) *Document {
	quads := make([]*Document, 0, len(c.Quadrimesters))
	for _, w := range c.Quadrimesters {
		quads = append(quads, New().
			Set(config.RowKeyQuadrimester, w.Label).
			Set(config.RowKeyStart, w.Start.Format(config.DateFormatDisplay)).
			Set(config.RowKeyEnd, w.End.Format(config.DateFormatDisplay)).
			Set(config.RowKeyMicroCycle, w.Value.String()))
	}

	tris := make([]*Document, 0, len(c.Trimesters))
	for _, w := range c.Trimesters {
		tris = append(tris, New().
			Set(config.RowKeyTrimester, w.Label).
			Set(config.RowKeyStart, w.Start.Format(config.DateFormatDisplay)).
			Set(config.RowKeyEnd, w.End.Format(config.DateFormatDisplay)).
			Set(config.RowKeyMicroPinnacle, w.Pinnacle.String()).
			Set(config.RowKeyMicroChallenge, w.Challenge.String()))
	}

	return d.Set(config.KeyCalendarYear, c.ReferenceYear).
		Set(config.KeyUniversalBase, c.M1.Universal).
		Set(config.KeyPersonalBase, c.M1.Personal).
		Set(config.KeyQuadrimesters, quads).
		Set(config.KeyTrimesters, tris)
}

// WithEnergy adds the energy schema to d.
func (d *Document) WithEnergy(e curiosity.Energy) *Document {
	return d.Set(config.KeyCohesiveUnion, e.CohesiveUnion).
		Set(config.KeyEnergeticUnion, e.EnergeticUnion).
		Set(config.KeyInterconnect, e.Interconnection)
}
