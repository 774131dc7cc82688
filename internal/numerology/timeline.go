package numerology

import "github.com/tartampluch/go-numerology/internal/config"

// TimelineMaxAge is the last age covered by Timeline.
const TimelineMaxAge = 80

// TimelineRow describes one year of life.
type TimelineRow struct {
	Age           int    `json:"age" yaml:"age"`
	Year          int    `json:"year" yaml:"year"`
	UniversalYear int    `json:"universal_year" yaml:"universal_year"`
	PersonalYear  int    `json:"personal_year" yaml:"personal_year"`
	Cycle         string `json:"cycle" yaml:"cycle"`
	CycleValue    int    `json:"cycle_value" yaml:"cycle_value"`
	Season        string `json:"season" yaml:"season"`
	Period        string `json:"period" yaml:"period"`
	Pinnacle      int    `json:"pinnacle" yaml:"pinnacle"`
	PinnacleRaw   int    `json:"pinnacle_raw" yaml:"pinnacle_raw"`
	Challenge     int    `json:"challenge" yaml:"challenge"`
	ChallengeRaw  int    `json:"challenge_raw" yaml:"challenge_raw"`
}

// Timeline produces one row per age from 0 to TimelineMaxAge.
func Timeline(b BirthDate, lc LifeCycles) []TimelineRow {
	rows := make([]TimelineRow, 0, TimelineMaxAge+1)
	for age := 0; age <= TimelineMaxAge; age++ {
		year := b.Year + age
		uy := ReduceMasterPreserving(year)
		cycle := lc.CycleAt(age)
		season, slot := seasonAt(age, lc)
		p, s := lc.Pinnacles[slot], lc.Challenges[slot]

		rows = append(rows, TimelineRow{
			Age:           age,
			Year:          year,
			UniversalYear: uy,
			PersonalYear:  ReduceMasterPreserving(b.Day + b.Month + uy),
			Cycle:         cycle.Name,
			CycleValue:    cycle.Value,
			Season:        season,
			Period:        p.Window.Label(),
			Pinnacle:      p.Value.Final,
			PinnacleRaw:   p.Value.Raw,
			Challenge:     s.Value.Final,
			ChallengeRaw:  s.Value.Raw,
		})
	}
	return rows
}

// seasonAt splits Power into a summer half covering the second pinnacle
// window and an autumn half read against the third pinnacle until Power ends.
// The pinnacle/challenge slot follows the season, not the pinnacle windows.
func seasonAt(age int, lc LifeCycles) (string, int) {
	switch {
	case age <= lc.ExperienceEnd:
		return config.SeasonSpring, 0
	case age <= lc.PowerEnd && age <= lc.Pinnacles[1].Window.To:
		return config.SeasonSummer, 1
	case age <= lc.PowerEnd:
		return config.SeasonAutumn, 2
	default:
		return config.SeasonWinter, 3
	}
}
