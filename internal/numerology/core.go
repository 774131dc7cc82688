package numerology

// CoreNumbers holds the name and birth-date indicators of one person for a
// reference year. Every field except Gift uses the master-preserving policy.
type CoreNumbers struct {
	First NameProfile `json:"first_name" yaml:"first_name"`
	Last  NameProfile `json:"last_name" yaml:"last_name"`

	Expression  ReducedNumber `json:"expression" yaml:"expression"`
	Soul        ReducedNumber `json:"soul" yaml:"soul"`
	Personality ReducedNumber `json:"personality" yaml:"personality"`
	Strength    ReducedNumber `json:"strength" yaml:"strength"`
	Gift        ReducedNumber `json:"gift" yaml:"gift"`

	UniversalYear ReducedNumber `json:"universal_year" yaml:"universal_year"`
	PersonalYear  ReducedNumber `json:"personal_year" yaml:"personal_year"`

	LifePath1 ReducedNumber `json:"life_path_1" yaml:"life_path_1"`
	LifePath2 ReducedNumber `json:"life_path_2" yaml:"life_path_2"`

	Quintessence ReducedNumber `json:"quintessence" yaml:"quintessence"`
	Initiation   ReducedNumber `json:"initiation" yaml:"initiation"`

	// Strict single-digit components shared by Life Path and the cycles.
	DayReduced   int `json:"day_reduced" yaml:"day_reduced"`
	MonthReduced int `json:"month_reduced" yaml:"month_reduced"`
	YearDigitSum int `json:"year_digit_sum" yaml:"year_digit_sum"`
	YearReduced  int `json:"year_reduced" yaml:"year_reduced"`
}

// ComputeCore derives the core indicators. Names are assumed non-empty and
// the birth date valid; see Person.Validate.
func ComputeCore(p Person, referenceYear int) CoreNumbers {
	c := CoreNumbers{
		First: Analyze(p.FirstName),
		Last:  Analyze(p.LastName),
	}
	day, month, year := p.Birth.Day, p.Birth.Month, p.Birth.Year

	c.Expression = NewReduced(c.First.Total+c.Last.Total, MasterPreserving)
	c.Soul = NewReduced(c.First.VowelSum+c.Last.VowelSum, MasterPreserving)
	c.Personality = NewReduced(c.First.ConsonantSum+c.Last.ConsonantSum, MasterPreserving)
	c.Strength = NewReduced(day+month, MasterPreserving)

	lastTwo := year % 100
	c.Gift = NewReduced(lastTwo/10+lastTwo%10, Strict)

	c.UniversalYear = UniversalYear(referenceYear)
	c.PersonalYear = NewReduced(day+month+c.UniversalYear.Final, MasterPreserving)

	c.DayReduced = ReduceStrict(day)
	c.MonthReduced = ReduceStrict(month)
	c.YearDigitSum = SumDigits(year)
	c.YearReduced = ReduceStrict(c.YearDigitSum)

	c.LifePath1 = NewReduced(c.DayReduced+c.MonthReduced+c.YearDigitSum, MasterPreserving)
	c.LifePath2 = NewReduced(c.DayReduced+c.MonthReduced+c.YearReduced, MasterPreserving)

	c.Quintessence = NewReduced(c.Expression.Raw+c.LifePath1.Raw, MasterPreserving)
	c.Initiation = NewReduced(c.Expression.Raw+c.Soul.Raw+day+c.LifePath1.Raw, MasterPreserving)

	return c
}

// UniversalYear reduces a calendar year. Raw is the year itself, First its
// digit sum and Final the master-preserving reduction.
func UniversalYear(year int) ReducedNumber {
	return NewReduced(year, MasterPreserving)
}
