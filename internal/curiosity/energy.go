package curiosity

import "github.com/tartampluch/go-numerology/internal/numerology"

// Energy is the three-point energy schema of a profile.
type Energy struct {
	CohesiveUnion   int `json:"cohesive_union" yaml:"cohesive_union"`
	EnergeticUnion  int `json:"energetic_union" yaml:"energetic_union"`
	Interconnection int `json:"interconnection" yaml:"interconnection"`
}

// EnergySchema combines the final Life Path (method 1), Soul, Expression,
// Personality and Quintessence, reducing each sum strictly.
func EnergySchema(c numerology.CoreNumbers) Energy {
	lp := c.LifePath1.Final
	soul := c.Soul.Final
	expr := c.Expression.Final
	pers := c.Personality.Final
	quint := c.Quintessence.Final

	return Energy{
		CohesiveUnion:   numerology.ReduceStrict(lp + pers + quint),
		EnergeticUnion:  numerology.ReduceStrict(soul + pers + expr),
		Interconnection: numerology.ReduceStrict(soul + lp + expr + quint),
	}
}

// Values returns the three numbers in display order.
func (e Energy) Values() [3]int {
	return [3]int{e.CohesiveUnion, e.EnergeticUnion, e.Interconnection}
}
