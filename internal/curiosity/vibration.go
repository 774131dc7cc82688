// Package curiosity computes the side readings of a numerological map:
// the vibration of a free-form name, the number of a home address and the
// energy schema derived from the core numbers.
package curiosity

import (
	"slices"

	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

// Vibration is the strict reduction of a name's letter sum. It serves both
// the pet-energy and the stage-name readings.
type Vibration struct {
	Name  string `json:"name" yaml:"name"`
	Raw   int    `json:"raw" yaml:"raw"`
	Value int    `json:"value" yaml:"value"`

	// KarmicBase is Raw when Raw is a karmic debt number, otherwise 0.
	KarmicBase int `json:"karmic_base,omitempty" yaml:"karmic_base,omitempty"`
}

// NameVibration sums every letter of name. Spaces, digits and accented
// letters count 0.
func NameVibration(name string) Vibration {
	raw := numerology.LetterSum(numerology.Upper(name))
	v := Vibration{
		Name:  name,
		Raw:   raw,
		Value: numerology.ReduceStrict(raw),
	}
	if slices.Contains(config.KarmicDebts, raw) {
		v.KarmicBase = raw
	}
	return v
}

// HasKarmicDebt reports whether the raw sum is a karmic debt number.
func (v Vibration) HasKarmicDebt() bool {
	return v.KarmicBase != 0
}
