package numerology

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-numerology/internal/config"
)

// Master numbers halt ReduceMasterPreserving. 44 is recognized by Classify
// but is reduced like any other two-digit value.
var preservedMasters = map[int]bool{11: true, 22: true, 33: true}

var (
	masterNumbers = map[int]bool{11: true, 22: true, 33: true, 44: true}
	karmicNumbers = map[int]bool{13: true, 14: true, 16: true, 19: true}
)

// SumDigits returns the sum of the decimal digits of abs(n).
func SumDigits(n int) int {
	u := uint(n)
	if n < 0 {
		u = uint(-(n + 1)) + 1
	}
	sum := 0
	for u > 0 {
		sum += int(u % 10)
		u /= 10
	}
	return sum
}

// nonNegative returns abs(n). math.MinInt has no positive int, so it is
// replaced by its digit sum, which is neither master nor single-digit.
func nonNegative(n int) int {
	switch {
	case n == math.MinInt:
		return SumDigits(n)
	case n < 0:
		return -n
	default:
		return n
	}
}

// SumDigitsOf is SumDigits for optional inputs: a nil value sums to 0.
func SumDigitsOf(n *int) int {
	if n == nil {
		return 0
	}
	return SumDigits(*n)
}

// ReduceOnce applies a single digit sum ("Riduzione 1").
func ReduceOnce(n int) int {
	return SumDigits(n)
}

// ReduceStrict sums digits until the value is a single digit.
// Master and Karmic numbers are never preserved.
func ReduceStrict(n int) int {
	n = nonNegative(n)
	for n > 9 {
		n = SumDigits(n)
	}
	return n
}

// ReduceMasterPreserving sums digits until the value is a single digit or
// one of 11, 22, 33. The check runs before every step, so a master number
// reached at any stage halts the loop.
func ReduceMasterPreserving(n int) int {
	n = nonNegative(n)
	for n > 9 && !preservedMasters[n] {
		n = SumDigits(n)
	}
	return n
}

// Policy selects which reducer produces the final value of a field.
type Policy int

const (
	Strict Policy = iota
	MasterPreserving
)

// Reduce applies the policy's reducer to n.
func (p Policy) Reduce(n int) int {
	if p == MasterPreserving {
		return ReduceMasterPreserving(n)
	}
	return ReduceStrict(n)
}

// SpecialKind tags a value as Master, Karmic or neither.
type SpecialKind int

const (
	SpecialNone SpecialKind = iota
	SpecialMaster
	SpecialKarmic
)

// Special is the classification of one integer value.
type Special struct {
	Kind  SpecialKind
	Value int
}

// IsZero reports whether the value carries no special tag.
func (s Special) IsZero() bool {
	return s.Kind == SpecialNone
}

func (s Special) String() string {
	switch s.Kind {
	case SpecialMaster:
		return fmt.Sprintf(config.FormatSpecialMaster, s.Value)
	case SpecialKarmic:
		return fmt.Sprintf(config.FormatSpecialKarmic, s.Value)
	default:
		return ""
	}
}

// Classify compares n against the Master and Karmic sets by exact equality.
// Callers decide at which stage of a formula the value is classified.
func Classify(n int) Special {
	switch {
	case masterNumbers[n]:
		return Special{Kind: SpecialMaster, Value: n}
	case karmicNumbers[n]:
		return Special{Kind: SpecialKarmic, Value: n}
	default:
		return Special{}
	}
}

// IsKarmic reports whether n is one of the karmic debt numbers.
func IsKarmic(n int) bool {
	return karmicNumbers[n]
}

// ReducedNumber keeps every stage of a reduction: the raw sum, the first
// digit sum and the final value produced by the field's policy.
type ReducedNumber struct {
	Raw   int `json:"raw" yaml:"raw"`
	First int `json:"first" yaml:"first"`
	Final int `json:"final" yaml:"final"`
}

// NewReduced builds a ReducedNumber from a raw sum.
func NewReduced(raw int, p Policy) ReducedNumber {
	return ReducedNumber{
		Raw:   raw,
		First: ReduceOnce(raw),
		Final: p.Reduce(raw),
	}
}

// Special classifies the raw sum, where Master and Karmic numbers appear.
func (r ReducedNumber) Special() Special {
	return Classify(r.Raw)
}

// String formats the value as "{raw} → {final}".
func (r ReducedNumber) String() string {
	return fmt.Sprintf(config.FormatRawReduced, r.Raw, r.Final)
}
