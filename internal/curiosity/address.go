package curiosity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

var (
	reHouseNumber  = regexp.MustCompile(config.PatternHouseNumber)
	reSlashNumber  = regexp.MustCompile(config.PatternSlashNumber)
	reSimpleNumber = regexp.MustCompile(config.PatternSimpleNumber)
	reCivicStrip   = regexp.MustCompile(config.PatternCivicStrip)
	rePunctuation  = regexp.MustCompile(config.PatternPunctuation)
	reSpaces       = regexp.MustCompile(config.PatternSpaces)
	reStopWords    = compileStopWords(config.StreetStopWords)
)

func compileStopWords(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`\b`+w+`\b`))
	}
	return out
}

// Address is the numerological reading of a home address.
type Address struct {
	Input string `json:"input" yaml:"input"`

	// Source is AddressSourceNumber when a house number was used,
	// AddressSourceStreet for the street name, empty when neither worked.
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
	Matched string `json:"matched,omitempty" yaml:"matched,omitempty"`
	Value   int    `json:"value" yaml:"value"`
}

// Meaningful reports whether the address produced a number with an
// interpretation (1 to 9).
func (a Address) Meaningful() bool {
	return a.Value > 0
}

// AnalyzeAddress prefers the house number and falls back to the letters of
// the street name.
func AnalyzeAddress(text string) Address {
	a := Address{Input: text}

	if m := reHouseNumber.FindStringSubmatch(text); m != nil {
		if v, ok := HouseNumber(m[1]); ok {
			a.Source = config.AddressSourceNumber
			a.Matched = m[1]
			a.Value = v
			return a
		}
	}

	street := StreetName(text)
	if street == "" {
		return a
	}
	a.Source = config.AddressSourceStreet
	a.Matched = street
	a.Value = numerology.ReduceStrict(numerology.LetterSum(numerology.Upper(street)))
	return a
}

// HouseNumber reduces a house number. "2/12" adds both parts, "2/A" adds
// the value of the letter; anything else uses the first number found.
// ok is false when civic holds no number.
func HouseNumber(civic string) (value int, ok bool) {
	civic = strings.ToUpper(strings.TrimSpace(civic))
	if civic == "" {
		return 0, false
	}

	if m := reSlashNumber.FindStringSubmatch(civic); m != nil {
		sum := digitSum(m[1])
		if isDigits(m[2]) {
			sum += digitSum(m[2])
		} else if utf8.RuneCountInString(m[2]) == 1 {
			r, _ := utf8.DecodeRuneInString(m[2])
			sum += numerology.LetterValue(r)
		}
		return numerology.ReduceStrict(sum), true
	}

	if m := reSimpleNumber.FindStringSubmatch(civic); m != nil {
		return numerology.ReduceStrict(digitSum(m[1])), true
	}
	return 0, false
}

// StreetName strips house numbers, place-type words and punctuation from
// address and returns the lower-cased name left over.
func StreetName(address string) string {
	s := strings.ToLower(strings.TrimSpace(address))
	s = reCivicStrip.ReplaceAllString(s, "")
	for _, re := range reStopWords {
		s = re.ReplaceAllString(s, "")
	}
	s = rePunctuation.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
	return strings.TrimSpace(s)
}

// digitSum adds the digits of a decimal string. Reducing it gives the same
// result as reducing the number itself, without overflow on long inputs.
func digitSum(s string) int {
	sum := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
