package numerology

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Letter is one valued character of a name.
type Letter struct {
	Char  rune `json:"char" yaml:"char"`
	Value int  `json:"value" yaml:"value"`
	Vowel bool `json:"vowel" yaml:"vowel"`
}

// NameProfile is the letter decomposition of a single name.
// Total always equals VowelSum + ConsonantSum.
type NameProfile struct {
	Letters      []Letter `json:"letters" yaml:"letters"`
	Vowels       []Letter `json:"vowels" yaml:"vowels"`
	Consonants   []Letter `json:"consonants" yaml:"consonants"`
	VowelSum     int      `json:"vowel_sum" yaml:"vowel_sum"`
	ConsonantSum int      `json:"consonant_sum" yaml:"consonant_sum"`
	Total        int      `json:"total" yaml:"total"`
}

// Upper upper-cases text for letter lookup. A new Caser is built per call
// because cases.Caser is not safe for concurrent use.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Analyze decomposes name into valued letters. Characters without a value
// are dropped entirely; an empty input yields an all-zero profile.
func Analyze(name string) NameProfile {
	var p NameProfile
	for _, r := range Upper(name) {
		v := LetterValue(r)
		if v == 0 {
			continue
		}
		l := Letter{Char: r, Value: v, Vowel: IsVowel(r)}
		p.Letters = append(p.Letters, l)
		if l.Vowel {
			p.Vowels = append(p.Vowels, l)
			p.VowelSum += v
		} else {
			p.Consonants = append(p.Consonants, l)
			p.ConsonantSum += v
		}
	}
	p.Total = p.VowelSum + p.ConsonantSum
	return p
}
