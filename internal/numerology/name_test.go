package numerology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-numerology/internal/numerology"
)

func TestLetterValue(t *testing.T) {
	want := map[rune]int{
		'A': 1, 'J': 1, 'S': 1,
		'B': 2, 'K': 2, 'T': 2,
		'C': 3, 'L': 3, 'U': 3,
		'D': 4, 'M': 4, 'V': 4,
		'E': 5, 'N': 5, 'W': 5,
		'F': 6, 'O': 6, 'X': 6,
		'G': 7, 'P': 7, 'Y': 7,
		'H': 8, 'Q': 8, 'Z': 8,
		'I': 9, 'R': 9,
	}
	for r, v := range want {
		assert.Equal(t, v, numerology.LetterValue(r), "letter %c", r)
	}
	for _, r := range []rune{'a', '1', ' ', '-', 'È', 'ß'} {
		assert.Zero(t, numerology.LetterValue(r), "rune %q", r)
	}
}

func TestAnalyze_Mario(t *testing.T) {
	p := numerology.Analyze("Mario")

	require.Len(t, p.Letters, 5)
	assert.Equal(t, 29, p.Total)
	assert.Equal(t, 16, p.VowelSum)
	assert.Equal(t, 13, p.ConsonantSum)
	assert.Equal(t, []numerology.Letter{
		{Char: 'A', Value: 1, Vowel: true},
		{Char: 'I', Value: 9, Vowel: true},
		{Char: 'O', Value: 6, Vowel: true},
	}, p.Vowels)
}

func TestAnalyze_DropsInvalidCharacters(t *testing.T) {
	p := numerology.Analyze("d'Angelo-Rè 2")

	var chars []rune
	for _, l := range p.Letters {
		chars = append(chars, l.Char)
	}
	assert.Equal(t, []rune("DANGELOR"), chars)
}

func TestAnalyze_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "123 !?"} {
		p := numerology.Analyze(in)
		assert.Empty(t, p.Letters)
		assert.Zero(t, p.Total)
		assert.Zero(t, p.VowelSum)
		assert.Zero(t, p.ConsonantSum)
	}
}

func TestAnalyze_TotalIsVowelsPlusConsonants(t *testing.T) {
	names := []string{"Mario", "Rossi", "Giovanni Battista", "Ülrich", "O'Neil", "zzz", "AEIOU", "x"}
	for _, n := range names {
		p := numerology.Analyze(n)
		assert.Equal(t, p.VowelSum+p.ConsonantSum, p.Total, n)
		assert.Len(t, p.Letters, len(p.Vowels)+len(p.Consonants), n)
	}
}
