package numerology

// letterValues is the Pythagorean table: A J S = 1 through I R = 9.
var letterValues = [26]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, // A-I
	1, 2, 3, 4, 5, 6, 7, 8, 9, // J-R
	1, 2, 3, 4, 5, 6, 7, 8, // S-Z
}

// LetterValue returns the digit for an upper-case Latin letter and 0 for
// anything else (digits, punctuation, accented letters).
func LetterValue(r rune) int {
	if r < 'A' || r > 'Z' {
		return 0
	}
	return letterValues[r-'A']
}

// IsVowel reports whether r is one of A, E, I, O, U.
func IsVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// LetterSum adds the values of every letter in an already upper-cased text.
func LetterSum(s string) int {
	sum := 0
	for _, r := range s {
		sum += LetterValue(r)
	}
	return sum
}
