// SPDX-License-Identifier: MIT
// Package: lvlabel/label
//
// letters.go — bijective base-26 ("spreadsheet column") encoding.
//
//	A=1 … Z=26, AA=27 … AZ=52, BA=53 … ZZ=702, AAA=703 … ZZZ=18278
//
// There is no zero digit: the trailing letter of n is ((n-1) mod 26)+1 and
// the remaining prefix encodes (n-1) div 26. Taking n mod 26 directly would
// yield a bogus letter at every multiple of 26 (Z, AZ, ZZ …).
//
// The helpers here are shared by the Alphanumeric and Numalpha converters,
// which pass their own scheme so errors name the scheme the caller used.

package label

const (
	alphabetSize  = 26
	maxLetterRuns = 3 // "ZZZ" is the longest label in the domain
)

// parseLetters returns the bijective base-26 value of s (case-insensitive).
// Non-letters yield ErrFormat; more than three letters yield ErrRange.
func parseLetters(s Scheme, letters string) (int, error) {
	if letters == "" {
		return 0, labelErrorf(ErrFormat, s, "empty letter sequence")
	}
	total := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			return 0, labelErrorf(ErrFormat, s, "%q contains non-letter %q at position %d", letters, letters[i], i)
		}
		if i >= maxLetterRuns {
			return 0, labelErrorf(ErrRange, s, "%q is beyond %q (max %d)", letters, "ZZZ", LettersMax)
		}
		total = total*alphabetSize + int(c-'A') + 1
	}
	return total, nil
}

// formatLetters renders n ≥ 1 in bijective base-26. Callers check the domain.
func formatLetters(n int) string {
	var buf [maxLetterRuns + 8]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%alphabetSize)
		n /= alphabetSize
	}
	return string(buf[i:])
}

// WrapLetters folds any ordinal into the Letters domain 1..LettersMax, so
// that 0 becomes ZZZ and LettersMax+1 becomes A.
func WrapLetters(n int) int {
	n = (n - 1) % LettersMax
	if n < 0 {
		n += LettersMax
	}
	return n + 1
}

type lettersConverter struct{}

func (lettersConverter) Scheme() Scheme { return Letters }

func (lettersConverter) SetIncrementPrefix(bool) {}

func (lettersConverter) ToNumeric(label string) (int, error) {
	return parseLetters(Letters, label)
}

func (lettersConverter) FromNumeric(n int) (string, error) {
	if n < 1 || n > LettersMax {
		return "", labelErrorf(ErrRange, Letters, "%d is outside 1..%d (A..ZZZ)", n, LettersMax)
	}
	return formatLetters(n), nil
}
