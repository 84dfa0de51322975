// SPDX-License-Identifier: MIT

package label

import "golang.org/x/text/cases"

// greekAlphabet lists the 24 lowercase letters; index+1 is the ordinal.
const greekAlphabet = "αβγδεζηθικλμνξοπρστυφχψω"

var greekLetters = []rune(greekAlphabet)

// greekConverter maps α..ω to 1..24. Input is folded with a Greek-aware
// lower caser so "Δ" reads as "δ"; the word-final sigma "ς" reads as "σ".
type greekConverter struct {
	lower cases.Caser
}

func (*greekConverter) Scheme() Scheme { return Greek }

func (*greekConverter) SetIncrementPrefix(bool) {}

func (c *greekConverter) ToNumeric(label string) (int, error) {
	idx := c.index(label)
	if idx < 0 {
		return 0, labelErrorf(ErrFormat, Greek, "%q is not a single Greek letter", label)
	}
	return idx + 1, nil
}

func (*greekConverter) FromNumeric(n int) (string, error) {
	if n < 1 || n > GreekMax {
		return "", labelErrorf(ErrRange, Greek, "%d is outside 1..%d (α..ω)", n, GreekMax)
	}
	return string(greekLetters[n-1]), nil
}

// index folds label to lowercase and returns its alphabet position, or -1.
func (c *greekConverter) index(label string) int {
	runes := []rune(c.lower.String(label))
	if len(runes) != 1 {
		return -1
	}
	r := runes[0]
	if r == 'ς' {
		r = 'σ'
	}
	for i, g := range greekLetters {
		if g == r {
			return i
		}
	}
	return -1
}
