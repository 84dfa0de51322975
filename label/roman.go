// SPDX-License-Identifier: MIT
// Package: lvlabel/label
//
// roman.go — subtractive Roman numerals, 1..3999.
//
// Parsing walks left to right and prefers the two-character subtractive pairs
// (CM, CD, XC, XL, IX, IV) over single characters. Only canonical numerals
// are accepted: the parsed value is re-rendered and must reproduce the input,
// so "IIX", "IIII" and "VX" are rejected with ErrFormat instead of being read
// as 10, 4 and 15.

package label

import "strings"

// romanTable is ordered by descending value; formatting subtracts greedily.
var romanTable = [...]struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

type romanConverter struct{}

func (romanConverter) Scheme() Scheme { return Roman }

func (romanConverter) SetIncrementPrefix(bool) {}

func (romanConverter) ToNumeric(label string) (int, error) {
	if label == "" {
		return 0, labelErrorf(ErrFormat, Roman, "empty numeral")
	}
	upper := strings.ToUpper(label)
	total := 0
	for i := 0; i < len(upper); {
		v, width := romanSymbolAt(upper, i)
		if width == 0 {
			return 0, labelErrorf(ErrFormat, Roman, "%q has invalid character %q at position %d", label, upper[i], i)
		}
		total += v
		i += width
	}
	if total > RomanMax {
		return 0, labelErrorf(ErrRange, Roman, "%q is %d, beyond %d", label, total, RomanMax)
	}
	if canonical := formatRoman(total); canonical != upper {
		return 0, labelErrorf(ErrFormat, Roman, "%q is not a canonical numeral (did you mean %q?)", label, canonical)
	}
	return total, nil
}

func (romanConverter) FromNumeric(n int) (string, error) {
	if n < 1 || n > RomanMax {
		return "", labelErrorf(ErrRange, Roman, "%d is outside 1..%d", n, RomanMax)
	}
	return formatRoman(n), nil
}

// romanSymbolAt matches the symbol starting at s[i], trying a two-character
// pair first. It returns width 0 when nothing matches.
func romanSymbolAt(s string, i int) (value, width int) {
	if i+1 < len(s) {
		pair := s[i : i+2]
		for _, e := range romanTable {
			if len(e.symbol) == 2 && e.symbol == pair {
				return e.value, 2
			}
		}
	}
	for _, e := range romanTable {
		if len(e.symbol) == 1 && e.symbol[0] == s[i] {
			return e.value, 1
		}
	}
	return 0, 0
}

func formatRoman(n int) string {
	var b strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			b.WriteString(e.symbol)
			n -= e.value
		}
	}
	return b.String()
}
