// SPDX-License-Identifier: MIT
// Package: lvlabel/label
//
// types.go — schemes, the Converter contract and the Range request.

package label

import (
	"fmt"
	"strings"
)

// Scheme enumerates the labelling systems an axis can use.
// The zero value is not a valid scheme.
type Scheme uint8

const (
	// Numbers renders ordinals as decimal integers ("1", "01").
	Numbers Scheme = iota + 1
	// Letters renders ordinals in bijective base-26 (A, B, …, Z, AA, …, ZZZ).
	Letters
	// Roman renders ordinals as subtractive Roman numerals (I … MMMCMXCIX).
	Roman
	// Greek renders ordinals as lowercase Greek letters (α … ω).
	Greek
	// Binary renders ordinals as "0b"-prefixed base-2 numbers.
	Binary
	// Hex renders ordinals as "0x"-prefixed base-16 numbers.
	Hex
	// Alphanumeric renders letter prefix + numeric suffix labels (A01).
	Alphanumeric
	// Numalpha renders numeric prefix + letter block labels (02AB).
	Numalpha
)

// Domain limits (inclusive upper bounds; every bounded domain starts at 1).
const (
	// LettersMax is the ordinal of "ZZZ", the last three-letter label.
	LettersMax = 18278
	// RomanMax is the largest value expressible with standard numerals.
	RomanMax = 3999
	// GreekMax is the size of the lowercase Greek alphabet.
	GreekMax = 24
)

var schemeNames = [...]string{
	Numbers:      "numbers",
	Letters:      "letters",
	Roman:        "roman",
	Greek:        "greek",
	Binary:       "binary",
	Hex:          "hex",
	Alphanumeric: "alphanumeric",
	Numalpha:     "numalpha",
}

// Schemes returns every valid scheme in declaration order.
func Schemes() []Scheme {
	return []Scheme{Numbers, Letters, Roman, Greek, Binary, Hex, Alphanumeric, Numalpha}
}

// Valid reports whether s is one of the eight schemes.
func (s Scheme) Valid() bool {
	return s >= Numbers && s <= Numalpha
}

// String returns the wire name of the scheme, e.g. "numalpha".
func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("scheme(%d)", uint8(s))
	}
	return schemeNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseScheme maps a wire name ("roman", "Hex", " letters ") to a Scheme.
// Matching ignores case and surrounding spaces; anything else is rejected
// with ErrUnknownScheme rather than falling back to a default.
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Schemes() {
		if schemeNames[s] == key {
			return s, nil
		}
	}
	valid := make([]string, 0, len(schemeNames))
	for _, s := range Schemes() {
		valid = append(valid, s.String())
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownScheme, name, strings.Join(valid, ", "))
}

// Converter translates between one scheme's labels and ordinals.
//
// Compound converters (Alphanumeric, Numalpha) remember the static part of
// the first label passed to ToNumeric and reject later labels whose static
// part differs. A Converter therefore belongs to one range expansion or one
// lookup and must not be shared between goroutines; obtain a fresh one from
// New for every call.
type Converter interface {
	// Scheme reports which scheme the converter implements.
	Scheme() Scheme
	// ToNumeric parses label and returns its ordinal.
	ToNumeric(label string) (int, error)
	// FromNumeric formats ordinal n as a label.
	FromNumeric(n int) (string, error)
	// SetIncrementPrefix selects which part of a compound label varies.
	// It has no effect on simple schemes and must be called before the
	// first ToNumeric.
	SetIncrementPrefix(on bool)
}

// Range is one label-range request as configured by an operator.
type Range struct {
	Start           string // first label, also the static-part template
	End             string // last label (inclusive when reachable by Step)
	Step            int    // non-zero; negative walks backwards
	Scheme          Scheme // labelling system for Start and End
	IncrementPrefix bool   // compound schemes: vary the letter/prefix part
}

// String renders r for diagnostics, e.g. "alphanumeric A01..A05 step 1".
func (r Range) String() string {
	return fmt.Sprintf("%s %s..%s step %d", r.Scheme, r.Start, r.End, r.Step)
}
