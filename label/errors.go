// SPDX-License-Identifier: MIT
// Package: lvlabel/label
//
// errors.go — sentinel errors for the label package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Each returned error wraps exactly one sentinel and names the scheme
//     and the offending values, e.g.
//       label: invalid format: roman: "IIX" is not a canonical numeral
//   • Nothing is clamped or defaulted: an input that does not belong to the
//     scheme is reported, never coerced.
//   • Panics are confined to option constructors (WithMinDigits(0), ...).

package label

import (
	"errors"
	"fmt"
)

// ErrFormat indicates a label that does not match its scheme's syntax:
// a non-Roman character, a missing numeric suffix, an empty label.
var ErrFormat = errors.New("label: invalid format")

// ErrRange indicates a well-formed label or ordinal outside the scheme's
// numeric domain (Roman > 3999, Greek > 24, Letters > ZZZ, negative hex).
var ErrRange = errors.New("label: value out of range")

// ErrStep indicates a zero step, a step whose sign contradicts the start/end
// ordering, or a step larger than the distance between start and end.
var ErrStep = errors.New("label: invalid step")

// ErrPrefixMismatch indicates that the end label of a compound range does not
// share the static part captured from the start label.
var ErrPrefixMismatch = errors.New("label: static part mismatch")

// ErrUnknownScheme indicates a scheme identifier that is not recognised.
var ErrUnknownScheme = errors.New("label: unknown scheme")

// labelErrorf wraps sentinel with the scheme name and a formatted detail.
// The result reads "<sentinel>: <scheme>: <detail>".
func labelErrorf(sentinel error, s Scheme, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", sentinel, s, fmt.Sprintf(format, args...))
}
