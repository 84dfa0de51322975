// SPDX-License-Identifier: MIT
// Package: lvlabel/label
//
// validate.go — scheme-specific shape checks run before any conversion.
//
// Validate reports *why* a label cannot belong to a scheme without touching
// converter state. The checks are deliberately shallow for Roman, Greek and
// the compound schemes (character set and shape); the simple numeric schemes
// are validated by a throwaway converter so their messages match ToNumeric.

package label

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	alphanumericShape = regexp.MustCompile(`^[A-Za-z]*[0-9]+$`)
	numalphaShape     = regexp.MustCompile(`^[0-9]+[A-Za-z]+$`)
)

const romanCharset = "IVXLCDM"

// Validate checks that label has the surface syntax of scheme.
// incrementPrefix selects the compound-scheme mode: Alphanumeric labels
// must carry a letter prefix when it is the part that increments.
//
// Returns nil, or an error wrapping ErrFormat, ErrRange (Letters longer than
// three characters, oversized numbers) or ErrUnknownScheme.
func Validate(label string, scheme Scheme, incrementPrefix bool) error {
	switch scheme {
	case Roman:
		if label == "" {
			return labelErrorf(ErrFormat, Roman, "empty numeral")
		}
		for i, r := range strings.ToUpper(label) {
			if !strings.ContainsRune(romanCharset, r) {
				return labelErrorf(ErrFormat, Roman, "%q has invalid character %q at position %d (allowed: %s)", label, r, i, romanCharset)
			}
		}
		return nil

	case Greek:
		c := &greekConverter{lower: newGreekCaser()}
		if c.index(label) < 0 {
			return labelErrorf(ErrFormat, Greek, "%q is not a single letter of %s", label, greekAlphabet)
		}
		return nil

	case Alphanumeric:
		if !alphanumericShape.MatchString(label) {
			return labelErrorf(ErrFormat, Alphanumeric, "%q must be optional letters followed by digits (e.g. A01)", label)
		}
		if incrementPrefix && !isASCIILetter(label[0]) {
			return labelErrorf(ErrFormat, Alphanumeric, "%q has no letter prefix to increment", label)
		}
		return nil

	case Numalpha:
		if !numalphaShape.MatchString(label) {
			return labelErrorf(ErrFormat, Numalpha, "%q must be digits followed by letters (e.g. 02AB)", label)
		}
		return nil

	case Numbers, Letters, Binary, Hex:
		c, err := New(scheme)
		if err != nil {
			return err
		}
		_, err = c.ToNumeric(label)
		return err

	default:
		return fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}
}
