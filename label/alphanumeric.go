// SPDX-License-Identifier: MIT
// Package: lvlabel/label
//
// alphanumeric.go — letter prefix + numeric suffix labels ("A01", "B7", "12").
//
// Static/variable split:
//   • incrementPrefix=false: the suffix is the ordinal. The prefix and the
//     zero-pad width of the first parsed label are kept for every output:
//       A01 → A01, A02 … A10        A1 → A1, A2 … A10
//   • incrementPrefix=true: the prefix is the ordinal (bijective base-26) and
//     the suffix is echoed verbatim:
//       A01 → A01, B01 … Z01, AA01
//
// The first ToNumeric call captures the static part; later calls must agree
// with it or fail with ErrPrefixMismatch.

package label

import (
	"strconv"
	"strings"
)

type alphanumericConverter struct {
	incrementPrefix bool
	captured        bool
	prefix          string // letters of the template, verbatim
	suffix          string // digits of the template, verbatim
	width           int    // zero-pad width, 0 when the template is unpadded
}

func (*alphanumericConverter) Scheme() Scheme { return Alphanumeric }

func (c *alphanumericConverter) SetIncrementPrefix(on bool) { c.incrementPrefix = on }

func (c *alphanumericConverter) ToNumeric(label string) (int, error) {
	letters, digits, ok := splitAlphanumeric(label)
	if !ok {
		return 0, labelErrorf(ErrFormat, Alphanumeric, "%q must be optional letters followed by digits (e.g. A01)", label)
	}

	var (
		n   int
		err error
	)
	if c.incrementPrefix {
		if letters == "" {
			return 0, labelErrorf(ErrFormat, Alphanumeric, "%q has no letter prefix to increment", label)
		}
		if n, err = parseLetters(Alphanumeric, letters); err != nil {
			return 0, err
		}
	} else if n, err = strconv.Atoi(digits); err != nil {
		return 0, numErr(Alphanumeric, label, err)
	}

	if !c.captured {
		c.captured = true
		c.prefix, c.suffix, c.width = letters, digits, leadingZeroWidth(digits)
		return n, nil
	}
	if c.incrementPrefix && digits != c.suffix {
		return 0, labelErrorf(ErrPrefixMismatch, Alphanumeric, "%q has suffix %q, range started with %q", label, digits, c.suffix)
	}
	if !c.incrementPrefix && !strings.EqualFold(letters, c.prefix) {
		return 0, labelErrorf(ErrPrefixMismatch, Alphanumeric, "%q has prefix %q, range started with %q", label, letters, c.prefix)
	}
	return n, nil
}

func (c *alphanumericConverter) FromNumeric(n int) (string, error) {
	if c.incrementPrefix {
		if !c.captured {
			return "", labelErrorf(ErrFormat, Alphanumeric, "no template label supplies the numeric suffix")
		}
		if n < 1 || n > LettersMax {
			return "", labelErrorf(ErrRange, Alphanumeric, "prefix ordinal %d is outside 1..%d (A..ZZZ)", n, LettersMax)
		}
		return formatLetters(n) + c.suffix, nil
	}
	if n < 0 {
		return "", labelErrorf(ErrRange, Alphanumeric, "%d is negative", n)
	}
	return c.prefix + padDigits(strconv.Itoa(n), c.width), nil
}

// splitAlphanumeric splits "AB012" into ("AB", "012"). The digit run must be
// non-empty and reach the end of the label.
func splitAlphanumeric(label string) (letters, digits string, ok bool) {
	i := 0
	for i < len(label) && isASCIILetter(label[i]) {
		i++
	}
	letters, digits = label[:i], label[i:]
	return letters, digits, isDigits(digits)
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
