// SPDX-License-Identifier: MIT

package label

import (
	"strconv"
	"strings"
)

// radixConverter renders non-negative ordinals in base 2 or 16 behind a fixed
// display prefix, zero-padded to minDigits ("0b0101", "0x00FF").
//
// Input with the prefix (any case) is read in the converter's base; input
// without it is read as decimal, the way operators type plain row numbers.
type radixConverter struct {
	scheme    Scheme
	base      int
	prefix    string
	minDigits int
}

func (c *radixConverter) Scheme() Scheme { return c.scheme }

func (*radixConverter) SetIncrementPrefix(bool) {}

func (c *radixConverter) ToNumeric(label string) (int, error) {
	digits, base := label, 10
	if len(label) >= len(c.prefix) && strings.EqualFold(label[:len(c.prefix)], c.prefix) {
		digits, base = label[len(c.prefix):], c.base
	}
	if digits == "" {
		return 0, labelErrorf(ErrFormat, c.scheme, "%q has no digits", label)
	}
	if digits[0] == '-' || digits[0] == '+' {
		return 0, labelErrorf(ErrFormat, c.scheme, "%q must be unsigned", label)
	}
	n, err := strconv.ParseInt(digits, base, strconv.IntSize)
	if err != nil {
		return 0, numErr(c.scheme, label, err)
	}
	return int(n), nil
}

func (c *radixConverter) FromNumeric(n int) (string, error) {
	if n < 0 {
		return "", labelErrorf(ErrRange, c.scheme, "%d is negative", n)
	}
	digits := strings.ToUpper(strconv.FormatInt(int64(n), c.base))
	return c.prefix + padDigits(digits, c.minDigits), nil
}
