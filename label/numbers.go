// SPDX-License-Identifier: MIT

package label

import (
	"errors"
	"strconv"
	"strings"
)

// numbersConverter handles plain signed decimal labels.
//
// Width policy: before any label is parsed the converter pads to two digits
// ("05"). The first parsed label becomes the template: a leading zero with
// more than one digit fixes the width ("001" → "002" … "010"); otherwise
// output is unpadded ("1" → "2" … "10").
type numbersConverter struct {
	captured bool
	width    int
}

func (*numbersConverter) Scheme() Scheme { return Numbers }

func (*numbersConverter) SetIncrementPrefix(bool) {}

func (c *numbersConverter) ToNumeric(label string) (int, error) {
	digits := strings.TrimPrefix(label, "-")
	if !isDigits(digits) {
		return 0, labelErrorf(ErrFormat, Numbers, "%q is not a decimal integer", label)
	}
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0, numErr(Numbers, label, err)
	}
	if !c.captured {
		c.captured = true
		c.width = leadingZeroWidth(digits)
	}
	return n, nil
}

func (c *numbersConverter) FromNumeric(n int) (string, error) {
	width := defaultNumberPadding
	if c.captured {
		width = c.width
	}
	if n < 0 {
		// Trim the sign rather than negate: -math.MinInt overflows.
		return "-" + padDigits(strings.TrimPrefix(strconv.Itoa(n), "-"), width), nil
	}
	return padDigits(strconv.Itoa(n), width), nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// leadingZeroWidth returns len(digits) when digits is zero-padded ("01",
// "007") and 0 otherwise.
func leadingZeroWidth(digits string) int {
	if len(digits) > 1 && digits[0] == '0' {
		return len(digits)
	}
	return 0
}

// padDigits left-pads digits with zeros to width.
func padDigits(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

// numErr classifies a strconv failure: overflow is ErrRange, the rest ErrFormat.
func numErr(s Scheme, label string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return labelErrorf(ErrRange, s, "%q overflows an int", label)
	}
	return labelErrorf(ErrFormat, s, "%q is not a number", label)
}
