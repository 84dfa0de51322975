// SPDX-License-Identifier: MIT
// Package: lvlabel/label
//
// numalpha.go — numeric prefix + letter block labels ("02AB", "7C").
//
// Static/variable split:
//   • incrementPrefix=true: only the last letter varies (1..26); the digits
//     and every letter before it are static:
//       02AA → 02AA, 02AB … 02AZ
//   • incrementPrefix=false: the whole block is one letter repeated, and that
//     letter varies; the digits and the block length are static:
//       02AA → 02AA, 02BB … 02ZZ
//     A block mixing letters ("02AB") has no ordinal in this mode.
//
// Letters are uppercased on output; the digit prefix is echoed verbatim.

package label

import "strings"

type numalphaConverter struct {
	incrementPrefix bool
	captured        bool
	digits          string // leading digits of the template, verbatim
	head            string // incrementPrefix=true: uppercased letters before the last
	blockLen        int    // incrementPrefix=false: letter block length
}

func (*numalphaConverter) Scheme() Scheme { return Numalpha }

func (c *numalphaConverter) SetIncrementPrefix(on bool) { c.incrementPrefix = on }

func (c *numalphaConverter) ToNumeric(label string) (int, error) {
	digits, letters, ok := splitNumalpha(label)
	if !ok {
		return 0, labelErrorf(ErrFormat, Numalpha, "%q must be digits followed by letters (e.g. 02AB)", label)
	}
	block := strings.ToUpper(letters)

	var (
		n    int
		head string
	)
	if c.incrementPrefix {
		head = block[:len(block)-1]
		n = int(block[len(block)-1]-'A') + 1
	} else {
		if strings.Count(block, block[:1]) != len(block) {
			return 0, labelErrorf(ErrFormat, Numalpha, "%q letter block %q must repeat a single letter", label, letters)
		}
		n = int(block[0]-'A') + 1
	}

	if !c.captured {
		c.captured = true
		c.digits, c.head, c.blockLen = digits, head, len(block)
		return n, nil
	}
	if digits != c.digits {
		return 0, labelErrorf(ErrPrefixMismatch, Numalpha, "%q has prefix %q, range started with %q", label, digits, c.digits)
	}
	if c.incrementPrefix && head != c.head {
		return 0, labelErrorf(ErrPrefixMismatch, Numalpha, "%q has static letters %q, range started with %q", label, head, c.head)
	}
	if !c.incrementPrefix && len(block) != c.blockLen {
		return 0, labelErrorf(ErrPrefixMismatch, Numalpha, "%q has %d letters, range started with %d", label, len(block), c.blockLen)
	}
	return n, nil
}

func (c *numalphaConverter) FromNumeric(n int) (string, error) {
	if !c.captured {
		return "", labelErrorf(ErrFormat, Numalpha, "no template label supplies the digit prefix")
	}
	if n < 1 || n > alphabetSize {
		return "", labelErrorf(ErrRange, Numalpha, "letter ordinal %d is outside 1..%d (A..Z)", n, alphabetSize)
	}
	letter := string(rune('A' + n - 1))
	if c.incrementPrefix {
		return c.digits + c.head + letter, nil
	}
	return c.digits + strings.Repeat(letter, c.blockLen), nil
}

// splitNumalpha splits "02AB" into ("02", "AB"). Both runs must be non-empty
// and together cover the label.
func splitNumalpha(label string) (digits, letters string, ok bool) {
	i := 0
	for i < len(label) && label[i] >= '0' && label[i] <= '9' {
		i++
	}
	digits, letters = label[:i], label[i:]
	if digits == "" || letters == "" {
		return digits, letters, false
	}
	for j := 0; j < len(letters); j++ {
		if !isASCIILetter(letters[j]) {
			return digits, letters, false
		}
	}
	return digits, letters, true
}
