// SPDX-License-Identifier: MIT

package label

import "fmt"

// LabelToOrdinal parses a single label without expanding a range.
// Returns the errors of Validate and the scheme's ToNumeric.
func LabelToOrdinal(label string, scheme Scheme, incrementPrefix bool, opts ...Option) (int, error) {
	if err := Validate(label, scheme, incrementPrefix); err != nil {
		return 0, err
	}
	conv, err := New(scheme, opts...)
	if err != nil {
		return 0, err
	}
	conv.SetIncrementPrefix(incrementPrefix)
	return conv.ToNumeric(label)
}

// OrdinalToLabel renders one stored ordinal.
//
// template is any label of the target range ("02AA", "A01", "007"); it
// supplies the static part for compound schemes and the zero-pad width for
// Numbers. An empty template means "no static part": Numbers pads to two
// digits, Alphanumeric prints the bare number, and the modes that need a
// static part (Alphanumeric with incrementPrefix, Numalpha) fail with
// ErrFormat.
func OrdinalToLabel(n int, scheme Scheme, incrementPrefix bool, template string, opts ...Option) (string, error) {
	conv, err := New(scheme, opts...)
	if err != nil {
		return "", err
	}
	conv.SetIncrementPrefix(incrementPrefix)
	if template != "" {
		if err := Validate(template, scheme, incrementPrefix); err != nil {
			return "", fmt.Errorf("template: %w", err)
		}
		if _, err := conv.ToNumeric(template); err != nil {
			return "", fmt.Errorf("template: %w", err)
		}
	}
	return conv.FromNumeric(n)
}
