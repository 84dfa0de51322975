// SPDX-License-Identifier: MIT
// Package: lvlabel/label
//
// generate.go — expand a Range into the ordered labels an axis displays.
//
// Steps:
//  1. Reject Step == 0 (ErrStep).
//  2. Validate Start and End against the scheme (ErrFormat/ErrRange).
//  3. Parse both with ONE fresh converter, so the static part captured from
//     Start is checked against End and echoed into every output label.
//  4. Sign check: Step > 0 needs start ≤ end, Step < 0 needs start ≥ end.
//     With WithLetterWrap(true) a Letters range that runs the "wrong" way is
//     read as crossing ZZZ→A (or A→ZZZ): the bound moves by ±LettersMax once
//     and every ordinal is folded back into 1..LettersMax.
//  5. Distance check |end-start| ≥ |Step| unless start == end. A distance
//     that does not fit in an int is ErrRange.
//  6. Cap check against maxLabels (ErrStep).
//  7. Render start, start+Step, … up to the last label that does not pass
//     the bound.
//
// Complexity: O(k) conversions for k generated labels. Nothing is memoised.

package label

import (
	"fmt"
	"math"
)

// Generate expands r into its label sequence. On success the result is
// non-empty and starts with the rendering of r.Start.
func Generate(r Range, opts ...Option) ([]string, error) {
	cfg := newConfig(opts...)

	if r.Step == 0 {
		return nil, labelErrorf(ErrStep, r.Scheme, "step must be non-zero (%s..%s)", r.Start, r.End)
	}
	if r.Step == math.MinInt {
		return nil, labelErrorf(ErrStep, r.Scheme, "step %d has no magnitude in int", r.Step)
	}
	if err := Validate(r.Start, r.Scheme, r.IncrementPrefix); err != nil {
		return nil, fmt.Errorf("start label: %w", err)
	}
	if err := Validate(r.End, r.Scheme, r.IncrementPrefix); err != nil {
		return nil, fmt.Errorf("end label: %w", err)
	}

	conv, err := newConverter(r.Scheme, cfg)
	if err != nil {
		return nil, err
	}
	conv.SetIncrementPrefix(r.IncrementPrefix)

	start, err := conv.ToNumeric(r.Start)
	if err != nil {
		return nil, fmt.Errorf("start label: %w", err)
	}
	end, err := conv.ToNumeric(r.End)
	if err != nil {
		return nil, fmt.Errorf("end label: %w", err)
	}

	wrap := cfg.letterWrap && r.Scheme == Letters
	bound := end
	switch {
	case r.Step > 0 && start > end:
		if !wrap {
			return nil, labelErrorf(ErrStep, r.Scheme, "positive step %d but %s (%d) is after %s (%d)", r.Step, r.Start, start, r.End, end)
		}
		bound = end + LettersMax
	case r.Step < 0 && start < end:
		if !wrap {
			return nil, labelErrorf(ErrStep, r.Scheme, "negative step %d but %s (%d) is before %s (%d)", r.Step, r.Start, start, r.End, end)
		}
		bound = end - LettersMax
	}

	distance, ok := span(start, bound)
	if !ok {
		return nil, labelErrorf(ErrRange, r.Scheme, "distance between %s and %s overflows an int", r.Start, r.End)
	}
	stride := abs(r.Step)
	if start != end && distance < stride {
		return nil, labelErrorf(ErrStep, r.Scheme, "step %d exceeds the distance %d between %s and %s", r.Step, distance, r.Start, r.End)
	}

	// steps is the count minus one; comparing it keeps count from overflowing.
	steps := distance / stride
	if cfg.maxLabels > 0 && steps >= cfg.maxLabels {
		return nil, labelErrorf(ErrStep, r.Scheme, "%s would produce more than %d labels", r, cfg.maxLabels)
	}
	if steps == math.MaxInt {
		return nil, labelErrorf(ErrRange, r.Scheme, "%s has more labels than an int can count", r)
	}
	count := steps + 1

	labels := make([]string, 0, min(count, preallocLimit))
	for k := 0; k < count; k++ {
		n := start + k*r.Step
		if wrap {
			n = WrapLetters(n)
		}
		s, err := conv.FromNumeric(n)
		if err != nil {
			return nil, err
		}
		labels = append(labels, s)
	}
	return labels, nil
}

// GenerateLabels is Generate for callers holding the scheme as a wire name
// ("numbers", "numalpha", …), e.g. values read from a form or a plan file.
func GenerateLabels(start, end string, step int, labelType string, incrementLetter bool, opts ...Option) ([]string, error) {
	scheme, err := ParseScheme(labelType)
	if err != nil {
		return nil, err
	}
	return Generate(Range{
		Start:           start,
		End:             end,
		Step:            step,
		Scheme:          scheme,
		IncrementPrefix: incrementLetter,
	}, opts...)
}

// preallocLimit bounds the up-front slice capacity when the cap is off.
const preallocLimit = 4096

// span returns |b-a| and false when the difference overflows an int.
func span(a, b int) (int, bool) {
	d := b - a
	if (b > a && d < 0) || (b < a && d > 0) {
		return 0, false
	}
	if d == math.MinInt {
		return 0, false
	}
	return abs(d), true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
