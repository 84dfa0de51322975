// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlabel/label"
)

// Axis is one labelled grid axis. Build it with New; the zero value is not
// usable.
type Axis struct {
	name      string
	size      int
	origin    int
	step      int
	scheme    label.Scheme // default labelling: Numbers or Letters
	ranges    []label.Range
	labelOpts []label.Option
}

// New returns an axis called name with size positions.
// Returns ErrSize if size < 1. Custom ranges are not expanded here; call
// Validate to check them up front.
func New(name string, size int, opts ...Option) (*Axis, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: axis %s has size %d", ErrSize, name, size)
	}
	a := &Axis{
		name:   name,
		size:   size,
		origin: defaultOrigin,
		step:   defaultStep,
		scheme: label.Numbers,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Name returns the axis name, e.g. "X".
func (a *Axis) Name() string { return a.name }

// Size returns the number of positions on the axis.
func (a *Axis) Size() int { return a.size }

// Origin returns the ordinal of the first default label.
func (a *Axis) Origin() int { return a.origin }

// Step returns the increment between default labels.
func (a *Axis) Step() int { return a.step }

// Scheme returns the default labelling scheme (Numbers or Letters).
func (a *Axis) Scheme() label.Scheme { return a.scheme }

// Ranges returns a copy of the custom ranges in declaration order.
func (a *Axis) Ranges() []label.Range {
	out := make([]label.Range, len(a.ranges))
	copy(out, a.ranges)
	return out
}

// Labels returns exactly Size labels: custom range labels first, truncated
// to the axis, then default labels continuing from
// origin + len(custom)*step.
// Complexity: O(size + total custom range length).
func (a *Axis) Labels() ([]string, error) {
	labels := make([]string, 0, a.size)
	for i, r := range a.ranges {
		got, err := label.Generate(r, a.labelOpts...)
		if err != nil {
			return nil, a.rangeErr(i, r, err)
		}
		labels = append(labels, got...)
		if len(labels) >= a.size {
			return labels[:a.size], nil
		}
	}

	seed := a.origin + len(labels)*a.step
	for k := 0; len(labels) < a.size; k++ {
		s, err := a.defaultLabel(seed + k*a.step)
		if err != nil {
			return nil, err
		}
		labels = append(labels, s)
	}
	return labels, nil
}

// defaultLabel renders ordinal n in the default scheme. Letters wrap within
// A..ZZZ; numbers are printed unpadded.
func (a *Axis) defaultLabel(n int) (string, error) {
	if a.scheme != label.Letters {
		return strconv.Itoa(n), nil
	}
	return label.OrdinalToLabel(label.WrapLetters(n), label.Letters, false, "")
}

// LabelAt returns the label at 1-based position pos.
func (a *Axis) LabelAt(pos int) (string, error) {
	if pos < 1 || pos > a.size {
		return "", fmt.Errorf("%w: axis %s position %d not in 1..%d", ErrPosition, a.name, pos, a.size)
	}
	labels, err := a.Labels()
	if err != nil {
		return "", err
	}
	return labels[pos-1], nil
}

// PositionOf returns the 1-based position of lbl. An exact match wins over a
// case-insensitive one; the first match in axis order is returned.
func (a *Axis) PositionOf(lbl string) (int, error) {
	labels, err := a.Labels()
	if err != nil {
		return 0, err
	}
	for i, s := range labels {
		if s == lbl {
			return i + 1, nil
		}
	}
	for i, s := range labels {
		if strings.EqualFold(s, lbl) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q on axis %s", ErrUnknownLabel, lbl, a.name)
}

// Validate checks the custom ranges the way a plan editor would before
// saving them:
//
//   - numbers ranges must not set IncrementPrefix (ErrIncrementMode);
//   - every range must expand (label package errors, wrapped);
//   - their combined length must fit the axis (ErrTooManyLabels);
//   - two ranges of one scheme must not share a label (ErrOverlap).
//
// The first failure is returned.
func (a *Axis) Validate() error {
	var (
		total int
		seen  = make(map[label.Scheme]map[string]int)
	)
	for i, r := range a.ranges {
		if r.Scheme == label.Numbers && r.IncrementPrefix {
			return fmt.Errorf("%w: axis %s range %d (%s)", ErrIncrementMode, a.name, i+1, r)
		}
		got, err := label.Generate(r, a.labelOpts...)
		if err != nil {
			return a.rangeErr(i, r, err)
		}

		total += len(got)
		if total > a.size {
			return fmt.Errorf("%w: axis %s ranges produce at least %d labels, size is %d", ErrTooManyLabels, a.name, total, a.size)
		}

		owners := seen[r.Scheme]
		if owners == nil {
			owners = make(map[string]int)
			seen[r.Scheme] = owners
		}
		for _, s := range got {
			if j, ok := owners[s]; ok && j != i {
				return fmt.Errorf("%w: axis %s label %q in range %d (%s) and range %d (%s)",
					ErrOverlap, a.name, s, j+1, a.ranges[j], i+1, r)
			}
			owners[s] = i
		}
	}
	return nil
}

func (a *Axis) rangeErr(i int, r label.Range, err error) error {
	return fmt.Errorf("axis %s range %d (%s): %w", a.name, i+1, r, err)
}
