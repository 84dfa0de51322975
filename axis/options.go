// SPDX-License-Identifier: MIT
// Package: lvlabel/axis
//
// options.go — functional options for New.
//
// Contract:
//   • Defaults: origin=1, step=1, default scheme Numbers, no custom ranges.
//   • WithStep(0) panics; every other option accepts any value and leaves
//     checking to New and Validate.

package axis

import "github.com/katalvlaran/lvlabel/label"

// Option customises an Axis under construction.
type Option func(*Axis)

const (
	defaultOrigin = 1
	defaultStep   = 1
)

// WithOrigin sets the ordinal of the first default label (the origin seed).
func WithOrigin(seed int) Option {
	return func(a *Axis) {
		a.origin = seed
	}
}

// WithStep sets the increment between default labels. Negative steps count
// down. Panics if step == 0.
func WithStep(step int) Option {
	if step == 0 {
		panic("axis: WithStep(0)")
	}
	return func(a *Axis) {
		a.step = step
	}
}

// WithLetters switches default labelling from Numbers to Letters.
func WithLetters() Option {
	return func(a *Axis) {
		a.scheme = label.Letters
	}
}

// WithRange appends a custom label range. Ranges apply in the order given.
func WithRange(r label.Range) Option {
	return func(a *Axis) {
		a.ranges = append(a.ranges, r)
	}
}

// WithLabelOptions forwards options (minimum hex digits, letter wrap, label
// caps) to every custom range expansion.
func WithLabelOptions(opts ...label.Option) Option {
	return func(a *Axis) {
		a.labelOpts = append(a.labelOpts, opts...)
	}
}
