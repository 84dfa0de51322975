// SPDX-License-Identifier: MIT
// Package: lvlabel/label
//
// options.go — functional options for converters and range generation.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Conversions and Generate never panic.
//   • Defaults are deterministic: minDigits=4, letterWrap=false,
//     maxLabels=DefaultMaxLabels.

package label

// Option customises converter construction and range generation.
type Option func(*config)

// DefaultMaxLabels is the label cap Generate applies unless WithMaxLabels
// says otherwise.
const DefaultMaxLabels = 100000

const (
	defaultMinDigits     = 4 // binary/hex zero-pad width
	defaultNumberPadding = 2 // Numbers width before any template is parsed
)

type config struct {
	minDigits  int  // binary/hex minimum digit count
	letterWrap bool // Letters ranges may cross ZZZ→A / A→ZZZ
	maxLabels  int  // 0 means unlimited
}

// WithMinDigits sets the minimum digit width for Binary and Hex labels.
// Panics if n < 1.
func WithMinDigits(n int) Option {
	if n < 1 {
		panic("label: WithMinDigits(n<1)")
	}
	return func(c *config) {
		c.minDigits = n
	}
}

// WithLetterWrap allows a Letters range to cross the A/ZZZ boundary.
// With wrapping on, "ZZY".."B" step 1 yields ZZY, ZZZ, A, B; with it off
// (the default) the same request fails with ErrStep.
func WithLetterWrap(on bool) Option {
	return func(c *config) {
		c.letterWrap = on
	}
}

// WithMaxLabels caps the number of labels one Generate call may produce;
// a longer range fails with ErrStep. The default is DefaultMaxLabels; zero
// removes the cap. Panics if n < 0.
func WithMaxLabels(n int) Option {
	if n < 0 {
		panic("label: WithMaxLabels(n<0)")
	}
	return func(c *config) {
		c.maxLabels = n
	}
}

// newConfig applies opts over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		minDigits: defaultMinDigits,
		maxLabels: DefaultMaxLabels,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
