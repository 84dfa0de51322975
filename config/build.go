package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvlabel/axis"
	"github.com/katalvlaran/lvlabel/grid"
	"github.com/katalvlaran/lvlabel/label"
)

// Validate checks the scalar settings and the shape of both axes. Range
// contents are checked later by axis.Validate when the plan is built.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML, OutputPlain:
	default:
		return fmt.Errorf("%w: output %q (want %s, %s, %s or %s)", ErrInvalid, c.Output, OutputTable, OutputJSON, OutputYAML, OutputPlain)
	}
	if c.MinDigits < 1 {
		return fmt.Errorf("%w: min_digits %d must be at least 1", ErrInvalid, c.MinDigits)
	}
	if c.MaxLabels < 0 {
		return fmt.Errorf("%w: max_labels %d must not be negative", ErrInvalid, c.MaxLabels)
	}
	if err := c.XAxis.validate("x_axis"); err != nil {
		return err
	}
	return c.YAxis.validate("y_axis")
}

func (a AxisConfig) validate(key string) error {
	if a.Size < 1 {
		return fmt.Errorf("%w: %s.size %d must be at least 1", ErrInvalid, key, a.Size)
	}
	if a.Step == 0 {
		return fmt.Errorf("%w: %s.step must be non-zero", ErrInvalid, key)
	}
	switch strings.ToLower(a.Labels) {
	case LabelsNumbers, LabelsLetters:
	default:
		return fmt.Errorf("%w: %s.labels %q (want %s or %s)", ErrInvalid, key, a.Labels, LabelsNumbers, LabelsLetters)
	}
	for i, r := range a.Ranges {
		if _, err := label.ParseScheme(r.LabelType); err != nil {
			return fmt.Errorf("%w: %s.ranges[%d]: %w", ErrInvalid, key, i, err)
		}
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}

// LabelOptions returns the label package options implied by the config.
func (c *Config) LabelOptions() []label.Option {
	return []label.Option{
		label.WithMinDigits(c.MinDigits),
		label.WithLetterWrap(c.WrapLetters),
		label.WithMaxLabels(c.MaxLabels),
	}
}

// Range converts a plan-file range. A missing step means 1.
func (r RangeConfig) Range() (label.Range, error) {
	scheme, err := label.ParseScheme(r.LabelType)
	if err != nil {
		return label.Range{}, err
	}
	step := r.Step
	if step == 0 {
		step = 1
	}
	return label.Range{
		Start:           r.Start,
		End:             r.End,
		Step:            step,
		Scheme:          scheme,
		IncrementPrefix: r.IncrementLetter,
	}, nil
}

// Axis builds the named axis ("X" or "Y") from the config section and
// validates its custom ranges.
func (c *Config) Axis(name string) (*axis.Axis, error) {
	var a AxisConfig
	switch strings.ToUpper(name) {
	case "X":
		a = c.XAxis
	case "Y":
		a = c.YAxis
	default:
		return nil, fmt.Errorf("%w: unknown axis %q (want X or Y)", ErrInvalid, name)
	}

	opts := []axis.Option{
		axis.WithOrigin(a.Origin),
		axis.WithLabelOptions(c.LabelOptions()...),
	}
	if a.Step != 0 {
		opts = append(opts, axis.WithStep(a.Step))
	}
	if strings.EqualFold(a.Labels, LabelsLetters) {
		opts = append(opts, axis.WithLetters())
	}
	for i, rc := range a.Ranges {
		r, err := rc.Range()
		if err != nil {
			return nil, fmt.Errorf("axis %s range %d: %w", strings.ToUpper(name), i+1, err)
		}
		opts = append(opts, axis.WithRange(r))
	}

	ax, err := axis.New(strings.ToUpper(name), a.Size, opts...)
	if err != nil {
		return nil, err
	}
	if err := ax.Validate(); err != nil {
		return nil, err
	}
	return ax, nil
}

// Plan builds the grid described by both axis sections.
func (c *Config) Plan() (*grid.Plan, error) {
	x, err := c.Axis("X")
	if err != nil {
		return nil, err
	}
	y, err := c.Axis("Y")
	if err != nil {
		return nil, err
	}
	return grid.New(x, y)
}
