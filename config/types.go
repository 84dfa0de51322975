// Package config loads lvlabel plan configuration from defaults, a YAML plan
// file, LVLABEL_ environment variables and command-line flags.
package config

import (
	"errors"

	"github.com/katalvlaran/lvlabel/label"
)

// Default values applied before any file, env or flag source.
const (
	DefaultLogLevel  = "info"
	DefaultOutput    = "table"
	DefaultMinDigits = 4
	DefaultMaxLabels = label.DefaultMaxLabels
	DefaultAxisSize  = 10
	DefaultOrigin    = 1
	DefaultStep      = 1
	DefaultLabels    = LabelsNumbers
)

// Default axis labelling values accepted in AxisConfig.Labels.
const (
	LabelsNumbers = "numbers"
	LabelsLetters = "letters"
)

// Output formats understood by the CLI renderers.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputPlain = "plain"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all lvlabel configuration options.
type Config struct {
	LogLevel    string     `koanf:"log_level" json:"log_level" yaml:"log_level"`
	Output      string     `koanf:"output" json:"output" yaml:"output"`
	MinDigits   int        `koanf:"min_digits" json:"min_digits" yaml:"min_digits"`
	WrapLetters bool       `koanf:"wrap_letters" json:"wrap_letters" yaml:"wrap_letters"`
	MaxLabels   int        `koanf:"max_labels" json:"max_labels" yaml:"max_labels"` // 0 disables the cap
	XAxis       AxisConfig `koanf:"x_axis" json:"x_axis" yaml:"x_axis"`
	YAxis       AxisConfig `koanf:"y_axis" json:"y_axis" yaml:"y_axis"`

	// Source is the plan file that was loaded, empty when none was found.
	Source string `koanf:"-" json:"-" yaml:"-"`
}

// AxisConfig describes one axis of the plan.
type AxisConfig struct {
	Size   int           `koanf:"size" json:"size" yaml:"size"`
	Origin int           `koanf:"origin" json:"origin" yaml:"origin"`
	Step   int           `koanf:"step" json:"step" yaml:"step"`
	Labels string        `koanf:"labels" json:"labels" yaml:"labels"` // numbers | letters
	Ranges []RangeConfig `koanf:"ranges" json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

// RangeConfig is one custom label range as written in a plan file.
// Quote labels in YAML ("01", "02AA") so leading zeros survive parsing.
type RangeConfig struct {
	Start           string `koanf:"start" json:"start" yaml:"start"`
	End             string `koanf:"end" json:"end" yaml:"end"`
	Step            int    `koanf:"step" json:"step" yaml:"step"`
	LabelType       string `koanf:"label_type" json:"label_type" yaml:"label_type"`
	IncrementLetter bool   `koanf:"increment_letter" json:"increment_letter" yaml:"increment_letter"`
}
