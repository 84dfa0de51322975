package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "LVLABEL_"

// defaultFiles are searched in the working directory when no file is given.
var defaultFiles = []string{"lvlabel.yaml", "lvlabel.yml"}

// axisKeys are the nested sections whose env/flag names need a "." after
// the section name (x_axis_size -> x_axis.size).
var axisKeys = []string{"x_axis", "y_axis"}

// findConfigFile finds the config file to use.
// Priority: explicit path > lvlabel.yaml > lvlabel.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range defaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// defaults returns the lowest-priority configuration layer.
func defaults() map[string]interface{} {
	m := map[string]interface{}{
		"log_level":    DefaultLogLevel,
		"output":       DefaultOutput,
		"min_digits":   DefaultMinDigits,
		"wrap_letters": false,
		"max_labels":   DefaultMaxLabels,
	}
	for _, a := range axisKeys {
		m[a+".size"] = DefaultAxisSize
		m[a+".origin"] = DefaultOrigin
		m[a+".step"] = DefaultStep
		m[a+".labels"] = DefaultLabels
	}
	return m
}

// Default returns the configuration used when no source sets anything.
func Default() *Config {
	ax := AxisConfig{Size: DefaultAxisSize, Origin: DefaultOrigin, Step: DefaultStep, Labels: DefaultLabels}
	return &Config{
		LogLevel:  DefaultLogLevel,
		Output:    DefaultOutput,
		MinDigits: DefaultMinDigits,
		MaxLabels: DefaultMaxLabels,
		XAxis:     ax,
		YAxis:     ax,
	}
}

// configKey maps a flat snake_case name to a koanf key path.
func configKey(name string) string {
	for _, a := range axisKeys {
		if strings.HasPrefix(name, a+"_") {
			return a + "." + strings.TrimPrefix(name, a+"_")
		}
	}
	return name
}

// Load loads configuration from defaults, a plan file, environment variables
// and flags. Precedence (highest to lowest): flags > env vars > file > defaults.
//
// cfgFile may be empty, in which case ./lvlabel.yaml or ./lvlabel.yml is used
// when present. Only flags that were explicitly set override other sources;
// "x-size" maps to x_axis.size and "y-size" to y_axis.size.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Load environment variables (LVLABEL_ prefix)
	// Transform: LVLABEL_X_AXIS_SIZE -> x_axis.size
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return configKey(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			switch key {
			case "config":
				return "", nil
			case "x_size":
				key = "x_axis.size"
			case "y_size":
				key = "y_axis.size"
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Source = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
