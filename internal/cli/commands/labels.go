package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/internal/cli/output"
	"github.com/katalvlaran/lvlabel/label"
)

// labelFlags are the flags shared by every single-scheme command.
type labelFlags struct {
	scheme          string
	incrementLetter bool
}

func (f *labelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.scheme, "type", "t", label.Numbers.String(), "Label scheme (numbers|letters|roman|greek|binary|hex|alphanumeric|numalpha)")
	cmd.Flags().BoolVarP(&f.incrementLetter, "increment-letter", "i", false, "Vary the letter part of alphanumeric/numalpha labels")
	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(label.Schemes()))
		for _, s := range label.Schemes() {
			names = append(names, s.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// generateResult is the JSON/YAML shape of the generate command.
type generateResult struct {
	Scheme          label.Scheme `json:"scheme" yaml:"scheme"`
	Start           string       `json:"start" yaml:"start"`
	End             string       `json:"end" yaml:"end"`
	Step            int          `json:"step" yaml:"step"`
	IncrementLetter bool         `json:"increment_letter" yaml:"increment_letter"`
	Labels          []string     `json:"labels" yaml:"labels"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	var (
		lf   labelFlags
		step int
	)
	cmd := &cobra.Command{
		Use:   "generate <start> <end>",
		Short: "Expand a label range",
		Long: `Expand the inclusive range start..end into every label of the chosen scheme.

A negative step counts down; the sign of step must agree with the direction
of the range. When the distance is not a whole multiple of step, the output
stops at the last label before end. Ranges longer than --max-labels fail.`,
		Example: `  # Ten numbers
  lvlabel generate 1 10

  # Every second roman numeral
  lvlabel generate I IX --type roman --step 2

  # Vary the block letter of "A01"-style labels
  lvlabel generate A01 E01 --type alphanumeric --increment-letter

  # Wrap past ZZZ back to A
  lvlabel generate ZZY B --type letters --wrap-letters`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], args[1], step, lf)
		},
	}
	lf.register(cmd)
	cmd.Flags().IntVarP(&step, "step", "s", 1, "Ordinal distance between labels (negative counts down)")
	return cmd
}

func runGenerate(cmd *cobra.Command, start, end string, step int, lf labelFlags) error {
	cmdCtx := NewCommandContext(cmd)

	scheme, err := label.ParseScheme(lf.scheme)
	if err != nil {
		return err
	}
	r := label.Range{Start: start, End: end, Step: step, Scheme: scheme, IncrementPrefix: lf.incrementLetter}
	labels, err := label.Generate(r, cmdCtx.Cfg.LabelOptions()...)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("generated labels", "range", r.String(), "count", len(labels))

	rows := make([][]string, len(labels))
	for i, l := range labels {
		rows[i] = []string{strconv.Itoa(i + 1), l}
	}
	return cmdCtx.Renderer.Render(output.Result{
		Title:  r.String(),
		Header: []string{"#", "Label"},
		Rows:   rows,
		Data: generateResult{
			Scheme:          scheme,
			Start:           start,
			End:             end,
			Step:            step,
			IncrementLetter: lf.incrementLetter,
			Labels:          labels,
		},
	})
}

// lookupResult is the JSON/YAML shape of the ordinal, label and validate commands.
type lookupResult struct {
	Label   string       `json:"label" yaml:"label"`
	Scheme  label.Scheme `json:"scheme" yaml:"scheme"`
	Ordinal int          `json:"ordinal" yaml:"ordinal"`
	Valid   *bool        `json:"valid,omitempty" yaml:"valid,omitempty"`
}

func renderLookup(r *output.Renderer, res lookupResult) error {
	return r.Render(output.Result{
		Header: []string{"Label", "Scheme", "Ordinal"},
		Rows:   [][]string{{res.Label, res.Scheme.String(), strconv.Itoa(res.Ordinal)}},
		Data:   res,
	})
}

// NewOrdinalCommand creates the ordinal command.
func NewOrdinalCommand() *cobra.Command {
	var lf labelFlags
	cmd := &cobra.Command{
		Use:   "ordinal <label>",
		Short: "Print the ordinal of a label",
		Long:  `Parse a label in the chosen scheme and print its 1-based ordinal (0 for binary and hex zero).`,
		Example: `  lvlabel ordinal AA --type letters        # 27
  lvlabel ordinal MCMXCIV --type roman      # 1994
  lvlabel ordinal 0x1F --type hex           # 31`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			scheme, err := label.ParseScheme(lf.scheme)
			if err != nil {
				return err
			}
			n, err := label.LabelToOrdinal(args[0], scheme, lf.incrementLetter, cmdCtx.Cfg.LabelOptions()...)
			if err != nil {
				return err
			}
			cmdCtx.Logger.Debug("parsed label", "label", args[0], "scheme", scheme, "ordinal", n)
			return renderLookup(cmdCtx.Renderer, lookupResult{Label: args[0], Scheme: scheme, Ordinal: n})
		},
	}
	lf.register(cmd)
	return cmd
}

// NewLabelCommand creates the label command.
func NewLabelCommand() *cobra.Command {
	var (
		lf       labelFlags
		template string
	)
	cmd := &cobra.Command{
		Use:   "label <ordinal>",
		Short: "Print the label for an ordinal",
		Long: `Format an ordinal in the chosen scheme.

Alphanumeric and numalpha labels have a static part that cannot be derived
from the ordinal alone; pass a label of the same shape with --template.`,
		Example: `  lvlabel label 14 --type roman                    # XIV
  lvlabel label 5 --type alphanumeric --template A01  # A05
  lvlabel label 3 --type numalpha -i --template 2A    # 2C`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("ordinal %q is not an integer", args[0])
			}
			scheme, err := label.ParseScheme(lf.scheme)
			if err != nil {
				return err
			}
			l, err := label.OrdinalToLabel(n, scheme, lf.incrementLetter, template, cmdCtx.Cfg.LabelOptions()...)
			if err != nil {
				return err
			}
			cmdCtx.Logger.Debug("formatted ordinal", "ordinal", n, "scheme", scheme, "label", l)
			return renderLookup(cmdCtx.Renderer, lookupResult{Label: l, Scheme: scheme, Ordinal: n})
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVar(&template, "template", "", "Label whose static part the result reuses")
	return cmd
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var lf labelFlags
	cmd := &cobra.Command{
		Use:   "validate <label>",
		Short: "Check that a label is well formed",
		Long: `Check a label against the chosen scheme. The command fails with the
validation error when the label is malformed or out of range.`,
		Example: `  lvlabel validate XIV --type roman
  lvlabel validate A01 --type alphanumeric --increment-letter`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			scheme, err := label.ParseScheme(lf.scheme)
			if err != nil {
				return err
			}
			n, err := label.LabelToOrdinal(args[0], scheme, lf.incrementLetter, cmdCtx.Cfg.LabelOptions()...)
			if err != nil {
				cmdCtx.Logger.Debug("label rejected", "label", args[0], "scheme", scheme, "error", err)
				return err
			}
			valid := true
			return renderLookup(cmdCtx.Renderer, lookupResult{Label: args[0], Scheme: scheme, Ordinal: n, Valid: &valid})
		},
	}
	lf.register(cmd)
	return cmd
}
