// Package cli provides the command-line interface for lvlabel.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/config"
	"github.com/katalvlaran/lvlabel/internal/cli/commands"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "lvlabel",
		Short: "lvlabel - grid-axis label engine",
		Long: `lvlabel generates, parses and validates grid-axis labels in eight schemes:
numbers, letters, roman, greek, binary, hex, alphanumeric and numalpha.

It also builds labelled floor plans from a YAML plan file, so a cell can be
addressed as "02B / C" instead of "2,3".`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			lvl, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			if cfg.Source != "" {
				logger.Debug("using config file", "path", cfg.Source)
			}

			ctx := commands.WithConfig(cmd.Context(), cfg)
			ctx = commands.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "plan file (default: ./lvlabel.yaml)")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.StringP("output", "o", "", "Output format (table|json|yaml|plain)")
	pf.Int("min-digits", 0, "Minimum digit width of binary and hex labels")
	pf.Bool("wrap-letters", false, "Let letter ranges wrap between ZZZ and A")
	pf.Int("max-labels", 0, "Largest range generate may expand (0 disables the cap)")
	pf.Int("x-size", 0, "Number of positions on the X axis")
	pf.Int("y-size", 0, "Number of positions on the Y axis")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON, config.OutputYAML, config.OutputPlain}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewOrdinalCommand())
	rootCmd.AddCommand(commands.NewLabelCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewAxisCommand())
	rootCmd.AddCommand(commands.NewGridCommand())
	rootCmd.AddCommand(commands.NewLocateCommand())
	rootCmd.AddCommand(commands.NewSpanCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
