// Package cli implements the unitconv command line.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/logging"
	"github.com/rshade/unitconv/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the unitconv CLI.
// It loads configuration, wires logging and registers the subcommands.
// Run without a subcommand on a terminal, it opens the interactive converter.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "unitconv",
		Short:         "Convert between units of length, weight, temperature, volume, area and speed",
		Long:          "unitconv: convert values between common units, with a local history of recent conversions",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsInteractive(os.Stdin, os.Stdout) {
				return cmd.Help()
			}
			return executeTUI(cmd, "")
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $UNITCONV_HOME/config.yaml or ~/.unitconv/config.yaml)")
	cmd.PersistentFlags().String("history-file", "", "history file (overrides config and UNITCONV_HISTORY_FILE)")
	cmd.PersistentFlags().Bool("no-history", false, "do not read or write conversion history")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	cmd.AddCommand(
		newCategoriesCmd(),
		newUnitsCmd(),
		newConvertCmd(),
		newCommonCmd(),
		newHistoryCmd(),
		newBatchCmd(),
		newTUICmd(),
	)

	return cmd
}

const rootCmdExample = `  # Convert 100 degrees Celsius to Fahrenheit
  unitconv convert 100 c f

  # Convert within an explicit category, as JSON
  unitconv convert 5 km mi --category length --output json

  # List categories and the units of one
  unitconv categories
  unitconv units area

  # Show quick conversions for a category, evaluated for 10
  unitconv common weight --value 10

  # Show recent conversions
  unitconv history --category temperature

  # Convert a file of "<value> <from> <to>" lines
  unitconv batch length --file values.txt

  # Open the interactive converter
  unitconv tui speed`

// loadConfig reads the config file and environment, applies flag overrides
// and installs the result as the global configuration.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("history-file") {
		cfg.History.File, _ = cmd.Flags().GetString("history-file")
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.History.Disabled = true
	}

	config.SetGlobalConfig(cfg)
	return nil
}
