package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/history"
	"github.com/rshade/unitconv/internal/logging"
	"github.com/rshade/unitconv/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [category]",
		Short: "Open the interactive converter",
		Example: `  unitconv tui
  unitconv tui temperature`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.IsInteractive(os.Stdin, os.Stdout) {
				return errors.New("the interactive converter needs a terminal; use 'unitconv convert' instead")
			}
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}
			return executeTUI(cmd, initial)
		},
	}
}

func executeTUI(cmd *cobra.Command, initialCategory string) error {
	ctx := cmd.Context()
	log := logging.ComponentLogger(*logging.FromContext(ctx), "tui")
	cfg := config.GetGlobalConfig()

	opts := []tui.ConverterOption{tui.WithLogger(log)}

	store, err := openHistory()
	switch {
	case err == nil:
		opts = append(opts, tui.WithHistory(store, cfg.History.RecentLimit))
	case errors.Is(err, history.ErrStoreCorrupted):
		cmd.PrintErrf("Warning: %v; history is off for this session\n", err)
	case !errors.Is(err, errHistoryDisabled):
		log.Warn().Err(err).Msg("history unavailable")
	}

	m := tui.New(initialCategory, opts...)
	if initialCategory == "" {
		m.Picker().Focus(config.GetDefaultCategory())
	}
	return tui.Run(ctx, m, os.Stdin, os.Stdout)
}
