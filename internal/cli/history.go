package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/conversion"
	"github.com/rshade/unitconv/internal/history"
	"github.com/rshade/unitconv/internal/logging"
	"github.com/rshade/unitconv/internal/units"
)

func newHistoryCmd() *cobra.Command {
	var (
		categoryID string
		limit      int
		clearAll   bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversions",
		Long: `Show recent conversions, newest first.

With --category, only that category's entries are shown, up to --limit
(default from history.recent_limit). Without it, every stored entry is listed.`,
		Example: `  unitconv history
  unitconv history --category length --limit 3
  unitconv history --clear`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if clearAll {
				return executeHistoryClear(cmd)
			}
			return executeHistoryList(cmd, categoryID, limit, output)
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "only show entries of this category")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to show (0 = default)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete all history entries")
	addOutputFlag(cmd, &output)

	return cmd
}

func executeHistoryClear(cmd *cobra.Command) error {
	store, err := historyStore()
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	var n int
	err = store.Update(func(s *history.Store) error {
		n = s.Count()
		s.Clear()
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	logging.FromContext(cmd.Context()).Debug().Int("removed", n).Msg("history cleared")
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d history entries.\n", n)
	return nil
}

func executeHistoryList(cmd *cobra.Command, categoryID string, limit int, output string) error {
	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}
	if limit < 0 {
		return &UsageError{Err: fmt.Errorf("limit must be >= 0, got %d", limit)}
	}

	store, err := openHistory()
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	var entries []history.Entry
	if categoryID != "" {
		if _, lookupErr := lookupCategory(categoryID); lookupErr != nil {
			return lookupErr
		}
		if limit == 0 {
			limit = config.GetGlobalConfig().History.RecentLimit
		}
		entries = store.Recent(categoryID, limit)
	} else {
		entries = store.All()
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
	}

	if format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded yet.")
		return nil
	}

	now := time.Now()
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tCATEGORY\tCONVERSION")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s %s → %s %s\n",
			history.RelativeTime(e.Time(), now),
			e.Category,
			conversion.FormatHistoryValue(e.FromValue), symbolIn(e.Category, e.FromUnit),
			conversion.FormatHistoryValue(e.ToValue), symbolIn(e.Category, e.ToUnit),
		)
	}
	return tw.Flush()
}

// symbolIn returns the symbol of a unit, or the id when the category or unit
// is no longer known.
func symbolIn(categoryID, unitID string) string {
	c, ok := units.GetCategoryByID(categoryID)
	if !ok {
		return unitID
	}
	return unitSymbol(c, unitID)
}
