package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/units"
)

type unitJSON struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

func newUnitsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "units <category>",
		Short: "List the units of a category",
		Example: `  unitconv units length
  unitconv units temperature --output json`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			c, err := lookupCategory(args[0])
			if err != nil {
				return err
			}
			return renderUnits(cmd, c, format)
		},
	}
	addOutputFlag(cmd, &output)

	return cmd
}

// lookupCategory returns the category with id, or an error wrapping
// units.ErrCategoryNotFound.
func lookupCategory(id string) (units.Category, error) {
	c, ok := units.GetCategoryByID(id)
	if !ok {
		return units.Category{}, fmt.Errorf("%w: %s", units.ErrCategoryNotFound, id)
	}
	return c, nil
}

func renderUnits(cmd *cobra.Command, c units.Category, format string) error {
	if format == config.FormatJSON {
		out := make([]unitJSON, 0, c.Len())
		for _, u := range c.Units() {
			out = append(out, unitJSON{ID: u.ID, Symbol: u.Symbol, Name: u.Name})
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tSYMBOL\tNAME")
	for _, u := range c.Units() {
		base := ""
		if u.ID == c.BaseUnit {
			base = " (base)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s%s\n", u.ID, u.Symbol, u.Name, base)
	}
	return tw.Flush()
}
