package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/units"
)

type categoryJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	BaseUnit    string `json:"baseUnit"`
	Units       int    `json:"unitCount"`
}

func newCategoriesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List unit categories",
		Example: `  unitconv categories
  unitconv categories --output json`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			return renderCategories(cmd, format)
		},
	}
	addOutputFlag(cmd, &output)

	return cmd
}

func renderCategories(cmd *cobra.Command, format string) error {
	categories := units.AllCategories()

	if format == config.FormatJSON {
		out := make([]categoryJSON, 0, len(categories))
		for _, c := range categories {
			out = append(out, categoryJSON{
				ID: c.ID, Name: c.Name, Description: c.Description,
				Icon: c.Icon, BaseUnit: c.BaseUnit, Units: c.Len(),
			})
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBASE UNIT\tUNITS\tDESCRIPTION")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%d\t%s\n", c.ID, c.Icon, c.Name, c.BaseUnit, c.Len(), c.Description)
	}
	return tw.Flush()
}
