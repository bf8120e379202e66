package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/conversion"
)

type commonJSON struct {
	conversion.CommonConversion

	Value  *float64 `json:"value,omitempty"`
	Result *float64 `json:"result,omitempty"`
}

func newCommonCmd() *cobra.Command {
	var (
		valueText string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "common <category>",
		Short: "Show the quick conversions of a category",
		Example: `  unitconv common length
  unitconv common temperature --value 37`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCommon(cmd, args[0], valueText, output)
		},
	}

	cmd.Flags().StringVar(&valueText, "value", "", "evaluate every quick conversion for this value")
	addOutputFlag(cmd, &output)

	return cmd
}

func executeCommon(cmd *cobra.Command, categoryID, valueText, output string) error {
	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}

	c, err := lookupCategory(categoryID)
	if err != nil {
		return err
	}

	var value *float64
	if valueText != "" {
		v, parseErr := conversion.ParseValue(valueText)
		if parseErr != nil {
			return &UsageError{Err: parseErr}
		}
		value = &v
	}

	engine := conversion.NewEngine(c)
	shortcuts := conversion.GetCommonConversions(c.ID)

	rows := make([]commonJSON, 0, len(shortcuts))
	for _, s := range shortcuts {
		row := commonJSON{CommonConversion: s}
		if value != nil {
			out, convErr := engine.Convert(*value, s.From, s.To)
			if convErr != nil {
				return convErr
			}
			in := finiteOrZero(*value)
			row.Value, row.Result = &in, &out
		}
		rows = append(rows, row)
	}

	if format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), rows)
	}

	if len(rows) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No quick conversions for %s.\n", c.Name)
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	if value == nil {
		fmt.Fprintln(tw, "#\tCONVERSION\tFROM\tTO")
	} else {
		fmt.Fprintln(tw, "#\tCONVERSION\tRESULT")
	}
	for i, r := range rows {
		if value == nil {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, r.Label, r.From, r.To)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s %s = %s %s\n", i+1, r.Label,
			conversion.FormatNumber(*r.Value), engine.UnitSymbol(r.From),
			conversion.FormatNumber(*r.Result), engine.UnitSymbol(r.To))
	}
	return tw.Flush()
}
