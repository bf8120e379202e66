package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// addOutputFlag registers --output on cmd.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "", "Output format: table, json (default from config)")
}

// resolveOutputFormat returns flagValue or the configured default, and
// rejects unsupported formats.
func resolveOutputFormat(flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.FormatTable, config.FormatJSON:
		return format, nil
	default:
		return "", &UsageError{Err: fmt.Errorf("unsupported output format: %s", format)}
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// finiteOrZero keeps JSON encodable: encoding/json rejects NaN and ±Inf.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
