package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/batch"
	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/conversion"
	"github.com/rshade/unitconv/internal/logging"
	"github.com/rshade/unitconv/internal/units"
)

type batchLineJSON struct {
	Line   int                `json:"line"`
	Result *conversion.Result `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// BatchFailedError reports that some lines of a batch could not be converted.
type BatchFailedError struct {
	Failed int
	Total  int
}

func (e *BatchFailedError) Error() string {
	return fmt.Sprintf("%d of %d lines failed", e.Failed, e.Total)
}

func newBatchCmd() *cobra.Command {
	var (
		file        string
		concurrency int
		batchSize   int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "batch <category>",
		Short: "Convert many values read from a file or stdin",
		Long: `Convert one "<value> <from> <to>" line at a time. Blank lines and lines
starting with '#' are skipped. Results are printed in input order; lines that
fail are reported with their line number and do not stop the others.`,
		Example: `  unitconv batch length --file values.txt
  printf '1 km mi\n32 f c\n' | unitconv batch temperature
  unitconv batch speed --file big.txt --concurrency 4 --output json`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeBatch(cmd, args[0], file, concurrency, batchSize, output)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "input file, or - for stdin")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "batches converted in parallel")
	cmd.Flags().IntVar(&batchSize, "batch-size", batch.DefaultBatchSize, "lines per batch (1-1000)")
	addOutputFlag(cmd, &output)

	return cmd
}

func executeBatch(cmd *cobra.Command, categoryID, file string, concurrency, batchSize int, output string) error {
	ctx := cmd.Context()
	log := logging.ComponentLogger(*logging.FromContext(ctx), "batch")

	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}

	c, err := lookupCategory(categoryID)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd, file)
	if err != nil {
		return err
	}
	defer closeInput()

	reqs, err := batch.ParseRequests(in, c)
	if err != nil {
		return err
	}

	converter, err := batch.NewConverter(conversion.NewEngine(c), batchSize,
		batch.WithConcurrency(concurrency),
		batch.WithLogger(log),
		batch.WithProgress(func(s batch.ProgressSnapshot) {
			log.Debug().Int("processed", s.ProcessedItems).Int("total", s.TotalItems).Msg("batch progress")
		}),
	)
	if err != nil {
		return &UsageError{Err: err}
	}

	outcomes, err := converter.Run(ctx, reqs)
	if err != nil {
		return err
	}

	if renderErr := renderBatch(cmd, c, format, outcomes); renderErr != nil {
		return renderErr
	}

	succeeded, failed := batch.Summary(outcomes)
	if format == config.FormatTable {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d converted, %d failed\n", succeeded, failed)
	}
	if failed > 0 {
		return &BatchFailedError{Failed: failed, Total: len(outcomes)}
	}
	return nil
}

// openInput opens file, or stdin for "-".
func openInput(cmd *cobra.Command, file string) (io.Reader, func(), error) {
	if file == "" || file == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func renderBatch(cmd *cobra.Command, c units.Category, format string, outcomes []batch.Outcome) error {
	if format == config.FormatJSON {
		lines := make([]batchLineJSON, 0, len(outcomes))
		for _, o := range outcomes {
			line := batchLineJSON{Line: o.Request.Line}
			if o.OK() {
				line.Result = &o.Result
			} else {
				line.Error = o.Err.Error()
			}
			lines = append(lines, line)
		}
		return writeJSON(cmd.OutOrStdout(), lines)
	}

	for _, o := range outcomes {
		if !o.OK() {
			cmd.PrintErrf("%v\n", o.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
			conversion.FormatNumber(o.Result.FromValue), unitSymbol(c, o.Result.FromUnit),
			conversion.FormatNumber(o.Result.ToValue), unitSymbol(c, o.Result.ToUnit))
	}
	return nil
}
