package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/conversion"
)

// Exit codes returned by the unitconv binary.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks an error caused by how the command was invoked: bad
// arguments or flags, a value that is not a number, or a unit the category
// does not have.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usage *UsageError
	if errors.As(err, &usage) ||
		errors.Is(err, conversion.ErrInvalidInput) ||
		errors.Is(err, conversion.ErrUnknownUnit) {
		return ExitUsage
	}
	return ExitError
}

// usageArgs wraps a positional-argument validator so its errors are usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}
