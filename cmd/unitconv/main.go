// Command unitconv converts values between units of measurement.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/unitconv/internal/cli"
	"github.com/rshade/unitconv/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	err := cli.Execute(ctx, root, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
