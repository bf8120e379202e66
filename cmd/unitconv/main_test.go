package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/unitconv/internal/cli"
	"github.com/rshade/unitconv/internal/conversion"
	"github.com/rshade/unitconv/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "unitconv", root.Use)
		assert.Equal(t, version.GetVersion(), root.Version)
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitOK},
		{name: "generic", err: errors.New("disk full"), want: cli.ExitError},
		{name: "usage", err: &cli.UsageError{Err: errors.New("bad flag")}, want: cli.ExitUsage},
		{name: "invalid number", err: fmt.Errorf("parse: %w", conversion.ErrInvalidInput), want: cli.ExitUsage},
		{name: "unknown unit", err: &conversion.UnknownUnitError{CategoryID: "length", UnitID: "parsec"}, want: cli.ExitUsage},
		{name: "failed batch", err: &cli.BatchFailedError{Failed: 1, Total: 3}, want: cli.ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}
