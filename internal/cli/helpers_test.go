package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rshade/unitconv/internal/config"
)

// isolateHome points UNITCONV_HOME at a fresh directory and resets the
// global config around the test. It returns the directory.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("UNITCONV_HOME", home)
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and stdin and returns what it
// wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd("1.2.3")
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := Execute(context.Background(), cmd, args)
	return stdout.String(), stderr.String(), err
}
