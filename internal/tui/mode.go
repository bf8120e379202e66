package tui

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether both in and out are terminals, which the
// full-screen converter needs.
func IsInteractive(in, out *os.File) bool {
	if in == nil || out == nil {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}
