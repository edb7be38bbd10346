package ui

import (
	"os"

	"golang.org/x/term"
)

// StderrIsTerminal reports whether stderr is attached to a terminal.
// Piped or redirected output drops the color escapes entirely.
func StderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
// The extract command uses this to warn when JSON lands on a TTY.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
