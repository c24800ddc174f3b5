package tui

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalState records which standard streams are terminals.
type TerminalState struct {
	Stdin  bool
	Stdout bool
	Stderr bool
}

// CurrentTerminalState inspects the process's standard streams.
func CurrentTerminalState() TerminalState {
	return TerminalState{
		Stdin:  IsTerminal(os.Stdin),
		Stdout: IsTerminal(os.Stdout),
		Stderr: IsTerminal(os.Stderr),
	}
}
