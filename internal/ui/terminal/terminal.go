// Package terminal inspects the process's console.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Width returns the column count of f, or 0 when f is not a terminal
// (redirected output, CI logs).
func Width(f *os.File) int {
	if f == nil || !IsTerminal(f) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w < 0 {
		return 0
	}
	return w
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
