package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	hintColor    = color.New(color.FgHiBlack)
)

// status prints a confirmation line unless --quiet is set.
func status(w io.Writer, format string, args ...any) {
	if quiet {
		return
	}
	successColor.Fprintf(w, format+"\n", args...)
}

// hint prints a secondary line unless --quiet is set.
func hint(w io.Writer, format string, args ...any) {
	if quiet {
		return
	}
	hintColor.Fprintf(w, "  "+format+"\n", args...)
}

// printValue writes a command result on its own line.
func printValue(w io.Writer, v string) {
	fmt.Fprintln(w, v)
}
