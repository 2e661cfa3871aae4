// Package main is the entry point for the minnote CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/minnote/cmd/minnote/commands"
	"github.com/thoreinstein/minnote/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	exitErr := errors.FromError(err)
	if exitErr.Err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), exitErr.Err)
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
	}
	os.Exit(exitErr.Code)
}
