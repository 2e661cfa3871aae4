package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/minnote/internal/notes"
)

var loadStats bool

func init() {
	loadCmd.Flags().BoolVar(&loadStats, "stats", false,
		"print the character count instead of the content")
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Print a note",
	Long: `Print a note's content exactly as stored.

Without a file nothing is printed: no note is open yet. A note that does
not exist is an error, while an existing empty note prints nothing.`,
	Example: `  # Print a note
  minnote load todo.txt

  # Show its size as the status bar would
  minnote load todo.txt --stats

  See Also: minnote save, minnote pick`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	file := ""
	if len(args) == 1 {
		file = args[0]
	}

	content, err := newStore(cmd).Load(file)
	if err != nil {
		return err
	}

	if loadStats {
		printValue(cmd.OutOrStdout(), notes.Stats(content))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
