package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Open a note in your editor",
	Long: `Open a note in your editor, creating it empty if it does not exist.

The editor is the 'editor' config value, else $EDITOR, else $VISUAL,
else nano, else vi.`,
	Example: `  # Edit a note
  minnote edit todo.txt

  # Use a specific editor once
  EDITOR=nvim minnote edit todo.txt

  See Also: minnote watch, minnote save`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newStore(cmd).Edit(args[0])
	},
}
