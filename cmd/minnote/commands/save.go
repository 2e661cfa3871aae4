package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/notes"
)

func init() {
	rootCmd.AddCommand(saveCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save <file> [content]",
	Short: "Save a note",
	Long: `Write content to a note under the notes directory, replacing what was
there. Missing parent directories are created.

When content is omitted it is read from standard input.`,
	Example: `  # Save inline content
  minnote save todo.txt "buy milk"

  # Save from a pipe, into a subdirectory
  date | minnote save journal/today.txt

  See Also: minnote load, minnote edit`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	file := args[0]

	var content string
	if len(args) == 2 {
		content = args[1]
	} else {
		in, err := readAll(cmd.InOrStdin())
		if err != nil {
			return errors.WrapIO(err, "reading content from stdin")
		}
		content = in
	}

	store := newStore(cmd)
	path, err := store.NotePath(file)
	if err != nil {
		return err
	}
	if err := store.Save(file, content); err != nil {
		return err
	}

	status(cmd.ErrOrStderr(), "Saved %s (%s)", path, notes.Stats(content))
	return nil
}
