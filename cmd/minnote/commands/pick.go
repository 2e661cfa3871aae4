package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	pickCmd.AddCommand(pickFileCmd)
	pickCmd.AddCommand(pickDirCmd)
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a note or the notes directory interactively",
	Long: `Open a picker to choose a note file or a notes directory.

The picker is a fuzzy finder by default. Set 'picker: prompt' in the config
to use a numbered list that also works without a full terminal.`,
	Example: `  # Open a chosen note
  minnote load "$(minnote pick file)"

  # Move the notes directory
  minnote pick dir

  See Also: minnote dir, minnote config`,
}

var pickFileCmd = &cobra.Command{
	Use:   "file",
	Short: "Choose a note and print its path",
	Long: `Choose a note from the notes directory and print its absolute path.
Only files with the configured text_extensions are listed.`,
	Args: cobra.NoArgs,
	RunE: runPickFile,
}

var pickDirCmd = &cobra.Command{
	Use:     "dir",
	Aliases: []string{"directory"},
	Short:   "Choose the notes directory",
	Long: `Choose a directory below your home directory and make it the notes
directory. The choice is remembered in notes_dir.txt.`,
	Args: cobra.NoArgs,
	RunE: runPickDir,
}

func runPickFile(cmd *cobra.Command, _ []string) error {
	path, err := newStore(cmd).PickFile()
	if err != nil {
		return err
	}
	printValue(cmd.OutOrStdout(), path)
	return nil
}

func runPickDir(cmd *cobra.Command, _ []string) error {
	dir, err := newStore(cmd).PickDirectory()
	if dir != "" {
		printValue(cmd.OutOrStdout(), dir)
	}
	if err != nil {
		return err
	}
	status(cmd.ErrOrStderr(), "Notes directory set to %s", dir)
	return nil
}
