package commands

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/minnote/internal/errors"
)

var dirJSON bool

func init() {
	dirCmd.Flags().BoolVar(&dirJSON, "json", false,
		"print the directory and where it came from as JSON")
	dirCmd.AddCommand(dirOpenCmd)
	dirCmd.AddCommand(dirSetCmd)
	dirCmd.AddCommand(dirResetCmd)
	rootCmd.AddCommand(dirCmd)
}

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Show or change the notes directory",
	Long: `Print the active notes directory.

The directory named in notes_dir.txt (in the current working directory)
wins when that file exists and is not blank. Otherwise the platform data
directory is used.`,
	Example: `  # Show the notes directory
  minnote dir

  # Keep notes somewhere else
  minnote dir set ~/Dropbox/notes

  # Go back to the default
  minnote dir reset

  See Also: minnote pick dir, minnote doctor`,
	Args: cobra.NoArgs,
	RunE: runDir,
}

var dirOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the notes directory in the file manager",
	Long: `Open the notes directory in the system file manager, creating it first
if needed. The command returns without waiting for the file manager.`,
	Args: cobra.NoArgs,
	RunE: runDirOpen,
}

var dirSetCmd = &cobra.Command{
	Use:   "set <path>",
	Short: "Use a different notes directory",
	Long: `Remember path as the notes directory in notes_dir.txt.
Relative paths are made absolute first. The directory does not need to
exist yet; it is created on the first save.`,
	Args: cobra.ExactArgs(1),
	RunE: runDirSet,
}

var dirResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Go back to the default notes directory",
	Args:  cobra.NoArgs,
	RunE:  runDirReset,
}

func runDir(cmd *cobra.Command, _ []string) error {
	root, err := newResolver(cmd).Resolve()
	if err != nil {
		return err
	}

	if dirJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(root), "encoding JSON")
	}

	printValue(cmd.OutOrStdout(), root.Path)
	if verbosity > 0 {
		hint(cmd.ErrOrStderr(), "source: %s", root.Source)
	}
	return nil
}

func runDirOpen(cmd *cobra.Command, _ []string) error {
	return newStore(cmd).OpenInSystemBrowser()
}

func runDirSet(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return errors.Mark(errors.Wrap(err, "resolving path"), errors.ErrInvalidPath)
	}

	if err := newResolver(cmd).PersistNotesRoot(dir); err != nil {
		return err
	}
	status(cmd.ErrOrStderr(), "Notes directory set to %s", dir)
	return nil
}

func runDirReset(cmd *cobra.Command, _ []string) error {
	r := newResolver(cmd)
	if err := r.ClearNotesRoot(); err != nil {
		return err
	}

	def, err := r.DefaultNotesRoot()
	if err != nil {
		return err
	}
	status(cmd.ErrOrStderr(), "Notes directory reset to %s", def)
	return nil
}
