package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/minnote/internal/bridge"
	"github.com/thoreinstein/minnote/internal/config"
	"github.com/thoreinstein/minnote/internal/launcher"
	"github.com/thoreinstein/minnote/internal/logging"
	"github.com/thoreinstein/minnote/internal/notes"
	"github.com/thoreinstein/minnote/internal/picker"
)

// newResolver returns the notes directory resolver for cmd.
func newResolver(cmd *cobra.Command) *config.Resolver {
	r := config.NewResolver()
	r.Logger = logging.FromContext(cmd.Context())
	return r
}

// newDialog returns the picker backend selected in the config.
func newDialog(cmd *cobra.Command, r *config.Resolver, logger *slog.Logger) picker.Dialog {
	src := picker.Source{FileStart: r.NotesRoot, Pinned: notesRoots(r)}
	if appConfig.Picker == config.PickerPrompt {
		return picker.NewPrompt(src, cmd.InOrStdin(), cmd.ErrOrStderr(), logger)
	}
	return picker.NewFinder(src, logger)
}

// notesRoots offers the active and default notes directories first in the
// directory picker.
func notesRoots(r *config.Resolver) func() []string {
	return func() []string {
		var dirs []string
		if root, err := r.NotesRoot(); err == nil {
			dirs = append(dirs, root)
		}
		if def, err := r.DefaultNotesRoot(); err == nil {
			dirs = append(dirs, def)
		}
		return dirs
	}
}

// newStore wires a note store from the loaded config.
func newStore(cmd *cobra.Command) *notes.Store {
	logger := logging.FromContext(cmd.Context())
	r := newResolver(cmd)

	return notes.New(r,
		notes.WithLogger(logger),
		notes.WithDialog(newDialog(cmd, r, logger)),
		notes.WithExtensions(appConfig.TextExtensions),
		notes.WithFileManager(launcher.NewFileManager(appConfig.FileManager, logger)),
		notes.WithEditor(&launcher.Editor{
			Command: appConfig.Editor,
			Stdin:   cmd.InOrStdin(),
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
		}),
	)
}

// newBridge wraps a store in the host command surface.
func newBridge(cmd *cobra.Command) *bridge.Bridge {
	return bridge.New(newStore(cmd), logging.FromContext(cmd.Context()))
}

// readAll reads piped input such as note content.
func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
