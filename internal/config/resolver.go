package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/paths"
	"github.com/thoreinstein/minnote/pkg/fileutil"
)

// sidecarMaxSize bounds how much of the sidecar file is read.
const sidecarMaxSize = 64 * 1024

// Source tells where an active notes root came from.
type Source string

const (
	// SourceSidecar means the root was read from the sidecar file.
	SourceSidecar Source = "sidecar"
	// SourceDefault means the platform data directory was used.
	SourceDefault Source = "default"
)

// Root is a resolved notes directory together with its origin.
type Root struct {
	Path   string `json:"path"`
	Source Source `json:"source"`
}

// Resolver determines the active notes directory.
// It holds no state between calls: every resolution re-reads the sidecar.
type Resolver struct {
	// SidecarPath is the override file. Relative paths resolve against
	// the process working directory.
	SidecarPath string

	// DataHome returns the platform data directory.
	DataHome func() string

	// Logger receives debug output about fallbacks. May be nil.
	Logger *slog.Logger
}

// NewResolver returns a Resolver using the fixed sidecar name and the XDG
// data home.
func NewResolver() *Resolver {
	return &Resolver{
		SidecarPath: paths.SidecarFileName,
		DataHome:    paths.DataHome,
	}
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}

// Resolve returns the sidecar override when the file can be read and holds
// non-blank content, and the platform default otherwise. Only a failure to
// determine the platform data directory is an error.
func (r *Resolver) Resolve() (Root, error) {
	if override, ok := r.readSidecar(); ok {
		return Root{Path: override, Source: SourceSidecar}, nil
	}

	def, err := r.DefaultNotesRoot()
	if err != nil {
		return Root{}, err
	}
	return Root{Path: def, Source: SourceDefault}, nil
}

// NotesRoot is Resolve without the source.
func (r *Resolver) NotesRoot() (string, error) {
	root, err := r.Resolve()
	if err != nil {
		return "", err
	}
	return root.Path, nil
}

// DefaultNotesRoot returns the platform data directory joined with the app
// subfolder, ignoring any sidecar override.
func (r *Resolver) DefaultNotesRoot() (string, error) {
	dataHome := ""
	if r.DataHome != nil {
		dataHome = r.DataHome()
	}
	return paths.DefaultNotesDir(dataHome)
}

// PersistNotesRoot overwrites the sidecar file with exactly dir.
// The value is neither trimmed nor checked for existence.
func (r *Resolver) PersistNotesRoot(dir string) error {
	if err := os.WriteFile(r.SidecarPath, []byte(dir), paths.DefaultFilePerm); err != nil {
		return errors.WrapIO(err, "writing notes directory override")
	}
	r.logger().Debug("notes directory persisted", "sidecar", r.SidecarPath, "dir", dir)
	return nil
}

// ClearNotesRoot removes the sidecar so the platform default applies again.
// Clearing an absent sidecar succeeds.
func (r *Resolver) ClearNotesRoot() error {
	if err := os.Remove(r.SidecarPath); err != nil && !os.IsNotExist(err) {
		return errors.WrapIO(err, "removing notes directory override")
	}
	return nil
}

func (r *Resolver) readSidecar() (string, bool) {
	data, err := fileutil.ReadFileWithLimit(r.SidecarPath, sidecarMaxSize)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.logger().Debug("ignoring unreadable sidecar", "sidecar", r.SidecarPath, "error", err)
		}
		return "", false
	}

	override := strings.TrimSpace(string(data))
	if override == "" {
		r.logger().Debug("ignoring empty sidecar", "sidecar", r.SidecarPath)
		return "", false
	}
	return override, true
}
