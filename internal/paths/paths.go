package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/minnote/internal/errors"
)

// AppName is the subfolder name used under the platform data and config homes.
const AppName = "minnote"

// SidecarFileName is the name of the plaintext file holding the notes
// directory override. It is resolved relative to the process working directory.
const SidecarFileName = "notes_dir.txt"

// ConfigFileName is the base name (without extension) of the app config file.
const ConfigFileName = "config"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// DefaultFilePerm is the default permission for newly created note files.
const DefaultFilePerm = 0o644

// ErrDataDirNotFound indicates the platform data directory could not be determined.
var ErrDataDirNotFound = errors.New("platform data directory not found")

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding the app config file.
// Returns: <ConfigHome>/minnote/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DefaultNotesDir returns <dataHome>/minnote. The returned error is marked
// with errors.ErrConfiguration when dataHome is empty.
func DefaultNotesDir(dataHome string) (string, error) {
	if dataHome == "" {
		return "", errors.Mark(ErrDataDirNotFound, errors.ErrConfiguration)
	}
	return filepath.Join(dataHome, AppName), nil
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0755) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// EnsureParent creates every missing ancestor directory of path.
// A path without a parent component has nothing to create and is not an error.
func EnsureParent(path string, perm os.FileMode) error {
	parent := filepath.Dir(path)
	if parent == "." || parent == path {
		return nil
	}
	return EnsureDir(parent, perm)
}
