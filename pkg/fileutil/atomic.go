// Package fileutil provides file system utilities for minnote's own
// configuration files: atomic writes and size-limited reads.
//
// Note files are deliberately not written through this package; a note save
// is a plain truncate-then-write.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/minnote/internal/errors"
)

// AtomicWriteFile writes data to a file atomically: temp file, fsync, rename.
// An interrupted write leaves the original file intact.
//
// The caller is responsible for ensuring the parent directory exists.
// Permissions are applied to the final file via the perm parameter.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Same directory as the target so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, ".minnote-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	success = true
	return nil
}

// AtomicWriteYAML writes v as YAML to path atomically with 0644 permissions.
// The output always ends with a newline.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteYAML(path string, v any) (err error) {
	// yaml.Marshal panics on unmarshalable types; recover and return error
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	return AtomicWriteFile(path, withTrailingNewline(data), 0o644)
}

// AtomicWriteTOML writes v as TOML to path atomically with 0644 permissions.
// The output always ends with a newline.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteTOML(path string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling TOML")
	}
	return AtomicWriteFile(path, withTrailingNewline(data), 0o644)
}

// AtomicWriteJSON writes v as indented JSON to path atomically with 0644
// permissions.
func AtomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	return AtomicWriteFile(path, withTrailingNewline(data), 0o644)
}

// AtomicWriteConfig picks the encoder from the extension of path:
// ".toml" writes TOML, ".json" JSON, anything else YAML.
func AtomicWriteConfig(path string, v any) error {
	switch filepath.Ext(path) {
	case ".toml":
		return AtomicWriteTOML(path, v)
	case ".json":
		return AtomicWriteJSON(path, v)
	default:
		return AtomicWriteYAML(path, v)
	}
}

func withTrailingNewline(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data
}
