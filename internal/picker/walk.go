package picker

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thoreinstein/minnote/internal/errors"
)

// DefaultMaxDepth bounds how far below the start directory candidates are
// collected.
const DefaultMaxDepth = 4

// maxCandidates stops a walk that would flood the list.
const maxCandidates = 5000

// Source locates the directories dialogs start in.
type Source struct {
	// FileStart returns the directory listed by file dialogs.
	FileStart func() (string, error)
	// DirStart returns the directory listed by directory dialogs.
	// Defaults to the user's home directory.
	DirStart func() (string, error)
	// Pinned returns directories offered ahead of the walked ones, such as
	// the current notes directory. Walks skip hidden directories, so a root
	// under ~/.local/share is only reachable this way. May be nil.
	Pinned func() []string
	// MaxDepth defaults to DefaultMaxDepth.
	MaxDepth int
}

func (s Source) depth() int {
	if s.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return s.MaxDepth
}

func (s Source) fileStart() (string, error) {
	if s.FileStart == nil {
		return os.Getwd()
	}
	return s.FileStart()
}

func (s Source) dirStart() (string, error) {
	if s.DirStart == nil {
		return os.UserHomeDir()
	}
	return s.DirStart()
}

// Files lists files under the file start directory that pass filter,
// as absolute paths sorted by name. Hidden entries are skipped.
func (s Source) Files(filter Filter) ([]string, error) {
	start, err := s.fileStart()
	if err != nil {
		return nil, errors.Wrap(err, "locating file picker start directory")
	}
	return walk(start, s.depth(), func(path string, d fs.DirEntry) bool {
		return !d.IsDir() && filter.Match(d.Name())
	})
}

// Directories lists the pinned directories, then the directory start
// directory and its non-hidden subdirectories. Each path appears once.
func (s Source) Directories() ([]string, error) {
	start, err := s.dirStart()
	if err != nil {
		return nil, errors.Wrap(err, "locating directory picker start directory")
	}
	walked, err := walk(start, s.depth(), func(path string, d fs.DirEntry) bool {
		return d.IsDir()
	})
	if err != nil {
		return nil, err
	}
	if s.Pinned == nil {
		return walked, nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, dir := range append(s.Pinned(), walked...) {
		if dir == "" {
			continue
		}
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		out = append(out, dir)
	}
	return out, nil
}

func walk(start string, maxDepth int, keep func(string, fs.DirEntry) bool) ([]string, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, errors.Wrap(err, "resolving start directory")
	}
	if _, err := os.Stat(start); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO(err, "reading start directory")
	}

	var out []string
	err = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped
			if d != nil && d.IsDir() && path != start {
				return fs.SkipDir
			}
			return nil
		}
		if path != start && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if keep(path, d) {
			out = append(out, path)
			if len(out) >= maxCandidates {
				return fs.SkipAll
			}
		}
		if d.IsDir() && path != start && depth(start, path) >= maxDepth {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapIO(err, "listing candidates")
	}

	sort.Strings(out)
	return out, nil
}

func depth(start, path string) int {
	rel, err := filepath.Rel(start, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

func readDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	return names, nil
}
