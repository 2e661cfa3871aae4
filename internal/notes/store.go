package notes

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/thoreinstein/minnote/internal/config"
	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/launcher"
	"github.com/thoreinstein/minnote/internal/logging"
	"github.com/thoreinstein/minnote/internal/paths"
	"github.com/thoreinstein/minnote/internal/picker"
)

// defaultDebounce coalesces the bursts of events a single save produces.
const defaultDebounce = 100 * time.Millisecond

// Roots resolves and persists the active notes directory.
// *config.Resolver satisfies it.
type Roots interface {
	NotesRoot() (string, error)
	PersistNotesRoot(dir string) error
}

// Opener opens a path in an external program.
type Opener interface {
	Open(path string) error
}

var _ Roots = (*config.Resolver)(nil)

// Store reads and writes notes under the directory reported by Roots.
type Store struct {
	roots       Roots
	dialog      picker.Dialog
	fileManager Opener
	editor      Opener
	extensions  []string
	logger      *slog.Logger
	debounce    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithDialog sets the dialog used by PickFile and PickDirectory.
func WithDialog(d picker.Dialog) Option {
	return func(s *Store) { s.dialog = d }
}

// WithFileManager sets the program OpenInSystemBrowser starts.
func WithFileManager(o Opener) Option {
	return func(s *Store) { s.fileManager = o }
}

// WithEditor sets the program Edit runs.
func WithEditor(o Opener) Option {
	return func(s *Store) { s.editor = o }
}

// WithExtensions restricts PickFile to the given extensions.
func WithExtensions(exts []string) Option {
	return func(s *Store) { s.extensions = append([]string(nil), exts...) }
}

// WithLogger sets the logger. Note content is never logged.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithWatchDebounce sets how long Watch waits for a burst of events to
// settle before reading the note.
func WithWatchDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// New returns a Store. Without options it uses the platform file manager,
// the detected editor and the default text extensions; picking requires
// WithDialog.
func New(roots Roots, opts ...Option) *Store {
	s := &Store{
		roots:      roots,
		extensions: config.DefaultTextExtensions,
		debounce:   defaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewDiscard()
	}
	if s.fileManager == nil {
		s.fileManager = launcher.NewFileManager("", s.logger)
	}
	if s.editor == nil {
		s.editor = launcher.NewEditor("")
	}
	return s
}

// Directory returns the active notes directory.
func (s *Store) Directory() (string, error) {
	return s.roots.NotesRoot()
}

// NotePath returns the absolute location of the note named relPath.
// An absolute relPath, such as one returned by PickFile, is used as-is.
func (s *Store) NotePath(relPath string) (string, error) {
	if relPath == "" {
		return "", errors.Mark(errors.New("note path is empty"), errors.ErrInvalidPath)
	}
	if filepath.IsAbs(relPath) {
		return filepath.Clean(relPath), nil
	}

	root, err := s.roots.NotesRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, relPath), nil
}

// Save writes content to the note, creating missing parent directories.
// An existing note is truncated and overwritten in full.
func (s *Store) Save(relPath, content string) error {
	path, err := s.NotePath(relPath)
	if err != nil {
		return err
	}

	if err := paths.EnsureParent(path, paths.DefaultDirPerm); err != nil {
		return errors.WrapIO(err, "creating note directory")
	}
	if err := os.WriteFile(path, []byte(content), paths.DefaultFilePerm); err != nil {
		return errors.WrapIO(err, "writing note")
	}

	s.logger.Debug("note saved", "path", path, logging.ContentKey, content)
	return nil
}

// Load returns the note's content. An empty relPath means no note is open
// and yields empty content without touching the disk. A missing note
// fails with errors.ErrNotFound, which is distinct from an empty note.
func (s *Store) Load(relPath string) (string, error) {
	if relPath == "" {
		return "", nil
	}

	path, err := s.NotePath(relPath)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Mark(errors.Wrapf(err, "note %s", relPath), errors.ErrNotFound)
		}
		return "", errors.WrapIO(err, "reading note")
	}
	if !utf8.Valid(data) {
		return "", errors.WrapIO(errors.Newf("note %s is not valid UTF-8", relPath), "reading note")
	}

	s.logger.Debug("note loaded", "path", path, logging.ContentKey, string(data))
	return string(data), nil
}

// PickFile lets the user choose an existing text note.
func (s *Store) PickFile() (string, error) {
	if s.dialog == nil {
		return "", errors.Mark(errors.New("no picker configured"), errors.ErrDialog)
	}
	filter := picker.Filter{Name: "Text", Extensions: s.extensions}
	return picker.PickFile(s.dialog, filter)
}

// PickDirectory lets the user choose a notes directory and persists the
// choice. When persisting fails the chosen path is still returned, along
// with the error.
func (s *Store) PickDirectory() (string, error) {
	if s.dialog == nil {
		return "", errors.Mark(errors.New("no picker configured"), errors.ErrDialog)
	}

	dir, err := picker.PickDirectory(s.dialog)
	if err != nil {
		return "", err
	}

	if err := s.roots.PersistNotesRoot(dir); err != nil {
		s.logger.Warn("chosen directory not persisted", "dir", dir, "error", err)
		return dir, err
	}

	s.logger.Info("notes directory changed", "dir", dir)
	return dir, nil
}

// OpenInSystemBrowser shows the active notes directory in the host file
// manager, creating it first if needed. It does not wait for the file
// manager to exit.
func (s *Store) OpenInSystemBrowser() error {
	root, err := s.roots.NotesRoot()
	if err != nil {
		return err
	}
	if err := paths.EnsureDir(root, paths.DefaultDirPerm); err != nil {
		return errors.WrapIO(err, "creating notes directory")
	}
	return s.fileManager.Open(root)
}

// Edit opens the note in the user's editor, creating it empty if needed.
func (s *Store) Edit(relPath string) error {
	path, err := s.NotePath(relPath)
	if err != nil {
		return err
	}

	if err := paths.EnsureParent(path, paths.DefaultDirPerm); err != nil {
		return errors.WrapIO(err, "creating note directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, paths.DefaultFilePerm)
	if err != nil {
		return errors.WrapIO(err, "creating note")
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO(err, "creating note")
	}

	s.logger.Debug("opening editor", "path", path)
	return s.editor.Open(path)
}

// Stats describes content the way the status bar does, e.g. "1 character"
// or "12 characters".
func Stats(content string) string {
	n := utf8.RuneCountInString(content)
	if n == 1 {
		return "1 character"
	}
	return fmt.Sprintf("%d characters", n)
}
