package bridge

import (
	"log/slog"

	"github.com/thoreinstein/minnote/internal/logging"
)

// Store is the subset of *notes.Store the commands call.
type Store interface {
	Save(relPath, content string) error
	Load(relPath string) (string, error)
	PickFile() (string, error)
	PickDirectory() (string, error)
	Directory() (string, error)
	OpenInSystemBrowser() error
}

// CommandError is the error shape returned to the host: a message only.
type CommandError struct {
	Message string `json:"message"`
}

func (e *CommandError) Error() string {
	return e.Message
}

// fail flattens err to a CommandError. It returns nil for a nil err.
func fail(err error) *CommandError {
	if err == nil {
		return nil
	}
	return &CommandError{Message: err.Error()}
}

// Bridge implements the host-facing commands over a Store.
type Bridge struct {
	store  Store
	logger *slog.Logger
}

// New returns a Bridge over store. logger may be nil.
func New(store Store, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Bridge{store: store, logger: logger}
}

// SaveNote writes content to filePath under the notes directory.
func (b *Bridge) SaveNote(content, filePath string) *CommandError {
	return b.done("save_note", b.store.Save(filePath, content))
}

// LoadNote returns the note at filePath. An empty filePath yields "".
func (b *Bridge) LoadNote(filePath string) (string, *CommandError) {
	content, err := b.store.Load(filePath)
	return content, b.done("load_note", err)
}

// PickFile returns the path of a note chosen in the file picker.
func (b *Bridge) PickFile() (string, *CommandError) {
	path, err := b.store.PickFile()
	return path, b.done("pick_file", err)
}

// PickDirectory returns the directory chosen in the picker, which becomes
// the notes directory.
func (b *Bridge) PickDirectory() (string, *CommandError) {
	dir, err := b.store.PickDirectory()
	if err != nil {
		return "", b.done("pick_directory", err)
	}
	return dir, nil
}

// GetNotesDirectory returns the active notes directory.
func (b *Bridge) GetNotesDirectory() (string, *CommandError) {
	dir, err := b.store.Directory()
	return dir, b.done("get_notes_directory", err)
}

// OpenNotesDirectory shows the notes directory in the host file manager.
func (b *Bridge) OpenNotesDirectory() *CommandError {
	return b.done("open_notes_directory", b.store.OpenInSystemBrowser())
}

func (b *Bridge) done(command string, err error) *CommandError {
	if err != nil {
		b.logger.Debug("command failed", "command", command, "error", err)
	}
	return fail(err)
}
