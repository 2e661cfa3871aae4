package launcher

import (
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/logging"
)

// FileManager opens directories in the host's graphical file browser.
type FileManager struct {
	// Command overrides the platform default, e.g. "nautilus" or "thunar".
	Command string

	// GOOS selects the platform default. Defaults to runtime.GOOS.
	GOOS string

	Logger *slog.Logger

	// start runs cmd without waiting. Tests replace it.
	start func(cmd *exec.Cmd) error
}

// NewFileManager returns a FileManager using command when non-empty and the
// platform default otherwise.
func NewFileManager(command string, logger *slog.Logger) *FileManager {
	return &FileManager{Command: command, Logger: logger}
}

// DefaultCommand returns the file manager launcher for goos.
func DefaultCommand(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// Program returns the launcher command that Open will run.
func (f *FileManager) Program() string {
	if f.Command != "" {
		return f.Command
	}
	goos := f.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	return DefaultCommand(goos)
}

// Open starts the file manager on path and returns without waiting for it.
// The child is reaped in the background.
func (f *FileManager) Open(path string) error {
	name, args, err := splitCommand(f.Program())
	if err != nil {
		return err
	}

	cmd := exec.Command(name, append(args, path)...)
	if err := f.startFunc()(cmd); err != nil {
		return errors.Mark(errors.Wrapf(err, "starting %s", name), errors.ErrProcessSpawn)
	}

	f.logger().Debug("file manager started", "program", name, "path", path)
	return nil
}

func (f *FileManager) startFunc() func(*exec.Cmd) error {
	if f.start != nil {
		return f.start
	}
	return f.startDetached
}

func (f *FileManager) startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			f.logger().Debug("file manager exited", "error", err)
		}
	}()
	return nil
}

func (f *FileManager) logger() *slog.Logger {
	if f.Logger == nil {
		return logging.NewDiscard()
	}
	return f.Logger
}
