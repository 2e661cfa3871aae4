package launcher

import (
	"io"
	"os"
	"os/exec"

	"github.com/thoreinstein/minnote/internal/errors"
)

// Editor runs the user's preferred text editor.
type Editor struct {
	// Command overrides editor detection when non-empty.
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEditor returns an Editor attached to the process's standard streams.
func NewEditor(command string) *Editor {
	return &Editor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Program returns the editor command Open will run.
func (e *Editor) Program() string {
	if e.Command != "" {
		return e.Command
	}
	return detectEditor()
}

// Open runs the editor on path and waits for it to exit.
func (e *Editor) Open(path string) error {
	name, args, err := splitCommand(e.Program())
	if err != nil {
		return err
	}

	cmd := exec.Command(name, append(args, path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return errors.Wrapf(err, "editor %s failed", name)
		}
		return errors.Mark(errors.Wrapf(err, "running editor %s", name), errors.ErrProcessSpawn)
	}

	return nil
}

// detectEditor returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// nano is easier for beginners
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}
