package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/paths"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	notesDir := setupCommandTest(t)

	_, stderr := mustRun(t, "", "save", "todo.txt", "buy milk")
	if want := "Saved " + filepath.Join(notesDir, "todo.txt"); !strings.Contains(stderr, want) {
		t.Errorf("stderr = %q, want it to contain %q", stderr, want)
	}
	if !strings.Contains(stderr, "8 characters") {
		t.Errorf("stderr = %q, want the character count", stderr)
	}

	if got := readFile(t, filepath.Join(notesDir, "todo.txt")); got != "buy milk" {
		t.Errorf("file content = %q, want %q", got, "buy milk")
	}

	if stdout, _ := mustRun(t, "", "load", "todo.txt"); stdout != "buy milk" {
		t.Errorf("load = %q, want %q", stdout, "buy milk")
	}
}

func TestSave_FromStdin(t *testing.T) {
	notesDir := setupCommandTest(t)
	content := "line one\nline two\n"

	mustRun(t, content, "save", "journal/today.txt")

	if got := readFile(t, filepath.Join(notesDir, "journal", "today.txt")); got != content {
		t.Errorf("file content = %q, want %q", got, content)
	}
}

func TestSave_Overwrites(t *testing.T) {
	setupCommandTest(t)

	mustRun(t, "", "save", "a.txt", "a much longer first version")
	mustRun(t, "", "save", "a.txt", "short")

	if stdout, _ := mustRun(t, "", "load", "a.txt"); stdout != "short" {
		t.Errorf("load = %q, want %q", stdout, "short")
	}
}

func TestSave_Quiet(t *testing.T) {
	setupCommandTest(t)

	if _, stderr := mustRun(t, "", "-q", "save", "a.txt", "x"); stderr != "" {
		t.Errorf("stderr = %q, want nothing with --quiet", stderr)
	}
}

func TestSave_HonorsSidecar(t *testing.T) {
	setupCommandTest(t)
	override := t.TempDir()
	writeFile(t, paths.SidecarFileName, override+"\n")

	mustRun(t, "", "save", "note.txt", "elsewhere")

	if got := readFile(t, filepath.Join(override, "note.txt")); got != "elsewhere" {
		t.Errorf("file content = %q, want %q", got, "elsewhere")
	}
}

func TestSave_EmptyName(t *testing.T) {
	setupCommandTest(t)

	_, stderr, err := runCommand(t, "", "save", "", "content")
	if !errors.Is(err, errors.ErrInvalidPath) {
		t.Fatalf("err = %v, want ErrInvalidPath", err)
	}
	if strings.Contains(stderr, "Saved") {
		t.Errorf("stderr = %q, want no confirmation", stderr)
	}
}

func TestLoad_MissingNote(t *testing.T) {
	setupCommandTest(t)

	_, _, err := runCommand(t, "", "load", "nope.txt")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if code := exitCode(err); code != errors.ExitUser {
		t.Errorf("exit code = %d, want %d", code, errors.ExitUser)
	}
}

func TestLoad_InvalidUTF8(t *testing.T) {
	notesDir := setupCommandTest(t)
	if err := os.MkdirAll(notesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(notesDir, "raw.txt"), "a\xff\xfeb")

	stdout, _, err := runCommand(t, "", "load", "raw.txt")
	if !errors.Is(err, errors.ErrIO) {
		t.Fatalf("err = %v, want ErrIO", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
}

func TestLoad_NoFile(t *testing.T) {
	setupCommandTest(t)

	if stdout, _ := mustRun(t, "", "load"); stdout != "" {
		t.Errorf("load without a file = %q, want empty", stdout)
	}
}

func TestLoad_Stats(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"multibyte counted once", "héllo", "5 characters\n"},
		{"single character", "x", "1 character\n"},
		{"empty note", "", "0 characters\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCommandTest(t)

			mustRun(t, "", "save", "n.txt", tt.content)
			if stdout, _ := mustRun(t, "", "load", "--stats", "n.txt"); stdout != tt.want {
				t.Errorf("load --stats = %q, want %q", stdout, tt.want)
			}
		})
	}
}
