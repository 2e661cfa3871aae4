package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/minnote/internal/errors"
)

func TestEdit_CreatesNote(t *testing.T) {
	notesDir := setupCommandTest(t)
	t.Setenv("MINNOTE_EDITOR", "true")

	mustRun(t, "", "edit", "drafts/new.txt")

	if _, err := os.Stat(filepath.Join(notesDir, "drafts", "new.txt")); err != nil {
		t.Errorf("note not created: %v", err)
	}
}

func TestEdit_Failures(t *testing.T) {
	tests := []struct {
		name      string
		editor    string
		wantSpawn bool
	}{
		{"editor exits non-zero", "false", false},
		{"editor not installed", "minnote-no-such-editor", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCommandTest(t)
			t.Setenv("MINNOTE_EDITOR", tt.editor)

			_, _, err := runCommand(t, "", "edit", "new.txt")
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, errors.ErrProcessSpawn); got != tt.wantSpawn {
				t.Errorf("errors.Is(err, ErrProcessSpawn) = %v, want %v (err: %v)", got, tt.wantSpawn, err)
			}
		})
	}
}
