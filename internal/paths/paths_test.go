package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/minnote/internal/errors"
)

func TestConfigHome(t *testing.T) {
	got := ConfigHome()
	if got == "" {
		t.Error("ConfigHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ConfigHome() = %q, want absolute path", got)
	}
}

func TestDataHome(t *testing.T) {
	got := DataHome()
	if got == "" {
		t.Error("DataHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("DataHome() = %q, want absolute path", got)
	}
}

func TestConfigDir(t *testing.T) {
	want := filepath.Join(ConfigHome(), "minnote")
	if got := ConfigDir(); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestDefaultNotesDir(t *testing.T) {
	tests := []struct {
		name     string
		dataHome string
		want     string
		wantErr  bool
	}{
		{
			name:     "linux style data home",
			dataHome: "/home/u/.local/share",
			want:     filepath.Join("/home/u/.local/share", "minnote"),
		},
		{
			name:     "empty data home",
			dataHome: "",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultNotesDir(tt.dataHome)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrConfiguration) {
					t.Fatalf("DefaultNotesDir() error = %v, want ErrConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DefaultNotesDir() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DefaultNotesDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultNotesDir_Deterministic(t *testing.T) {
	a, errA := DefaultNotesDir(DataHome())
	b, errB := DefaultNotesDir(DataHome())
	if errA != nil || errB != nil {
		t.Fatalf("DefaultNotesDir() errors = %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("DefaultNotesDir() not deterministic: %q != %q", a, b)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}

	// Idempotent
	if err := EnsureDir(dir, 0); err != nil {
		t.Errorf("second EnsureDir() error = %v", err)
	}
}

func TestEnsureParent(t *testing.T) {
	t.Run("creates missing ancestors", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "x", "y", "note.txt")
		if err := EnsureParent(target, 0); err != nil {
			t.Fatalf("EnsureParent() error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(root, "x", "y")); err != nil {
			t.Errorf("parent not created: %v", err)
		}
		if _, err := os.Stat(target); !os.IsNotExist(err) {
			t.Errorf("target itself should not be created, stat err = %v", err)
		}
	})

	t.Run("no parent component", func(t *testing.T) {
		if err := EnsureParent("note.txt", 0); err != nil {
			t.Errorf("EnsureParent(bare name) error = %v", err)
		}
	})

	t.Run("filesystem root", func(t *testing.T) {
		root := string(filepath.Separator)
		if err := EnsureParent(root, 0); err != nil {
			t.Errorf("EnsureParent(root) error = %v", err)
		}
	})
}
