package doctor

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/minnote/internal/config"
)

func resolverFor(t *testing.T, sidecar string, dataHome string) *config.Resolver {
	t.Helper()
	return &config.Resolver{
		SidecarPath: sidecar,
		DataHome:    func() string { return dataHome },
	}
}

func TestNotesRootCheck_Metadata(t *testing.T) {
	c := NewNotesRootCheck(config.NewResolver())
	if c.Name() != "notes-root" || c.Category() != "notes" {
		t.Errorf("Name()/Category() = %q/%q", c.Name(), c.Category())
	}
}

func TestNotesRootCheck_Run(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, dataHome string)
		dataHome    func(t *testing.T) string
		wantStatus  Severity
		wantFixable bool
	}{
		{
			name:        "missing root is creatable",
			setup:       func(*testing.T, string) {},
			wantStatus:  SeverityInfo,
			wantFixable: true,
		},
		{
			name: "existing writable root",
			setup: func(t *testing.T, dataHome string) {
				if err := os.MkdirAll(filepath.Join(dataHome, "minnote"), 0o755); err != nil {
					t.Fatal(err)
				}
			},
			wantStatus: SeverityPass,
		},
		{
			name: "root is a file",
			setup: func(t *testing.T, dataHome string) {
				if err := os.WriteFile(filepath.Join(dataHome, "minnote"), []byte("x"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantStatus: SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataHome := t.TempDir()
			tt.setup(t, dataHome)

			c := NewNotesRootCheck(resolverFor(t, filepath.Join(t.TempDir(), "absent"), dataHome))
			result := c.Run()

			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (%s)", result.Status, tt.wantStatus, result.Message)
			}
			if result.Fixable != tt.wantFixable || c.CanFix() != tt.wantFixable {
				t.Errorf("Fixable = %v, CanFix() = %v, want %v", result.Fixable, c.CanFix(), tt.wantFixable)
			}
			if result.Details["source"] != string(config.SourceDefault) {
				t.Errorf("Details[source] = %v, want default", result.Details["source"])
			}
		})
	}
}

func TestNotesRootCheck_FixCreatesRoot(t *testing.T) {
	dataHome := t.TempDir()
	c := NewNotesRootCheck(resolverFor(t, filepath.Join(t.TempDir(), "absent"), dataHome))

	c.Run()
	results := c.Fix()
	if len(results) != 1 || !results[0].Fixed {
		t.Fatalf("Fix() = %+v", results)
	}

	if got := c.Run(); got.Status != SeverityPass {
		t.Errorf("after fix Status = %v, want pass (%s)", got.Status, got.Message)
	}
}

func TestNotesRootCheck_WorldWritable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	root := t.TempDir()
	if err := os.Chmod(root, 0o777); err != nil {
		t.Fatal(err)
	}
	sidecar := filepath.Join(t.TempDir(), "notes_dir.txt")
	if err := os.WriteFile(sidecar, []byte(root), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewNotesRootCheck(resolverFor(t, sidecar, t.TempDir()))
	result := c.Run()
	if result.Status != SeverityWarning || !result.Fixable {
		t.Errorf("Status = %v, Fixable = %v, want fixable warning", result.Status, result.Fixable)
	}
	if result.Details["source"] != string(config.SourceSidecar) {
		t.Errorf("Details[source] = %v, want sidecar", result.Details["source"])
	}
	if !strings.Contains(result.FixHint, "chmod 755") {
		t.Errorf("FixHint = %q", result.FixHint)
	}
}

func TestNotesRootCheck_NoDataDir(t *testing.T) {
	c := NewNotesRootCheck(resolverFor(t, filepath.Join(t.TempDir(), "absent"), ""))
	if got := c.Run(); got.Status != SeverityError {
		t.Errorf("Status = %v, want error", got.Status)
	}
}

func TestSidecarCheck_Run(t *testing.T) {
	existing := t.TempDir()
	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		content    *string
		wantStatus Severity
	}{
		{"absent", nil, SeverityInfo},
		{"empty", ptr("  \n"), SeverityWarning},
		{"multi-line", ptr(existing + "\n" + existing), SeverityWarning},
		{"missing target", ptr(filepath.Join(existing, "nope")), SeverityWarning},
		{"target is a file", ptr(file), SeverityError},
		{"valid", ptr(existing + "\n"), SeverityPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "notes_dir.txt")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			result := NewSidecarCheck(path).Run()
			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (%s)", result.Status, tt.wantStatus, result.Message)
			}
		})
	}
}

func TestNewSidecarCheck_DefaultPath(t *testing.T) {
	if got := NewSidecarCheck("").path; got != "notes_dir.txt" {
		t.Errorf("path = %q, want notes_dir.txt", got)
	}
}

func ptr(s string) *string { return &s }
