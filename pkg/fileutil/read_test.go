package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/minnote/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		size    int64
		limit   int64
		wantErr bool
	}{
		{"small file", 100, 0, false},
		{"exact limit", MaxFileSize, 0, false},
		{"too large", MaxFileSize + 1, 0, true},
		{"custom limit ok", 16, 16, false},
		{"custom limit exceeded", 17, 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, tt.name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.Truncate(tt.size); err != nil {
				t.Fatal(err)
			}
			f.Close()

			data, err := ReadFileWithLimit(path, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFileWithLimit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrFileTooLarge) {
					t.Errorf("expected ErrFileTooLarge, got %v", err)
				}
				return
			}
			if int64(len(data)) != tt.size {
				t.Errorf("read %d bytes, want %d", len(data), tt.size)
			}
		})
	}
}

func TestReadFileWithLimit_Missing(t *testing.T) {
	_, err := ReadFileWithLimit(filepath.Join(t.TempDir(), "nope"), 0)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestReadHead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := ReadHead(path, 5)
	if err != nil {
		t.Fatalf("ReadHead() error = %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("ReadHead() = %q, want %q", got, "hello")
	}

	got, err = ReadHead(path, 100)
	if err != nil {
		t.Fatalf("ReadHead() error = %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("ReadHead() = %q, want full content", got)
	}
}
