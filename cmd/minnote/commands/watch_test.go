package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/minnote/internal/config"
	"github.com/thoreinstein/minnote/internal/notes"
)

// lockedBuffer is a bytes.Buffer safe for the watcher goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchNotes(t *testing.T) {
	dataHome := t.TempDir()
	store := notes.New(
		&config.Resolver{
			SidecarPath: filepath.Join(t.TempDir(), "notes_dir.txt"),
			DataHome:    func() string { return dataHome },
		},
		notes.WithWatchDebounce(10*time.Millisecond),
	)

	out := &lockedBuffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- watchNotes(ctx, cmd, store, []string{"a.txt", "b.txt"})
	}()

	notesDir := filepath.Join(dataHome, "minnote")
	// The watchers create the directory before they start listening.
	if !waitFor(2*time.Second, 10*time.Millisecond, func() bool {
		_, err := os.Stat(notesDir)
		return err == nil
	}) {
		t.Fatal("notes directory never created")
	}

	// Keep writing fresh content until a change is seen; the watcher may
	// not be listening yet on the first writes.
	n := 0
	if !waitFor(5*time.Second, 50*time.Millisecond, func() bool {
		n++
		_ = os.WriteFile(filepath.Join(notesDir, "b.txt"), []byte(fmt.Sprintf("v%d", n)), 0o644)
		return strings.Contains(out.String(), "==> b.txt <==\nv")
	}) {
		t.Errorf("change to b.txt never printed\nGot:\n%s", out.String())
	}
	if strings.Contains(out.String(), "a.txt") {
		t.Errorf("untouched a.txt printed\nGot:\n%s", out.String())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchNotes: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchNotes did not return after cancel")
	}
}

// waitFor polls cond until it holds or timeout passes.
func waitFor(timeout, tick time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if cond() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(tick)
	}
}
