package notes

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/logging"
	"github.com/thoreinstein/minnote/internal/paths"
)

// ChangeFunc receives a note's content after it changed on disk.
type ChangeFunc func(content string)

// Watch calls fn with the note's new content each time the file changes,
// until ctx is cancelled. The note's directory is watched rather than the
// file, so editors that save by rename are followed. Events are debounced
// and fn is not called when the content is unchanged.
func (s *Store) Watch(ctx context.Context, relPath string, fn ChangeFunc) error {
	path, err := s.NotePath(relPath)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := paths.EnsureDir(dir, paths.DefaultDirPerm); err != nil {
		return errors.WrapIO(err, "creating note directory")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapIO(err, "creating watcher")
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return errors.WrapIO(err, "watching note directory")
	}

	last, _ := readIfExists(path)
	s.logger.Info("watching note", "path", path)

	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(s.debounce)
			fire = timer.C
			return
		}
		timer.Reset(s.debounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			s.logger.Info("stopped watching note", "path", path)
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			s.logger.Log(ctx, logging.LevelTrace, "note event", "op", ev.Op.String())
			schedule()

		case <-fire:
			content, err := readIfExists(path)
			if err != nil {
				s.logger.Warn("reading changed note failed", "path", path, "error", err)
				continue
			}
			if content == last {
				continue
			}
			last = content
			s.logger.Debug("note changed", "path", path, "bytes", len(content))
			fn(content)

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", werr)
		}
	}
}

// readIfExists treats a missing note as empty, matching what a reader sees
// between an editor's remove and re-create.
func readIfExists(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}
