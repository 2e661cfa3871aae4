package picker

import (
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/logging"
	"github.com/thoreinstein/minnote/pkg/fileutil"
)

// previewBytes is how much of a highlighted file the preview pane shows.
const previewBytes = 4096

// FindFunc presents labels and returns the chosen index.
// It returns fuzzyfinder.ErrAbort when the user dismisses the list.
type FindFunc func(labels []string, header string, preview func(i, w, h int) string) (int, error)

// Finder is a terminal Dialog backed by go-fuzzyfinder.
type Finder struct {
	Source Source

	// Interactive reports whether a terminal is attached.
	// Defaults to logging.IsInteractive.
	Interactive func() bool

	// Find runs the fuzzy finder. Defaults to fuzzyfinder.Find.
	Find FindFunc

	Logger *slog.Logger
}

// NewFinder returns a Finder listing candidates from src.
func NewFinder(src Source, logger *slog.Logger) *Finder {
	return &Finder{Source: src, Logger: logger}
}

// OpenFile implements Dialog.
func (f *Finder) OpenFile(filter Filter, c *Completion) {
	if !f.interactive() {
		f.logger().Debug("file picker needs a terminal")
		c.Abandon()
		return
	}

	items, err := f.Source.Files(filter)
	if err != nil {
		f.logger().Debug("listing files failed", "error", err)
		c.Abandon()
		return
	}

	header := "Select a note"
	if filter.Name != "" {
		header += " (" + filter.Name + ")"
	}
	f.run(items, header, previewFile(items), c)
}

// OpenDirectory implements Dialog.
func (f *Finder) OpenDirectory(c *Completion) {
	if !f.interactive() {
		f.logger().Debug("directory picker needs a terminal")
		c.Abandon()
		return
	}

	items, err := f.Source.Directories()
	if err != nil {
		f.logger().Debug("listing directories failed", "error", err)
		c.Abandon()
		return
	}
	f.run(items, "Select a notes directory", previewDir(items), c)
}

func (f *Finder) run(items []string, header string, preview func(i, w, h int) string, c *Completion) {
	if len(items) == 0 {
		c.Fail(ErrNothingToPick)
		return
	}

	idx, err := f.find()(items, header, preview)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			c.Resolve(Result{Cancelled: true})
			return
		}
		f.logger().Debug("fuzzy finder failed", "error", err)
		c.Abandon()
		return
	}
	if idx < 0 || idx >= len(items) {
		c.Abandon()
		return
	}
	c.Resolve(Result{Path: items[idx]})
}

func (f *Finder) interactive() bool {
	if f.Interactive == nil {
		return logging.IsInteractive()
	}
	return f.Interactive()
}

func (f *Finder) find() FindFunc {
	if f.Find == nil {
		return fuzzyFind
	}
	return f.Find
}

func (f *Finder) logger() *slog.Logger {
	if f.Logger == nil {
		return logging.NewDiscard()
	}
	return f.Logger
}

func fuzzyFind(labels []string, header string, preview func(i, w, h int) string) (int, error) {
	return fuzzyfinder.Find(
		labels,
		func(i int) string { return labels[i] },
		fuzzyfinder.WithHeader(header),
		fuzzyfinder.WithPreviewWindow(preview),
	)
}

func previewFile(items []string) func(i, w, h int) string {
	return func(i, w, h int) string {
		if i < 0 || i >= len(items) {
			return ""
		}
		data, err := fileutil.ReadHead(items[i], previewBytes)
		if err != nil {
			return "(unreadable: " + err.Error() + ")"
		}
		if !utf8.Valid(data) {
			return "(binary file)"
		}
		return clip(string(data), h)
	}
}

func previewDir(items []string) func(i, w, h int) string {
	return func(i, w, h int) string {
		if i < 0 || i >= len(items) {
			return ""
		}
		entries, err := readDirNames(items[i])
		if err != nil {
			return "(unreadable: " + err.Error() + ")"
		}
		if len(entries) == 0 {
			return "(empty)"
		}
		return clip(filepath.Base(items[i])+"/\n  "+strings.Join(entries, "\n  "), h)
	}
}

func clip(s string, lines int) string {
	if lines <= 0 {
		return s
	}
	parts := strings.SplitN(s, "\n", lines+1)
	if len(parts) > lines {
		parts = parts[:lines]
	}
	return strings.Join(parts, "\n")
}

