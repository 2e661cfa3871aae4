package picker

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/thoreinstein/minnote/internal/errors"
)

// Filter restricts a file dialog to names with one of the extensions.
// An empty Extensions list matches every file.
type Filter struct {
	Name       string
	Extensions []string
}

// Match reports whether name passes the filter. Comparison is case-insensitive.
func (f Filter) Match(name string) bool {
	if len(f.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	for _, want := range f.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// Result is the outcome of a dialog the user interacted with.
type Result struct {
	Path      string
	Cancelled bool
}

// ErrNothingToPick indicates a dialog had no candidates to offer.
var ErrNothingToPick = errors.New("nothing to pick from")

// Dialog shows a selection dialog and reports the outcome on c.
// Implementations may return before the user decides; they must eventually
// call one of c.Resolve, c.Abandon or c.Fail.
type Dialog interface {
	OpenFile(filter Filter, c *Completion)
	OpenDirectory(c *Completion)
}

// Completion is a one-shot handle a Dialog resolves.
type Completion struct {
	ch   chan Result
	once sync.Once
	err  error
}

// NewCompletion returns an unresolved Completion.
func NewCompletion() *Completion {
	return &Completion{ch: make(chan Result, 1)}
}

// Resolve delivers r. Only the first call to Resolve or Abandon has effect.
func (c *Completion) Resolve(r Result) {
	c.once.Do(func() {
		c.ch <- r
		close(c.ch)
	})
}

// Abandon closes the completion without a result, which the waiting side
// reports as a dialog failure.
func (c *Completion) Abandon() {
	c.Fail(nil)
}

// Fail closes the completion without a result because of err. Wait
// reports err marked as a dialog failure.
func (c *Completion) Fail(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.ch)
	})
}

// Wait blocks until the completion is resolved or abandoned.
func (c *Completion) Wait() (string, error) {
	r, ok := <-c.ch
	switch {
	case !ok && c.err != nil:
		return "", errors.Mark(c.err, errors.ErrDialog)
	case !ok:
		return "", errors.Mark(errors.New("picker closed without a result"), errors.ErrDialog)
	case r.Cancelled:
		return "", errors.Mark(errors.New("selection cancelled"), errors.ErrCancelled)
	case r.Path == "":
		return "", errors.Mark(errors.New("picker returned an empty path"), errors.ErrDialog)
	}
	return r.Path, nil
}

// PickFile opens a file dialog and waits for the outcome.
func PickFile(d Dialog, filter Filter) (string, error) {
	c := NewCompletion()
	d.OpenFile(filter, c)
	return c.Wait()
}

// PickDirectory opens a directory dialog and waits for the outcome.
func PickDirectory(d Dialog) (string, error) {
	c := NewCompletion()
	d.OpenDirectory(c)
	return c.Wait()
}
