package picker

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/logging"
)

// maxPromptAttempts is how many invalid answers are tolerated before the
// prompt gives up.
const maxPromptAttempts = 3

// ErrInvalidSelection indicates an answer that names no listed entry.
var ErrInvalidSelection = errors.New("invalid selection")

// Prompt is a line-oriented Dialog: it prints a numbered list and reads
// the answer. It works without a terminal, e.g. over a pipe.
type Prompt struct {
	Source Source
	reader *bufio.Reader
	writer io.Writer
	Logger *slog.Logger
}

// NewPrompt creates a Prompt that lists choices on w and reads answers
// from r.
func NewPrompt(src Source, r io.Reader, w io.Writer, logger *slog.Logger) *Prompt {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Prompt{
		Source: src,
		reader: bufio.NewReader(r),
		writer: w,
		Logger: logger,
	}
}

// OpenFile implements Dialog.
func (p *Prompt) OpenFile(filter Filter, c *Completion) {
	items, err := p.Source.Files(filter)
	if err != nil {
		p.Logger.Debug("listing files failed", "error", err)
		c.Abandon()
		return
	}
	p.choose("Notes:", items, c)
}

// OpenDirectory implements Dialog.
func (p *Prompt) OpenDirectory(c *Completion) {
	items, err := p.Source.Directories()
	if err != nil {
		p.Logger.Debug("listing directories failed", "error", err)
		c.Abandon()
		return
	}
	p.choose("Directories:", items, c)
}

// choose resolves c from the user's answer.
//
// Answers:
//   - empty: the first entry
//   - a number in range: that entry
//   - "q" or EOF (e.g. Ctrl+D): cancel
//   - anything else: asked again, up to maxPromptAttempts times
func (p *Prompt) choose(title string, items []string, c *Completion) {
	if len(items) == 0 {
		fmt.Fprintln(p.writer, "Nothing to choose from.")
		c.Fail(ErrNothingToPick)
		return
	}

	fmt.Fprintln(p.writer, title)
	for i, item := range items {
		fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, item)
	}

	for range maxPromptAttempts {
		idx, err := p.ask(len(items))
		switch {
		case err == nil:
			c.Resolve(Result{Path: items[idx]})
			return
		case errors.Is(err, errors.ErrCancelled):
			c.Resolve(Result{Cancelled: true})
			return
		case errors.Is(err, ErrInvalidSelection):
			fmt.Fprintf(p.writer, "%v\n", err)
		default:
			p.Logger.Debug("reading selection failed", "error", err)
			c.Abandon()
			return
		}
	}
	c.Abandon()
}

func (p *Prompt) ask(n int) (int, error) {
	fmt.Fprintf(p.writer, "Select [1], q to cancel: ")

	input, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(input) == "" {
			return 0, errors.ErrCancelled
		}
		if !errors.Is(err, io.EOF) {
			return 0, errors.Wrap(err, "reading selection")
		}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	if strings.EqualFold(input, "q") {
		return 0, errors.ErrCancelled
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > n {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, n)
	}
	return selection - 1, nil
}
