package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h)

	now := time.Now()
	logger.Info("note saved", "path", "a/b.txt")

	output := buf.String()
	for _, want := range []string{"INFO", "note saved", "path=a/b.txt", now.Format(time.Kitchen)} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %q", want, output)
		}
	}
	if !strings.HasSuffix(output, "\n") {
		t.Errorf("expected trailing newline, got: %q", output)
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)
	logger := slog.New(h).With("root", "/srv/notes")

	logger.Info("message", "note", "todo.txt")

	output := buf.String()
	if !strings.Contains(output, "root=/srv/notes") {
		t.Errorf("expected common attribute in output, got: %q", output)
	}
	if !strings.Contains(output, "note=todo.txt") {
		t.Errorf("expected local attribute in output, got: %q", output)
	}
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("picker")

	logger.Info("done", "kind", "file", slog.Group("result", "cancelled", true))

	output := buf.String()
	if !strings.Contains(output, "picker.kind=file") {
		t.Errorf("expected grouped key, got: %q", output)
	}
	if !strings.Contains(output, "picker.result.cancelled=true") {
		t.Errorf("expected nested group key, got: %q", output)
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := t.Context()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("expected Warn level to be enabled")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
}

func TestHandler_TraceLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(t.Context(), LevelTrace, "resolving")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE label, got: %q", buf.String())
	}
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	if err := h.Handle(t.Context(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "INFO") {
		t.Errorf("expected output to start with the level, got: %q", buf.String())
	}
}

func TestHandler_ElidesNoteContent(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"text", FormatText},
		{"json", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: slog.LevelInfo, Format: tt.format, Output: &buf})

			logger.Info("saving", ContentKey, "my secret diary", "path", "diary.txt")

			output := buf.String()
			if strings.Contains(output, "secret diary") {
				t.Errorf("note content leaked into log: %q", output)
			}
			if !strings.Contains(output, "15 bytes") {
				t.Errorf("expected content size placeholder, got: %q", output)
			}
			if !strings.Contains(output, "diary.txt") {
				t.Errorf("other attributes should be kept, got: %q", output)
			}
		})
	}
}
