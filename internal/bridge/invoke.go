package bridge

import (
	"sort"

	"github.com/thoreinstein/minnote/internal/errors"
)

// Command names as registered with the host.
const (
	CmdSaveNote           = "save_note"
	CmdLoadNote           = "load_note"
	CmdPickFile           = "pick_file"
	CmdPickDirectory      = "pick_directory"
	CmdGetNotesDirectory  = "get_notes_directory"
	CmdOpenNotesDirectory = "open_notes_directory"
)

// Argument names accepted by Invoke.
const (
	ArgContent  = "content"
	ArgFilePath = "file_path"
)

// ErrUnknownCommand indicates Invoke was called with an unregistered name.
var ErrUnknownCommand = errors.New("unknown command")

// Response is the success-value-or-error envelope returned to the host.
type Response struct {
	OK    bool   `json:"ok"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func respond(value any, cerr *CommandError) Response {
	if cerr != nil {
		return Response{Error: cerr.Message}
	}
	return Response{OK: true, Value: value}
}

type handler func(b *Bridge, args map[string]string) Response

var registry = map[string]handler{
	CmdSaveNote: func(b *Bridge, args map[string]string) Response {
		return respond(nil, b.SaveNote(args[ArgContent], args[ArgFilePath]))
	},
	CmdLoadNote: func(b *Bridge, args map[string]string) Response {
		return respond(b.LoadNote(args[ArgFilePath]))
	},
	CmdPickFile: func(b *Bridge, _ map[string]string) Response {
		return respond(b.PickFile())
	},
	CmdPickDirectory: func(b *Bridge, _ map[string]string) Response {
		return respond(b.PickDirectory())
	},
	CmdGetNotesDirectory: func(b *Bridge, _ map[string]string) Response {
		return respond(b.GetNotesDirectory())
	},
	CmdOpenNotesDirectory: func(b *Bridge, _ map[string]string) Response {
		return respond(nil, b.OpenNotesDirectory())
	},
}

// Commands returns the registered command names, sorted.
func Commands() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke dispatches the named command. Missing arguments are treated as
// empty strings. An unknown name yields an error response.
func (b *Bridge) Invoke(name string, args map[string]string) Response {
	h, ok := registry[name]
	if !ok {
		err := errors.Wrapf(ErrUnknownCommand, "%q", name)
		return respond(nil, fail(err))
	}
	b.logger.Debug("invoking command", "command", name)
	return h(b, args)
}
