package commands

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/thoreinstein/minnote/internal/bridge"
	"github.com/thoreinstein/minnote/internal/errors"
)

func decodeResponse(t *testing.T, stdout string) bridge.Response {
	t.Helper()
	var resp bridge.Response
	if err := json.Unmarshal([]byte(stdout), &resp); err != nil {
		t.Fatalf("decoding %q: %v", stdout, err)
	}
	return resp
}

func TestInvoke_List(t *testing.T) {
	setupCommandTest(t)

	stdout, _ := mustRun(t, "", "invoke", "--list")
	if got := strings.Fields(stdout); !slices.Equal(got, bridge.Commands()) {
		t.Errorf("invoke --list = %v, want %v", got, bridge.Commands())
	}
}

func TestInvoke_SaveThenLoad(t *testing.T) {
	setupCommandTest(t)

	stdout, _ := mustRun(t, "", "invoke", bridge.CmdSaveNote, "file_path=todo.txt", "content=buy milk")
	if resp := decodeResponse(t, stdout); !resp.OK || resp.Error != "" {
		t.Errorf("save_note = %+v, want ok", resp)
	}

	stdout, _ = mustRun(t, "", "invoke", bridge.CmdLoadNote, "file_path=todo.txt")
	if resp := decodeResponse(t, stdout); !resp.OK || resp.Value != "buy milk" {
		t.Errorf("load_note = %+v, want ok with %q", resp, "buy milk")
	}
}

func TestInvoke_ContentFromStdin(t *testing.T) {
	setupCommandTest(t)

	mustRun(t, "piped\n", "invoke", bridge.CmdSaveNote, "file_path=p.txt", "content=-")

	if stdout, _ := mustRun(t, "", "load", "p.txt"); stdout != "piped\n" {
		t.Errorf("load = %q, want %q", stdout, "piped\n")
	}
}

func TestInvoke_NotesDirectory(t *testing.T) {
	notesDir := setupCommandTest(t)

	stdout, _ := mustRun(t, "", "invoke", bridge.CmdGetNotesDirectory)
	if resp := decodeResponse(t, stdout); !resp.OK || resp.Value != notesDir {
		t.Errorf("get_notes_directory = %+v, want %q", resp, notesDir)
	}
}

func TestInvoke_FailureEnvelope(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantError string
	}{
		{
			name:      "missing note",
			args:      []string{bridge.CmdLoadNote, "file_path=missing.txt"},
			wantError: "missing.txt",
		},
		{
			name:      "unknown command",
			args:      []string{"delete_note"},
			wantError: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCommandTest(t)

			stdout, _, err := runCommand(t, "", append([]string{"invoke"}, tt.args...)...)

			var exitErr *errors.ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("err = %v, want an ExitError", err)
			}
			if exitErr.Err != nil {
				t.Errorf("ExitError.Err = %v, want nil: the envelope carries the failure", exitErr.Err)
			}
			if exitErr.Code != errors.ExitUser {
				t.Errorf("exit code = %d, want %d", exitErr.Code, errors.ExitUser)
			}

			resp := decodeResponse(t, stdout)
			if resp.OK || !strings.Contains(resp.Error, tt.wantError) {
				t.Errorf("response = %+v, want a failure mentioning %q", resp, tt.wantError)
			}
		})
	}
}

func TestInvoke_InvalidArgument(t *testing.T) {
	setupCommandTest(t)

	stdout, _, err := runCommand(t, "", "invoke", bridge.CmdLoadNote, "todo.txt")
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("err = %v, want an ExitError", err)
	}
	if !strings.Contains(exitErr.Suggestion, "key=value") {
		t.Errorf("suggestion = %q, want usage help", exitErr.Suggestion)
	}
}
