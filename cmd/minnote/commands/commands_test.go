package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/thoreinstein/minnote/internal/errors"
)

// setupCommandTest isolates a command run from the user's environment:
// the working directory, XDG homes and MINNOTE_* overrides all point at
// temp state. It returns the default notes directory.
func setupCommandTest(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	for _, key := range []string{"CONFIG_DIR", "DEBUG", "LOG_FORMAT", "PICKER", "TEXT_EXTENSIONS", "FILE_MANAGER", "EDITOR"} {
		t.Setenv("MINNOTE_"+key, "")
	}
	xdg.Reload()

	t.Chdir(t.TempDir())

	viper.Reset()
	resetCommandFlags()
	t.Cleanup(resetCommandFlags)

	return filepath.Join(home, "data", "minnote")
}

// resetCommandFlags restores flag variables that persist between runs.
func resetCommandFlags() {
	verbosity = 0
	quiet = false
	logFormat = ""
	logFile = ""
	loadStats = false
	dirJSON = false
	invokeList = false
	doctorJSON = false
	doctorQuiet = false
	doctorAll = false
	doctorFix = false
	initYes = false
	initForce = false
	initFormat = "yaml"
	genDocDir = ""
	genDocFormat = "md"
}

// runCommand executes the root command with args, feeding stdin and
// capturing both output streams.
func runCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	// Flag variables keep their values between Execute calls; start each
	// run from the defaults like a fresh process.
	resetCommandFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// mustRun is runCommand for invocations expected to succeed.
func mustRun(t *testing.T, stdin string, args ...string) (stdout, stderr string) {
	t.Helper()
	stdout, stderr, err := runCommand(t, stdin, args...)
	if err != nil {
		t.Fatalf("minnote %s: unexpected error: %v\nstderr: %s", strings.Join(args, " "), err, stderr)
	}
	return stdout, stderr
}

// readFile returns the content of path, failing the test if it is unreadable.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// writeFile creates path with content, failing the test on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// exitCode returns the exit code err maps to, or 0 for nil.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return errors.FromError(err).Code
}
