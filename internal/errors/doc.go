// Package errors provides error handling conventions for the minnote CLI.
//
// This package defines sentinel errors for every failure class a notes
// operation can produce, an ExitError type for CLI exit code handling, and
// exit code constants following standard Unix conventions. It also
// re-exports the wrapping helpers of github.com/cockroachdb/errors so that
// callers only need a single errors import.
//
// # Sentinel Errors
//
// Operations mark the errors they return with one of the sentinels, so
// callers can classify a failure with [Is] regardless of how deeply it was
// wrapped:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // new note, nothing saved yet
//	}
//
// The sentinels are:
//
//   - ErrConfiguration: the platform data directory cannot be determined
//   - ErrIO: a file or directory could not be created, read or written
//   - ErrNotFound: the requested note does not exist
//   - ErrCancelled: the user dismissed a picker
//   - ErrDialog: the picker failed for a reason other than the user
//   - ErrProcessSpawn: the system file browser could not be started
//   - ErrInvalidPath: a caller-supplied path is empty or malformed
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, cancelled picker, etc.)
//   - ExitSystem (2): System-related error (I/O, dialog, process spawn, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. [FromError] derives one from a marked error:
//
//	exitErr := errors.FromError(err)
//	if exitErr.Suggestion != "" {
//	    fmt.Println("Suggestion:", exitErr.Suggestion)
//	}
//	os.Exit(exitErr.Code)
package errors
