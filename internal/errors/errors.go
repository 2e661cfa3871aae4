package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, dialogs, processes, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrConfiguration indicates a platform directory could not be determined.
	ErrConfiguration = crdb.New("configuration error")

	// ErrIO indicates a file or directory operation failed.
	ErrIO = crdb.New("i/o error")

	// ErrNotFound indicates the requested note was not found.
	ErrNotFound = crdb.New("not found")

	// ErrCancelled indicates the user dismissed a picker without choosing.
	ErrCancelled = crdb.New("cancelled")

	// ErrDialog indicates the picker failed independently of the user's choice.
	ErrDialog = crdb.New("dialog error")

	// ErrProcessSpawn indicates an external program could not be started.
	ErrProcessSpawn = crdb.New("process spawn error")

	// ErrInvalidPath indicates a caller-supplied path is empty or malformed.
	ErrInvalidPath = crdb.New("invalid path")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")
)

// New returns an error with the given message and a stack trace.
func New(msg string) error {
	return crdb.NewWithDepth(1, msg)
}

// Newf returns a formatted error with a stack trace.
func Newf(format string, args ...any) error {
	return crdb.NewWithDepthf(1, format, args...)
}

// Wrap annotates err with msg. It returns nil if err is nil.
func Wrap(err error, msg string) error {
	return crdb.WrapWithDepth(1, err, msg)
}

// Wrapf annotates err with a formatted message. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	return crdb.WrapWithDepthf(1, err, format, args...)
}

// Is reports whether any error in err's chain matches reference.
func Is(err, reference error) bool {
	return crdb.Is(err, reference)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return crdb.As(err, target)
}

// Mark returns err marked with sentinel, so that Is(result, sentinel) holds
// while the message and the original chain are preserved.
func Mark(err, sentinel error) error {
	if err == nil {
		return nil
	}
	return crdb.Mark(err, sentinel)
}

// WrapIO wraps err with msg and marks the result as ErrIO.
func WrapIO(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crdb.Mark(crdb.WrapWithDepth(1, err, msg), ErrIO)
}

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: minnote doctor",
	}
}

// FromError classifies err by the sentinel it carries and returns the
// matching ExitError. An err that already is an ExitError is returned as is.
// Unclassified errors map to ExitUser without a suggestion.
func FromError(err error) *ExitError {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr
	}

	switch {
	case crdb.Is(err, ErrNotFound):
		return NewUserError(err, "Save the note first: minnote save <file>")
	case crdb.Is(err, ErrCancelled):
		return NewUserError(err, "")
	case crdb.Is(err, ErrInvalidPath):
		return NewUserError(err, "Pass a path relative to the notes directory")
	case crdb.Is(err, ErrConfiguration), crdb.Is(err, ErrInvalidConfig):
		return NewConfigError(err)
	case crdb.Is(err, ErrProcessSpawn):
		return NewSystemError(err, "Set file_manager in the config to a program on your PATH")
	case crdb.Is(err, ErrDialog):
		return NewSystemError(err, "Run the picker from an interactive terminal")
	case crdb.Is(err, ErrIO):
		return NewSystemError(err, "Check permissions on the notes directory: minnote doctor")
	default:
		return NewExitError(err, ExitUser)
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
