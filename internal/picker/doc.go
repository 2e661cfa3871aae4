// Package picker adapts callback-style selection dialogs to blocking calls.
//
// A Dialog reports its outcome exactly once through a Completion. Await
// waits on that completion without a timeout and translates the outcome:
//
//   - a chosen path is returned as-is
//   - a dismissed dialog yields errors.ErrCancelled
//   - a completion abandoned without a result yields errors.ErrDialog
//
// Two terminal backends are provided: Finder, a fuzzy finder with a
// preview pane, and Prompt, a numbered list read from an io.Reader.
package picker
