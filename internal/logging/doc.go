// Package logging provides structured logging for the minnote CLI using slog.
//
// Text output goes through a TTY-aware colored handler; JSON output uses the
// standard library handler. Both replace the value of the [ContentKey]
// attribute with its size so note bodies never reach a log.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Use [ForTest] in tests and [NewDiscard] when output should be suppressed.
package logging
