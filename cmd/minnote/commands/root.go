// Package commands implements the CLI commands for minnote.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/minnote/cmd"
	"github.com/thoreinstein/minnote/internal/config"
	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/logging"
)

// dotEnvFile is loaded into the environment before the config is read.
const dotEnvFile = ".env"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// appConfig is the loaded configuration, or the defaults when loading failed.
var appConfig = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from config, else text)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("minnote version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		configLoadErr = err
		return
	}

	config.Init()
	cfg, err := config.Load("")
	configLoadErr = err
	if err != nil {
		appConfig = config.Default()
		return
	}
	appConfig = cfg
}

var rootCmd = &cobra.Command{
	Use:   "minnote",
	Short: "Minimal note keeping from the terminal",
	Long: `minnote saves and loads plain text notes in a single notes directory.

The notes directory defaults to the platform data directory (for example
~/.local/share/minnote). A different directory chosen with 'minnote dir set'
or 'minnote pick dir' is remembered in notes_dir.txt in the current
working directory.`,
	Example: `  # Save a note, then read it back
  minnote save todo.txt "buy milk"
  minnote load todo.txt

  # Choose a note interactively
  minnote pick file

  # Show the notes directory
  minnote dir

  See Also: minnote doctor, minnote config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfigLoaded(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(config.EnvPrefix + "_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(logFormat)
	if format == "" {
		format = logging.Format(appConfig.LogFormat)
	}

	primary := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}).Handler()

	handlers := []slog.Handler{primary}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		// File output uses JSON format
		handlers = append(handlers, logging.New(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}).Handler())
	}

	logger := slog.New(logging.NewTee(handlers...))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfigLoaded reports a broken config file, except to the commands
// used to repair it.
func checkConfigLoaded(cmd *cobra.Command) error {
	if configLoadErr == nil {
		return nil
	}
	switch cmd.Name() {
	case "help", "version", "doctor", "init":
		return nil
	case "edit":
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}
	}
	return errors.NewConfigError(configLoadErr)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
