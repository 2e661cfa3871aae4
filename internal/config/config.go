// Package config provides configuration management for minnote using Viper,
// and resolution of the active notes directory.
package config

import (
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides (MINNOTE_LOG_FORMAT, ...).
const EnvPrefix = "MINNOTE"

// Picker backends.
const (
	PickerFinder = "finder"
	PickerPrompt = "prompt"
)

// Config represents the app configuration file.
// The notes directory is intentionally absent: it lives in the sidecar file.
type Config struct {
	Version        int      `mapstructure:"version" json:"version" yaml:"version" toml:"version"`
	LogFormat      string   `mapstructure:"log_format" json:"log_format" yaml:"log_format" toml:"log_format"`
	TextExtensions []string `mapstructure:"text_extensions" json:"text_extensions" yaml:"text_extensions" toml:"text_extensions"`
	Picker         string   `mapstructure:"picker" json:"picker" yaml:"picker" toml:"picker"`
	FileManager    string   `mapstructure:"file_manager" json:"file_manager,omitempty" yaml:"file_manager,omitempty" toml:"file_manager,omitempty"`
	Editor         string   `mapstructure:"editor" json:"editor,omitempty" yaml:"editor,omitempty" toml:"editor,omitempty"`
}

// DefaultTextExtensions restricts the file picker to plain text notes.
var DefaultTextExtensions = []string{".txt", ".md"}

var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9_-]+$`)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:        1,
		LogFormat:      "text",
		TextExtensions: append([]string(nil), DefaultTextExtensions...),
		Picker:         PickerFinder,
	}
}

// Init resets Viper and registers search paths, env overrides and defaults.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.ConfigFileName)

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("log_format", def.LogFormat)
	viper.SetDefault("text_extensions", def.TextExtensions)
	viper.SetDefault("picker", def.Picker)
	viper.SetDefault("file_manager", "")
	viper.SetDefault("editor", "")
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables already set are left untouched. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "loading %s", path)
	}
	return nil
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file: defaults apply
		case errors.As(err, &notFound), os.IsNotExist(err):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Mark(errors.Wrap(err, "reading config file"), errors.ErrInvalidConfig)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// FileUsed returns the config file Viper loaded, or "" when defaults are in use.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Validate checks a Config for validity.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Version, validation.Required, validation.In(1).Error("unsupported config version")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.Picker, validation.In(PickerFinder, PickerPrompt)),
		validation.Field(&c.TextExtensions,
			validation.Required,
			validation.Each(validation.Match(extensionPattern).Error("must look like .txt")),
		),
	)
}
