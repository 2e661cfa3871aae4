package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/minnote/internal/config"
	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/launcher"
	"github.com/thoreinstein/minnote/internal/paths"
	"github.com/thoreinstein/minnote/pkg/fileutil"
)

// configKeys are the settings config get/set accept.
var configKeys = []string{"version", "log_format", "text_extensions", "picker", "file_manager", "editor"}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage minnote configuration",
	Long: `Manage minnote configuration stored in ~/.config/minnote/config.yaml.

A config.yaml, config.toml or config.json in the current directory or in
$MINNOTE_CONFIG_DIR takes precedence. Environment variables such as
MINNOTE_PICKER override file values, and a .env file in the current
directory is loaded first.

Without a subcommand, lists all configuration values.

Keys: ` + strings.Join(configKeys, ", "),
	Example: `  # List all configuration
  minnote config

  # Use the numbered-list picker
  minnote config set picker prompt

  # Offer Org files in the file picker
  minnote config set text_extensions .txt,.md,.org

See Also: minnote init, minnote doctor`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key. List values are printed one per line.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

For text_extensions, use comma-separated values. The resulting
configuration is validated before anything is written.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	RunE:  runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in your editor",
	Long: `Open the configuration file in your editor.
If no configuration file exists, run 'minnote init' first.`,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	out := cmd.OutOrStdout()

	if !viper.IsSet(key) {
		printValue(out, "not set")
		return nil
	}

	switch v := viper.Get(key).(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	default:
		printValue(out, viper.GetString(key))
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if !slices.Contains(configKeys, key) {
		return errors.NewUserError(
			errors.Newf("unknown config key %q", key),
			"Valid keys: "+strings.Join(configKeys, ", "),
		)
	}

	switch key {
	case "version":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.NewUserError(errors.Newf("version must be a number, got %q", value), "")
		}
		viper.Set(key, n)
	case "text_extensions":
		viper.Set(key, parseList(value))
	default:
		viper.Set(key, value)
	}

	path, err := writeConfig()
	if err != nil {
		return err
	}

	status(cmd.ErrOrStderr(), "Set %s = %v in %s", key, viper.Get(key), path)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	cfg, err := currentConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if used := config.FileUsed(); used != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", used)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	configPath := config.FileUsed()
	if configPath == "" {
		configPath = defaultConfigPath()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return errors.NewUserError(
			errors.Newf("config file not found at %s", configPath),
			"Run: minnote init",
		)
	}

	hint(cmd.ErrOrStderr(), "Location: %s", configPath)
	editor := &launcher.Editor{
		Command: appConfig.Editor,
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	}
	return editor.Open(configPath)
}

// parseList splits a comma-separated string, dropping blank entries.
func parseList(s string) []string {
	var items []string
	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// defaultConfigPath is where a new config file is created.
func defaultConfigPath() string {
	return filepath.Join(paths.ConfigDir(), paths.ConfigFileName+".yaml")
}

// currentConfig returns the effective configuration held by Viper.
func currentConfig() (*config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}
	return &cfg, nil
}

// writeConfig validates the Viper state and writes it to the config file in
// use, or to the default location. It returns the path written.
func writeConfig() (string, error) {
	cfg, err := currentConfig()
	if err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", errors.NewUserError(
			errors.Mark(errors.Wrap(err, "invalid configuration"), errors.ErrInvalidConfig),
			"Run: minnote config set --help",
		)
	}

	configPath := config.FileUsed()
	if configPath == "" {
		configPath = defaultConfigPath()
	}

	if err := paths.EnsureParent(configPath, paths.DefaultDirPerm); err != nil {
		return "", errors.WrapIO(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteConfig(configPath, cfg); err != nil {
		return "", errors.WrapIO(err, "writing config file")
	}

	return configPath, nil
}
