package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/minnote/internal/config"
	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/paths"
	"github.com/thoreinstein/minnote/pkg/fileutil"
)

var (
	initYes    bool
	initForce  bool
	initFormat string
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Non-interactive mode, accept all defaults")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	initCmd.Flags().StringVar(&initFormat, "format", "yaml", "Config file format: yaml, toml, json")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a minnote configuration file",
	Long: `Create ~/.config/minnote/config.yaml with the default settings.

The notes directory is not part of this file; see 'minnote dir'.`,
	Example: `  # Create the config, asking first
  minnote init

  # Create a TOML config without asking
  minnote init --yes --format toml

  # Force overwrite existing configuration
  minnote init --force

  See Also: minnote config, minnote doctor`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	switch initFormat {
	case "yaml", "toml", "json":
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", initFormat), "Use yaml, toml or json")
	}

	out := cmd.OutOrStdout()
	configPath := strings.TrimSuffix(defaultConfigPath(), ".yaml") + "." + initFormat

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(out, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(out, "Use --force to overwrite")
		return nil
	}

	if !initYes {
		fmt.Fprintln(out, "This will create:")
		fmt.Fprintf(out, "  %s\n", configPath)
		fmt.Fprintln(out)

		if !confirm(cmd.InOrStdin(), out, "Proceed?") {
			fmt.Fprintln(out, "Aborted")
			return nil
		}
	}

	if err := paths.EnsureParent(configPath, paths.DefaultDirPerm); err != nil {
		return errors.WrapIO(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteConfig(configPath, config.Default()); err != nil {
		return errors.WrapIO(err, "writing config file")
	}

	fmt.Fprintf(out, "Created %s\n", configPath)
	return nil
}

// confirm prompts the user for a yes/no confirmation.
// Returns true only if the user enters "y" or "yes" (case-insensitive).
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
