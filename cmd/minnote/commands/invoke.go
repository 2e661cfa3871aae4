package commands

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/minnote/internal/bridge"
	"github.com/thoreinstein/minnote/internal/errors"
)

var invokeList bool

func init() {
	invokeCmd.Flags().BoolVar(&invokeList, "list", false, "list command names")
	rootCmd.AddCommand(invokeCmd)
}

var invokeCmd = &cobra.Command{
	Use:   "invoke <command> [key=value...]",
	Short: "Call a host command and print the JSON response",
	Long: `Call one of the commands a host UI uses and print its response as JSON:

  {"ok": true, "value": ...}    on success
  {"ok": false, "error": "..."} on failure

Arguments are given as key=value pairs. A value of "-" is read from
standard input. The exit code is 1 when the response is not ok.

Commands: ` + strings.Join(bridge.Commands(), ", "),
	Example: `  # Save and load through the host interface
  minnote invoke save_note file_path=todo.txt content="buy milk"
  minnote invoke load_note file_path=todo.txt

  # Content from a pipe
  cat draft.txt | minnote invoke save_note file_path=draft.txt content=-`,
	Args: func(cmd *cobra.Command, args []string) error {
		if invokeList {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: runInvoke,
}

func runInvoke(cmd *cobra.Command, args []string) error {
	if invokeList {
		for _, name := range bridge.Commands() {
			printValue(cmd.OutOrStdout(), name)
		}
		return nil
	}

	params, err := parseInvokeArgs(cmd, args[1:])
	if err != nil {
		return err
	}

	resp := newBridge(cmd).Invoke(args[0], params)

	enc := json.NewEncoder(cmd.OutOrStdout())
	if err := enc.Encode(resp); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}

	if !resp.OK {
		// The error is already in the envelope
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}

// parseInvokeArgs turns key=value pairs into command arguments.
func parseInvokeArgs(cmd *cobra.Command, pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.NewUserError(
				errors.Newf("invalid argument %q", pair),
				"Pass arguments as key=value, e.g. file_path=todo.txt",
			)
		}
		if value == "-" {
			in, err := readAll(cmd.InOrStdin())
			if err != nil {
				return nil, errors.WrapIO(err, "reading "+key+" from stdin")
			}
			value = in
		}
		params[key] = value
	}
	return params, nil
}
