package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/minnote/internal/config"
	"github.com/thoreinstein/minnote/internal/doctor"
	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/launcher"
	"github.com/thoreinstein/minnote/internal/paths"
)

var (
	doctorJSON  bool
	doctorQuiet bool
	doctorAll   bool
	doctorFix   bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check including passed ones")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"create or repair the notes directory where possible")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration issues",
	Long: `Run diagnostic checks on the minnote setup.

Checks the notes_dir.txt sidecar, the resolved notes directory, the config
file syntax, and the external programs used to open files and folders.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --all       Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	for _, set := range []bool{doctorJSON, doctorQuiet, doctorAll} {
		if set {
			count++
		}
	}

	if count > 1 {
		return errors.NewUserError(
			errors.New("flags --json, --quiet, and --all are mutually exclusive"),
			"",
		)
	}

	return nil
}

// newDoctorRunner registers the checks for the current setup.
func newDoctorRunner(cmd *cobra.Command) *doctor.Runner {
	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewSidecarCheck(paths.SidecarFileName))
	runner.AddCheck(doctor.NewNotesRootCheck(newResolver(cmd)))
	runner.AddCheck(doctor.NewConfigSyntaxCheck(config.FileUsed))
	runner.AddCheck(doctor.NewLauncherCheck(
		doctor.Program{
			Role:    "file manager",
			Command: launcher.NewFileManager(appConfig.FileManager, nil).Program(),
		},
		doctor.Program{
			Role:    "editor",
			Command: launcher.NewEditor(appConfig.Editor).Program(),
		},
	))
	return runner
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	runner := newDoctorRunner(cmd)
	report := runner.Run()

	if doctorFix && report.Summary.Fixable > 0 {
		fixes := runner.Fix()
		if !doctorQuiet && !doctorJSON {
			outputFixResults(cmd.OutOrStdout(), fixes)
		}
		report = runner.Run()
	}

	if err := outputDoctorReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if code := report.ExitCode(); code != 0 {
		return errors.NewExitError(nil, code)
	}
	return nil
}

func outputFixResults(w io.Writer, fixes []doctor.FixResult) {
	for _, fix := range fixes {
		if fix.Fixed {
			fmt.Fprintf(w, "%s fixed: %s\n", successColor.Sprint("✓"), fix.Description)
			continue
		}
		fmt.Fprintf(w, "%s not fixed: %s", color.RedString("✗"), fix.Description)
		if fix.Error != nil {
			fmt.Fprintf(w, " (%v)", fix.Error)
		}
		fmt.Fprintln(w)
	}
	if len(fixes) > 0 {
		fmt.Fprintln(w)
	}
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		return outputDoctorJSON(w, report)
	}

	outputDoctorText(w, report)
	return nil
}

func outputDoctorJSON(w io.Writer, report *doctor.DoctorReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport) {
	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !doctorAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", hintColor.Sprint(result.FixHint))
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return successColor.Sprint("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
