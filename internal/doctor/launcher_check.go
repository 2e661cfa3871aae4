package doctor

import (
	"fmt"
	"os/exec"
	"strings"
)

// Program is an external command minnote launches.
type Program struct {
	// Role names what the program is used for, e.g. "file manager".
	Role string
	// Command is the configured command line; its first field is looked up.
	Command string
}

// LauncherCheck verifies that the external programs minnote starts exist.
type LauncherCheck struct {
	programs []Program
	lookPath func(string) (string, error)
}

var _ Check = (*LauncherCheck)(nil)

// NewLauncherCheck creates a check of the given programs.
func NewLauncherCheck(programs ...Program) *LauncherCheck {
	return &LauncherCheck{programs: programs, lookPath: exec.LookPath}
}

// Name returns the unique identifier for this check.
func (c *LauncherCheck) Name() string {
	return "launcher"
}

// Category returns the grouping for this check.
func (c *LauncherCheck) Category() string {
	return "launcher"
}

// Run looks each program up on PATH.
func (c *LauncherCheck) Run() *CheckResult {
	found := make(map[string]any)
	var missing []string

	for _, p := range c.programs {
		fields := strings.Fields(p.Command)
		if len(fields) == 0 {
			missing = append(missing, p.Role+" (no command configured)")
			continue
		}
		resolved, err := c.lookPath(fields[0])
		if err != nil {
			missing = append(missing, fmt.Sprintf("%s %q", p.Role, fields[0]))
			continue
		}
		found[p.Role] = resolved
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"found": found},
	}

	if len(missing) > 0 {
		result.Status = SeverityWarning
		result.Message = "not found on PATH: " + strings.Join(missing, ", ")
		result.FixHint = "install the program or set it with: minnote config set file_manager|editor <command>"
		result.Details["missing"] = missing
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d launcher(s) available", len(found))
	return result
}
