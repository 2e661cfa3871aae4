package doctor

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/thoreinstein/minnote/internal/config"
	"github.com/thoreinstein/minnote/internal/paths"
)

// NotesRootCheck verifies that the active notes directory is usable.
type NotesRootCheck struct {
	PathFixer
	resolve func() (config.Root, error)
}

var (
	_ Check = (*NotesRootCheck)(nil)
	_ Fixer = (*NotesRootCheck)(nil)
)

// NewNotesRootCheck creates a check over the directory r resolves.
func NewNotesRootCheck(r *config.Resolver) *NotesRootCheck {
	return &NotesRootCheck{resolve: r.Resolve}
}

// Name returns the unique identifier for this check.
func (c *NotesRootCheck) Name() string {
	return "notes-root"
}

// Category returns the grouping for this check.
func (c *NotesRootCheck) Category() string {
	return "notes"
}

// Run executes the notes directory check.
func (c *NotesRootCheck) Run() *CheckResult {
	c.setIssues(nil)

	root, err := c.resolve()
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot determine notes directory: %v", err),
			FixHint:  "set XDG_DATA_HOME or run: minnote dir set <path>",
		}
	}

	issues := c.checkDirectory(root.Path)
	c.setIssues(issues)
	return c.buildResult(root, issues)
}

// checkDirectory validates the notes directory and its permissions.
func (c *NotesRootCheck) checkDirectory(path string) []pathIssue {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return []pathIssue{{
			Path:     path,
			Type:     issueMissingDirectory,
			Problem:  "directory does not exist yet; it is created on first save",
			Severity: SeverityInfo,
			Fixable:  true,
			FixHint:  "mkdir -p " + path,
		}}
	}
	if err != nil {
		return []pathIssue{{
			Path:     path,
			Type:     issueDirectory,
			Problem:  fmt.Sprintf("cannot stat directory: %v", err),
			Severity: SeverityError,
		}}
	}

	if !info.IsDir() {
		return []pathIssue{{
			Path:     path,
			Type:     issueDirectory,
			Problem:  "expected directory but found file",
			Severity: SeverityError,
			FixHint:  "run: minnote dir set <path>",
		}}
	}

	var issues []pathIssue
	if !isDirectoryWritable(path) {
		issues = append(issues, pathIssue{
			Path:        path,
			Type:        issueDirectory,
			Problem:     "directory is not writable; notes cannot be saved",
			Severity:    SeverityError,
			Permissions: formatPermissions(info.Mode()),
			FixHint:     "chmod u+w " + path,
		})
	}

	// Unix permissions do not apply on Windows
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o002 != 0 {
		issues = append(issues, pathIssue{
			Path:        path,
			Type:        issueDirectory,
			Problem:     "directory is world-writable",
			Severity:    SeverityWarning,
			Permissions: formatPermissions(info.Mode()),
			Fixable:     true,
			FixHint:     "chmod 755 " + path,
		})
	}

	return issues
}

// isDirectoryWritable tests if a directory is writable by creating a temp file.
func isDirectoryWritable(path string) bool {
	tmpFile, err := os.CreateTemp(path, ".minnote-doctor-*")
	if err != nil {
		return false
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	os.Remove(tmpPath)
	return true
}

// buildResult constructs the final CheckResult from accumulated issues.
func (c *NotesRootCheck) buildResult(root config.Root, issues []pathIssue) *CheckResult {
	details := map[string]any{
		"path":   root.Path,
		"source": string(root.Source),
	}

	if len(issues) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  fmt.Sprintf("notes directory %s is writable", root.Path),
			Details:  details,
		}
	}

	status := SeverityPass
	problems := make([]string, 0, len(issues))
	var hints []string
	fixable := false
	for _, issue := range issues {
		if issue.Severity > status {
			status = issue.Severity
		}
		problems = append(problems, issue.Problem)
		if issue.FixHint != "" {
			hints = append(hints, issue.FixHint)
		}
		if issue.Fixable {
			fixable = true
		}
		if issue.Permissions != "" {
			details["permissions"] = issue.Permissions
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   status,
		Message:  root.Path + ": " + strings.Join(problems, "; "),
		Details:  details,
		Fixable:  fixable,
		FixHint:  strings.Join(hints, "; "),
	}
}

// SidecarCheck inspects the notes directory override file.
type SidecarCheck struct {
	path string
}

var _ Check = (*SidecarCheck)(nil)

// NewSidecarCheck creates a check of the override file at path.
func NewSidecarCheck(path string) *SidecarCheck {
	if path == "" {
		path = paths.SidecarFileName
	}
	return &SidecarCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *SidecarCheck) Name() string {
	return "sidecar"
}

// Category returns the grouping for this check.
func (c *SidecarCheck) Category() string {
	return "notes"
}

// Run executes the override file check.
func (c *SidecarCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	data, err := os.ReadFile(c.path)
	switch {
	case os.IsNotExist(err):
		result.Status = SeverityInfo
		result.Message = "no notes directory override; the platform default is used"
		return result
	case err != nil:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("override file is unreadable and ignored: %v", err)
		result.FixHint = "check the permissions of " + c.path + " or run: minnote dir reset"
		return result
	}

	override := strings.TrimSpace(string(data))
	result.Details["override"] = override
	switch {
	case override == "":
		result.Status = SeverityWarning
		result.Message = "override file is empty and ignored"
		result.FixHint = "run: minnote dir reset"
		return result
	case strings.ContainsAny(override, "\r\n"):
		result.Status = SeverityWarning
		result.Message = "override file holds more than one line; all of it is used as the path"
		result.FixHint = "run: minnote dir set <path>"
		return result
	}

	info, err := os.Stat(override)
	switch {
	case os.IsNotExist(err):
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("override points at %s, which does not exist yet", override)
		result.FixHint = "run: minnote doctor --fix, or minnote dir set <path>"
	case err == nil && !info.IsDir():
		result.Status = SeverityError
		result.Message = fmt.Sprintf("override points at %s, which is not a directory", override)
		result.FixHint = "run: minnote dir set <path>"
	default:
		result.Status = SeverityPass
		result.Message = "notes directory override: " + override
	}
	return result
}
