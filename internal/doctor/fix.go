package doctor

import (
	"fmt"
	"os"

	"github.com/thoreinstein/minnote/internal/errors"
	"github.com/thoreinstein/minnote/internal/paths"
)

// Fixer is an optional interface that checks can implement to support auto-remediation.
// Checks that implement Fixer can fix issues they detect when the --fix flag is used.
type Fixer interface {
	// CanFix returns true if this check has fixable issues.
	// Must be called after Run() to check if there are issues that can be fixed.
	CanFix() bool

	// Fix attempts to remediate the issues found by Run().
	// Must be called after Run().
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix operation.
type FixResult struct {
	// Path is the file or directory that was targeted for fixing.
	Path string `json:"path"`

	// Fixed indicates whether the fix was successfully applied.
	Fixed bool `json:"fixed"`

	// Description explains what was fixed or why it couldn't be fixed.
	Description string `json:"description"`

	// Error contains the error if the fix failed.
	Error error `json:"-"`
}

// Issue kinds a pathIssue can describe.
const (
	issueFile             = "file"
	issueDirectory        = "directory"
	issueMissingDirectory = "missing-directory"
)

// pathIssue represents a single path problem found by a check.
type pathIssue struct {
	Path        string
	Type        string
	Problem     string
	Severity    Severity
	Permissions string // octal representation if available
	Fixable     bool
	FixHint     string
}

// PathFixer repairs path issues: it creates missing directories and
// tightens world-writable permissions. Checks embed it.
type PathFixer struct {
	issues []pathIssue
}

// CanFix returns true if there are any fixable issues.
func (f *PathFixer) CanFix() bool {
	return f.CountFixable() > 0
}

// Fix attempts to fix all fixable issues, returning one FixResult each.
func (f *PathFixer) Fix() []FixResult {
	results := make([]FixResult, 0, f.CountFixable())
	for _, issue := range f.issues {
		if !issue.Fixable {
			continue
		}
		results = append(results, f.fixIssue(issue))
	}
	return results
}

// fixIssue attempts to fix a single issue.
func (f *PathFixer) fixIssue(issue pathIssue) FixResult {
	result := FixResult{
		Path: issue.Path,
	}

	switch issue.Type {
	case issueMissingDirectory:
		if err := paths.EnsureDir(issue.Path, paths.DefaultDirPerm); err != nil {
			result.Description = fmt.Sprintf("failed to create directory: %v", err)
			result.Error = errors.WrapIO(err, "creating "+issue.Path)
			return result
		}
		result.Fixed = true
		result.Description = "created directory"
		return result

	case issueFile, issueDirectory:
		targetPerm := os.FileMode(paths.DefaultFilePerm)
		if issue.Type == issueDirectory {
			targetPerm = paths.DefaultDirPerm
		}
		if err := os.Chmod(issue.Path, targetPerm); err != nil {
			result.Description = fmt.Sprintf("failed to chmod %04o: %v", targetPerm, err)
			result.Error = errors.Wrapf(err, "chmod %04o %s", targetPerm, issue.Path)
			return result
		}
		result.Fixed = true
		result.Description = fmt.Sprintf("chmod %04o", targetPerm)
		return result

	default:
		result.Description = "unknown type: " + issue.Type
		result.Error = errors.Newf("cannot fix unknown type: %s", issue.Type)
		return result
	}
}

// setIssues stores the issues found by the check for later fixing.
func (f *PathFixer) setIssues(issues []pathIssue) {
	f.issues = issues
}

// CountFixable returns the number of fixable issues.
func (f *PathFixer) CountFixable() int {
	count := 0
	for _, issue := range f.issues {
		if issue.Fixable {
			count++
		}
	}
	return count
}

// formatPermissions returns a human-readable permission string (e.g., "0644").
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}
