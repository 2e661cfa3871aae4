package doctor

import (
	"fmt"
	"time"
)

// Check is the interface that diagnostic checks must implement.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Category returns the grouping for this check (e.g., "notes", "config").
	Category() string

	// Run executes the diagnostic check and returns its result.
	Run() *CheckResult
}

// Runner executes diagnostic checks and aggregates their results.
type Runner struct {
	checks []Check
}

// NewRunner creates a new diagnostic runner.
func NewRunner() *Runner {
	return &Runner{
		checks: make([]Check, 0),
	}
}

// AddCheck registers a diagnostic check with the runner.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes all registered checks and returns a report.
// A check that panics is reported as an error instead of aborting the run.
func (r *Runner) Run() *DoctorReport {
	report := &DoctorReport{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := runCheck(check)
		report.Results = append(report.Results, result)
		report.Summary.add(result)
	}

	return report
}

func runCheck(check Check) (result *CheckResult) {
	defer func() {
		if p := recover(); p != nil {
			result = &CheckResult{
				Name:     check.Name(),
				Category: check.Category(),
				Status:   SeverityError,
				Message:  fmt.Sprintf("check crashed: %v", p),
			}
		}
	}()

	result = check.Run()
	if result == nil {
		result = &CheckResult{
			Name:     check.Name(),
			Category: check.Category(),
			Status:   SeverityError,
			Message:  "check returned no result",
		}
	}
	return result
}

// Fix applies the fixes of every check that implements Fixer and has
// fixable issues. Run must have been called first.
func (r *Runner) Fix() []FixResult {
	var results []FixResult
	for _, check := range r.checks {
		fixer, ok := check.(Fixer)
		if !ok || !fixer.CanFix() {
			continue
		}
		results = append(results, fixer.Fix()...)
	}
	return results
}

// Result returns the result of the named check, or nil.
func (r *DoctorReport) Result(name string) *CheckResult {
	for _, result := range r.Results {
		if result.Name == name {
			return result
		}
	}
	return nil
}

// DoctorReport aggregates all check results with timing and summary.
type DoctorReport struct {
	// Timestamp is when the diagnostic run started.
	Timestamp time.Time `json:"timestamp"`

	// Results contains the outcome of each check.
	Results []*CheckResult `json:"results"`

	// Summary contains counts by severity level.
	Summary Summary `json:"summary"`
}

// HasErrors returns true if any check has SeverityError.
func (r *DoctorReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check has SeverityWarning.
func (r *DoctorReport) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// ExitCode is 2 when any check failed, 1 when any warned, and 0 otherwise.
func (r *DoctorReport) ExitCode() int {
	switch {
	case r.HasErrors():
		return 2
	case r.HasWarnings():
		return 1
	default:
		return 0
	}
}
