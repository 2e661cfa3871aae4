// Package doctor diagnoses a minnote installation.
//
// Each Check inspects one concern (the notes directory override, the
// notes directory itself, the app config file, the external launchers)
// and reports a CheckResult with a Severity. Checks that can repair what
// they find also implement Fixer. A Runner collects results into a
// DoctorReport whose ExitCode summarises the worst severity.
package doctor
