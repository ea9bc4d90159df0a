// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package checkup provides the shared result model and report
// printing for checkmate's policy checks. Each check (license, scan,
// docs) produces a list of [Result] values; the report is either a
// human-readable checklist or, with --json, a machine-readable
// [JSONOutput] document. Any failing result makes the command exit 1.
package checkup

// Status is the outcome of a single policy check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single policy check.
type Result struct {
	Name    string `json:"name"    desc:"policy check name"`
	Status  Status `json:"status"  desc:"check outcome: pass, fail, warn, skip"`
	Message string `json:"message" desc:"human-readable check result"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// Warn creates a warning check result. Warnings do not cause a
// non-zero exit.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result, used when a check's input is
// not configured (e.g., no build config for the linker check).
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// FromViolations converts a violation list into one result per
// violation, or a single passing result when the list is empty.
func FromViolations(name, passMessage string, violations []string) []Result {
	if len(violations) == 0 {
		return []Result{Pass(name, passMessage)}
	}
	results := make([]Result, 0, len(violations))
	for _, violation := range violations {
		results = append(results, Fail(name, violation))
	}
	return results
}

// JSONOutput is the JSON document emitted with --json.
type JSONOutput struct {
	Checks []Result `json:"checks" desc:"list of policy check results"`
	OK     bool     `json:"ok"     desc:"true if no check failed"`
}

// OK reports whether no result failed.
func OK(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return false
		}
	}
	return true
}
