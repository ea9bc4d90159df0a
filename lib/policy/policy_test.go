// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	deps := []Dependency{
		{Name: "serde", Version: "1.0.200", License: "MIT OR Apache-2.0"},
		{Name: "readline", Version: "8.2.0", License: "GPL-3.0-only"},
		{Name: "dual", Version: "0.3.1", License: "MIT OR LGPL-2.1-or-later"},
		{Name: "legacy", Version: "0.1.0", License: "MIT/Apache-2.0"},
		{Name: "mystery", Version: "2.0.0", License: ""},
		{Name: "broken", Version: "1.1.1", License: "MIT AND"},
		{Name: "encumbered", Version: "4.4.0", License: "MIT AND GPL-2.0-or-later"},
	}

	violations := Evaluate(deps)

	want := map[string]string{
		"readline":   "GPL-3.0-only",
		"mystery":    "missing SPDX license expression",
		"encumbered": "MIT AND GPL-2.0-or-later",
	}

	got := map[string]string{}
	for _, v := range violations {
		if v.Name == "broken" {
			// The detail embeds the parser diagnostic; assert on the
			// stable prefix only.
			if !strings.HasPrefix(v.Detail, `unparsable license expression "MIT AND"`) {
				t.Errorf("broken detail = %q, want unparsable-expression diagnostic", v.Detail)
			}
			continue
		}
		got[v.Name] = v.Detail
	}

	if len(violations) != len(want)+1 {
		t.Fatalf("got %d violations (%v), want %d", len(violations), violations, len(want)+1)
	}
	for name, detail := range want {
		if got[name] != detail {
			t.Errorf("violation for %s = %q, want %q", name, got[name], detail)
		}
	}
}

func TestEvaluateNoViolations(t *testing.T) {
	deps := []Dependency{
		{Name: "serde", Version: "1.0.200", License: "MIT OR Apache-2.0"},
		{Name: "libc", Version: "0.2.150", License: "MIT OR Apache-2.0"},
	}
	if violations := Evaluate(deps); len(violations) != 0 {
		t.Errorf("expected no violations, got %v", violations)
	}
}

func TestEvaluateIndependentFailures(t *testing.T) {
	// A malformed expression must not stop evaluation of the
	// dependencies after it.
	deps := []Dependency{
		{Name: "broken", Version: "1.0.0", License: "(((("},
		{Name: "readline", Version: "8.2.0", License: "GPL-3.0-only"},
	}
	violations := Evaluate(deps)
	if len(violations) != 2 {
		t.Fatalf("got %d violations (%v), want 2", len(violations), violations)
	}
	if violations[1].Name != "readline" {
		t.Errorf("second violation = %v, want readline", violations[1])
	}
}

func TestViolationString(t *testing.T) {
	v := Violation{Name: "readline", Version: "8.2.0", Detail: "GPL-3.0-only"}
	if got, want := v.String(), "readline 8.2.0: GPL-3.0-only"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
