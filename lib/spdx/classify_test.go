// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package spdx

import "testing"

func TestIsStrongCopyleft(t *testing.T) {
	tests := []struct {
		identifier string
		want       bool
	}{
		{"GPL-3.0-only", true},
		{"GPL-2.0-or-later", true},
		{"gpl-2.0", true},
		{"AGPL-3.0-only", true},
		{"LGPL-2.1-or-later", true},
		{"lgpl-2.1", true},
		{"SSPL-1.0", true},
		{"MIT", false},
		{"Apache-2.0", false},
		{"BSD-3-Clause", false},
		{"MPL-2.0", false},
		{"Unlicense", false},
		// No family prefix without the trailing dash.
		{"GPL", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsStrongCopyleft(tt.identifier); got != tt.want {
			t.Errorf("IsStrongCopyleft(%q) = %v, want %v", tt.identifier, got, tt.want)
		}
	}
}

func TestCombineAnd(t *testing.T) {
	// AND requires copyleft when either conjunct does.
	tests := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}
	for _, tt := range tests {
		if got := combineAnd(tt.a, tt.b); got != tt.want {
			t.Errorf("combineAnd(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCombineOr(t *testing.T) {
	// OR requires copyleft only when every disjunct does.
	tests := []struct {
		a, b, want bool
	}{
		{false, false, false},
		{true, false, false},
		{false, true, false},
		{true, true, true},
	}
	for _, tt := range tests {
		if got := combineOr(tt.a, tt.b); got != tt.want {
			t.Errorf("combineOr(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
