// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "checkmate",
		Subcommands: []*Command{
			{
				Name: "license",
				Run: func(args []string) error {
					called = "license"
					return nil
				},
			},
			{
				Name: "docs",
				Run: func(args []string) error {
					called = "docs"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"docs"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "docs" {
		t.Errorf("dispatched to %q, want %q", called, "docs")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var configPath string
	var positional string

	command := &Command{
		Name: "docs",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("docs", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				positional = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--config", "ci/checkmate.yaml", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if configPath != "ci/checkmate.yaml" {
		t.Errorf("configPath = %q, want ci/checkmate.yaml", configPath)
	}
	if positional != "extra" {
		t.Errorf("positional = %q, want extra", positional)
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "checkmate",
		Subcommands: []*Command{
			{Name: "license", Run: func(args []string) error { return nil }},
			{Name: "scan", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"licence"})
	if err == nil {
		t.Fatal("expected error for unknown command, got nil")
	}
	if !strings.Contains(err.Error(), `did you mean "license"`) {
		t.Errorf("error = %q, want a license suggestion", err.Error())
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "license",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("license", pflag.ContinueOnError)
			flagSet.Bool("locked", false, "require up-to-date lockfile")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--lockd"})
	if err == nil {
		t.Fatal("expected error for unknown flag, got nil")
	}
	if !strings.Contains(err.Error(), "--locked") {
		t.Errorf("error = %q, want a --locked suggestion", err.Error())
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "checkmate",
		Subcommands: []*Command{
			{Name: "license", Run: func(args []string) error { return nil }},
		},
	}

	if err := root.Execute(nil); err == nil {
		t.Fatal("expected error with no subcommand, got nil")
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{
		Name:    "checkmate",
		Summary: "CI policy checks",
		Subcommands: []*Command{
			{Name: "license", Summary: "Check dependency licenses"},
		},
		Examples: []Example{
			{Description: "Run the license gate", Command: "checkmate license"},
		},
	}

	var out strings.Builder
	root.PrintHelp(&out)

	text := out.String()
	for _, want := range []string{"license", "Check dependency licenses", "checkmate license", "Usage:"} {
		if !strings.Contains(text, want) {
			t.Errorf("help missing %q:\n%s", want, text)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"scan", "", 4},
		{"scan", "scan", 0},
		{"licence", "license", 1},
		{"dcos", "docs", 2},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
