// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package docs implements "checkmate docs": lint maintained Markdown
// documentation for broken links, heading jumps, non-English text,
// and out-of-sync duplicated docs.
package docs

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/checkmate-tools/checkmate/cmd/checkmate/cli"
	"github.com/checkmate-tools/checkmate/cmd/checkmate/cli/checkup"
	"github.com/checkmate-tools/checkmate/lib/config"
	"github.com/checkmate-tools/checkmate/lib/mdlint"
)

type params struct {
	cli.JSONOutput
	configPath string
	root       string
}

// Command returns the "checkmate docs" command.
func Command() *cli.Command {
	var p params

	return &cli.Command{
		Name:    "docs",
		Summary: "Lint maintained Markdown docs",
		Description: `Check every maintained Markdown file (archived docs excluded) for
broken local links, heading-level jumps, and non-English text, and
verify that intentionally duplicated docs are still byte-identical.`,
		Usage: "checkmate docs [flags]",
		Examples: []cli.Example{
			{
				Description: "Lint the repository docs",
				Command:     "checkmate docs",
			},
			{
				Description: "Machine-readable output",
				Command:     "checkmate docs --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("docs", pflag.ContinueOnError)
			flagSet.StringVar(&p.configPath, "config", "", "path to the checkmate config file")
			flagSet.StringVar(&p.root, "root", "", "directory to lint (overrides config)")
			flagSet.BoolVar(&p.OutputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return run(&p)
		},
	}
}

func run(p *params) error {
	cfg, err := config.Resolve(p.configPath)
	if err != nil {
		return err
	}
	docsCfg := cfg.Docs
	if p.root != "" {
		docsCfg.Root = p.root
	}

	violations, err := mdlint.Run(docsCfg)
	if err != nil {
		return err
	}
	results := checkup.FromViolations("docs", "all maintained docs lint clean", violations)

	if done, err := p.EmitJSON(checkup.JSONOutput{Checks: results, OK: checkup.OK(results)}); done {
		if err != nil {
			return err
		}
		if !checkup.OK(results) {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	return checkup.PrintChecklist(os.Stdout, results, nil)
}
