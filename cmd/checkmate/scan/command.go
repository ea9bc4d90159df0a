// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package scan implements "checkmate scan": grep production sources
// for forbidden strong-copyleft license banners and enforce the
// linker-library allowlist.
package scan

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/checkmate-tools/checkmate/cmd/checkmate/cli"
	"github.com/checkmate-tools/checkmate/cmd/checkmate/cli/checkup"
	"github.com/checkmate-tools/checkmate/lib/config"
	"github.com/checkmate-tools/checkmate/lib/scan"
)

var policyFooter = []string{
	"Policy: production sources must not include GPL/AGPL/LGPL/SSPL license markers,",
	"and explicit linker libraries must stay within the reviewed allowlist.",
}

type params struct {
	cli.JSONOutput
	configPath string
	roots      []string
}

// Command returns the "checkmate scan" command.
func Command() *cli.Command {
	var p params

	return &cli.Command{
		Name:    "scan",
		Summary: "Scan production sources for forbidden license banners",
		Description: `Walk the configured source roots and fail when any production file
contains a strong-copyleft license marker (an SPDX GPL/AGPL/LGPL/SSPL
tag or a GNU license preamble). Also checks that the module build
config links only allowlisted libraries.`,
		Usage: "checkmate scan [flags]",
		Examples: []cli.Example{
			{
				Description: "Scan the configured roots",
				Command:     "checkmate scan",
			},
			{
				Description: "Scan a specific tree",
				Command:     "checkmate scan --root components/nginx-module/src",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("scan", pflag.ContinueOnError)
			flagSet.StringVar(&p.configPath, "config", "", "path to the checkmate config file")
			flagSet.StringArrayVar(&p.roots, "root", nil, "source root to scan (repeatable, overrides config)")
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
	scanCfg := cfg.Scan
	if len(p.roots) > 0 {
		scanCfg.Roots = p.roots
	}

	bannerViolations, err := scan.ScanSources(scanCfg)
	if err != nil {
		return err
	}
	results := checkup.FromViolations("sources", "no forbidden license markers", bannerViolations)

	if scanCfg.BuildConfig == "" {
		results = append(results, checkup.Skip("link-libs", "no build config configured"))
	} else {
		linkViolations, err := scan.CheckLinkLibs(scanCfg)
		if err != nil {
			return err
		}
		results = append(results, checkup.FromViolations("link-libs", "linker libraries within allowlist", linkViolations)...)
	}

	if done, err := p.EmitJSON(checkup.JSONOutput{Checks: results, OK: checkup.OK(results)}); done {
		if err != nil {
			return err
		}
		if !checkup.OK(results) {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	return checkup.PrintChecklist(os.Stdout, results, policyFooter)
}
