// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package license implements "checkmate license": evaluate dependency
// SPDX license expressions against the strong-copyleft policy.
package license

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/checkmate-tools/checkmate/cmd/checkmate/cli"
	"github.com/checkmate-tools/checkmate/cmd/checkmate/cli/checkup"
	"github.com/checkmate-tools/checkmate/lib/config"
	"github.com/checkmate-tools/checkmate/lib/policy"
)

// policyFooter is printed under a failing license report.
var policyFooter = []string{
	"Policy: dependencies must not require GPL/AGPL/LGPL/SSPL terms.",
	"Dual-licensed dependencies with a permissive option remain allowed.",
}

type params struct {
	cli.JSONOutput
	configPath   string
	metadataFile string
	manifestPath string
	locked       bool
}

// Command returns the "checkmate license" command.
func Command() *cli.Command {
	var p params

	return &cli.Command{
		Name:    "license",
		Summary: "Block dependencies whose licenses require strong copyleft",
		Description: `Evaluate every dependency's SPDX license expression and fail when an
expression requires strong-copyleft terms (GPL/AGPL/LGPL/SSPL).
Dual-licensed dependencies remain allowed as long as a permissive
option exists: "MIT OR LGPL-2.1-or-later" passes, "MIT AND
GPL-2.0-only" does not. A missing or unparsable expression is itself
a violation.

Metadata comes from "cargo metadata" by default; --metadata-file
evaluates a pre-captured metadata document instead.`,
		Usage: "checkmate license [flags]",
		Examples: []cli.Example{
			{
				Description: "Evaluate the configured manifest's dependency graph",
				Command:     "checkmate license --locked",
			},
			{
				Description: "Evaluate a captured metadata document",
				Command:     "checkmate license --metadata-file metadata.json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("license", pflag.ContinueOnError)
			flagSet.StringVar(&p.configPath, "config", "", "path to the checkmate config file")
			flagSet.StringVar(&p.metadataFile, "metadata-file", "", "evaluate a pre-captured metadata document instead of running the metadata command")
			flagSet.StringVar(&p.manifestPath, "manifest-path", "", "Cargo.toml to evaluate (overrides config)")
			flagSet.BoolVar(&p.locked, "locked", false, "require Cargo.lock to be present and up to date")
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

	deps, err := loadDependencies(p, cfg)
	if err != nil {
		return err
	}

	violations := policy.Evaluate(deps)

	var results []checkup.Result
	if len(violations) == 0 {
		results = []checkup.Result{checkup.Pass("licenses",
			fmt.Sprintf("%d dependencies evaluated, none require strong copyleft", len(deps)))}
	} else {
		for _, violation := range violations {
			results = append(results, checkup.Fail("licenses", violation.String()))
		}
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

// loadDependencies obtains the dependency list: from a metadata file
// when one is given (flag wins over config), otherwise by running the
// metadata command against the configured manifest.
func loadDependencies(p *params, cfg *config.Config) ([]policy.Dependency, error) {
	metadataFile := p.metadataFile
	if metadataFile == "" {
		metadataFile = cfg.Metadata.File
	}
	if metadataFile != "" {
		return policy.LoadMetadataFile(metadataFile)
	}

	manifestPath := p.manifestPath
	if manifestPath == "" {
		manifestPath = cfg.Metadata.ManifestPath
	}
	locked := p.locked || cfg.Metadata.Locked

	logger := cli.NewCommandLogger().With("command", "license")
	logger.Info("querying dependency metadata", "manifest", manifestPath, "locked", locked)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return policy.QueryMetadata(ctx, policy.MetadataCommand(manifestPath, locked))
}
