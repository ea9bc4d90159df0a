// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete checkmate CLI command tree.
package commands

import (
	"fmt"

	"github.com/checkmate-tools/checkmate/cmd/checkmate/cli"
	docscmd "github.com/checkmate-tools/checkmate/cmd/checkmate/docs"
	licensecmd "github.com/checkmate-tools/checkmate/cmd/checkmate/license"
	scancmd "github.com/checkmate-tools/checkmate/cmd/checkmate/scan"
	"github.com/checkmate-tools/checkmate/lib/version"
)

// Root builds and returns the complete checkmate CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "checkmate",
		Description: `checkmate: CI policy checks.

Gate merges on license policy (no strong-copyleft dependency
requirements), clean production sources (no copyleft banners,
reviewed linker libraries), and healthy docs (no broken links,
consistent headings, synchronized duplicates).`,
		Subcommands: []*cli.Command{
			licensecmd.Command(),
			scancmd.Command(),
			docscmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("checkmate %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Check dependency licenses against the copyleft policy",
				Command:     "checkmate license --locked",
			},
			{
				Description: "Scan production sources for forbidden license banners",
				Command:     "checkmate scan",
			},
			{
				Description: "Lint the repository's Markdown docs",
				Command:     "checkmate docs --json",
			},
		},
	}
}
