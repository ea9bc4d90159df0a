// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package checkup

import (
	"fmt"
	"io"
	"strings"

	"github.com/checkmate-tools/checkmate/cmd/checkmate/cli"
)

// PrintChecklist prints check results as a human-readable checklist,
// followed by a summary line and the policy footer. Returns
// *cli.ExitError{1} when any check failed, nil otherwise; the caller
// returns it unchanged so main exits without a redundant error line.
func PrintChecklist(w io.Writer, results []Result, footer []string) error {
	failed := 0
	for _, result := range results {
		prefix := strings.ToUpper(string(result.Status))
		fmt.Fprintf(w, "[%-5s]  %-28s  %s\n", prefix, result.Name, result.Message)
		if result.Status == StatusFail {
			failed++
		}
	}

	fmt.Fprintln(w)

	if failed > 0 {
		fmt.Fprintf(w, "%d check(s) failed.\n", failed)
		for _, line := range footer {
			fmt.Fprintln(w, line)
		}
		return &cli.ExitError{Code: 1}
	}

	fmt.Fprintln(w, "All checks passed.")
	return nil
}
