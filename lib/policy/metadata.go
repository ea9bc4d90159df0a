// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/tidwall/jsonc"
)

// metadataDocument mirrors the subset of cargo-metadata output this
// tool reads: the flat package list with name, version, and declared
// license expression.
type metadataDocument struct {
	Packages []struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		License string `json:"license"`
	} `json:"packages"`
}

// MetadataCommand builds the argv for querying dependency metadata
// from a Cargo manifest. With locked set, the command refuses to run
// unless Cargo.lock is present and up to date.
func MetadataCommand(manifestPath string, locked bool) []string {
	argv := []string{
		"cargo", "metadata",
		"--format-version", "1",
		"--all-features",
		"--manifest-path", manifestPath,
	}
	if locked {
		argv = append(argv, "--locked")
	}
	return argv
}

// QueryMetadata runs the metadata command and parses its stdout into
// the dependency list. Stderr is captured separately and folded into
// the error on failure.
func QueryMetadata(ctx context.Context, argv []string) ([]Dependency, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("metadata command is empty")
	}

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, argv[0], argv[1:]...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w (stderr: %s)",
			strings.Join(argv, " "), err, strings.TrimSpace(stderr.String()))
	}

	deps, err := parseMetadata(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("parsing output of %s: %w", strings.Join(argv, " "), err)
	}
	return deps, nil
}

// LoadMetadataFile reads a pre-captured metadata document from disk.
// The file may be plain JSON (as emitted by cargo metadata) or JSONC
// with // comments and trailing commas, which is convenient for
// hand-written CI fixtures.
func LoadMetadataFile(path string) ([]Dependency, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	deps, err := parseMetadata(jsonc.ToJSON(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return deps, nil
}

func parseMetadata(data []byte) ([]Dependency, error) {
	var document metadataDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}

	deps := make([]Dependency, 0, len(document.Packages))
	for _, pkg := range document.Packages {
		deps = append(deps, Dependency{
			Name:    pkg.Name,
			Version: pkg.Version,
			License: pkg.License,
		})
	}
	return deps, nil
}
