// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package mdlint

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Config selects which docs are linted.
type Config struct {
	// Root is the directory walked for Markdown files.
	Root string `yaml:"root"`

	// ExcludeSegments are path segments (slash-separated, relative
	// form) whose files are skipped, e.g. "docs/archive/".
	ExcludeSegments []string `yaml:"exclude_segments"`

	// DuplicateGroups are groups of file paths (relative to Root)
	// that must stay byte-identical.
	DuplicateGroups [][]string `yaml:"duplicate_groups"`
}

// ListDocs returns the maintained Markdown files under the root in
// sorted order, skipping excluded path segments.
func ListDocs(cfg Config) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(cfg.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		relative, err := filepath.Rel(cfg.Root, path)
		if err != nil {
			return err
		}
		slashed := filepath.ToSlash(relative)
		for _, segment := range cfg.ExcludeSegments {
			if strings.Contains(slashed, segment) {
				return nil
			}
		}
		docs = append(docs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing docs under %s: %w", cfg.Root, err)
	}
	return docs, nil
}

// Run executes every docs check and returns the combined violations:
// per-file checks over each maintained doc, then duplicate-group
// synchronization.
func Run(cfg Config) ([]string, error) {
	docs, err := ListDocs(cfg)
	if err != nil {
		return nil, err
	}

	var violations []string
	for _, doc := range docs {
		fileViolations, err := CheckDocument(doc)
		if err != nil {
			return nil, err
		}
		violations = append(violations, fileViolations...)
	}

	duplicateViolations, err := CheckDuplicates(cfg.Root, cfg.DuplicateGroups)
	if err != nil {
		return nil, err
	}
	return append(violations, duplicateViolations...), nil
}
