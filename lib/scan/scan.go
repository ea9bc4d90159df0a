// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package scan checks production source trees for strong-copyleft
// license banners and enforces the linker-library allowlist on the
// module build config.
//
// This is the text-matching counterpart to lib/spdx: instead of
// evaluating declared license expressions, it greps the sources
// themselves for markers that indicate copyleft code was pasted in
// (SPDX tags, GNU license preambles). A single matching pattern per
// file is enough; the scan does not enumerate every occurrence.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// bannerPatterns are the forbidden license markers. Any one of them
// appearing in a production source file is a violation.
var bannerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)SPDX-License-Identifier:.*\b(GPL|AGPL|LGPL|SSPL)\b`),
	regexp.MustCompile(`(?i)GNU\s+(AFFERO\s+)?GENERAL\s+PUBLIC\s+LICENSE`),
	regexp.MustCompile(`(?i)GNU\s+LESSER\s+GENERAL\s+PUBLIC\s+LICENSE`),
}

// linkLibPattern extracts explicit linker libraries (-lfoo) from a
// build config.
var linkLibPattern = regexp.MustCompile(`-l([A-Za-z0-9_+.-]+)`)

// Config selects what to scan and what is allowed.
type Config struct {
	// Roots are the directories whose sources are scanned for
	// forbidden banners.
	Roots []string `yaml:"roots"`

	// Extensions are the file extensions (with leading dot) treated
	// as production sources.
	Extensions []string `yaml:"extensions"`

	// BuildConfig is the path of the build config file whose linker
	// libraries are checked. Empty disables the check.
	BuildConfig string `yaml:"build_config"`

	// AllowedLinkLibs is the reviewed allowlist of linker library
	// names permitted in BuildConfig.
	AllowedLinkLibs []string `yaml:"allowed_link_libs"`
}

// ScanSources walks the configured roots and reports every source
// file containing a forbidden license marker. Files are visited in
// sorted order so violations are deterministic; the first matching
// pattern per file wins.
func ScanSources(cfg Config) ([]string, error) {
	var violations []string
	for _, root := range cfg.Roots {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || !slices.Contains(cfg.Extensions, filepath.Ext(path)) {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			for _, pattern := range bannerPatterns {
				if pattern.Match(data) {
					violations = append(violations,
						fmt.Sprintf("%s: matched forbidden license marker `%s`", path, pattern.String()))
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
	}
	return violations, nil
}

// CheckLinkLibs extracts the explicit linker libraries from the build
// config and reports any outside the allowlist. A missing BuildConfig
// path disables the check.
func CheckLinkLibs(cfg Config) ([]string, error) {
	if cfg.BuildConfig == "" {
		return nil, nil
	}

	data, err := os.ReadFile(cfg.BuildConfig)
	if err != nil {
		return nil, fmt.Errorf("reading build config %s: %w", cfg.BuildConfig, err)
	}

	seen := map[string]bool{}
	var libs []string
	for _, match := range linkLibPattern.FindAllStringSubmatch(string(data), -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			libs = append(libs, match[1])
		}
	}
	slices.Sort(libs)

	allowed := strings.Join(cfg.AllowedLinkLibs, ", ")
	var violations []string
	for _, lib := range libs {
		if !slices.Contains(cfg.AllowedLinkLibs, lib) {
			violations = append(violations,
				fmt.Sprintf("%s: unexpected linker library '-l%s' (allowed: %s)", cfg.BuildConfig, lib, allowed))
		}
	}
	return violations, nil
}
