// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for checkmate.
//
// Configuration is loaded from a single YAML file specified by:
//   - CHECKMATE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This ensures
// deterministic, auditable policy configuration with no hidden
// overrides. Omitting the file entirely runs the shipped default
// policy; omitting a section keeps that section's defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/checkmate-tools/checkmate/lib/mdlint"
	"github.com/checkmate-tools/checkmate/lib/scan"
)

// EnvVar names the environment variable that points at the config file.
const EnvVar = "CHECKMATE_CONFIG"

// Config is the master configuration for checkmate.
type Config struct {
	// Metadata configures how dependency metadata is obtained for
	// the license check.
	Metadata MetadataConfig `yaml:"metadata"`

	// Scan configures the source banner scan.
	Scan scan.Config `yaml:"scan"`

	// Docs configures the Markdown docs lint.
	Docs mdlint.Config `yaml:"docs"`
}

// MetadataConfig configures dependency metadata collection.
type MetadataConfig struct {
	// ManifestPath is the Cargo.toml whose dependency graph is
	// evaluated.
	ManifestPath string `yaml:"manifest_path"`

	// Locked requires Cargo.lock to be present and up to date.
	Locked bool `yaml:"locked"`

	// File is a pre-captured metadata document (JSON or JSONC).
	// When set, no metadata command is run.
	File string `yaml:"file"`
}

// Default returns the shipped policy configuration.
func Default() *Config {
	return &Config{
		Metadata: MetadataConfig{
			ManifestPath: "components/rust-converter/Cargo.toml",
		},
		Scan: scan.Config{
			Roots:           []string{"components/nginx-module/src"},
			Extensions:      []string{".c", ".h"},
			BuildConfig:     "components/nginx-module/config",
			AllowedLinkLibs: []string{"pthread", "dl", "m"},
		},
		Docs: mdlint.Config{
			Root:            ".",
			ExcludeSegments: []string{"docs/archive/"},
		},
	}
}

// Load reads the config file named by the CHECKMATE_CONFIG environment
// variable. Returns an error if the variable is unset; use LoadFile
// when the path comes from a flag, or Default when neither is given.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set", EnvVar)
	}
	return LoadFile(path)
}

// LoadFile reads and parses the config file at path. Sections omitted
// from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve returns the effective configuration for a command: the file
// from flagPath when given, else the CHECKMATE_CONFIG file when set,
// else the shipped defaults.
func Resolve(flagPath string) (*Config, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if os.Getenv(EnvVar) != "" {
		return Load()
	}
	return Default(), nil
}
