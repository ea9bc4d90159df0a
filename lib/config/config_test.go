// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Metadata.ManifestPath != "components/rust-converter/Cargo.toml" {
		t.Errorf("manifest_path = %q, want the shipped default", cfg.Metadata.ManifestPath)
	}
	if len(cfg.Scan.AllowedLinkLibs) != 3 {
		t.Errorf("allowed_link_libs = %v, want pthread, dl, m", cfg.Scan.AllowedLinkLibs)
	}
	if cfg.Docs.Root != "." {
		t.Errorf("docs root = %q, want .", cfg.Docs.Root)
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "")
	os.Unsetenv(EnvVar)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when CHECKMATE_CONFIG not set, got nil")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checkmate.yaml")

	content := `
metadata:
  manifest_path: Cargo.toml
  locked: true
scan:
  roots:
    - src
  extensions:
    - .c
  allowed_link_libs:
    - pthread
docs:
  root: docs
  exclude_segments:
    - docs/archive/
  duplicate_groups:
    - [README.md, docs/readme-copy.md]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Metadata.ManifestPath != "Cargo.toml" {
		t.Errorf("manifest_path = %q, want Cargo.toml", cfg.Metadata.ManifestPath)
	}
	if !cfg.Metadata.Locked {
		t.Error("expected locked=true")
	}
	if len(cfg.Scan.Roots) != 1 || cfg.Scan.Roots[0] != "src" {
		t.Errorf("scan roots = %v, want [src]", cfg.Scan.Roots)
	}
	if len(cfg.Docs.DuplicateGroups) != 1 || len(cfg.Docs.DuplicateGroups[0]) != 2 {
		t.Errorf("duplicate_groups = %v, want one group of two", cfg.Docs.DuplicateGroups)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checkmate.yaml")

	if err := os.WriteFile(path, []byte("metadata:\n  locked: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.Metadata.Locked {
		t.Error("expected locked=true from file")
	}
	if cfg.Metadata.ManifestPath != "components/rust-converter/Cargo.toml" {
		t.Errorf("manifest_path = %q, want the default preserved", cfg.Metadata.ManifestPath)
	}
	if len(cfg.Scan.Extensions) != 2 {
		t.Errorf("extensions = %v, want defaults preserved", cfg.Scan.Extensions)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checkmate.yaml")
	if err := os.WriteFile(path, []byte("docs:\n  root: docs\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Flag path wins.
	cfg, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(flag): %v", err)
	}
	if cfg.Docs.Root != "docs" {
		t.Errorf("docs root = %q, want docs", cfg.Docs.Root)
	}

	// Env var when no flag.
	t.Setenv(EnvVar, path)
	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve(env): %v", err)
	}
	if cfg.Docs.Root != "docs" {
		t.Errorf("docs root = %q, want docs via env var", cfg.Docs.Root)
	}

	// Defaults when neither.
	os.Unsetenv(EnvVar)
	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve(defaults): %v", err)
	}
	if cfg.Docs.Root != "." {
		t.Errorf("docs root = %q, want default .", cfg.Docs.Root)
	}
}
