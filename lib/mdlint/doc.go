// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package mdlint lints maintained Markdown documentation.
//
// Four checks run over every maintained doc (archived docs are
// excluded by path segment):
//
//   - local link validity: relative link and image targets must exist
//     on disk, resolved against the containing file's directory
//   - heading hierarchy: heading levels may not jump by more than one
//     (an H2 followed by an H4 is a violation)
//   - English-only policy: Han characters are not allowed in
//     maintained docs
//   - duplicate-doc sync: configured groups of files that must stay
//     byte-identical are compared by content hash
//
// Links and headings are read from the goldmark AST, so code fences
// and inline code spans never produce false positives.
package mdlint
