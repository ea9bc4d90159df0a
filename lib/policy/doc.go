// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package policy evaluates dependency license metadata against the
// strong-copyleft policy and collects violations.
//
// The evaluation core lives in lib/spdx; this package is the driver:
// it loads dependency metadata (from a cargo-metadata invocation or a
// pre-captured metadata file), runs each dependency's license
// expression through the evaluator, and turns failures into
// violation lines suitable for a CI report.
//
// Three conditions violate the policy:
//
//   - the dependency declares no license expression at all
//   - the expression cannot be parsed
//   - the expression requires strong-copyleft terms
//
// A parse failure is a violation, never a silent pass: defaulting an
// unreadable expression to "permissive" would defeat the gate.
// Dependencies are evaluated independently; one bad expression never
// aborts the rest of the batch.
package policy
