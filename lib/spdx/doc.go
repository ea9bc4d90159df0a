// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

// Package spdx evaluates SPDX-style boolean license expressions
// against a strong-copyleft policy.
//
// The question answered is not "what licenses appear here" but "does
// satisfying this expression force the consumer to accept strong
// copyleft terms". That distinction inverts the boolean combination
// of AND and OR relative to naive intuition:
//
//   - "MIT OR GPL-3.0-only" does NOT require copyleft: the OR lets
//     the consumer pick MIT and never touch the GPL branch. An OR
//     expression requires copyleft only when every branch does.
//   - "MIT AND GPL-3.0-only" DOES require copyleft: satisfying an AND
//     means satisfying all parts, so one copyleft conjunct encumbers
//     the whole expression.
//
// Evaluation is a pure function from expression string to boolean.
// Malformed expressions return a typed error ([LexError] or
// [SyntaxError]) rather than a default value, so callers can never
// confuse "unparsable" with "permissive".
//
// Legacy slash-separated expressions ("MIT/Apache-2.0") are accepted
// and treated as OR; some registries still publish them.
package spdx
