// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package spdx

import "strings"

// strongCopyleftPrefixes are the license families whose terms this
// policy blocks. Prefix matching subsumes version suffixes like
// "-only" and "-or-later", so no normalization is needed.
var strongCopyleftPrefixes = []string{
	"GPL-",
	"AGPL-",
	"LGPL-",
	"SSPL-",
}

// IsStrongCopyleft reports whether the license identifier belongs to
// a strong-copyleft family (GPL, AGPL, LGPL, SSPL). The match is
// case-insensitive and consults no external license database.
func IsStrongCopyleft(identifier string) bool {
	normalized := strings.ToUpper(identifier)
	for _, prefix := range strongCopyleftPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}
	return false
}

// combineAnd merges the copyleft requirements of two AND conjuncts.
// Satisfying an AND expression means satisfying every part, so the
// whole requires strong copyleft if either part does.
func combineAnd(a, b bool) bool {
	return a || b
}

// combineOr merges the copyleft requirements of two OR disjuncts.
// An OR expression is satisfied by any one branch, so the consumer
// escapes copyleft whenever at least one branch is permissive; the
// whole requires strong copyleft only if every branch does.
func combineOr(a, b bool) bool {
	return a && b
}
