// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package mdlint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
)

// CheckDuplicates verifies that every file in each group has
// identical content. Some docs are intentionally mirrored (a README
// section repeated in a component's own docs); when one copy is
// edited, the others must be updated in the same change. Content is
// compared by BLAKE3 digest.
func CheckDuplicates(root string, groups [][]string) ([]string, error) {
	var violations []string
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}

		digests := make(map[[32]byte][]string)
		for _, member := range group {
			path := filepath.Join(root, filepath.FromSlash(member))
			digest, err := hashFile(path)
			if err != nil {
				return nil, err
			}
			digests[digest] = append(digests[digest], member)
		}

		if len(digests) > 1 {
			violations = append(violations,
				fmt.Sprintf("duplicate docs out of sync: %s", strings.Join(group, ", ")))
		}
	}
	return violations, nil
}

func hashFile(path string) ([32]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return blake3.Sum256(data), nil
}
