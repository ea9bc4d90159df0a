// Copyright 2026 The Checkmate Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"

	"github.com/checkmate-tools/checkmate/lib/spdx"
)

// Dependency is one entry from the dependency metadata: a package
// name, its version, and its declared SPDX license expression. License
// may be empty when the upstream package declares none.
type Dependency struct {
	Name    string
	Version string
	License string
}

// Violation is one blocked dependency. Detail explains why: the
// offending expression, a parse diagnostic, or "missing SPDX license
// expression".
type Violation struct {
	Name    string `json:"name"    desc:"dependency name"`
	Version string `json:"version" desc:"dependency version"`
	Detail  string `json:"detail"  desc:"why the dependency is blocked"`
}

// String formats the violation as a single report line.
func (v Violation) String() string {
	return fmt.Sprintf("%s %s: %s", v.Name, v.Version, v.Detail)
}

// Evaluate checks every dependency against the strong-copyleft policy
// and returns the violations in input order. An empty result means
// the policy passed.
func Evaluate(deps []Dependency) []Violation {
	var violations []Violation
	for _, dep := range deps {
		if dep.License == "" {
			violations = append(violations, Violation{
				Name:    dep.Name,
				Version: dep.Version,
				Detail:  "missing SPDX license expression",
			})
			continue
		}

		required, err := spdx.RequiresStrongCopyleft(dep.License)
		if err != nil {
			violations = append(violations, Violation{
				Name:    dep.Name,
				Version: dep.Version,
				Detail:  fmt.Sprintf("unparsable license expression %q (%v)", dep.License, err),
			})
			continue
		}
		if required {
			violations = append(violations, Violation{
				Name:    dep.Name,
				Version: dep.Version,
				Detail:  dep.License,
			})
		}
	}
	return violations
}
