// SPDX-License-Identifier: MIT

// Package report evaluates a list of named invariants of a polynomial and
// its number field, and renders them as an ordered mapping.
//
// Polynomial targets (discriminant, resultant) accept any nonzero rational
// polynomial. Field targets need a monic irreducible integral polynomial
// and share one maximal order computation per call:
//
//	rep, err := report.Compute(ctx, poly.FromInt64(5, 0, 1),
//		[]string{"field_discriminant", "class_group"})
//	out, _ := rep.YAML()
//
// Values are exact decimal or symbolic strings; the mapping keeps the
// order of the request.
package report
