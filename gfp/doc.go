// SPDX-License-Identifier: MIT

// Package gfp implements polynomial arithmetic and factorization over the
// prime field F_p for an arbitrary-precision prime p.
//
// A Field value carries p; polynomials are Poly values (ascending
// coefficients in [0, p), no trailing zeros, nil is zero). All methods are
// pure and safe for concurrent use.
//
// Factorization pipeline (Factor):
//
//  1. Make the input monic.
//  2. Squarefree decomposition, including the p-th root step for
//     factors whose derivative vanishes.
//  3. Distinct-degree factorization of each squarefree part.
//  4. Equal-degree splitting (Cantor–Zassenhaus); for p = 2 the trace map
//     replaces the (pᵈ−1)/2 power.
//
// Randomness comes from a PCG generator with a fixed seed, so results are
// reproducible; factors are returned sorted by (degree, coefficients).
//
// Errors:
//
//	– ErrNotPrime       NewField received a composite or p < 2.
//	– ErrDivisionByZero division by the zero polynomial.
package gfp
