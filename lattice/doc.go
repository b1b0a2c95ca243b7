// SPDX-License-Identifier: MIT

// Package lattice is the normal-form engine for integer lattices: every
// lattice comparison in numfield reduces to comparing the canonical bases
// produced here.
//
// Overview:
//
//   - HNF: rows of an m×n integer matrix generate a lattice L; the output is
//     the unique basis with pivot (first nonzero) columns strictly
//     increasing, positive pivots, entries above each pivot in [0, pivot)
//     and no zero rows. Elimination uses extended-Euclid row pairs, so no
//     fraction ever appears.
//   - LowerHNF: the mirrored convention (pivot = last nonzero entry,
//     entries below a pivot reduced). A full-rank LowerHNF is lower
//     triangular; orders and ideals use it so that basis vector 0 spans
//     L ∩ Z·e₀.
//   - HNFMod / LowerHNFMod: same output when D·Zⁿ ⊆ L, with every
//     intermediate reduced modulo D.
//   - HNFWithTransform, Kernel: unimodular transform and left kernel.
//   - Smith: Smith Normal Form diagonal d₁ | d₂ | ….
//   - LLL: exact rational LLL reduction with respect to a Gram matrix.
//
// Complexity:
//
//	– HNF:   O(m·n·min(m,n)) big-integer row operations.
//	– Smith: O(k³) operations per pivot, on an HNF-reduced square input.
//	– LLL:   polynomial; exact rationals, intended for small dimensions.
//
// Errors:
//
//	– ErrBadShape    ragged input rows.
//	– ErrNotFullRank a routine needing a full-rank basis got less.
//	– ErrBadModulus  a non-positive modulus.
package lattice
