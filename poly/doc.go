// SPDX-License-Identifier: MIT

// Package poly implements exact polynomial arithmetic over Q and Z.
//
// Overview:
//
//   - Poly is an immutable polynomial with *big.Rat coefficients; Int is the
//     integer-coefficient view used by the fraction-free algorithms.
//   - Coefficients are always given in ASCENDING order of powers:
//     New(c0, c1, …, cn) represents c0 + c1·x + … + cn·xⁿ.
//   - Resultant uses the sub-resultant pseudo-remainder sequence on
//     primitive integer polynomials, so no rational blow-up occurs;
//     Discriminant is derived from it.
//   - RealRoots counts real roots exactly with a Sturm sequence.
//   - IsIrreducible decides irreducibility over Q of a monic squarefree
//     integer polynomial (modular degree patterns, Hensel lifting and
//     factor recombination under the Mignotte bound).
//
// Complexity:
//
//	– Resultant:   O(n²) big-integer polynomial operations.
//	– RealRoots:   O(n²) rational polynomial divisions.
//	– IsIrreducible: exponential in the number of modular factors in the
//	  worst case, polynomial in practice.
//
// Errors:
//
//	– ErrDivisionByZero for division by the zero polynomial.
//	– nferr.ErrInvalidPolynomial when an operation needs degree ≥ 1,
//	  a monic or an integral input.
package poly
