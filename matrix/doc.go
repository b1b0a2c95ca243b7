// SPDX-License-Identifier: MIT

// Package matrix provides exact dense matrices over Z, Q and F_p.
//
// The package provides:
//
//   - Int ([][]*big.Int) and Rat ([][]*big.Rat): row-major matrices whose
//     rows are vectors (lattice generators, basis elements).
//   - Shape validators shared by every kernel (ValidateRect, ValidateSquare).
//   - Products (Mul, VecMul), Transpose, Identity.
//   - Exact inversion and linear solving over Q (Gauss–Jordan, first
//     nonzero pivot; no tolerance is involved).
//   - Fraction-free determinants (Bareiss).
//   - Kernels and ranks over F_p for the modular linear algebra of order
//     and ideal computations.
//
// Conventions: vectors multiply from the LEFT (x·A); a "kernel" is the
// left kernel {u : u·A = 0}.
//
// Errors:
//
//	– ErrBadShape          ragged rows or negative dimensions.
//	– ErrDimensionMismatch incompatible operands.
//	– ErrNonSquare         a square matrix was required.
//	– ErrSingular          inversion or solving hit a singular matrix.
package matrix
