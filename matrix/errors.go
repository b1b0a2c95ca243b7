// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels wrapped with an operation tag; tests
// check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for ragged rows or negative dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a matrix has no inverse or a system has no unique solution.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opVecMul    = "VecMul"
	opInverse   = "Inverse"
	opSolve     = "Solve"
	opDet       = "Det"
	opKernelMod = "KernelModP"
	opRankMod   = "RankModP"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
