// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"
	"math/big"
)

// Inverse returns m⁻¹ over Q.
//
// Implementation:
//
//	Stage 1 (Validate): m must be square.
//	Stage 2 (Prepare): augment a working copy with the identity.
//	Stage 3 (Execute): Gauss–Jordan; the pivot is the first nonzero entry
//	        at or below the diagonal (exact arithmetic needs no partial pivoting).
//	Stage 4 (Finalize): return the right half.
//
// Errors: ErrNonSquare, ErrSingular.
// Complexity: O(n³) rational operations.
func Inverse(m Rat) (Rat, error) {
	// Stage 1: Validate input shape
	if err := ValidateRatSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := len(m)

	// Stage 2: Augment [m | I]
	a := make(Rat, n)
	for i := range m {
		a[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			a[i][j] = new(big.Rat).Set(m[i][j])
			a[i][n+j] = new(big.Rat)
		}
		a[i][n+i].SetInt64(1)
	}

	// Stage 3: Eliminate column by column
	if err := gaussJordan(a, n); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Stage 4: Extract the inverse
	inv := make(Rat, n)
	for i := range a {
		inv[i] = a[i][n:]
	}

	return inv, nil
}

// Solve returns the unique x with x·m = b for a square nonsingular m.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrSingular.
func Solve(m Rat, b []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateRatSquare(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := len(m)
	if len(b) != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rhs len %d vs %d: %w", len(b), n, ErrDimensionMismatch))
	}
	// x·m = b  ⇔  mᵀ·xᵀ = bᵀ; augment [mᵀ | b].
	a := make(Rat, n)
	for i := 0; i < n; i++ {
		a[i] = make([]*big.Rat, n+1)
		for j := 0; j < n; j++ {
			a[i][j] = new(big.Rat).Set(m[j][i])
		}
		a[i][n] = new(big.Rat).Set(b[i])
	}
	if err := gaussJordan(a, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]*big.Rat, n)
	for i := range a {
		x[i] = a[i][n]
	}

	return x, nil
}

// gaussJordan reduces the left n×n block of a to the identity in place.
func gaussJordan(a Rat, n int) error {
	t := new(big.Rat)
	for col := 0; col < n; col++ {
		piv := -1
		for r := col; r < n; r++ {
			if a[r][col].Sign() != 0 {
				piv = r
				break
			}
		}
		if piv < 0 {
			return fmt.Errorf("zero pivot at column %d: %w", col, ErrSingular)
		}
		a[col], a[piv] = a[piv], a[col]
		inv := new(big.Rat).Inv(a[col][col])
		for j := range a[col] {
			a[col][j].Mul(a[col][j], inv)
		}
		for r := 0; r < n; r++ {
			if r == col || a[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[r][col])
			for j := range a[r] {
				a[r][j].Sub(a[r][j], t.Mul(f, a[col][j]))
			}
		}
	}

	return nil
}

// Det returns det(m) using Bareiss' fraction-free elimination, so every
// intermediate is an integer minor.
//
// Errors: ErrNonSquare.
// Complexity: O(n³) big-integer operations.
func Det(m Int) (*big.Int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDet, err)
	}
	n := len(m)
	if n == 0 {
		return big.NewInt(1), nil
	}
	a := m.Clone()
	sign := 1
	prev := big.NewInt(1)
	t := new(big.Int)
	for k := 0; k < n-1; k++ {
		if a[k][k].Sign() == 0 {
			swap := -1
			for r := k + 1; r < n; r++ {
				if a[r][k].Sign() != 0 {
					swap = r
					break
				}
			}
			if swap < 0 {
				return new(big.Int), nil
			}
			a[k], a[swap] = a[swap], a[k]
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				// a[i][j] = (a[i][j]·a[k][k] − a[i][k]·a[k][j]) / prev
				a[i][j].Mul(a[i][j], a[k][k])
				a[i][j].Sub(a[i][j], t.Mul(a[i][k], a[k][j]))
				a[i][j].Quo(a[i][j], prev)
			}
		}
		prev = a[k][k]
	}
	d := new(big.Int).Set(a[n-1][n-1])
	if sign < 0 {
		d.Neg(d)
	}

	return d, nil
}
