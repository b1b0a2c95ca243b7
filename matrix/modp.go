// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"
	"math/big"
)

// KernelModP returns a basis (rows, entries in [0, p)) of the left kernel
// {u ∈ F_pʳ : u·m ≡ 0 (mod p)} of an r×c integer matrix, p prime.
//
// Implementation:
//
//	Stage 1: reduce [m | I_r] mod p.
//	Stage 2: row-echelonize the left block; every row whose left block
//	         vanishes carries a kernel vector in its right block.
//
// Complexity: O(r²·(r+c)) modular operations.
func KernelModP(m Int, p *big.Int) (Int, error) {
	if err := ValidateRect(m); err != nil {
		return nil, matrixErrorf(opKernelMod, err)
	}
	r, c := m.Rows(), m.Cols()
	a := make(Int, r)
	for i := range m {
		a[i] = ZeroVec(c + r)
		for j := 0; j < c; j++ {
			a[i][j].Mod(m[i][j], p)
		}
		a[i][c+i].SetInt64(1)
	}
	rank := echelonModP(a, c, p)
	out := make(Int, 0, r-rank)
	for i := rank; i < r; i++ {
		out = append(out, a[i][c:])
	}

	return out, nil
}

// RankModP returns the rank of m over F_p.
func RankModP(m Int, p *big.Int) (int, error) {
	if err := ValidateRect(m); err != nil {
		return 0, matrixErrorf(opRankMod, fmt.Errorf("%w", err))
	}
	a := m.Clone()
	for _, row := range a {
		ModVec(row, p)
	}

	return echelonModP(a, m.Cols(), p), nil
}

// echelonModP brings the first cols columns of a into row echelon form mod p
// in place, applying the same operations to the remaining columns, and
// returns the rank. Rows [rank, len(a)) have zero left block.
func echelonModP(a Int, cols int, p *big.Int) int {
	rank := 0
	t := new(big.Int)
	for col := 0; col < cols && rank < len(a); col++ {
		piv := -1
		for r := rank; r < len(a); r++ {
			if a[r][col].Sign() != 0 {
				piv = r
				break
			}
		}
		if piv < 0 {
			continue
		}
		a[rank], a[piv] = a[piv], a[rank]
		inv := new(big.Int).ModInverse(a[rank][col], p)
		for j := range a[rank] {
			a[rank][j].Mul(a[rank][j], inv)
			a[rank][j].Mod(a[rank][j], p)
		}
		for r := 0; r < len(a); r++ {
			if r == rank || a[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Int).Set(a[r][col])
			for j := range a[r] {
				a[r][j].Sub(a[r][j], t.Mul(f, a[rank][j]))
				a[r][j].Mod(a[r][j], p)
			}
		}
		rank++
	}

	return rank
}

// SolveModP returns x with x·m ≡ b (mod p) for a square m invertible mod p.
func SolveModP(m Int, b []*big.Int, p *big.Int) ([]*big.Int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := len(m)
	if len(b) != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rhs len %d vs %d: %w", len(b), n, ErrDimensionMismatch))
	}
	a := make(Int, n)
	for i := 0; i < n; i++ {
		a[i] = ZeroVec(n + 1)
		for j := 0; j < n; j++ {
			a[i][j].Mod(m[j][i], p)
		}
		a[i][n].Mod(b[i], p)
	}
	if rank := echelonModP(a, n, p); rank < n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rank %d < %d mod %v: %w", rank, n, p, ErrSingular))
	}
	x := make([]*big.Int, n)
	for i := range a {
		x[i] = a[i][n]
	}

	return x, nil
}

// EchelonModP returns the reduced row echelon basis (pivots equal to 1,
// pivot columns cleared in every other row) of the row space of m over
// F_p, together with the pivot column of each returned row.
func EchelonModP(m Int, p *big.Int) (Int, []int, error) {
	if err := ValidateRect(m); err != nil {
		return nil, nil, matrixErrorf(opRankMod, err)
	}
	a := m.Clone()
	for _, row := range a {
		ModVec(row, p)
	}
	rank := echelonModP(a, m.Cols(), p)
	a = a[:rank]
	pivots := make([]int, rank)
	for i, row := range a {
		for j, v := range row {
			if v.Sign() != 0 {
				pivots[i] = j
				break
			}
		}
	}

	return a, pivots, nil
}
