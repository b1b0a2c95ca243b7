// SPDX-License-Identifier: MIT
package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numfield/matrix"
)

// Smith returns the nonzero diagonal d₁ | d₂ | … | d_r (all positive) of the
// Smith Normal Form of m, r = rank m. Zⁿ / rowspan(m) ≅ ⊕ Z/dᵢ ⊕ Z^(n−r).
//
// Implementation:
//
//	Stage 1: pick the nonzero entry of least absolute value in the active
//	         block and move it to (t, t).
//	Stage 2: clear row t and column t by quotient steps; any nonzero
//	         remainder becomes a smaller pivot and Stage 1 repeats.
//	Stage 3: if some active entry is not divisible by the pivot, add its row
//	         to row t and repeat; otherwise the pivot is final.
//
// The pivot's absolute value strictly decreases on every repetition, so the
// loop terminates.
func Smith(m matrix.Int) ([]*big.Int, error) {
	if err := matrix.ValidateRect(m); err != nil {
		return nil, latticeErrorf(opSmith, fmt.Errorf("%v: %w", err, ErrBadShape))
	}
	a := m.Clone()
	rows, cols := a.Rows(), a.Cols()
	var diag []*big.Int
	q, r := new(big.Int), new(big.Int)
	for t := 0; t < rows && t < cols; t++ {
		for {
			// Stage 1: smallest pivot
			pi, pj := -1, -1
			for i := t; i < rows; i++ {
				for j := t; j < cols; j++ {
					if a[i][j].Sign() == 0 {
						continue
					}
					if pi < 0 || a[i][j].CmpAbs(a[pi][pj]) < 0 {
						pi, pj = i, j
					}
				}
			}
			if pi < 0 {
				return diag, nil
			}
			a[t], a[pi] = a[pi], a[t]
			for i := range a {
				a[i][t], a[i][pj] = a[i][pj], a[i][t]
			}

			// Stage 2: clear column and row
			clean := true
			p := a[t][t]
			for i := t + 1; i < rows; i++ {
				if a[i][t].Sign() == 0 {
					continue
				}
				q.QuoRem(a[i][t], p, r)
				matrix.AddScaledVec(a[i], new(big.Int).Neg(q), a[t])
				if a[i][t].Sign() != 0 {
					clean = false
				}
			}
			for j := t + 1; j < cols; j++ {
				if a[t][j].Sign() == 0 {
					continue
				}
				q.QuoRem(a[t][j], p, r)
				nq := new(big.Int).Neg(q)
				for i := range a {
					a[i][j].Add(a[i][j], new(big.Int).Mul(nq, a[i][t]))
				}
				if a[t][j].Sign() != 0 {
					clean = false
				}
			}
			if !clean {
				continue
			}

			// Stage 3: divisibility of the remaining block
			bad := -1
			for i := t + 1; i < rows && bad < 0; i++ {
				for j := t + 1; j < cols; j++ {
					if new(big.Int).Rem(a[i][j], p).Sign() != 0 {
						bad = i
						break
					}
				}
			}
			if bad < 0 {
				break
			}
			matrix.AddScaledVec(a[t], big.NewInt(1), a[bad])
		}
		diag = append(diag, new(big.Int).Abs(a[t][t]))
	}

	return diag, nil
}
