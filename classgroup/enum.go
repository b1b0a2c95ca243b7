// SPDX-License-Identifier: MIT
package classgroup

import (
	"errors"
	"math"

	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
)

// enumLimit caps the nodes visited by one enumeration.
const enumLimit = 1 << 18

var errEnumLimit = errors.New("classgroup: enumeration limit reached")

// reduce returns a T2-reduced basis of the lattice spanned by the rows of h.
func (e *embedding) reduce(h matrix.Int) (matrix.Int, error) {
	b, _, err := lattice.LLL(h, e.gram)
	if err != nil {
		// rounded form not positive definite; any basis will do
		b, _, err = lattice.LLL(h, nil)
	}

	return b, err
}

// enumerate calls visit for every c ≠ 0, up to sign, with
// T2(Σ cᵢ·bᵢ) ≤ bound, passing c and v(Σ cᵢ·bᵢ). Both slices are reused
// between calls.
//
// Implementation: Fincke–Pohst. The Cholesky form of the Gram matrix
// writes T2 as Σ qᵢᵢ·(cᵢ + Σ_{j>i} qᵢⱼ·cⱼ)²; coordinates are fixed from
// the last one down, each within the interval its remaining budget allows.
//
// Errors: errEnumLimit after enumLimit nodes or for a bound too large to
// enumerate.
func (e *embedding) enumerate(b matrix.Int, bound float64, visit func(c []int64, v []float64) (bool, error)) error {
	if math.IsInf(bound, 0) || math.IsNaN(bound) {
		return errEnumLimit
	}
	m := len(b)
	rows := make([][]float64, m)
	for i := range b {
		rows[i] = e.vector(b[i])
	}
	q := make([][]float64, m)
	for i := range q {
		q[i] = make([]float64, m)
		for j := range q[i] {
			q[i][j] = dot(rows[i], rows[j])
		}
	}
	for i := 0; i < m; i++ {
		if !(q[i][i] > 0) {
			return nferr.Violation("T2 is not positive definite on %v", b)
		}
		for j := i + 1; j < m; j++ {
			q[j][i] = q[i][j]
			q[i][j] /= q[i][i]
		}
		for k := i + 1; k < m; k++ {
			for l := k; l < m; l++ {
				q[k][l] -= q[k][i] * q[i][l]
			}
		}
	}

	c := make([]int64, m)
	v := make([]float64, e.n)
	nodes := 0
	var walk func(i int, budget float64, zero bool) (bool, error)
	walk = func(i int, budget float64, zero bool) (bool, error) {
		center := 0.0
		for j := i + 1; j < m; j++ {
			center -= q[i][j] * float64(c[j])
		}
		width := math.Sqrt(budget / q[i][i])
		if width > 1<<40 {
			return false, errEnumLimit
		}
		lo := int64(math.Ceil(center - width - 1e-9))
		hi := int64(math.Floor(center + width + 1e-9))
		if zero && lo < 0 {
			lo = 0
		}
		for x := lo; x <= hi; x++ {
			if nodes++; nodes > enumLimit {
				return false, errEnumLimit
			}
			d := float64(x) - center
			rest := budget - q[i][i]*d*d
			if rest < -1e-9*bound {
				continue
			}
			c[i] = x
			if i > 0 {
				done, err := walk(i-1, max(rest, 0), zero && x == 0)
				if err != nil || done {
					return done, err
				}
				continue
			}
			if zero && x == 0 {
				continue
			}
			for t := range v {
				v[t] = 0
			}
			for k, ck := range c {
				if ck == 0 {
					continue
				}
				for t := range v {
					v[t] += float64(ck) * rows[k][t]
				}
			}
			if done, err := visit(c, v); err != nil || done {
				return done, err
			}
		}
		c[i] = 0

		return false, nil
	}
	_, err := walk(m-1, bound, true)

	return err
}
