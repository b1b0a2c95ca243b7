// SPDX-License-Identifier: MIT
package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numfield/matrix"
)

// engine carries one HNF computation. u is nil unless the transform is tracked;
// mod is nil unless the modular variant runs.
type engine struct {
	a    matrix.Int
	u    matrix.Int
	cols int
	mod  *big.Int
}

// HNF returns the canonical Hermite Normal Form of the row lattice of m.
// Rank-deficient input yields fewer rows than columns; an empty input
// yields an empty result.
//
// Errors: ErrBadShape for ragged rows.
func HNF(m matrix.Int) (matrix.Int, error) {
	if err := matrix.ValidateRect(m); err != nil {
		return nil, latticeErrorf(opHNF, fmt.Errorf("%v: %w", err, ErrBadShape))
	}
	e := &engine{a: m.Clone(), cols: m.Cols()}
	e.run()

	return e.a, nil
}

// HNFMod is HNF for a lattice known to contain d·Zⁿ (n = number of
// columns); every intermediate entry stays below d. The result always has
// n rows. The hypothesis is not checked: a violation yields the HNF of
// L + d·Zⁿ instead of L.
//
// Errors: ErrBadShape, ErrBadModulus.
func HNFMod(m matrix.Int, d *big.Int, cols int) (matrix.Int, error) {
	if err := matrix.ValidateRect(m); err != nil {
		return nil, latticeErrorf(opHNFMod, fmt.Errorf("%v: %w", err, ErrBadShape))
	}
	if d == nil || d.Sign() <= 0 {
		return nil, latticeErrorf(opHNFMod, ErrBadModulus)
	}
	if len(m) > 0 && m.Cols() != cols {
		return nil, latticeErrorf(opHNFMod, fmt.Errorf("%d columns, want %d: %w", m.Cols(), cols, ErrBadShape))
	}
	a := m.Clone()
	for _, row := range a {
		matrix.ModVec(row, d)
	}
	e := &engine{a: a, cols: cols, mod: new(big.Int).Set(d)}
	e.run()

	return e.a, nil
}

// HNFWithTransform returns (H, U) with U unimodular (|det U| = 1) and
// U·m = [H; 0]: the first len(H) rows of U·m are H, the rest vanish.
func HNFWithTransform(m matrix.Int) (matrix.Int, matrix.Int, error) {
	if err := matrix.ValidateRect(m); err != nil {
		return nil, nil, latticeErrorf(opTransform, fmt.Errorf("%v: %w", err, ErrBadShape))
	}
	e := &engine{a: m.Clone(), u: matrix.Identity(len(m)), cols: m.Cols()}
	rank := e.runKeep()

	return e.a[:rank], e.u, nil
}

// Kernel returns the left kernel {v ∈ Zʳ : v·m = 0} of an r×c matrix as a
// canonical HNF basis (empty when m has full row rank).
func Kernel(m matrix.Int) (matrix.Int, error) {
	h, u, err := HNFWithTransform(m)
	if err != nil {
		return nil, latticeErrorf(opKernel, err)
	}
	k, err := HNF(u[len(h):])
	if err != nil {
		return nil, latticeErrorf(opKernel, err)
	}

	return k, nil
}

// run normalizes e.a in place and drops zero rows.
func (e *engine) run() {
	rank := e.runKeep()
	e.a = e.a[:rank]
}

// runKeep normalizes e.a in place, moving zero rows to the end, and returns the rank.
func (e *engine) runKeep() int {
	var pivots []int
	row := 0
	for col := 0; col < e.cols; col++ {
		if row >= len(e.a) && e.mod == nil {
			break
		}
		for r := row; r < len(e.a); r++ {
			if e.a[r][col].Sign() != 0 {
				e.swap(row, r)
				break
			}
		}
		if row < len(e.a) && e.a[row][col].Sign() != 0 {
			for r := row + 1; r < len(e.a); r++ {
				if e.a[r][col].Sign() != 0 {
					e.combine(row, r, col)
				}
			}
		}
		if e.mod != nil {
			e.absorbModulus(row, col)
		}
		if row < len(e.a) && e.a[row][col].Sign() != 0 {
			if e.a[row][col].Sign() < 0 {
				e.negate(row)
			}
			pivots = append(pivots, col)
			row++
		}
	}
	e.reduceAbove(pivots)

	return row
}

// combine replaces rows i and r by a unimodular combination so that
// a[r][col] = 0 and a[i][col] = gcd of the two entries (up to sign).
func (e *engine) combine(i, r, col int) {
	x, y := e.a[i][col], e.a[r][col]
	if q, rem := new(big.Int).QuoRem(y, x, new(big.Int)); rem.Sign() == 0 {
		e.addRow(r, new(big.Int).Neg(q), i)
		e.reduceRow(r, col)
		return
	}
	s, t := new(big.Int), new(big.Int)
	g := new(big.Int).GCD(s, t, x, y)
	xg := new(big.Int).Quo(x, g)
	yg := new(big.Int).Quo(y, g)
	e.a[i], e.a[r] = lin(s, e.a[i], t, e.a[r]), lin(yg, e.a[i], new(big.Int).Neg(xg), e.a[r])
	if e.u != nil {
		e.u[i], e.u[r] = lin(s, e.u[i], t, e.u[r]), lin(yg, e.u[i], new(big.Int).Neg(xg), e.u[r])
	}
	e.reduceRow(i, col)
	e.reduceRow(r, col)
}

// absorbModulus folds the generator mod·e_col into the pivot row. The
// complementary combination (mod/g)·P − (a/g)·mod·e_col vanishes at col and
// is appended so the lattice is preserved exactly.
func (e *engine) absorbModulus(row, col int) {
	if row >= len(e.a) || e.a[row][col].Sign() == 0 {
		v := matrix.ZeroVec(e.cols)
		v[col].Set(e.mod)
		e.a = append(e.a, v)
		e.swap(row, len(e.a)-1)
		return
	}
	a := e.a[row][col]
	s := new(big.Int)
	g := new(big.Int).GCD(s, nil, a, e.mod)
	left := make([]*big.Int, e.cols)
	f := new(big.Int).Quo(e.mod, g)
	for j := range left {
		left[j] = new(big.Int)
		if j > col {
			left[j].Mul(f, e.a[row][j])
			left[j].Mod(left[j], e.mod)
		}
	}
	for j := col + 1; j < e.cols; j++ {
		e.a[row][j].Mul(e.a[row][j], s)
		e.a[row][j].Mod(e.a[row][j], e.mod)
	}
	e.a[row][col].Set(g)
	if !matrix.IsZeroVec(left) {
		e.a = append(e.a, left)
	}
}

// reduceRow reduces entries right of col modulo the modulus, if any.
func (e *engine) reduceRow(r, col int) {
	if e.mod == nil {
		return
	}
	for j := col + 1; j < e.cols; j++ {
		e.a[r][j].Mod(e.a[r][j], e.mod)
	}
}

// reduceAbove brings entries above each pivot into [0, pivot).
func (e *engine) reduceAbove(pivots []int) {
	for i, c := range pivots {
		p := e.a[i][c]
		for k := 0; k < i; k++ {
			q := new(big.Int).Div(e.a[k][c], p)
			if q.Sign() != 0 {
				e.addRow(k, q.Neg(q), i)
			}
		}
	}
}

func (e *engine) swap(i, j int) {
	if i == j {
		return
	}
	e.a[i], e.a[j] = e.a[j], e.a[i]
	if e.u != nil {
		e.u[i], e.u[j] = e.u[j], e.u[i]
	}
}

func (e *engine) negate(i int) {
	for _, v := range e.a[i] {
		v.Neg(v)
	}
	if e.u != nil {
		for _, v := range e.u[i] {
			v.Neg(v)
		}
	}
}

// addRow sets row dst ← dst + c·row src.
func (e *engine) addRow(dst int, c *big.Int, src int) {
	matrix.AddScaledVec(e.a[dst], c, e.a[src])
	if e.u != nil {
		matrix.AddScaledVec(e.u[dst], c, e.u[src])
	}
}

// lin returns s·x + t·y.
func lin(s *big.Int, x []*big.Int, t *big.Int, y []*big.Int) []*big.Int {
	out := make([]*big.Int, len(x))
	m := new(big.Int)
	for j := range x {
		out[j] = new(big.Int).Mul(s, x[j])
		out[j].Add(out[j], m.Mul(t, y[j]))
	}

	return out
}
