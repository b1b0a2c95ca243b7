// SPDX-License-Identifier: MIT
package order

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/poly"
)

// Table holds the structure constants c[i][j][k] of an order basis:
// ω_i·ω_j = Σ_k c[i][j][k]·ω_k. It is read-only once built.
type Table struct {
	n  int
	c  [][][]*big.Int
	tr []*big.Int // Tr(ω_k)
}

// buildTable multiplies every basis pair modulo f and re-expresses the
// product in the basis by solving x·(d·W) = W_i·W_j mod f, which is
// triangular. A non-integral solution means W does not span a ring.
func buildTable(f poly.Int, w matrix.Int, d *big.Int) (*Table, error) {
	n := len(w)
	dw := make(matrix.Int, n)
	rows := make([]poly.Int, n)
	for i := range w {
		dw[i] = make([]*big.Int, n)
		for j := range w[i] {
			dw[i][j] = new(big.Int).Mul(w[i][j], d)
		}
		rows[i] = poly.Int(matrix.CloneVec(w[i]))
	}
	t := &Table{n: n, c: make([][][]*big.Int, n)}
	for i := range t.c {
		t.c[i] = make([][]*big.Int, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			prod := toVec(rows[i].Mul(rows[j]).PseudoRem(f), n)
			x, ok := lattice.LowerCoords(dw, prod)
			if !ok {
				return nil, orderErrorf(opTable, nferr.Violation("ω_%d·ω_%d has non-integral coordinates", i, j))
			}
			t.c[i][j] = x
			t.c[j][i] = x
		}
	}
	t.tr = make([]*big.Int, n)
	for k := 0; k < n; k++ {
		s := new(big.Int)
		for i := 0; i < n; i++ {
			s.Add(s, t.c[k][i][i])
		}
		t.tr[k] = s
	}

	return t, nil
}

// toVec pads an integer polynomial to length n.
func toVec(p poly.Int, n int) []*big.Int {
	v := matrix.ZeroVec(n)
	for i := 0; i < len(p) && i < n; i++ {
		v[i].Set(p[i])
	}

	return v
}

// Dim returns the rank n of the order.
func (t *Table) Dim() int { return t.n }

// Const returns c[i][j][k].
func (t *Table) Const(i, j, k int) *big.Int { return new(big.Int).Set(t.c[i][j][k]) }

// Unit returns the coordinate vector of ω_i.
func (t *Table) Unit(i int) []*big.Int {
	v := matrix.ZeroVec(t.n)
	v[i].SetInt64(1)

	return v
}

// One returns the coordinates of 1 (ω_0).
func (t *Table) One() []*big.Int { return t.Unit(0) }

func (t *Table) check(v []*big.Int) error {
	if len(v) != t.n {
		return fmt.Errorf("length %d, want %d: %w", len(v), t.n, ErrBadElement)
	}
	return nil
}

// Mul returns a·b.
func (t *Table) Mul(a, b []*big.Int) ([]*big.Int, error) {
	if err := t.check(a); err != nil {
		return nil, err
	}
	if err := t.check(b); err != nil {
		return nil, err
	}
	out := matrix.ZeroVec(t.n)
	ab := new(big.Int)
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			if bj.Sign() == 0 {
				continue
			}
			ab.Mul(ai, bj)
			matrix.AddScaledVec(out, ab, t.c[i][j])
		}
	}

	return out, nil
}

// MulMod returns a·b with coordinates reduced into [0, m).
func (t *Table) MulMod(a, b []*big.Int, m *big.Int) ([]*big.Int, error) {
	out, err := t.Mul(a, b)
	if err != nil {
		return nil, err
	}

	return matrix.ModVec(out, m), nil
}

// Pow returns aᵉ for e ≥ 0.
func (t *Table) Pow(a []*big.Int, e int) ([]*big.Int, error) {
	if err := t.check(a); err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("negative exponent %d: %w", e, ErrBadElement)
	}
	acc, base := t.One(), matrix.CloneVec(a)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			acc, _ = t.Mul(acc, base)
		}
		if e > 1 {
			base, _ = t.Mul(base, base)
		}
	}

	return acc, nil
}

// PowMod returns aᵉ with coordinates reduced modulo m after every product.
func (t *Table) PowMod(a []*big.Int, e, m *big.Int) ([]*big.Int, error) {
	if err := t.check(a); err != nil {
		return nil, err
	}
	acc := matrix.ModVec(t.One(), m)
	base := matrix.ModVec(matrix.CloneVec(a), m)
	for i := e.BitLen() - 1; i >= 0; i-- {
		acc, _ = t.MulMod(acc, acc, m)
		if e.Bit(i) == 1 {
			acc, _ = t.MulMod(acc, base, m)
		}
	}

	return acc, nil
}

// MulMatrix returns the matrix of multiplication by a: row i holds the
// coordinates of a·ω_i, so x·MulMatrix(a) are the coordinates of a·x.
func (t *Table) MulMatrix(a []*big.Int) (matrix.Int, error) {
	if err := t.check(a); err != nil {
		return nil, err
	}
	m := make(matrix.Int, t.n)
	for i := range m {
		m[i] = matrix.ZeroVec(t.n)
		for j, aj := range a {
			if aj.Sign() != 0 {
				matrix.AddScaledVec(m[i], aj, t.c[j][i])
			}
		}
	}

	return m, nil
}

// Norm returns N(a) = det of multiplication by a.
func (t *Table) Norm(a []*big.Int) (*big.Int, error) {
	m, err := t.MulMatrix(a)
	if err != nil {
		return nil, err
	}

	return matrix.Det(m)
}

// Trace returns Tr(a).
func (t *Table) Trace(a []*big.Int) (*big.Int, error) {
	if err := t.check(a); err != nil {
		return nil, err
	}
	s := new(big.Int)
	for k, ak := range a {
		s.Add(s, new(big.Int).Mul(ak, t.tr[k]))
	}

	return s, nil
}

// TraceForm returns the Gram matrix Tr(ω_i·ω_j).
func (t *Table) TraceForm() matrix.Int {
	g := make(matrix.Int, t.n)
	for i := range g {
		g[i] = make([]*big.Int, t.n)
	}
	for i := 0; i < t.n; i++ {
		for j := i; j < t.n; j++ {
			s := new(big.Int)
			for k, ck := range t.c[i][j] {
				s.Add(s, new(big.Int).Mul(ck, t.tr[k]))
			}
			g[i][j] = s
			g[j][i] = new(big.Int).Set(s)
		}
	}

	return g
}
