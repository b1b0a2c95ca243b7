// SPDX-License-Identifier: MIT
package ideal

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/order"
)

// Ring is the read-only arithmetic context of an order.
type Ring struct {
	o     *order.Order
	table *order.Table
	n     int
}

// NewRing returns the ideal arithmetic context of o.
func NewRing(o *order.Order) *Ring {
	return &Ring{o: o, table: o.Table(), n: o.Degree()}
}

// Order returns the underlying order.
func (r *Ring) Order() *order.Order { return r.o }

// Degree returns the rank n.
func (r *Ring) Degree() int { return r.n }

// One returns the unit ideal O.
func (r *Ring) One() Ideal {
	return Ideal{h: matrix.Identity(r.n), den: big.NewInt(1)}
}

// Scalar returns the principal ideal q·O for a nonzero rational q.
func (r *Ring) Scalar(q *big.Rat) (Ideal, error) {
	if q.Sign() == 0 {
		return Ideal{}, idealErrorf(opFromGenerators, ErrZeroIdeal)
	}
	num := new(big.Int).Abs(q.Num())

	return normalize(matrix.ScalarIdentity(r.n, num), q.Denom()), nil
}

// Principal returns αO for a nonzero order element α.
func (r *Ring) Principal(alpha []*big.Int) (Ideal, error) {
	return r.FromGenerators(alpha)
}

// FromGenerators returns the integral ideal generated by gens.
//
// The products g·ω_i span the ideal; the modulus is |N(g)| for the first
// nonzero generator g, which lies in gO.
func (r *Ring) FromGenerators(gens ...[]*big.Int) (Ideal, error) {
	var mod *big.Int
	rows := make(matrix.Int, 0, len(gens)*r.n)
	for _, g := range gens {
		if len(g) != r.n {
			return Ideal{}, idealErrorf(opFromGenerators, fmt.Errorf("length %d, want %d: %w", len(g), r.n, ErrBadGenerator))
		}
		if matrix.IsZeroVec(g) {
			continue
		}
		m, err := r.table.MulMatrix(g)
		if err != nil {
			return Ideal{}, idealErrorf(opFromGenerators, err)
		}
		rows = append(rows, m...)
		if mod == nil {
			nm, err := r.table.Norm(g)
			if err != nil {
				return Ideal{}, idealErrorf(opFromGenerators, err)
			}
			mod = nm.Abs(nm)
		}
	}
	if mod == nil {
		return Ideal{}, idealErrorf(opFromGenerators, ErrZeroIdeal)
	}
	h, err := lattice.LowerHNFMod(rows, mod, r.n)
	if err != nil {
		return Ideal{}, idealErrorf(opFromGenerators, err)
	}

	return normalize(h, big.NewInt(1)), nil
}

// FromBasis returns the integral ideal whose Z-basis is spanned by the
// rows of m (order coordinates).
//
// Errors: ErrZeroIdeal when the rows do not have full rank, ErrNotIdeal
// when the lattice is not closed under multiplication by the order.
func (r *Ring) FromBasis(m matrix.Int) (Ideal, error) {
	h, err := lattice.LowerHNF(m)
	if err != nil {
		return Ideal{}, idealErrorf(opFromBasis, err)
	}
	if len(h) != r.n {
		return Ideal{}, idealErrorf(opFromBasis, fmt.Errorf("rank %d < %d: %w", len(h), r.n, ErrZeroIdeal))
	}
	for _, eta := range h {
		mm, err := r.table.MulMatrix(eta)
		if err != nil {
			return Ideal{}, idealErrorf(opFromBasis, err)
		}
		for _, v := range mm {
			if !lattice.Contains(h, v) {
				return Ideal{}, idealErrorf(opFromBasis, ErrNotIdeal)
			}
		}
	}

	return normalize(h, big.NewInt(1)), nil
}

// Add returns a + b.
func (r *Ring) Add(a, b Ideal) (Ideal, error) {
	l := new(big.Int).Mul(a.den, b.den)
	l.Quo(l, new(big.Int).GCD(nil, nil, a.den, b.den))
	fa := new(big.Int).Quo(l, a.den)
	fb := new(big.Int).Quo(l, b.den)
	rows := make(matrix.Int, 0, 2*r.n)
	rows = append(rows, scaleRows(a.h, fa)...)
	rows = append(rows, scaleRows(b.h, fb)...)
	mod := new(big.Int).Mul(a.h[0][0], fa)
	h, err := lattice.LowerHNFMod(rows, mod, r.n)
	if err != nil {
		return Ideal{}, idealErrorf(opAdd, err)
	}

	return normalize(h, l), nil
}

func scaleRows(m matrix.Int, c *big.Int) matrix.Int {
	out := make(matrix.Int, len(m))
	for i, row := range m {
		out[i] = make([]*big.Int, len(row))
		for j, v := range row {
			out[i][j] = new(big.Int).Mul(v, c)
		}
	}

	return out
}

// Mul returns a·b: the HNF of all pairwise basis products, reduced modulo
// min(a)·min(b) of the numerators.
func (r *Ring) Mul(a, b Ideal) (Ideal, error) {
	rows := make(matrix.Int, 0, len(a.h)*len(b.h))
	for _, x := range a.h {
		for _, y := range b.h {
			p, err := r.table.Mul(x, y)
			if err != nil {
				return Ideal{}, idealErrorf(opMul, err)
			}
			rows = append(rows, p)
		}
	}
	mod := new(big.Int).Mul(a.h[0][0], b.h[0][0])
	h, err := lattice.LowerHNFMod(rows, mod, r.n)
	if err != nil {
		return Ideal{}, idealErrorf(opMul, err)
	}

	return normalize(h, new(big.Int).Mul(a.den, b.den)), nil
}

// Inverse returns a⁻¹ = {x ∈ K : x·a ⊆ O}.
//
// Implementation:
//   - Stage 1: with A = Den·a integral and η_j its basis, x ∈ A⁻¹ iff
//     x·M_j ∈ Zⁿ for every multiplication matrix M_j of η_j, i.e. x pairs
//     integrally with every column of M = [M_1 … M_n].
//   - Stage 2: G = lower HNF of those columns (they contain min(A)·Zⁿ);
//     the dual lattice is spanned by the rows of (G⁻¹)ᵀ.
//   - Stage 3: a⁻¹ = Den·A⁻¹; the result is checked by a·a⁻¹ = O.
//
// Errors: ErrInvariantViolation when a is not invertible in its order.
func (r *Ring) Inverse(a Ideal) (Ideal, error) {
	cols := make(matrix.Int, 0, r.n*r.n)
	for _, eta := range a.h {
		m, err := r.table.MulMatrix(eta)
		if err != nil {
			return Ideal{}, idealErrorf(opInverse, err)
		}
		cols = append(cols, m.Transpose(r.n)...)
	}
	g, err := lattice.LowerHNFMod(cols, a.h[0][0], r.n)
	if err != nil {
		return Ideal{}, idealErrorf(opInverse, err)
	}
	ginv, err := matrix.Inverse(g.Rat())
	if err != nil {
		return Ideal{}, idealErrorf(opInverse, err)
	}
	dual := make(matrix.Rat, r.n)
	for i := range dual {
		dual[i] = make([]*big.Rat, r.n)
		for j := range dual[i] {
			dual[i][j] = ginv[j][i]
		}
	}
	d := dual.Denominator()
	h, err := lattice.LowerHNFMod(dual.Scaled(d), d, r.n)
	if err != nil {
		return Ideal{}, idealErrorf(opInverse, err)
	}
	inv := normalize(scaleRows(h, a.den), d)

	prod, err := r.Mul(a, inv)
	if err != nil {
		return Ideal{}, idealErrorf(opInverse, err)
	}
	if !prod.Equal(r.One()) {
		return Ideal{}, idealErrorf(opInverse, nferr.Violation("a·a⁻¹ = %v is not the unit ideal", prod))
	}

	return inv, nil
}

// Div returns a·b⁻¹.
func (r *Ring) Div(a, b Ideal) (Ideal, error) {
	inv, err := r.Inverse(b)
	if err != nil {
		return Ideal{}, err
	}

	return r.Mul(a, inv)
}

// Pow returns aᵏ; negative k uses the inverse.
func (r *Ring) Pow(a Ideal, k int) (Ideal, error) {
	if k < 0 {
		inv, err := r.Inverse(a)
		if err != nil {
			return Ideal{}, idealErrorf(opPow, err)
		}
		a, k = inv, -k
	}
	acc, base := r.One(), a
	var err error
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			if acc, err = r.Mul(acc, base); err != nil {
				return Ideal{}, idealErrorf(opPow, err)
			}
		}
		if k > 1 {
			if base, err = r.Mul(base, base); err != nil {
				return Ideal{}, idealErrorf(opPow, err)
			}
		}
	}

	return acc, nil
}

// Valuation returns the exponent of the prime ideal p in the nonzero
// integral ideal a: the largest k with a ⊆ pᵏ.
func (r *Ring) Valuation(p, a Ideal) (int, error) {
	if !a.IsIntegral() || !p.IsIntegral() {
		return 0, idealErrorf(opValuation, ErrNotIntegral)
	}
	if p.Equal(r.One()) {
		return 0, idealErrorf(opValuation, nferr.Violation("valuation at the unit ideal"))
	}
	na := a.Norm()
	k := 0
	pk := r.One()
	for {
		next, err := r.Mul(pk, p)
		if err != nil {
			return 0, idealErrorf(opValuation, err)
		}
		if next.Norm().Cmp(na) > 0 || !next.Includes(a) {
			return k, nil
		}
		pk = next
		k++
	}
}

// ElementValuation returns v_p(α) for a nonzero order element α.
func (r *Ring) ElementValuation(p Ideal, alpha []*big.Int) (int, error) {
	a, err := r.Principal(alpha)
	if err != nil {
		return 0, err
	}

	return r.Valuation(p, a)
}
