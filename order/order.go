// SPDX-License-Identifier: MIT
package order

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/poly"
)

// Order is a full-rank subring of K containing Z[θ].
type Order struct {
	field *Field
	n     int
	w     matrix.Int // lower HNF, power coordinates
	den   *big.Int
	table *Table
	disc  *big.Int
	index *big.Int // [O : Z[θ]]
}

// PowerOrder returns Z[θ].
func PowerOrder(k *Field) (*Order, error) {
	o, err := newOrder(k, matrix.Identity(k.Degree()), big.NewInt(1))
	if err != nil {
		return nil, orderErrorf(opPowerOrder, err)
	}

	return o, nil
}

// newOrder normalizes (w, den), builds the table and checks the index
// identity disc O · index² = disc f.
func newOrder(k *Field, w matrix.Int, den *big.Int) (*Order, error) {
	n := k.Degree()
	g := new(big.Int).Set(den)
	for _, row := range w {
		for _, v := range row {
			g.GCD(nil, nil, g, v)
		}
	}
	w = w.Clone()
	den = new(big.Int).Quo(den, g)
	for _, row := range w {
		for _, v := range row {
			v.Quo(v, g)
		}
	}
	if len(w) != n || w[0][0].Cmp(den) != 0 {
		return nil, nferr.Violation("basis does not start with 1")
	}
	table, err := buildTable(k.f, w, den)
	if err != nil {
		return nil, err
	}
	disc, err := matrix.Det(table.TraceForm())
	if err != nil {
		return nil, err
	}
	num := new(big.Int).Exp(den, big.NewInt(int64(n)), nil)
	index, rem := new(big.Int).QuoRem(num, lattice.Det(w), new(big.Int))
	if rem.Sign() != 0 {
		return nil, nferr.Violation("order does not contain Z[θ]: index %v/%v", num, lattice.Det(w))
	}
	o := &Order{field: k, n: n, w: w, den: den, table: table, disc: disc, index: index}
	chk := new(big.Int).Mul(index, index)
	if chk.Mul(chk, disc).Cmp(k.disc) != 0 {
		return nil, nferr.Violation("index² · disc O = %v ≠ disc f = %v", chk, k.disc)
	}

	return o, nil
}

// Field returns the number field of o.
func (o *Order) Field() *Field { return o.field }

// Degree returns the rank of o.
func (o *Order) Degree() int { return o.n }

// Basis returns a copy of (W, d): ω_i = Σ_j W[i][j]/d · θʲ.
func (o *Order) Basis() (matrix.Int, *big.Int) { return o.w.Clone(), new(big.Int).Set(o.den) }

// Table returns the shared multiplication table.
func (o *Order) Table() *Table { return o.table }

// Discriminant returns disc O, the field discriminant when o is maximal.
func (o *Order) Discriminant() *big.Int { return new(big.Int).Set(o.disc) }

// Index returns [O : Z[θ]].
func (o *Order) Index() *big.Int { return new(big.Int).Set(o.index) }

// IndexIn returns [L : O] for an order L ⊇ O of the same field.
func (o *Order) IndexIn(l *Order) (*big.Int, error) {
	if o.field != l.field {
		return nil, orderErrorf(opIndex, fmt.Errorf("orders of different fields: %w", ErrBadElement))
	}
	for i := range o.w {
		if _, ok := l.FromPower(o.BasisElement(i)); !ok {
			return nil, orderErrorf(opIndex, fmt.Errorf("ω_%d is not in the larger order: %w", i, ErrBadElement))
		}
	}
	q, r := new(big.Int).QuoRem(l.index, o.index, new(big.Int))
	if r.Sign() != 0 {
		return nil, orderErrorf(opIndex, nferr.Violation("index %v does not divide %v", o.index, l.index))
	}

	return q, nil
}

// BasisElement returns ω_i as a polynomial in θ.
func (o *Order) BasisElement(i int) poly.Poly {
	return o.ToPower(o.table.Unit(i))
}

// ToPower returns Σ a_i ω_i as a polynomial in θ of degree < n.
func (o *Order) ToPower(a []*big.Int) poly.Poly {
	c := make([]*big.Rat, o.n)
	for j := range c {
		s := new(big.Int)
		for i, ai := range a {
			s.Add(s, new(big.Int).Mul(ai, o.w[i][j]))
		}
		c[j] = new(big.Rat).SetFrac(s, o.den)
	}

	return poly.New(c...)
}

// Coords returns the rational coordinates of p(θ) in the basis of o.
func (o *Order) Coords(p poly.Poly) []*big.Rat {
	r := o.field.Reduce(p)
	b := make([]*big.Rat, o.n)
	d := new(big.Rat).SetInt(o.den)
	for j := range b {
		b[j] = new(big.Rat).Mul(r.Coeff(j), d)
	}
	// W is lower triangular: solve x·W = b from the last column.
	x := make([]*big.Rat, o.n)
	t := new(big.Rat)
	for j := o.n - 1; j >= 0; j-- {
		x[j] = new(big.Rat).Quo(b[j], new(big.Rat).SetInt(o.w[j][j]))
		for k := 0; k < j; k++ {
			b[k].Sub(b[k], t.Mul(x[j], new(big.Rat).SetInt(o.w[j][k])))
		}
	}

	return x
}

// FromPower returns the integer coordinates of p(θ), reporting false when
// p(θ) ∉ O.
func (o *Order) FromPower(p poly.Poly) ([]*big.Int, bool) {
	x := o.Coords(p)
	out := make([]*big.Int, len(x))
	for i, v := range x {
		if !v.IsInt() {
			return nil, false
		}
		out[i] = new(big.Int).Set(v.Num())
	}

	return out, true
}

// Theta returns the coordinates of θ.
func (o *Order) Theta() []*big.Int {
	x, _ := o.FromPower(poly.FromInt64(0, 1))
	return x
}

// Mul returns a·b.
func (o *Order) Mul(a, b []*big.Int) ([]*big.Int, error) { return o.table.Mul(a, b) }

// Pow returns aᵉ, e ≥ 0.
func (o *Order) Pow(a []*big.Int, e int) ([]*big.Int, error) { return o.table.Pow(a, e) }

// Norm returns N_{K/Q}(a).
func (o *Order) Norm(a []*big.Int) (*big.Int, error) { return o.table.Norm(a) }

// Trace returns Tr_{K/Q}(a).
func (o *Order) Trace(a []*big.Int) (*big.Int, error) { return o.table.Trace(a) }

// String renders the basis as polynomials in θ.
func (o *Order) String() string {
	parts := make([]string, o.n)
	for i := range parts {
		parts[i] = o.BasisElement(i).String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
