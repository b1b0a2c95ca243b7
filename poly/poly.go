// SPDX-License-Identifier: MIT
package poly

import (
	"math/big"
	"strings"
)

// Poly is an immutable polynomial over Q. The zero value is the zero polynomial.
type Poly struct {
	c []*big.Rat // ascending, trimmed: c[len-1] != 0
}

// New returns the polynomial c0 + c1·x + … with trailing zeros trimmed.
// The inputs are copied.
func New(coeffs ...*big.Rat) Poly {
	c := make([]*big.Rat, len(coeffs))
	for i, v := range coeffs {
		if v == nil {
			c[i] = new(big.Rat)
			continue
		}
		c[i] = new(big.Rat).Set(v)
	}

	return Poly{c: trimRat(c)}
}

// FromInt64 returns the polynomial with the given integer coefficients.
func FromInt64(coeffs ...int64) Poly {
	c := make([]*big.Rat, len(coeffs))
	for i, v := range coeffs {
		c[i] = new(big.Rat).SetInt64(v)
	}

	return Poly{c: trimRat(c)}
}

// FromInt returns the rational view of an integer polynomial.
func FromInt(p Int) Poly {
	c := make([]*big.Rat, len(p))
	for i, v := range p {
		c[i] = new(big.Rat).SetInt(v)
	}

	return Poly{c: trimRat(c)}
}

// Monomial returns a·xᵈ.
func Monomial(a *big.Rat, d int) Poly {
	c := make([]*big.Rat, d+1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	c[d].Set(a)

	return Poly{c: trimRat(c)}
}

func trimRat(c []*big.Rat) []*big.Rat {
	n := len(c)
	for n > 0 && c[n-1].Sign() == 0 {
		n--
	}

	return c[:n]
}

// Deg returns the degree; the zero polynomial has degree -1.
func (p Poly) Deg() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// Coeff returns a copy of the coefficient of xⁱ (zero outside the support).
func (p Poly) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.c) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.c[i])
}

// Coeffs returns a copy of the ascending coefficient slice.
func (p Poly) Coeffs() []*big.Rat {
	out := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Rat).Set(v)
	}

	return out
}

// Lead returns a copy of the leading coefficient (zero for the zero polynomial).
func (p Poly) Lead() *big.Rat { return p.Coeff(p.Deg()) }

// IsMonic reports whether the leading coefficient is 1.
func (p Poly) IsMonic() bool {
	return !p.IsZero() && p.c[len(p.c)-1].Cmp(ratOne) == 0
}

// IsIntegral reports whether every coefficient is an integer.
func (p Poly) IsIntegral() bool {
	for _, v := range p.c {
		if !v.IsInt() {
			return false
		}
	}

	return true
}

// Int returns the integer view of p; ok is false when a coefficient is not integral.
func (p Poly) Int() (Int, bool) {
	out := make(Int, len(p.c))
	for i, v := range p.c {
		if !v.IsInt() {
			return nil, false
		}
		out[i] = new(big.Int).Set(v.Num())
	}

	return out, true
}

// Equal reports coefficient-wise equality.
func (p Poly) Equal(q Poly) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if p.c[i].Cmp(q.c[i]) != 0 {
			return false
		}
	}

	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := max(len(p.c), len(q.c))
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat).Add(p.Coeff(i), q.Coeff(i))
	}

	return Poly{c: trimRat(c)}
}

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly {
	n := max(len(p.c), len(q.c))
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat).Sub(p.Coeff(i), q.Coeff(i))
	}

	return Poly{c: trimRat(c)}
}

// Neg returns −p.
func (p Poly) Neg() Poly {
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Neg(v)
	}

	return Poly{c: c}
}

// Scale returns a·p.
func (p Poly) Scale(a *big.Rat) Poly {
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Mul(v, a)
	}

	return Poly{c: trimRat(c)}
}

// Mul returns p·q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c)+len(q.c)-1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	t := new(big.Rat)
	for i, a := range p.c {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.c {
			c[i+j].Add(c[i+j], t.Mul(a, b))
		}
	}

	return Poly{c: trimRat(c)}
}

// DivMod returns (quo, rem) with p = quo·q + rem and deg rem < deg q.
func (p Poly) DivMod(q Poly) (Poly, Poly, error) {
	if q.IsZero() {
		return Poly{}, Poly{}, polyErrorf(opDivMod, ErrDivisionByZero)
	}
	r := p.Coeffs()
	dq := q.Deg()
	if len(r)-1 < dq {
		return Poly{}, Poly{c: trimRat(r)}, nil
	}
	quo := make([]*big.Rat, len(r)-dq)
	for i := range quo {
		quo[i] = new(big.Rat)
	}
	inv := new(big.Rat).Inv(q.c[dq])
	t := new(big.Rat)
	for i := len(r) - 1; i >= dq; i-- {
		if r[i].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Mul(r[i], inv)
		quo[i-dq] = f
		for j := 0; j <= dq; j++ {
			r[i-dq+j].Sub(r[i-dq+j], t.Mul(f, q.c[j]))
		}
	}

	return Poly{c: trimRat(quo)}, Poly{c: trimRat(r[:dq])}, nil
}

// Derivative returns dp/dx.
func (p Poly) Derivative() Poly {
	if len(p.c) <= 1 {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c)-1)
	for i := range c {
		c[i] = new(big.Rat).Mul(p.c[i+1], new(big.Rat).SetInt64(int64(i+1)))
	}

	return Poly{c: trimRat(c)}
}

// Eval returns p(x) by Horner's rule.
func (p Poly) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p.c) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.c[i])
	}

	return acc
}

// Denominator returns the least common multiple of the coefficient denominators.
func (p Poly) Denominator() *big.Int {
	l := big.NewInt(1)
	g := new(big.Int)
	for _, v := range p.c {
		d := v.Denom()
		g.GCD(nil, nil, l, d)
		l.Mul(l, d)
		l.Quo(l, g)
	}

	return l
}

// String renders p in descending powers, e.g. "2x^3 + x^2 - 2x + 3".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.c) - 1; i >= 0; i-- {
		v := p.c[i]
		if v.Sign() == 0 {
			continue
		}
		a := new(big.Rat).Abs(v)
		switch {
		case first && v.Sign() < 0:
			b.WriteString("-")
		case !first && v.Sign() < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		first = false
		if i == 0 || a.Cmp(ratOne) != 0 {
			b.WriteString(a.RatString())
		}
		switch {
		case i == 1:
			b.WriteString("x")
		case i > 1:
			b.WriteString("x^")
			b.WriteString(big.NewInt(int64(i)).String())
		}
	}

	return b.String()
}

var ratOne = big.NewRat(1, 1)
