// SPDX-License-Identifier: MIT
package gfp

import (
	"fmt"
	"math/big"
)

// Add returns a + b.
func (f *Field) Add(a, b Poly) Poly {
	out := make(Poly, max(len(a), len(b)))
	for i := range out {
		out[i] = new(big.Int).Add(a.coeff(i), b.coeff(i))
		out[i].Mod(out[i], f.p)
	}

	return out.trim()
}

// Sub returns a − b.
func (f *Field) Sub(a, b Poly) Poly {
	out := make(Poly, max(len(a), len(b)))
	for i := range out {
		out[i] = new(big.Int).Sub(a.coeff(i), b.coeff(i))
		out[i].Mod(out[i], f.p)
	}

	return out.trim()
}

// Scale returns c·a.
func (f *Field) Scale(a Poly, c *big.Int) Poly {
	out := make(Poly, len(a))
	for i, v := range a {
		out[i] = new(big.Int).Mul(v, c)
		out[i].Mod(out[i], f.p)
	}

	return out.trim()
}

// Mul returns a·b.
func (f *Field) Mul(a, b Poly) Poly {
	x, y := a.trim(), b.trim()
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	out := make(Poly, len(x)+len(y)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	t := new(big.Int)
	for i, u := range x {
		if u.Sign() == 0 {
			continue
		}
		for j, v := range y {
			out[i+j].Add(out[i+j], t.Mul(u, v))
		}
	}
	for _, v := range out {
		v.Mod(v, f.p)
	}

	return out.trim()
}

// DivMod returns (q, r) with a = q·b + r, deg r < deg b.
func (f *Field) DivMod(a, b Poly) (Poly, Poly, error) {
	b = b.trim()
	if len(b) == 0 {
		return nil, nil, fmt.Errorf("DivMod: %w", ErrDivisionByZero)
	}
	r := a.trim().Clone()
	db := len(b) - 1
	if len(r)-1 < db {
		return nil, r, nil
	}
	inv := f.Inv(b[db])
	q := make(Poly, len(r)-db)
	for i := range q {
		q[i] = new(big.Int)
	}
	t := new(big.Int)
	for i := len(r) - 1; i >= db; i-- {
		if r[i].Sign() == 0 {
			continue
		}
		c := new(big.Int).Mul(r[i], inv)
		c.Mod(c, f.p)
		q[i-db] = c
		for j := 0; j <= db; j++ {
			k := i - db + j
			r[k].Sub(r[k], t.Mul(c, b[j]))
			r[k].Mod(r[k], f.p)
		}
	}

	return q.trim(), r[:db].trim(), nil
}

// Rem returns a mod b; b must be nonzero.
func (f *Field) Rem(a, b Poly) Poly {
	_, r, err := f.DivMod(a, b)
	if err != nil {
		panic(err)
	}

	return r
}

// Quo returns the quotient of a by b; b must be nonzero.
func (f *Field) Quo(a, b Poly) Poly {
	q, _, err := f.DivMod(a, b)
	if err != nil {
		panic(err)
	}

	return q
}

// Monic returns a scaled to leading coefficient 1 (zero stays zero).
func (f *Field) Monic(a Poly) Poly {
	a = a.trim()
	if len(a) == 0 {
		return nil
	}

	return f.Scale(a, f.Inv(a[len(a)-1]))
}

// Gcd returns the monic gcd of a and b (zero if both are zero).
func (f *Field) Gcd(a, b Poly) Poly {
	x, y := a.trim(), b.trim()
	for len(y) > 0 {
		x, y = y, f.Rem(x, y)
	}

	return f.Monic(x)
}

// ExtGcd returns (g, s, t) with s·a + t·b = g, g monic.
func (f *Field) ExtGcd(a, b Poly) (g, s, t Poly) {
	r0, r1 := a.trim(), b.trim()
	s0, s1 := f.One(), Poly(nil)
	t0, t1 := Poly(nil), f.One()
	for len(r1) > 0 {
		q, r, _ := f.DivMod(r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, f.Sub(s0, f.Mul(q, s1))
		t0, t1 = t1, f.Sub(t0, f.Mul(q, t1))
	}
	if len(r0) == 0 {
		return nil, nil, nil
	}
	inv := f.Inv(r0.Lead())

	return f.Scale(r0, inv), f.Scale(s0, inv), f.Scale(t0, inv)
}

// MulMod returns a·b mod m.
func (f *Field) MulMod(a, b, m Poly) Poly { return f.Rem(f.Mul(a, b), m) }

// PowMod returns aᵉ mod m for e ≥ 0.
func (f *Field) PowMod(a Poly, e *big.Int, m Poly) Poly {
	result := f.Rem(f.One(), m)
	base := f.Rem(a, m)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = f.MulMod(result, result, m)
		if e.Bit(i) == 1 {
			result = f.MulMod(result, base, m)
		}
	}

	return result
}

// Derivative returns da/dx.
func (f *Field) Derivative(a Poly) Poly {
	a = a.trim()
	if len(a) <= 1 {
		return nil
	}
	out := make(Poly, len(a)-1)
	for i := range out {
		out[i] = new(big.Int).Mul(a[i+1], big.NewInt(int64(i+1)))
		out[i].Mod(out[i], f.p)
	}

	return out.trim()
}

// Eval returns a(x) mod p.
func (f *Field) Eval(a Poly, x *big.Int) *big.Int {
	acc := new(big.Int)
	for i := len(a) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, a[i])
		acc.Mod(acc, f.p)
	}

	return acc
}
