// SPDX-License-Identifier: MIT
package poly

import "math/big"

// Int is a polynomial over Z in ascending order. Values produced by this
// package are trimmed (no trailing zeros); nil is the zero polynomial.
type Int []*big.Int

// IntFromInt64 builds an Int from machine integers.
func IntFromInt64(coeffs ...int64) Int {
	out := make(Int, len(coeffs))
	for i, v := range coeffs {
		out[i] = big.NewInt(v)
	}

	return out.trim()
}

func (p Int) trim() Int {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}

	return p[:n]
}

// Deg returns the degree; the zero polynomial has degree -1.
func (p Int) Deg() int { return len(p.trim()) - 1 }

// Lead returns the leading coefficient (shared, do not mutate).
func (p Int) Lead() *big.Int {
	t := p.trim()
	if len(t) == 0 {
		return new(big.Int)
	}

	return t[len(t)-1]
}

// Coeff returns the coefficient of xⁱ (shared, do not mutate).
func (p Int) Coeff(i int) *big.Int {
	if i < 0 || i >= len(p) {
		return new(big.Int)
	}

	return p[i]
}

// Clone returns a deep copy.
func (p Int) Clone() Int {
	out := make(Int, len(p))
	for i, v := range p {
		out[i] = new(big.Int).Set(v)
	}

	return out
}

// Equal reports coefficient-wise equality.
func (p Int) Equal(q Int) bool {
	a, b := p.trim(), q.trim()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// Content returns the non-negative gcd of the coefficients.
func (p Int) Content() *big.Int {
	g := new(big.Int)
	for _, v := range p {
		g.GCD(nil, nil, g, new(big.Int).Abs(v))
	}

	return g
}

// Add returns p + q.
func (p Int) Add(q Int) Int {
	out := make(Int, max(len(p), len(q)))
	for i := range out {
		out[i] = new(big.Int).Add(p.Coeff(i), q.Coeff(i))
	}

	return out.trim()
}

// Sub returns p − q.
func (p Int) Sub(q Int) Int {
	out := make(Int, max(len(p), len(q)))
	for i := range out {
		out[i] = new(big.Int).Sub(p.Coeff(i), q.Coeff(i))
	}

	return out.trim()
}

// Scale returns a·p.
func (p Int) Scale(a *big.Int) Int {
	out := make(Int, len(p))
	for i, v := range p {
		out[i] = new(big.Int).Mul(v, a)
	}

	return out.trim()
}

// QuoScalar returns p / a, assuming every coefficient is divisible by a.
func (p Int) QuoScalar(a *big.Int) Int {
	out := make(Int, len(p))
	for i, v := range p {
		out[i] = new(big.Int).Quo(v, a)
	}

	return out.trim()
}

// Mul returns p·q.
func (p Int) Mul(q Int) Int {
	a, b := p.trim(), q.trim()
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	t := new(big.Int)
	for i, x := range a {
		if x.Sign() == 0 {
			continue
		}
		for j, y := range b {
			out[i+j].Add(out[i+j], t.Mul(x, y))
		}
	}

	return out.trim()
}

// Shift returns p·xᵏ.
func (p Int) Shift(k int) Int {
	t := p.trim()
	if len(t) == 0 {
		return nil
	}
	out := make(Int, len(t)+k)
	for i := 0; i < k; i++ {
		out[i] = new(big.Int)
	}
	for i, v := range t {
		out[i+k] = new(big.Int).Set(v)
	}

	return out
}

// Derivative returns dp/dx.
func (p Int) Derivative() Int {
	t := p.trim()
	if len(t) <= 1 {
		return nil
	}
	out := make(Int, len(t)-1)
	for i := range out {
		out[i] = new(big.Int).Mul(t[i+1], big.NewInt(int64(i+1)))
	}

	return out.trim()
}

// PseudoRem returns the pseudo-remainder r with lc(q)^(deg p − deg q + 1)·p = s·q + r.
// q must be nonzero.
func (p Int) PseudoRem(q Int) Int {
	a, b := p.trim().Clone(), q.trim()
	db := len(b) - 1
	if len(a)-1 < db {
		return a
	}
	delta := len(a) - 1 - db
	lc := b[db]
	steps := 0
	t := new(big.Int)
	for len(a)-1 >= db {
		da := len(a) - 1
		la := new(big.Int).Set(a[da])
		for i := range a {
			a[i].Mul(a[i], lc)
		}
		for j := 0; j <= db; j++ {
			a[da-db+j].Sub(a[da-db+j], t.Mul(la, b[j]))
		}
		a = a.trim()
		steps++
	}
	if rest := delta + 1 - steps; rest > 0 {
		a = a.Scale(new(big.Int).Exp(lc, big.NewInt(int64(rest)), nil))
	}

	return a
}

// DivExact divides p by the monic polynomial q, reporting whether the
// division left no remainder.
func (p Int) DivExact(q Int) (Int, bool) {
	a, b := p.trim().Clone(), q.trim()
	db := len(b) - 1
	if db < 0 || b[db].CmpAbs(big.NewInt(1)) != 0 {
		return nil, false
	}
	if len(a)-1 < db {
		return nil, len(a) == 0
	}
	quo := make(Int, len(a)-db)
	t := new(big.Int)
	for i := len(a) - 1; i >= db; i-- {
		f := new(big.Int).Mul(a[i], b[db]) // b[db] = ±1
		quo[i-db] = f
		if f.Sign() == 0 {
			continue
		}
		for j := 0; j <= db; j++ {
			a[i-db+j].Sub(a[i-db+j], t.Mul(f, b[j]))
		}
	}

	return quo.trim(), len(a[:db].trim()) == 0
}

// Eval returns p(x).
func (p Int) Eval(x *big.Int) *big.Int {
	acc := new(big.Int)
	for i := len(p) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p[i])
	}

	return acc
}

// Norm1 returns Σ|cᵢ|.
func (p Int) Norm1() *big.Int {
	s := new(big.Int)
	for _, v := range p {
		s.Add(s, new(big.Int).Abs(v))
	}

	return s
}

// Mod reduces every coefficient into the symmetric range (−m/2, m/2].
func (p Int) Mod(m *big.Int) Int {
	half := new(big.Int).Rsh(m, 1)
	out := make(Int, len(p))
	for i, v := range p {
		r := new(big.Int).Mod(v, m)
		if r.Cmp(half) > 0 {
			r.Sub(r, m)
		}
		out[i] = r
	}

	return out.trim()
}
