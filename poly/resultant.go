// SPDX-License-Identifier: MIT
package poly

import (
	"math/big"

	"github.com/katalvlaran/numfield/nferr"
)

// Resultant returns Res(p, q) for rational polynomials.
//
// Implementation:
//   - Stage 1: clear denominators, p = P/dp and q = Q/dq with P, Q ∈ Z[x];
//     Res(p, q) = Res(P, Q) / (dp^deg q · dq^deg p).
//   - Stage 2: IntResultant on P, Q (sub-resultant sequence).
//
// Res(0, q) is 0. For constant operands Res(a, q) = a^deg q.
func Resultant(p, q Poly) *big.Rat {
	if p.IsZero() || q.IsZero() {
		return new(big.Rat)
	}
	dp, dq := p.Denominator(), q.Denominator()
	P, _ := p.Scale(new(big.Rat).SetInt(dp)).Int()
	Q, _ := q.Scale(new(big.Rat).SetInt(dq)).Int()
	r := IntResultant(P, Q)
	den := new(big.Int).Exp(dp, big.NewInt(int64(q.Deg())), nil)
	den.Mul(den, new(big.Int).Exp(dq, big.NewInt(int64(p.Deg())), nil))

	return new(big.Rat).SetFrac(r, den)
}

// IntResultant returns Res(a, b) over Z using the sub-resultant
// pseudo-remainder sequence, which keeps every intermediate integral
// and primitive-sized.
//
// Implementation:
//   - Stage 1: handle zero/constant operands; order so deg a ≥ deg b,
//     tracking the sign (−1)^(deg a·deg b).
//   - Stage 2: remove contents, t = cont(a)^deg b · cont(b)^deg a.
//   - Stage 3: loop δ = deg a − deg b; r = prem(a, b); a ← b;
//     b ← r / (g·h^δ); g ← lc(a); h ← g^δ / h^(δ−1); stop when deg b ≤ 0.
//   - Stage 4: b = 0 means a common factor, result 0; otherwise
//     h ← lc(b)^deg a / h^(deg a − 1) and the result is s·t·h.
func IntResultant(a, b Int) *big.Int {
	a, b = a.trim(), b.trim()
	if len(a) == 0 || len(b) == 0 {
		return new(big.Int)
	}
	da, db := len(a)-1, len(b)-1
	if db == 0 {
		return new(big.Int).Exp(b[0], big.NewInt(int64(da)), nil)
	}
	if da == 0 {
		return new(big.Int).Exp(a[0], big.NewInt(int64(db)), nil)
	}

	sign := 1
	if da < db {
		a, b = b, a
		da, db = db, da
		if da%2 == 1 && db%2 == 1 {
			sign = -sign
		}
	}

	ca, cb := a.Content(), b.Content()
	a, b = a.QuoScalar(ca), b.QuoScalar(cb)
	t := new(big.Int).Exp(ca, big.NewInt(int64(db)), nil)
	t.Mul(t, new(big.Int).Exp(cb, big.NewInt(int64(da)), nil))

	g, h := big.NewInt(1), big.NewInt(1)
	for {
		da, db = a.Deg(), b.Deg()
		delta := da - db
		if da%2 == 1 && db%2 == 1 {
			sign = -sign
		}
		r := a.PseudoRem(b)
		a = b
		div := new(big.Int).Exp(h, big.NewInt(int64(delta)), nil)
		div.Mul(div, g)
		b = r.QuoScalar(div)
		g = new(big.Int).Set(a.Lead())
		hNum := new(big.Int).Exp(g, big.NewInt(int64(delta)), nil)
		if delta == 0 {
			h = hNum.Mul(hNum, h)
		} else {
			h = hNum.Quo(hNum, new(big.Int).Exp(h, big.NewInt(int64(delta-1)), nil))
		}
		if b.Deg() <= 0 {
			break
		}
	}
	if b.Deg() < 0 {
		return new(big.Int)
	}
	da = a.Deg()
	num := new(big.Int).Exp(b[0], big.NewInt(int64(da)), nil)
	if da > 1 {
		num.Quo(num, new(big.Int).Exp(h, big.NewInt(int64(da-1)), nil))
	}
	num.Mul(num, t)
	if sign < 0 {
		num.Neg(num)
	}

	return num
}

// Discriminant returns disc(p) = (−1)^(n(n−1)/2) · Res(p, p′) / lc(p).
// The polynomial need not be monic; degree must be ≥ 1.
func Discriminant(p Poly) (*big.Rat, error) {
	n := p.Deg()
	if n < 1 {
		return nil, polyErrorf(opDiscriminant, nferr.Invalid("degree %d < 1", n))
	}
	r := Resultant(p, p.Derivative())
	r.Quo(r, p.Lead())
	if (n*(n-1)/2)%2 == 1 {
		r.Neg(r)
	}

	return r, nil
}

// IntDiscriminant is Discriminant for integer polynomials; the result is always integral.
func IntDiscriminant(p Int) (*big.Int, error) {
	d, err := Discriminant(FromInt(p))
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(d.Num()), nil
}
