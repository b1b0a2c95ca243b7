// SPDX-License-Identifier: MIT
package poly

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numfield/gfp"
)

// HenselLift lifts a coprime factorization f ≡ a·b (mod p), with f and a
// monic, to A·B ≡ f (mod m) where m is the least power of p with m ≥ bound.
// It returns A, B with coefficients in [0, m) and the modulus m.
//
// Implementation:
//   - Stage 1: solve a·u + b·v ≡ 1 (mod p) with the extended Euclidean algorithm.
//   - Stage 2: linear lifting, q → q·p per round:
//     e = (f − A·B)/q mod p; v·e = a·T + A₀; B₀ = u·e + b·T;
//     A ← A + q·A₀, B ← B + q·B₀.
//
// deg A₀ < deg a keeps A monic, so the lifted factorization is the unique one.
func HenselLift(fld *gfp.Field, f Int, a, b gfp.Poly, bound *big.Int) (Int, Int, *big.Int, error) {
	g, u, v := fld.ExtGcd(a, b)
	if g.Deg() != 0 {
		return nil, nil, nil, polyErrorf(opHensel, fmt.Errorf("factors are not coprime mod %v", fld.P()))
	}
	p := fld.P()
	A, B := toInt(a), toInt(b)
	q := new(big.Int).Set(p)
	for q.Cmp(bound) < 0 {
		diff := f.Sub(A.Mul(B))
		for _, c := range diff {
			if new(big.Int).Mod(c, q).Sign() != 0 {
				return nil, nil, nil, polyErrorf(opHensel, fmt.Errorf("f ≢ A·B mod %v", q))
			}
		}
		e := fld.Reduce(diff.QuoScalar(q))
		t, a0, err := fld.DivMod(fld.Mul(v, e), a)
		if err != nil {
			return nil, nil, nil, polyErrorf(opHensel, err)
		}
		b0 := fld.Add(fld.Mul(u, e), fld.Mul(b, t))
		A = A.Add(toInt(a0).Scale(q))
		B = B.Add(toInt(b0).Scale(q))
		q.Mul(q, p)
		A, B = reduceNonNeg(A, q), reduceNonNeg(B, q)
	}

	return A, B, q, nil
}

func toInt(a gfp.Poly) Int {
	out := make(Int, len(a))
	for i, c := range a {
		out[i] = new(big.Int).Set(c)
	}

	return out.trim()
}

func reduceNonNeg(a Int, m *big.Int) Int {
	out := make(Int, len(a))
	for i, c := range a {
		out[i] = new(big.Int).Mod(c, m)
	}

	return out.trim()
}
