// SPDX-License-Identifier: MIT
package order

import "math/big"

// fourOverPi is a rational upper bound for 4/π.
var fourOverPi = big.NewRat(12733, 10000)

// MinkowskiBound returns an integer B ≥ (4/π)^r2 · n!/nⁿ · √|disc O|.
// Every ideal class of a maximal order contains an integral ideal of norm
// at most B.
func (o *Order) MinkowskiBound() *big.Int {
	n := int64(o.n)
	_, r2 := o.field.Signature()
	// Square of the bound: (4/π)^(2·r2) · (n!)² · |d| / n^(2n).
	sq := new(big.Rat).SetInt(new(big.Int).Abs(o.disc))
	fact := new(big.Int).MulRange(1, n)
	sq.Mul(sq, new(big.Rat).SetInt(new(big.Int).Mul(fact, fact)))
	sq.Quo(sq, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(n), big.NewInt(2*n), nil)))
	for i := 0; i < 2*r2; i++ {
		sq.Mul(sq, fourOverPi)
	}
	c := ceilRat(sq)
	b := new(big.Int).Sqrt(c)
	if new(big.Int).Mul(b, b).Cmp(c) < 0 {
		b.Add(b, big.NewInt(1))
	}

	return b
}

func ceilRat(x *big.Rat) *big.Int {
	q, r := new(big.Int).QuoRem(x.Num(), x.Denom(), new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}

	return q
}
