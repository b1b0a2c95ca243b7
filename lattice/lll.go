// SPDX-License-Identifier: MIT
package lattice

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numfield/matrix"
)

// LLL reduces the rows of the linearly independent integer basis b with
// respect to the inner product ⟨x, y⟩ = x·G·yᵀ (G = identity when gram is
// nil), using exact rationals and the Lovász constant 3/4. It returns the
// reduced basis and the unimodular transform T with T·b = reduced.
//
// Implementation:
//   - Stage 1: Gram–Schmidt coefficients μ and squared norms B.
//   - Stage 2: size-reduce b_k against b_(k−1); on a Lovász failure swap
//     and step back, else size-reduce against the remaining b_l and advance.
//
// Gram–Schmidt data is recomputed after each swap; the routine targets the
// small dimensions of number-field bases.
func LLL(b matrix.Int, gram matrix.Rat) (matrix.Int, matrix.Int, error) {
	if err := matrix.ValidateRect(b); err != nil {
		return nil, nil, latticeErrorf(opLLL, fmt.Errorf("%v: %w", err, ErrBadShape))
	}
	n := len(b)
	basis := b.Clone()
	trans := matrix.Identity(n)
	if n <= 1 {
		return basis, trans, nil
	}
	ip := inner(gram)
	mu, bn, err := gramSchmidt(basis, ip)
	if err != nil {
		return nil, nil, latticeErrorf(opLLL, err)
	}
	delta := big.NewRat(3, 4)
	k := 1
	for k < n {
		sizeReduce(basis, trans, mu, k, k-1)
		// Lovász: B_k ≥ (δ − μ²)·B_(k−1)
		rhs := new(big.Rat).Mul(mu[k][k-1], mu[k][k-1])
		rhs.Sub(delta, rhs)
		rhs.Mul(rhs, bn[k-1])
		if bn[k].Cmp(rhs) < 0 {
			basis[k], basis[k-1] = basis[k-1], basis[k]
			trans[k], trans[k-1] = trans[k-1], trans[k]
			if mu, bn, err = gramSchmidt(basis, ip); err != nil {
				return nil, nil, latticeErrorf(opLLL, err)
			}
			k = max(1, k-1)
			continue
		}
		for l := k - 2; l >= 0; l-- {
			sizeReduce(basis, trans, mu, k, l)
		}
		k++
	}

	return basis, trans, nil
}

type innerFunc func(x, y []*big.Rat) *big.Rat

func inner(gram matrix.Rat) innerFunc {
	return func(x, y []*big.Rat) *big.Rat {
		s := new(big.Rat)
		t := new(big.Rat)
		if gram == nil {
			for i := range x {
				s.Add(s, t.Mul(x[i], y[i]))
			}
			return s
		}
		for i := range x {
			if x[i].Sign() == 0 {
				continue
			}
			for j := range y {
				t.Mul(x[i], gram[i][j])
				t.Mul(t, y[j])
				s.Add(s, t)
			}
		}
		return s
	}
}

// gramSchmidt returns μ (lower triangular) and B_i = ⟨b*_i, b*_i⟩.
func gramSchmidt(b matrix.Int, ip innerFunc) ([][]*big.Rat, []*big.Rat, error) {
	n := len(b)
	rb := b.Rat()
	star := make([][]*big.Rat, n)
	mu := make([][]*big.Rat, n)
	bn := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		mu[i] = make([]*big.Rat, n)
		for j := range mu[i] {
			mu[i][j] = new(big.Rat)
		}
		star[i] = make([]*big.Rat, len(rb[i]))
		for c := range rb[i] {
			star[i][c] = new(big.Rat).Set(rb[i][c])
		}
		for j := 0; j < i; j++ {
			mu[i][j] = ip(rb[i], star[j])
			mu[i][j].Quo(mu[i][j], bn[j])
			t := new(big.Rat)
			for c := range star[i] {
				star[i][c].Sub(star[i][c], t.Mul(mu[i][j], star[j][c]))
			}
		}
		bn[i] = ip(star[i], star[i])
		if bn[i].Sign() <= 0 {
			return nil, nil, fmt.Errorf("vector %d: %w", i, ErrNotFullRank)
		}
	}

	return mu, bn, nil
}

// sizeReduce makes |μ_kl| ≤ 1/2 by b_k ← b_k − round(μ_kl)·b_l.
func sizeReduce(b, trans matrix.Int, mu [][]*big.Rat, k, l int) {
	q := roundRat(mu[k][l])
	if q.Sign() == 0 {
		return
	}
	nq := new(big.Int).Neg(q)
	matrix.AddScaledVec(b[k], nq, b[l])
	matrix.AddScaledVec(trans[k], nq, trans[l])
	qr := new(big.Rat).SetInt(q)
	t := new(big.Rat)
	for j := 0; j < l; j++ {
		mu[k][j].Sub(mu[k][j], t.Mul(qr, mu[l][j]))
	}
	mu[k][l].Sub(mu[k][l], qr)
}

// roundRat returns ⌊x + 1/2⌋.
func roundRat(x *big.Rat) *big.Int {
	t := new(big.Rat).Add(x, big.NewRat(1, 2))
	return new(big.Int).Div(t.Num(), t.Denom())
}
