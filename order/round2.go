// SPDX-License-Identifier: MIT
package order

import (
	"math/big"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/numfield/factor"
	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
)

var log = logging.Logger("order")

// MaximalOrder returns the ring of integers of k.
//
// Implementation:
//   - Stage 1: factor disc f with the oracle; only primes with p² | disc f
//     can divide the index.
//   - Stage 2: for each such p, enlarge O by its ring of multipliers of
//     the p-radical until it stops growing. A p-step multiplies the index
//     by a power of p, so at most ⌊v_p(disc f)/2⌋ steps succeed; one more
//     confirms p-maximality.
//   - Stage 3: newOrder checks index² · disc K = disc f exactly; here the
//     sign of disc K is checked against the signature.
//
// Errors: nferr.ErrFactorizationUnavailable, nferr.ErrNonConvergentOrder,
// nferr.ErrInvariantViolation.
func MaximalOrder(k *Field, opts ...Option) (*Order, error) {
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}
	o, err := PowerOrder(k)
	if err != nil {
		return nil, err
	}
	fac, err := k.FactorDiscriminant(cfg.Oracle)
	if err != nil {
		return nil, err
	}
	for _, pp := range fac {
		if pp.E < 2 {
			continue
		}
		bound := min(pp.E/2+1, cfg.MaxRounds)
		for round := 1; ; round++ {
			next, grew, err := o.enlarge(pp.P)
			if err != nil {
				return nil, orderErrorf(opMaximal, err)
			}
			if !grew {
				log.Debugf("p=%v maximal after %d round(s), index %v", pp.P, round, o.index)
				break
			}
			o = next
			if round >= bound {
				return nil, orderErrorf(opMaximal, nferr.Wrap(pp.P.String(), nferr.ErrNonConvergentOrder))
			}
		}
	}
	if err := o.checkSign(); err != nil {
		return nil, orderErrorf(opMaximal, err)
	}
	log.Debugf("maximal order of %v: disc %v, index %v", k.Poly(), o.disc, o.index)

	return o, nil
}

func (o *Order) checkSign() error {
	_, r2 := o.field.Signature()
	want := 1
	if r2%2 == 1 {
		want = -1
	}
	if o.disc.Sign() != want {
		return nferr.Violation("sign of disc %v does not match r2 = %d", o.disc, r2)
	}

	return nil
}

// Radical returns the p-radical {x ∈ O : xᵐ ∈ pO for some m} as a lower
// HNF in the coordinates of o. It always contains p·O.
//
// The radical is the kernel mod p of x ↦ x^(pᵏ) with pᵏ ≥ n, which is
// F_p-linear on O/pO.
func (o *Order) Radical(p *big.Int) (matrix.Int, error) {
	frob := make(matrix.Int, o.n)
	for i := range frob {
		row, err := o.table.PowMod(o.table.Unit(i), p, p)
		if err != nil {
			return nil, orderErrorf(opRadical, err)
		}
		frob[i] = row
	}
	m := frob
	n := big.NewInt(int64(o.n))
	for q := new(big.Int).Set(p); q.Cmp(n) < 0; q.Mul(q, p) {
		next, err := matrix.Mul(m, frob)
		if err != nil {
			return nil, orderErrorf(opRadical, err)
		}
		for _, row := range next {
			matrix.ModVec(row, p)
		}
		m = next
	}
	ker, err := matrix.KernelModP(m, p)
	if err != nil {
		return nil, orderErrorf(opRadical, err)
	}
	h, err := lattice.LowerHNFMod(ker, p, o.n)
	if err != nil {
		return nil, orderErrorf(opRadical, err)
	}

	return h, nil
}

// Multipliers returns a basis mod p of U/pO, U = {x ∈ O : x·I ⊆ p·I},
// for an ideal I of o given as a full-rank lower HNF containing pO.
// U = pO exactly when the result is empty.
func (o *Order) Multipliers(ideal matrix.Int, p *big.Int) (matrix.Int, error) {
	n := o.n
	a := make(matrix.Int, n)
	for i := range a {
		a[i] = matrix.ZeroVec(n * n)
	}
	for j, eta := range ideal {
		m, err := o.table.MulMatrix(eta)
		if err != nil {
			return nil, orderErrorf(opMultipliers, err)
		}
		for i := 0; i < n; i++ {
			c, ok := lattice.LowerCoords(ideal, m[i])
			if !ok {
				return nil, orderErrorf(opMultipliers, nferr.Violation("lattice is not an ideal"))
			}
			for k, v := range c {
				a[i][j*n+k].Mod(v, p)
			}
		}
	}
	ker, err := matrix.KernelModP(a, p)
	if err != nil {
		return nil, orderErrorf(opMultipliers, err)
	}

	return ker, nil
}

// IsPMaximal reports whether p does not divide [O_K : O].
func (o *Order) IsPMaximal(p *big.Int) (bool, error) {
	rad, err := o.Radical(p)
	if err != nil {
		return false, err
	}
	ker, err := o.Multipliers(rad, p)
	if err != nil {
		return false, err
	}

	return len(ker) == 0, nil
}

// enlarge performs one Round 2 step at p: O' = U/p with U the ring of
// multipliers of the p-radical. grew is false when O is p-maximal.
func (o *Order) enlarge(p *big.Int) (*Order, bool, error) {
	rad, err := o.Radical(p)
	if err != nil {
		return nil, false, err
	}
	ker, err := o.Multipliers(rad, p)
	if err != nil {
		return nil, false, err
	}
	if len(ker) == 0 {
		return o, false, nil
	}
	// U = ker + pO in power coordinates: rows x·W over d.
	gens := make(matrix.Int, 0, len(ker)+o.n)
	for _, x := range ker {
		row, err := matrix.VecMul(x, o.w)
		if err != nil {
			return nil, false, err
		}
		gens = append(gens, row)
	}
	for _, row := range o.w {
		pr := make([]*big.Int, o.n)
		for j, v := range row {
			pr[j] = new(big.Int).Mul(v, p)
		}
		gens = append(gens, pr)
	}
	den := new(big.Int).Mul(o.den, p)
	h, err := lattice.LowerHNFMod(gens, den, o.n)
	if err != nil {
		return nil, false, err
	}
	next, err := newOrder(o.field, h, den)
	if err != nil {
		return nil, false, err
	}
	log.Debugf("round 2 at p=%v: index %v -> %v", p, o.index, next.index)

	return next, true, nil
}

// FactorDiscriminant factors disc f with the given oracle (default when nil).
func (k *Field) FactorDiscriminant(oracle factor.Oracle) ([]factor.PrimePower, error) {
	if oracle == nil {
		oracle = factor.New()
	}
	fac, err := oracle.Factor(k.disc)
	if err != nil {
		return nil, orderErrorf(opMaximal, err)
	}

	return fac, nil
}
