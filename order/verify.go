// SPDX-License-Identifier: MIT
package order

import (
	"math/big"

	"go.uber.org/multierr"

	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
)

// Verify re-checks every structural invariant of o and reports all
// failures at once. With maximal set it also confirms p-maximality at
// every p with p² | disc f. A nil result means o is consistent.
func (o *Order) Verify(maximal bool) error {
	var errs error
	if o.w[0][0].Cmp(o.den) != 0 || !matrix.IsZeroVec(o.w[0][1:]) {
		errs = multierr.Append(errs, nferr.Violation("ω_0 ≠ 1"))
	}
	if !lattice.IsCanonical(o.w) {
		errs = multierr.Append(errs, nferr.Violation("basis is not in lower Hermite form"))
	}
	for j := 0; j < o.n; j++ {
		e := matrix.ZeroVec(o.n)
		e[j].Set(o.den)
		if !lattice.Contains(o.w, e) {
			errs = multierr.Append(errs, nferr.Violation("θ^%d ∉ O", j))
		}
	}
	for i := 0; i < o.n; i++ {
		for j := 0; j < o.n; j++ {
			if !matrix.VecEqual(o.table.c[i][j], o.table.c[j][i]) {
				errs = multierr.Append(errs, nferr.Violation("table not symmetric at (%d, %d)", i, j))
			}
		}
	}
	if err := o.checkAssociative(); err != nil {
		errs = multierr.Append(errs, err)
	}
	chk := new(big.Int).Mul(o.index, o.index)
	if chk.Mul(chk, o.disc).Cmp(o.field.disc) != 0 {
		errs = multierr.Append(errs, nferr.Violation("index² · disc O ≠ disc f"))
	}
	errs = multierr.Append(errs, o.checkSign())
	if maximal {
		fac, err := o.field.FactorDiscriminant(nil)
		if err != nil {
			return orderErrorf(opVerify, multierr.Append(errs, err))
		}
		for _, pp := range fac {
			if pp.E < 2 {
				continue
			}
			ok, err := o.IsPMaximal(pp.P)
			switch {
			case err != nil:
				errs = multierr.Append(errs, err)
			case !ok:
				errs = multierr.Append(errs, nferr.Violation("order is not %v-maximal", pp.P))
			}
		}
	}
	if errs != nil {
		return orderErrorf(opVerify, errs)
	}

	return nil
}

// checkAssociative tests (ω_i·ω_j)·θ = ω_i·(ω_j·θ) for all i, j.
func (o *Order) checkAssociative() error {
	theta := o.Theta()
	for i := 0; i < o.n; i++ {
		for j := 0; j < o.n; j++ {
			ij, _ := o.table.Mul(o.table.Unit(i), o.table.Unit(j))
			left, _ := o.table.Mul(ij, theta)
			jt, _ := o.table.Mul(o.table.Unit(j), theta)
			right, _ := o.table.Mul(o.table.Unit(i), jt)
			if !matrix.VecEqual(left, right) {
				return nferr.Violation("multiplication is not associative at (%d, %d)", i, j)
			}
		}
	}

	return nil
}
