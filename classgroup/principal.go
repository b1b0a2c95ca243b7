// SPDX-License-Identifier: MIT
package classgroup

import (
	"math/big"

	"github.com/katalvlaran/numfield/ideal"
	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
)

// IsPrincipal looks for a generator of the integral ideal a among the
// combinations with coefficients in [−radius, radius] of an LLL-reduced
// basis of a. It returns the generator's coordinates when found.
//
// The answer "not principal" is exact for imaginary quadratic fields
// (radius ≥ 1) and a search failure otherwise; Compute uses it as a
// screen and settles principality with an exhaustive enumeration.
func IsPrincipal(r *ideal.Ring, a ideal.Ideal, radius int) ([]*big.Int, bool, error) {
	if !a.IsIntegral() {
		return nil, false, ideal.ErrNotIntegral
	}
	table := r.Order().Table()
	if a.Equal(r.One()) {
		return table.One(), true, nil
	}
	target := a.Norm().Num()
	h, _ := a.Basis()
	red, _, err := lattice.LLL(h, gram(r))
	if err != nil {
		return nil, false, err
	}
	var found []*big.Int
	err = box(len(red), radius, func(c []int64) (bool, error) {
		alpha := combine(c, red)
		n, err := table.Norm(alpha)
		if err != nil {
			return false, err
		}
		if n.CmpAbs(target) == 0 {
			found = alpha
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, false, err
	}

	return found, found != nil, nil
}

// gram returns a positive definite Gram matrix on order coordinates when
// one is available exactly: the norm form for imaginary quadratic fields,
// the trace form Tr(xy) for totally real fields, nil (identity) otherwise.
func gram(r *ideal.Ring) matrix.Rat {
	o := r.Order()
	r1, r2 := o.Field().Signature()
	table := o.Table()
	switch {
	case o.Degree() == 2 && r2 == 1:
		w := table.Unit(1)
		tr, _ := table.Trace(w)
		nm, _ := table.Norm(w)
		half := new(big.Rat).SetFrac(tr, big.NewInt(2))
		return matrix.Rat{
			{big.NewRat(1, 1), half},
			{new(big.Rat).Set(half), new(big.Rat).SetInt(nm)},
		}
	case r1 == o.Degree():
		return table.TraceForm().Rat()
	default:
		return nil
	}
}

// combine returns Σ c_i·rows_i.
func combine(c []int64, rows matrix.Int) []*big.Int {
	out := matrix.ZeroVec(len(rows[0]))
	for i, ci := range c {
		if ci != 0 {
			matrix.AddScaledVec(out, big.NewInt(ci), rows[i])
		}
	}

	return out
}

// box calls visit for every nonzero c ∈ [−radius, radius]ⁿ whose first
// nonzero entry is positive, in lexicographic order, until visit reports
// done or fails.
func box(n, radius int, visit func([]int64) (bool, error)) error {
	return shell(n, 0, radius, visit)
}

// shell is box restricted to max|cᵢ| > inner.
func shell(n, inner, radius int, visit func([]int64) (bool, error)) error {
	c := make([]int64, n)
	for i := range c {
		c[i] = int64(-radius)
	}
	for {
		if onShell(c, inner) && leadingPositive(c) {
			done, err := visit(c)
			if err != nil || done {
				return err
			}
		}
		i := n - 1
		for ; i >= 0; i-- {
			if c[i] < int64(radius) {
				c[i]++
				break
			}
			c[i] = int64(-radius)
		}
		if i < 0 {
			return nil
		}
	}
}

func onShell(c []int64, inner int) bool {
	for _, v := range c {
		if v > int64(inner) || v < -int64(inner) {
			return true
		}
	}

	return false
}

func leadingPositive(c []int64) bool {
	for _, v := range c {
		if v != 0 {
			return v > 0
		}
	}

	return false
}
