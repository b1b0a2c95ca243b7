// SPDX-License-Identifier: MIT
package classgroup

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/numfield/ideal"
	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
)

const (
	// certifyLimit caps the relation determinant at which certification starts.
	certifyLimit = 1 << 12

	// boundSlack widens enumeration bounds computed in floating point.
	boundSlack = 1e-6
)

// certify proves that the relations span every relation among the factor
// base, adding the missing ones it meets. For H the relation HNF, the
// lattice is complete iff for every prime q | det H no x = y·H/q with
// y ≢ 0 in the left kernel of H mod q gives a principal ideal Π Pⱼ^xⱼ.
//
// certify reports false, without error, while the unit rank is not reached.
func (s *search) certify(ctx context.Context) (bool, error) {
	for {
		det := lattice.Det(s.rels)
		progress := false
		for _, q := range primeFactors(int(det.Int64())) {
			added, err := s.certifyPrime(ctx, big.NewInt(int64(q)))
			if errors.Is(err, errNoUnits) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			if added {
				progress = true
				break
			}
		}
		if !progress {
			return true, nil
		}
		if _, err := s.reduce(); err != nil {
			return false, err
		}
		log.Debugf("certification: determinant %v → %v", det, lattice.Det(s.rels))
	}
}

// certifyPrime tests every candidate class of order q, one per line of
// the kernel, and adds the first relation found.
func (s *search) certifyPrime(ctx context.Context, q *big.Int) (bool, error) {
	ker, err := matrix.KernelModP(s.rels, q)
	if err != nil {
		return false, err
	}
	if len(ker) == 0 {
		return false, nferr.Violation("%v divides the relation determinant but H is invertible mod %v", q, q)
	}
	coef := make([]int64, len(ker))
	qi := q.Int64()
	for {
		if leadingOne(coef) {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			x, err := s.candidate(ker, coef, q)
			if err != nil {
				return false, err
			}
			a, err := s.idealOf(x)
			if err != nil {
				return false, err
			}
			alpha, ok, err := s.principal(a)
			if err != nil {
				return false, err
			}
			if ok {
				s.add(x, alpha)
				return true, nil
			}
		}
		i := len(coef) - 1
		for ; i >= 0; i-- {
			if coef[i]++; coef[i] < qi {
				break
			}
			coef[i] = 0
		}
		if i < 0 {
			return false, nil
		}
	}
}

// candidate returns x = y·H/q for y = Σ coefᵢ·kerᵢ, reduced modulo H to
// 0 ≤ xᵢ < Hᵢᵢ.
func (s *search) candidate(ker matrix.Int, coef []int64, q *big.Int) ([]*big.Int, error) {
	y := matrix.ZeroVec(len(s.rels))
	for i, c := range coef {
		if c != 0 {
			matrix.AddScaledVec(y, big.NewInt(c), ker[i])
		}
	}
	matrix.ModVec(y, q)
	x, err := matrix.VecMul(y, s.rels)
	if err != nil {
		return nil, err
	}
	r := new(big.Int)
	for _, xi := range x {
		if xi.QuoRem(xi, q, r); r.Sign() != 0 {
			return nil, nferr.Violation("kernel vector %v is not in the kernel mod %v", y, q)
		}
	}
	t := new(big.Int)
	for i, row := range s.rels {
		t.Div(x[i], row[i])
		if t.Sign() != 0 {
			matrix.AddScaledVec(x, new(big.Int).Neg(t), row)
		}
	}

	return x, nil
}

// idealOf returns Π Pⱼ^xⱼ for x ≥ 0.
func (s *search) idealOf(x []*big.Int) (ideal.Ideal, error) {
	a := s.r.One()
	for j, xj := range x {
		if xj.Sign() == 0 {
			continue
		}
		pw, err := s.r.Pow(s.base[j].Ideal, int(xj.Int64()))
		if err != nil {
			return ideal.Ideal{}, err
		}
		if a, err = s.r.Mul(a, pw); err != nil {
			return ideal.Ideal{}, err
		}
	}

	return a, nil
}

// principal decides whether the integral ideal a is principal and returns
// a generator when it is. The enumeration covers T2 ≤ N(a)^(2/n)·spread,
// which holds for some generator of every principal ideal.
//
// Errors: errNoUnits before the unit rank is reached;
// nferr.ErrRelationSearchExhausted when the bound is out of reach.
func (s *search) principal(a ideal.Ideal) ([]*big.Int, bool, error) {
	u, err := s.units()
	if err != nil {
		return nil, false, err
	}
	table := s.r.Order().Table()
	if a.Equal(s.r.One()) {
		return table.One(), true, nil
	}
	target := a.Norm().Num()
	nf := toFloat(target)
	bound := math.Pow(nf, 2/float64(s.r.Degree())) * u.spread(s.emb.places) * (1 + boundSlack)
	h, _ := a.Basis()
	b, err := s.emb.reduce(h)
	if err != nil {
		return nil, false, err
	}
	var found []*big.Int
	err = s.emb.enumerate(b, bound, func(c []int64, v []float64) (bool, error) {
		if math.Abs(s.emb.norm(v)-nf) > 1e-4*nf {
			return false, nil
		}
		alpha := combine(c, b)
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
	if errors.Is(err, errEnumLimit) {
		return nil, false, fmt.Errorf("classgroup: T2 ≤ %.3g in %v: %w", bound, a, nferr.ErrRelationSearchExhausted)
	}
	if err != nil {
		return nil, false, err
	}

	return found, found != nil, nil
}

func leadingOne(c []int64) bool {
	for _, v := range c {
		if v != 0 {
			return v == 1
		}
	}

	return false
}
