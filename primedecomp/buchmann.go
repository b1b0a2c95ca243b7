// SPDX-License-Identifier: MIT
package primedecomp

import (
	"math/big"
	"math/rand/v2"

	"github.com/katalvlaran/numfield/factor"
	"github.com/katalvlaran/numfield/gfp"
	"github.com/katalvlaran/numfield/ideal"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/order"
)

// maxCandidates bounds the elements tried when splitting one component.
const maxCandidates = 256

// splitter decomposes O/J, J = rad(pO), into its field components.
type splitter struct {
	r     *ideal.Ring
	table *order.Table
	p     *big.Int
	fld   *gfp.Field
	pv    []*big.Int
	theta []*big.Int
	rng   *rand.Rand
}

func buchmannLenstra(r *ideal.Ring, p *big.Int) ([]Prime, error) {
	o := r.Order()
	rad, err := o.Radical(p)
	if err != nil {
		return nil, err
	}
	j, err := r.FromBasis(rad)
	if err != nil {
		return nil, err
	}
	fld, err := gfp.NewField(p)
	if err != nil {
		return nil, err
	}
	s := &splitter{
		r: r, table: o.Table(), p: p, fld: fld,
		pv: scalar(r.Degree(), p), theta: o.Theta(), rng: gfp.NewRand(),
	}
	comps, err := s.split(j)
	if err != nil {
		return nil, err
	}
	pO, err := r.Scalar(new(big.Rat).SetInt(p))
	if err != nil {
		return nil, err
	}
	out := make([]Prime, 0, len(comps))
	for _, c := range comps {
		e, err := r.Valuation(c, pO)
		if err != nil {
			return nil, err
		}
		q := Prime{Ideal: c, P: new(big.Int).Set(p), E: e, F: s.dim(c), Method: BuchmannLenstra}
		if err := checkNorm(q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}

	return out, nil
}

// dim returns dim_Fp O/K = v_p(N(K)).
func (s *splitter) dim(k ideal.Ideal) int {
	return factor.Valuation(k.Norm().Num(), s.p)
}

// split returns the prime ideals containing k; O/k must be reduced.
func (s *splitter) split(k ideal.Ideal) ([]ideal.Ideal, error) {
	d := s.dim(k)
	switch {
	case d == 0:
		return nil, nferr.Violation("empty component")
	case d == 1:
		return []ideal.Ideal{k}, nil
	}
	q, err := newQuotient(k, s.p)
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < maxCandidates; attempt++ {
		alpha := s.candidate(attempt)
		m, err := s.minPoly(q, alpha, d)
		if err != nil {
			return nil, err
		}
		_, facs := s.fld.Factor(m)
		if len(facs) == 1 {
			if facs[0].Poly.Deg() == d {
				return []ideal.Ideal{k}, nil
			}
			continue
		}
		var out []ideal.Ideal
		for _, fc := range facs {
			g, err := s.eval(fc.Poly, alpha)
			if err != nil {
				return nil, err
			}
			gi, err := s.r.FromGenerators(s.pv, g)
			if err != nil {
				return nil, err
			}
			kj, err := s.r.Add(k, gi)
			if err != nil {
				return nil, err
			}
			sub, err := s.split(kj)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		log.Debugf("p=%v: split a component of dimension %d into %d", s.p, d, len(out))

		return out, nil
	}

	return nil, nferr.Violation("no splitting element found for a component of dimension %d mod %v", d, s.p)
}

// candidate returns θ, then the basis elements, then pseudo-random elements.
func (s *splitter) candidate(attempt int) []*big.Int {
	n := s.r.Degree()
	switch {
	case attempt == 0:
		return s.theta
	case attempt < n:
		return s.table.Unit(attempt)
	}
	bound := int64(1 << 30)
	if s.p.IsInt64() && s.p.Int64() < bound {
		bound = s.p.Int64()
	}
	v := make([]*big.Int, n)
	for i := range v {
		v[i] = big.NewInt(s.rng.Int64N(bound))
	}

	return v
}

// minPoly returns the monic minimal polynomial over F_p of multiplication
// by alpha on O/k, found as the first linear relation among 1, α, α², …
func (s *splitter) minPoly(q *quotient, alpha []*big.Int, d int) (gfp.Poly, error) {
	pw := s.table.One()
	vs := make(matrix.Int, 0, d+1)
	for i := 0; i <= d; i++ {
		vs = append(vs, q.reduce(pw))
		ker, err := matrix.KernelModP(vs, s.p)
		if err != nil {
			return nil, err
		}
		if len(ker) > 0 {
			x := ker[0]
			inv := new(big.Int).ModInverse(x[i], s.p)
			coeffs := make([]*big.Int, i+1)
			for j := range coeffs {
				coeffs[j] = new(big.Int).Mul(x[j], inv)
			}
			return s.fld.Reduce(coeffs), nil
		}
		if pw, err = s.table.MulMod(pw, alpha, s.p); err != nil {
			return nil, err
		}
	}

	return nil, nferr.Violation("no relation among %d powers in dimension %d", d+1, d)
}

// eval returns g(α) mod p.
func (s *splitter) eval(g gfp.Poly, alpha []*big.Int) ([]*big.Int, error) {
	acc := matrix.ZeroVec(s.r.Degree())
	for i := len(g) - 1; i >= 0; i-- {
		var err error
		if acc, err = s.table.MulMod(acc, alpha, s.p); err != nil {
			return nil, err
		}
		acc[0].Add(acc[0], g[i])
		acc[0].Mod(acc[0], s.p)
	}

	return acc, nil
}

// quotient maps order elements to coordinates of O/k over F_p, k ⊇ pO.
type quotient struct {
	p      *big.Int
	rows   matrix.Int
	pivots []int
	free   []int
}

func newQuotient(k ideal.Ideal, p *big.Int) (*quotient, error) {
	h, _ := k.Basis()
	rows, pivots, err := matrix.EchelonModP(h, p)
	if err != nil {
		return nil, err
	}
	isPivot := make([]bool, len(h))
	for _, c := range pivots {
		isPivot[c] = true
	}
	var free []int
	for j, pv := range isPivot {
		if !pv {
			free = append(free, j)
		}
	}

	return &quotient{p: p, rows: rows, pivots: pivots, free: free}, nil
}

// reduce returns the free coordinates of v modulo the row space of k mod p.
func (q *quotient) reduce(v []*big.Int) []*big.Int {
	w := matrix.ModVec(matrix.CloneVec(v), q.p)
	for i, c := range q.pivots {
		if w[c].Sign() != 0 {
			matrix.AddScaledVec(w, new(big.Int).Neg(w[c]), q.rows[i])
			matrix.ModVec(w, q.p)
		}
	}
	out := make([]*big.Int, len(q.free))
	for i, j := range q.free {
		out[i] = w[j]
	}

	return out
}
