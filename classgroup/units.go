// SPDX-License-Identifier: MIT
package classgroup

import (
	"errors"
	"math"
	"math/big"
	"slices"

	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
)

const (
	// lambda weights the coefficient columns of the unit lattice reduction.
	lambda = 1e-6

	// minUnitLog is the length below which a unit logarithm counts as torsion.
	minUnitLog = 1e-4

	// maxUnitCandidates caps the unit logarithms kept between reductions.
	maxUnitCandidates = 48

	// lllSwaps caps the swaps of one floating point reduction.
	lllSwaps = 1 << 14
)

var errNoUnits = errors.New("classgroup: unit rank not reached")

// unitSystem holds the logarithm vectors ℓⱼ = (dᵢ·log|σᵢ(εⱼ)|)ᵢ of r
// independent units.
type unitSystem struct {
	logs [][]float64
}

// spread returns Σᵢ dᵢ·exp(Σⱼ|ℓⱼᵢ|/dᵢ). A principal ideal a has a generator
// α with T2(α) ≤ N(a)^(2/n)·spread: multiplying by a unit moves log α
// to within half a fundamental domain of the balanced point.
func (u *unitSystem) spread(places []int) float64 {
	s := 0.0
	for i, d := range places {
		sum := 0.0
		for _, l := range u.logs {
			sum += math.Abs(l[i])
		}
		s += float64(d) * math.Exp(sum/float64(d))
	}

	return s
}

// units returns r independent units, or errNoUnits when the relations and
// the small units found so far do not span the unit rank.
//
// Implementation:
//   - Stage 1: integer dependencies among the first relations give units
//     as quotients of their generators.
//   - Stage 2: the norm ±1 elements of the order are swept with a growing
//     T2 bound until it reaches the spread of the current system.
//   - Stage 3: a reduction of every candidate picks r short independent
//     logarithms.
func (s *search) units() (*unitSystem, error) {
	if s.unitSys != nil {
		return s.unitSys, nil
	}
	r := len(s.emb.places) - 1
	if r == 0 {
		s.unitSys = &unitSystem{}
		return s.unitSys, nil
	}
	rel, err := s.relationUnits(r)
	if err != nil {
		return nil, err
	}
	logs := selectUnits(append(slices.Clone(rel), s.unitLogs...), r)
	for !s.swept {
		limit := math.Inf(1)
		if len(logs) == r {
			limit = (&unitSystem{logs: logs}).spread(s.emb.places)
		}
		s.sweep = max(s.sweep*4, 4*float64(s.r.Degree()))
		if s.sweep >= limit {
			s.sweep, s.swept = limit, true
		}
		if err := s.smallUnits(s.sweep); errors.Is(err, errEnumLimit) {
			s.swept = true
		} else if err != nil {
			return nil, err
		}
		if len(s.unitLogs) >= maxUnitCandidates {
			s.swept = true
		}
		logs = selectUnits(append(slices.Clone(rel), s.unitLogs...), r)
	}
	if len(logs) < r {
		return nil, errNoUnits
	}
	s.unitSys = &unitSystem{logs: logs}
	log.Debugf("unit logarithms %v", logs)

	return s.unitSys, nil
}

// relationUnits returns the logarithms of the units Π γⱼ^cⱼ for c in the
// integer kernel of the first relations, γⱼ their generators.
func (s *search) relationUnits(r int) ([][]float64, error) {
	k := min(len(s.raw), len(s.base)+4*r+8)
	if k == 0 {
		return nil, nil
	}
	m := make(matrix.Int, k)
	for i := range m {
		m[i] = s.raw[i].v
	}
	ker, err := lattice.Kernel(m)
	if err != nil {
		return nil, err
	}
	var out [][]float64
	for _, c := range ker {
		l := make([]float64, len(s.emb.places))
		for j, cj := range c {
			if cj.Sign() == 0 {
				continue
			}
			f := toFloat(cj)
			for i := range l {
				l[i] += f * s.raw[j].log[i]
			}
		}
		if finite(l) {
			out = append(out, l)
		}
	}

	return out, nil
}

// smallUnits records the units of T2 at most bound.
func (s *search) smallUnits(bound float64) error {
	b, err := s.emb.reduce(matrix.Identity(s.r.Degree()))
	if err != nil {
		return err
	}
	table := s.r.Order().Table()
	one := big.NewInt(1)

	return s.emb.enumerate(b, bound, func(c []int64, v []float64) (bool, error) {
		if math.Abs(s.emb.norm(v)-1) > 1e-4 {
			return false, nil
		}
		n, err := table.Norm(combine(c, b))
		if err != nil {
			return false, err
		}
		if n.CmpAbs(one) == 0 {
			s.addUnit(s.emb.logs(v))
		}
		return len(s.unitLogs) >= maxUnitCandidates, nil
	})
}

func (s *search) addUnit(l []float64) {
	if finite(l) && norm(l) >= minUnitLog && len(s.unitLogs) < maxUnitCandidates {
		s.unitLogs = append(s.unitLogs, l)
	}
}

// selectUnits reduces the candidate logarithms together and returns r
// independent short ones, or fewer when they do not span rank r.
//
// The rows [λ·eₖ | ℓₖ] are independent even when the ℓₖ are not, so the
// reduction runs on them and rows whose ℓ part vanishes are dependencies.
func selectUnits(cands [][]float64, r int) [][]float64 {
	if len(cands) > maxUnitCandidates {
		cands = cands[len(cands)-maxUnitCandidates:]
	}
	k := len(cands)
	if k == 0 {
		return nil
	}
	rows := make([][]float64, k)
	for i, l := range cands {
		rows[i] = make([]float64, k+len(l))
		rows[i][i] = lambda
		copy(rows[i][k:], l)
	}
	lllFloat(rows)

	var basis, ortho [][]float64
	for _, row := range rows {
		l := row[k:]
		size := norm(l)
		if size < minUnitLog {
			continue
		}
		w := append([]float64(nil), l...)
		for _, o := range ortho {
			mu := dot(w, o) / dot(o, o)
			for t := range w {
				w[t] -= mu * o[t]
			}
		}
		if norm(w) < 1e-6*size {
			continue
		}
		basis = append(basis, append([]float64(nil), l...))
		ortho = append(ortho, w)
		if len(basis) == r {
			break
		}
	}
	if len(basis) == r {
		lllFloat(basis)
	}

	return basis
}

// lllFloat LLL-reduces the linearly independent rows of b in place
// (Lovász constant 3/4).
func lllFloat(b [][]float64) {
	n := len(b)
	if n < 2 {
		return
	}
	mu, bn := gramSchmidtFloat(b)
	k, swaps := 1, 0
	for k < n && swaps < lllSwaps {
		for l := k - 1; l >= 0; l-- {
			c := math.Round(mu[k][l])
			if c == 0 {
				continue
			}
			for t := range b[k] {
				b[k][t] -= c * b[l][t]
			}
			for j := 0; j < l; j++ {
				mu[k][j] -= c * mu[l][j]
			}
			mu[k][l] -= c
		}
		if bn[k] < (0.75-mu[k][k-1]*mu[k][k-1])*bn[k-1] {
			b[k], b[k-1] = b[k-1], b[k]
			mu, bn = gramSchmidtFloat(b)
			k = max(1, k-1)
			swaps++
			continue
		}
		k++
	}
}

func gramSchmidtFloat(b [][]float64) ([][]float64, []float64) {
	n := len(b)
	mu := make([][]float64, n)
	bn := make([]float64, n)
	star := make([][]float64, n)
	for i := range b {
		mu[i] = make([]float64, n)
		star[i] = append([]float64(nil), b[i]...)
		for j := 0; j < i; j++ {
			if bn[j] == 0 {
				continue
			}
			mu[i][j] = dot(b[i], star[j]) / bn[j]
			for t := range star[i] {
				star[i][t] -= mu[i][j] * star[j][t]
			}
		}
		bn[i] = dot(star[i], star[i])
	}

	return mu, bn
}

func norm(x []float64) float64 { return math.Sqrt(dot(x, x)) }

func finite(x []float64) bool {
	for _, v := range x {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}

	return true
}
