// SPDX-License-Identifier: MIT
package classgroup

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/numfield/factor"
	"github.com/katalvlaran/numfield/ideal"
	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/primedecomp"
)

var log = logging.Logger("classgroup")

// ClassGroup is the structure ⊕ Z/dᵢ of the ideal class group.
type ClassGroup struct {
	Invariants []*big.Int // d₁ | d₂ | …, all > 1; empty for the trivial group
	Number     *big.Int   // class number, Π dᵢ
	Bound      *big.Int   // norm bound of the factor base
	FactorBase []primedecomp.Prime
}

// String renders the group as "Z/2 x Z/4", or "trivial".
func (g *ClassGroup) String() string {
	if len(g.Invariants) == 0 {
		return "trivial"
	}
	parts := make([]string, len(g.Invariants))
	for i, d := range g.Invariants {
		parts[i] = "Z/" + d.String()
	}

	return strings.Join(parts, " x ")
}

// Compute returns the class group of the maximal order behind r.
//
// Implementation:
//   - Stage 1: decompose every p ≤ B in parallel; the factor base is the
//     primes of norm ≤ B.
//   - Stage 2: relations from pO and from products of factor-base primes.
//   - Stage 3: element relations for radius 1, 2, …; after each radius the
//     relations are replaced by their HNF. Once it has full rank and a
//     determinant of at most certifyLimit, certification either proves it
//     complete or supplies the missing relations.
//   - Stage 4: Smith normal form of the relation lattice.
//
// The result is exact: it is returned only once certified.
//
// Errors: nferr.ErrRelationSearchExhausted when no radius up to MaxRadius
// yields a certified lattice, or an enumeration exceeds its limit; errors
// from prime decomposition; ctx cancellation.
func Compute(ctx context.Context, r *ideal.Ring, opts ...Option) (*ClassGroup, error) {
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}
	bound := cfg.Bound
	if bound == nil {
		bound = r.Order().MinkowskiBound()
	}
	if !bound.IsInt64() {
		return nil, fmt.Errorf("classgroup: bound %v: %w", bound, nferr.ErrRelationSearchExhausted)
	}
	var ps []*big.Int
	for _, p := range factor.Primes(bound.Int64()) {
		ps = append(ps, big.NewInt(p))
	}
	decs, err := primedecomp.DecomposeAll(ctx, r, ps, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("classgroup: %w", err)
	}
	s, err := newSearch(r, bound, ps, decs, cfg)
	if err != nil {
		return nil, fmt.Errorf("classgroup: %w", err)
	}
	g := &ClassGroup{Number: big.NewInt(1), Bound: new(big.Int).Set(bound), FactorBase: s.base}
	if len(s.base) == 0 {
		return g, nil
	}

	s.primeRelations(decs)
	if err := s.productRelations(); err != nil {
		return nil, err
	}
	var det *big.Int
	for radius := 1; ; radius++ {
		if radius > cfg.MaxRadius {
			return nil, fmt.Errorf("classgroup: rank %d of %d, determinant %v after radius %d: %w",
				len(s.rels), len(s.base), det, cfg.MaxRadius, nferr.ErrRelationSearchExhausted)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.elementRelations(radius); err != nil {
			return nil, err
		}
		if det, err = s.reduce(); err != nil {
			return nil, err
		}
		log.Debugf("radius %d: %d relations, determinant %v", radius, len(s.raw), det)
		if det == nil || det.Cmp(big.NewInt(certifyLimit)) > 0 {
			continue
		}
		ok, err := s.certify(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			det = lattice.Det(s.rels)
			break
		}
	}

	diag, err := lattice.Smith(s.rels)
	if err != nil {
		return nil, err
	}
	for _, d := range diag {
		if d.Cmp(big.NewInt(1)) > 0 {
			g.Invariants = append(g.Invariants, d)
		}
		g.Number.Mul(g.Number, d)
	}
	if g.Number.Cmp(det) != 0 {
		return nil, nferr.Violation("Smith product %v ≠ determinant %v", g.Number, det)
	}

	return g, nil
}

// search accumulates relations over the factor base.
type search struct {
	r      *ideal.Ring
	cfg    Options
	bound  *big.Int
	primes []*big.Int          // rational primes ≤ B
	base   []primedecomp.Prime // factor base
	above  map[string][]int    // p → factor base indices above p
	full   map[string]bool     // p → every prime above p is in the base
	rels   matrix.Int          // relation lattice, HNF after reduce
	raw    []relation          // every relation found, with its generator

	emb      *embedding
	unitLogs [][]float64 // logarithms of small units met along the way
	unitSys  *unitSystem
	sweep    float64 // T2 bound already swept for units
	swept    bool
}

// relation is an exponent vector v with Π Pⱼ^vⱼ = (γ), kept with log γ.
type relation struct {
	v   []*big.Int
	log []float64
}

func newSearch(r *ideal.Ring, bound *big.Int, ps []*big.Int, decs [][]primedecomp.Prime, cfg Options) (*search, error) {
	s := &search{r: r, cfg: cfg, bound: bound, primes: ps, above: map[string][]int{}, full: map[string]bool{}}
	for i, dec := range decs {
		key := ps[i].String()
		s.full[key] = true
		for _, q := range dec {
			if q.Norm().Cmp(bound) > 0 {
				s.full[key] = false
				continue
			}
			s.above[key] = append(s.above[key], len(s.base))
			s.base = append(s.base, q)
		}
	}
	if len(s.base) == 0 {
		return s, nil
	}
	emb, err := newEmbedding(r.Order())
	if err != nil {
		return nil, err
	}
	s.emb = emb

	return s, nil
}

// add records Π Pⱼ^vⱼ = (gen).
func (s *search) add(v, gen []*big.Int) {
	if matrix.IsZeroVec(v) {
		return
	}
	s.rels = append(s.rels, v)
	s.raw = append(s.raw, relation{v: matrix.CloneVec(v), log: s.emb.logs(s.emb.vector(gen))})
}

// primeRelations adds pO = Π Pᵉ for each p fully inside the base.
func (s *search) primeRelations(decs [][]primedecomp.Prime) {
	for i, p := range s.primes {
		key := p.String()
		if !s.full[key] {
			continue
		}
		v := matrix.ZeroVec(len(s.base))
		for k, j := range s.above[key] {
			v[j].SetInt64(int64(decs[i][k].E))
		}
		gen := matrix.ZeroVec(s.r.Degree())
		gen[0].Set(p)
		s.add(v, gen)
	}
}

// productRelations walks the exponent vectors of norm ≤ B. Equal ideals
// reached twice give their difference; principal ones give themselves.
func (s *search) productRelations() error {
	one := s.r.Order().Table().One()
	seen := map[[32]byte][]*big.Int{}
	var walk func(start int, norm *big.Int, cur ideal.Ideal, v []*big.Int) error
	walk = func(start int, norm *big.Int, cur ideal.Ideal, v []*big.Int) error {
		for j := start; j < len(s.base); j++ {
			nn := new(big.Int).Mul(norm, s.base[j].Norm())
			if nn.Cmp(s.bound) > 0 {
				continue
			}
			next, err := s.r.Mul(cur, s.base[j].Ideal)
			if err != nil {
				return err
			}
			w := matrix.CloneVec(v)
			w[j].Add(w[j], big.NewInt(1))
			fp := next.Fingerprint()
			if prev, ok := seen[fp]; ok {
				diff := matrix.CloneVec(w)
				matrix.AddScaledVec(diff, big.NewInt(-1), prev)
				s.add(diff, one)
			} else {
				seen[fp] = w
				alpha, ok, err := IsPrincipal(s.r, next, s.cfg.PrincipalRadius)
				if err != nil {
					return err
				}
				if ok {
					s.add(w, alpha)
				}
			}
			if err := walk(j, nn, next, w); err != nil {
				return err
			}
		}
		return nil
	}

	return walk(0, big.NewInt(1), s.r.One(), matrix.ZeroVec(len(s.base)))
}

// elementRelations factors the elements with max |cᵢ| = radius whose
// norm is B-smooth. Units met on the way are kept for the unit search.
func (s *search) elementRelations(radius int) error {
	table := s.r.Order().Table()
	return shell(s.r.Degree(), radius-1, radius, func(c []int64) (bool, error) {
		alpha := combine(c, matrix.Identity(s.r.Degree()))
		n, err := table.Norm(alpha)
		if err != nil {
			return false, err
		}
		if n.CmpAbs(big.NewInt(1)) == 0 {
			s.addUnit(s.emb.logs(s.emb.vector(alpha)))
			return false, nil
		}
		v, ok, err := s.factorElement(alpha, n)
		if err != nil {
			return false, err
		}
		if ok {
			s.add(v, alpha)
		}
		return false, nil
	})
}

// factorElement returns the exponent vector of αO over the base, or
// ok = false when αO has a prime factor outside it.
func (s *search) factorElement(alpha []*big.Int, n *big.Int) ([]*big.Int, bool, error) {
	rest := new(big.Int).Abs(n)
	if rest.Sign() == 0 {
		return nil, false, nil
	}
	type part struct {
		p *big.Int
		e int
	}
	var parts []part
	for _, p := range s.primes {
		if e := factor.Valuation(rest, p); e > 0 {
			parts = append(parts, part{p, e})
			rest.Quo(rest, new(big.Int).Exp(p, big.NewInt(int64(e)), nil))
		}
	}
	if rest.Cmp(big.NewInt(1)) != 0 {
		return nil, false, nil
	}
	a, err := s.r.Principal(alpha)
	if err != nil {
		return nil, false, err
	}
	v := matrix.ZeroVec(len(s.base))
	for _, pt := range parts {
		covered := 0
		for _, j := range s.above[pt.p.String()] {
			k, err := s.r.Valuation(s.base[j].Ideal, a)
			if err != nil {
				return nil, false, err
			}
			v[j].SetInt64(int64(k))
			covered += k * s.base[j].F
		}
		if covered != pt.e {
			return nil, false, nil
		}
	}

	return v, true, nil
}

// reduce replaces the relations by their HNF and returns the determinant
// at full rank, nil otherwise.
func (s *search) reduce() (*big.Int, error) {
	if len(s.rels) == 0 {
		return nil, nil
	}
	h, err := lattice.HNF(s.rels)
	if err != nil {
		return nil, err
	}
	s.rels = h
	if len(h) < len(s.base) {
		return nil, nil
	}

	return lattice.Det(h), nil
}

func primeFactors(k int) []int {
	var out []int
	for p := 2; p*p <= k; p++ {
		if k%p == 0 {
			out = append(out, p)
			for k%p == 0 {
				k /= p
			}
		}
	}
	if k > 1 {
		out = append(out, k)
	}

	return out
}
