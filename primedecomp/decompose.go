// SPDX-License-Identifier: MIT
package primedecomp

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"slices"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numfield/gfp"
	"github.com/katalvlaran/numfield/ideal"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/order"
	"github.com/katalvlaran/numfield/poly"
)

var log = logging.Logger("primedecomp")

// MethodFor returns the method Decompose uses for p in o.
func MethodFor(o *order.Order, p *big.Int) Method {
	if new(big.Int).Mod(o.Index(), p).Sign() != 0 {
		return KummerDedekind
	}

	return BuchmannLenstra
}

// Decompose returns the prime ideals above p with their (e, f), sorted by
// (f, e, basis).
//
// Errors: gfp.ErrNotPrime for a non-prime p; nferr.ErrInvariantViolation
// when the order is not p-maximal or Σ e·f ≠ n.
func Decompose(r *ideal.Ring, p *big.Int) ([]Prime, error) {
	if p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("primedecomp: %v: %w", p, gfp.ErrNotPrime)
	}
	if err := checkPMaximal(r.Order(), p); err != nil {
		return nil, fmt.Errorf("primedecomp: p=%v: %w", p, err)
	}
	var (
		out []Prime
		err error
	)
	method := MethodFor(r.Order(), p)
	switch method {
	case KummerDedekind:
		out, err = kummerDedekind(r, p)
	case BuchmannLenstra:
		out, err = buchmannLenstra(r, p)
	}
	if err != nil {
		return nil, fmt.Errorf("primedecomp: p=%v: %w", p, err)
	}
	slices.SortFunc(out, compare)

	sum := 0
	for _, q := range out {
		sum += q.E * q.F
	}
	if sum != r.Degree() {
		return nil, fmt.Errorf("primedecomp: p=%v: %w", p, nferr.Violation("Σ e·f = %d ≠ n = %d", sum, r.Degree()))
	}
	log.Debugf("p=%v via %v: %v", p, method, out)

	return out, nil
}

// checkPMaximal rejects orders that are not p-maximal. p² ∤ disc O is
// enough; otherwise the ring of multipliers of the p-radical must be O.
func checkPMaximal(o *order.Order, p *big.Int) error {
	p2 := new(big.Int).Mul(p, p)
	if new(big.Int).Mod(o.Discriminant(), p2).Sign() != 0 {
		return nil
	}
	ok, err := o.IsPMaximal(p)
	if err != nil {
		return err
	}
	if !ok {
		return nferr.Violation("order is not %v-maximal", p)
	}

	return nil
}

func compare(a, b Prime) int {
	if a.F != b.F {
		return a.F - b.F
	}
	if a.E != b.E {
		return a.E - b.E
	}
	ha, _ := a.Ideal.Basis()
	hb, _ := b.Ideal.Basis()
	for i := range ha {
		for j := range ha[i] {
			if c := ha[i][j].Cmp(hb[i][j]); c != 0 {
				return c
			}
		}
	}

	return 0
}

// kummerDedekind returns (p, gᵢ(θ)) for the irreducible factors of f mod p.
func kummerDedekind(r *ideal.Ring, p *big.Int) ([]Prime, error) {
	o := r.Order()
	fld, err := gfp.NewField(p)
	if err != nil {
		return nil, err
	}
	_, facs := fld.Factor(fld.Reduce(o.Field().IntPoly()))
	pv := scalar(r.Degree(), p)
	out := make([]Prime, 0, len(facs))
	for _, fc := range facs {
		alpha, ok := o.FromPower(poly.FromInt(poly.Int(fc.Poly)))
		if !ok {
			return nil, nferr.Violation("g(θ) ∉ O for g = %v", fc.Poly)
		}
		q, err := r.FromGenerators(pv, alpha)
		if err != nil {
			return nil, err
		}
		pr := Prime{Ideal: q, P: new(big.Int).Set(p), E: fc.Mult, F: fc.Poly.Deg(), Method: KummerDedekind}
		if err := checkNorm(pr); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}

	return out, nil
}

func checkNorm(q Prime) error {
	n := q.Ideal.Norm()
	if !n.IsInt() || n.Num().Cmp(q.Norm()) != 0 {
		return nferr.Violation("N(%v) = %v, want %v", q, n, q.Norm())
	}

	return nil
}

func scalar(n int, c *big.Int) []*big.Int {
	v := make([]*big.Int, n)
	for i := range v {
		v[i] = new(big.Int)
	}
	v[0].Set(c)

	return v
}

// Recombine returns Π Pᵉ, which equals pO for a complete decomposition.
func Recombine(r *ideal.Ring, primes []Prime) (ideal.Ideal, error) {
	acc := r.One()
	for _, q := range primes {
		pw, err := r.Pow(q.Ideal, q.E)
		if err != nil {
			return ideal.Ideal{}, err
		}
		if acc, err = r.Mul(acc, pw); err != nil {
			return ideal.Ideal{}, err
		}
	}

	return acc, nil
}

// DecomposeAll decomposes every prime in ps concurrently on at most
// workers goroutines (GOMAXPROCS when workers < 1). The i-th result
// belongs to ps[i]; the first failure cancels the rest.
func DecomposeAll(ctx context.Context, r *ideal.Ring, ps []*big.Int, workers int) ([][]Prime, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([][]Prime, len(ps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range ps {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Decompose(r, p)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
