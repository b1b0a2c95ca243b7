// SPDX-License-Identifier: MIT
package poly

import (
	"math/big"

	"github.com/katalvlaran/numfield/gfp"
	"github.com/katalvlaran/numfield/nferr"
)

// patternPrimes is how many good primes contribute degree patterns.
const patternPrimes = 6

// IsIrreducible reports whether the monic squarefree integer polynomial f
// is irreducible over Q.
//
// Implementation:
//   - Stage 1: for the first good primes (p ∤ disc f) factor f mod p and
//     intersect the sets of attainable factor degrees; an empty
//     intersection inside [1, n−1] proves irreducibility.
//   - Stage 2: at the good prime with the fewest modular factors, Hensel-lift
//     every factor to pᵏ > 2·B, B = 2ⁿ·‖f‖₁ (Mignotte), and try every subset
//     product of total degree ≤ n/2 as a divisor of f over Z.
//
// Errors: nferr.ErrInvalidPolynomial if f is not monic, has degree < 1,
// or is not squarefree.
func IsIrreducible(f Int) (bool, error) {
	f = f.trim()
	n := len(f) - 1
	if n < 1 {
		return false, polyErrorf(opIrreducible, nferr.Invalid("degree %d < 1", n))
	}
	if f[n].Cmp(big.NewInt(1)) != 0 {
		return false, polyErrorf(opIrreducible, nferr.Invalid("polynomial is not monic"))
	}
	if n == 1 {
		return true, nil
	}
	disc, err := IntDiscriminant(f)
	if err != nil {
		return false, polyErrorf(opIrreducible, err)
	}
	if disc.Sign() == 0 {
		return false, polyErrorf(opIrreducible, nferr.Invalid("polynomial is not squarefree"))
	}

	possible := make([]bool, n+1)
	for i := range possible {
		possible[i] = true
	}
	var (
		bestField   *gfp.Field
		bestFactors []gfp.Poly
	)
	found := 0
	for p := int64(2); found < patternPrimes; p++ {
		if !big.NewInt(p).ProbablyPrime(10) || new(big.Int).Mod(disc, big.NewInt(p)).Sign() == 0 {
			continue
		}
		found++
		fld := gfp.MustField(p)
		_, fs := fld.Factor(fld.Reduce(f))
		if len(fs) == 1 {
			return true, nil
		}
		degs := make([]int, len(fs))
		polys := make([]gfp.Poly, len(fs))
		for i, g := range fs {
			degs[i] = g.Poly.Deg()
			polys[i] = g.Poly
		}
		sums := subsetSums(degs, n)
		open := false
		for d := 1; d < n; d++ {
			possible[d] = possible[d] && sums[d]
			open = open || possible[d]
		}
		if !open {
			return true, nil
		}
		if bestFactors == nil || len(polys) < len(bestFactors) {
			bestField, bestFactors = fld, polys
		}
	}

	reducible, err := hasFactor(f, bestField, bestFactors, possible)
	if err != nil {
		return false, err
	}

	return !reducible, nil
}

func subsetSums(degs []int, n int) []bool {
	ok := make([]bool, n+1)
	ok[0] = true
	for _, d := range degs {
		for s := n; s >= d; s-- {
			ok[s] = ok[s] || ok[s-d]
		}
	}

	return ok
}

// hasFactor runs the lifting and recombination stage.
func hasFactor(f Int, fld *gfp.Field, mods []gfp.Poly, possible []bool) (bool, error) {
	n := f.Deg()
	bound := new(big.Int).Lsh(f.Norm1(), uint(n))
	target := new(big.Int).Lsh(bound, 1)
	target.Add(target, big.NewInt(1))
	fp := fld.Reduce(f)

	lifted := make([]Int, len(mods))
	var q *big.Int
	for i, g := range mods {
		cof := fld.Quo(fp, g)
		A, _, m, err := HenselLift(fld, f, g, cof, target)
		if err != nil {
			return false, polyErrorf(opIrreducible, err)
		}
		lifted[i], q = A, m
	}

	r := len(lifted)
	for mask := 1; mask < 1<<r-1; mask++ {
		deg := 0
		for i := 0; i < r; i++ {
			if mask&(1<<i) != 0 {
				deg += lifted[i].Deg()
			}
		}
		if deg > n/2 || !possible[deg] {
			continue
		}
		g := Int{big.NewInt(1)}
		for i := 0; i < r; i++ {
			if mask&(1<<i) != 0 {
				g = reduceNonNeg(g.Mul(lifted[i]), q)
			}
		}
		g = g.Mod(q)
		if g.Lead().Cmp(big.NewInt(1)) != 0 || !withinBound(g, bound) {
			continue
		}
		if _, exact := f.DivExact(g); exact {
			return true, nil
		}
	}

	return false, nil
}

func withinBound(g Int, bound *big.Int) bool {
	for _, c := range g {
		if c.CmpAbs(bound) > 0 {
			return false
		}
	}

	return true
}
