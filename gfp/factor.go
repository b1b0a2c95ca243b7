// SPDX-License-Identifier: MIT
package gfp

import (
	"math/big"
	"math/rand/v2"
	"slices"
)

// Factor is an irreducible monic factor with its multiplicity.
type Factor struct {
	Poly Poly
	Mult int
}

// DegreePart is a product of all irreducible factors of one degree.
type DegreePart struct {
	Poly   Poly
	Degree int
}

const rngSeed = 0x6e756d6669656c64

// SquareFree returns the squarefree decomposition of a monic a:
// a = Π gᵢ^mᵢ with the gᵢ squarefree, pairwise coprime and non-constant.
// Distinct entries may share a multiplicity only across p-th root levels;
// entries with equal multiplicity are merged.
func (f *Field) SquareFree(a Poly) []Factor {
	acc := map[int]Poly{}
	f.squareFree(f.Monic(a), 1, acc)
	mults := make([]int, 0, len(acc))
	for m := range acc {
		mults = append(mults, m)
	}
	slices.Sort(mults)
	out := make([]Factor, 0, len(mults))
	for _, m := range mults {
		out = append(out, Factor{Poly: acc[m], Mult: m})
	}

	return out
}

func (f *Field) squareFree(a Poly, scale int, acc map[int]Poly) {
	if a.Deg() < 1 {
		return
	}
	d := f.Derivative(a)
	if d.IsZero() {
		f.squareFree(f.pthRoot(a), scale*f.smallP(), acc)
		return
	}
	c := f.Gcd(a, d)
	w := f.Quo(a, c)
	for i := 1; w.Deg() > 0; i++ {
		y := f.Gcd(w, c)
		if z := f.Quo(w, y); z.Deg() > 0 {
			f.record(acc, i*scale, z)
		}
		w = y
		c = f.Quo(c, y)
	}
	if c.Deg() > 0 {
		f.squareFree(f.pthRoot(c), scale*f.smallP(), acc)
	}
}

func (f *Field) record(acc map[int]Poly, m int, g Poly) {
	if prev, ok := acc[m]; ok {
		acc[m] = f.Mul(prev, g)
		return
	}
	acc[m] = g
}

// smallP returns p as an int; only reached when deg a ≥ p.
func (f *Field) smallP() int { return int(f.p.Int64()) }

// pthRoot returns b with b^p = a, for a whose exponents are multiples of p.
func (f *Field) pthRoot(a Poly) Poly {
	p := f.smallP()
	out := make(Poly, a.Deg()/p+1)
	for i := range out {
		out[i] = new(big.Int).Set(a.coeff(i * p))
	}

	return out.trim()
}

// DistinctDegree splits a monic squarefree a into products of irreducible
// factors of equal degree, in increasing degree.
func (f *Field) DistinctDegree(a Poly) []DegreePart {
	var out []DegreePart
	rest := f.Monic(a)
	x := f.X()
	h := x
	for i := 1; rest.Deg() >= 2*i; i++ {
		h = f.PowMod(h, f.p, rest)
		g := f.Gcd(rest, f.Sub(h, x))
		if g.Deg() > 0 {
			out = append(out, DegreePart{Poly: g, Degree: i})
			rest = f.Quo(rest, g)
			h = f.Rem(h, rest)
		}
	}
	if rest.Deg() > 0 {
		out = append(out, DegreePart{Poly: rest, Degree: rest.Deg()})
	}

	return out
}

// EqualDegree splits a monic squarefree a whose irreducible factors all
// have degree d (Cantor–Zassenhaus).
func (f *Field) EqualDegree(a Poly, d int, rng *rand.Rand) []Poly {
	a = f.Monic(a)
	if a.Deg() <= d {
		return []Poly{a}
	}
	two := big.NewInt(2)
	var exp *big.Int
	if f.p.Cmp(two) != 0 {
		exp = new(big.Int).Exp(f.p, big.NewInt(int64(d)), nil)
		exp.Sub(exp, big.NewInt(1))
		exp.Rsh(exp, 1)
	}
	for {
		r := f.randomPoly(a.Deg(), rng)
		if r.Deg() < 1 {
			continue
		}
		var b Poly
		if exp != nil {
			b = f.Sub(f.PowMod(r, exp, a), f.One())
		} else {
			b = f.trace(r, d, a)
		}
		g := f.Gcd(a, b)
		if g.Deg() > 0 && g.Deg() < a.Deg() {
			return append(f.EqualDegree(g, d, rng), f.EqualDegree(f.Quo(a, g), d, rng)...)
		}
	}
}

// trace returns r + r² + r⁴ + … + r^(2^(d−1)) mod m (characteristic 2).
func (f *Field) trace(r Poly, d int, m Poly) Poly {
	t := f.Rem(r, m)
	s := t
	for i := 1; i < d; i++ {
		t = f.MulMod(t, t, m)
		s = f.Add(s, t)
	}

	return s
}

func (f *Field) randomPoly(deg int, rng *rand.Rand) Poly {
	out := make(Poly, deg)
	bound := f.p
	for i := range out {
		out[i] = randBelow(rng, bound)
	}

	return out.trim()
}

func randBelow(rng *rand.Rand, n *big.Int) *big.Int {
	if n.IsUint64() {
		return new(big.Int).SetUint64(rng.Uint64N(n.Uint64()))
	}
	words := (n.BitLen() + 63) / 64
	x := new(big.Int)
	for i := 0; i < words+1; i++ {
		x.Lsh(x, 64)
		x.Or(x, new(big.Int).SetUint64(rng.Uint64()))
	}

	return x.Mod(x, n)
}

// NewRand returns the deterministic generator used by Factor.
func NewRand() *rand.Rand { return rand.New(rand.NewPCG(rngSeed, rngSeed>>7)) }

// Factor returns the complete factorization of a nonzero a into monic
// irreducible factors with multiplicities, together with the leading
// coefficient of a. Factors are sorted by (degree, coefficients).
func (f *Field) Factor(a Poly) (*big.Int, []Factor) {
	a = a.trim()
	if len(a) == 0 {
		return new(big.Int), nil
	}
	lc := new(big.Int).Set(a.Lead())
	rng := NewRand()
	var out []Factor
	for _, sq := range f.SquareFree(a) {
		for _, part := range f.DistinctDegree(sq.Poly) {
			for _, g := range f.EqualDegree(part.Poly, part.Degree, rng) {
				out = append(out, Factor{Poly: g, Mult: sq.Mult})
			}
		}
	}
	slices.SortFunc(out, func(x, y Factor) int {
		if c := x.Poly.Compare(y.Poly); c != 0 {
			return c
		}
		return x.Mult - y.Mult
	})

	return lc, out
}

// IsIrreducible reports whether a is irreducible over F_p.
func (f *Field) IsIrreducible(a Poly) bool {
	n := a.Deg()
	if n < 1 {
		return false
	}
	_, fs := f.Factor(a)

	return len(fs) == 1 && fs[0].Mult == 1 && fs[0].Poly.Deg() == n
}
