// SPDX-License-Identifier: MIT
package classgroup

import (
	"cmp"
	"math"
	"math/big"
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/order"
	"github.com/katalvlaran/numfield/poly"
)

const (
	rootIterations = 500
	rootTolerance  = 1e-14
)

// embedding evaluates order elements at the archimedean places: the r1
// real roots of f, then one root of each complex pair. A complex place
// contributes the two coordinates √2·Re and √2·Im, so that the squared
// length of v(α) is T2(α) = Σ |σ(α)|² over all n embeddings.
type embedding struct {
	n      int
	places []int       // dᵢ: 1 for a real place, 2 for a complex one
	basis  [][]float64 // v(ω_k)
	gram   matrix.Rat  // T2 on order coordinates, rounded to rationals
}

func newEmbedding(o *order.Order) (*embedding, error) {
	k := o.Field()
	r1, r2 := k.Signature()
	zs, err := roots(k.IntPoly())
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(zs, func(a, b complex128) int {
		return cmp.Compare(math.Abs(imag(a)), math.Abs(imag(b)))
	})
	var pts []complex128
	for i, z := range zs {
		switch {
		case i < r1:
			pts = append(pts, complex(real(z), 0))
		case imag(z) > 0:
			pts = append(pts, z)
		}
	}
	if len(pts) != r1+r2 {
		return nil, nferr.Violation("%d places from the roots of %v, signature (%d, %d)", len(pts), k.Poly(), r1, r2)
	}

	n := o.Degree()
	e := &embedding{n: n, basis: make([][]float64, n)}
	for i := range pts {
		if i < r1 {
			e.places = append(e.places, 1)
		} else {
			e.places = append(e.places, 2)
		}
	}
	for j := 0; j < n; j++ {
		p := o.BasisElement(j)
		row := make([]float64, 0, n)
		for i, z := range pts {
			w := evalRat(p, z)
			if i < r1 {
				row = append(row, real(w))
			} else {
				row = append(row, math.Sqrt2*real(w), math.Sqrt2*imag(w))
			}
		}
		e.basis[j] = row
	}
	e.gram = make(matrix.Rat, n)
	for i := range e.gram {
		e.gram[i] = make([]*big.Rat, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			g := new(big.Rat).SetFloat64(dot(e.basis[i], e.basis[j]))
			e.gram[i][j], e.gram[j][i] = g, new(big.Rat).Set(g)
		}
	}

	return e, nil
}

// vector returns v(α) for α in order coordinates.
func (e *embedding) vector(a []*big.Int) []float64 {
	v := make([]float64, e.n)
	for k, ak := range a {
		if ak.Sign() == 0 {
			continue
		}
		c := toFloat(ak)
		for t := range v {
			v[t] += c * e.basis[k][t]
		}
	}

	return v
}

// logs returns (dᵢ·log|σᵢ(α)|)ᵢ from v(α).
func (e *embedding) logs(v []float64) []float64 {
	out := make([]float64, len(e.places))
	t := 0
	for i, d := range e.places {
		if d == 1 {
			out[i] = math.Log(math.Abs(v[t]))
			t++
			continue
		}
		out[i] = math.Log((v[t]*v[t] + v[t+1]*v[t+1]) / 2)
		t += 2
	}

	return out
}

// norm returns |N(α)| from v(α).
func (e *embedding) norm(v []float64) float64 {
	prod := 1.0
	t := 0
	for _, d := range e.places {
		if d == 1 {
			prod *= math.Abs(v[t])
			t++
			continue
		}
		prod *= (v[t]*v[t] + v[t+1]*v[t+1]) / 2
		t += 2
	}

	return prod
}

// roots returns the complex roots of the squarefree integer polynomial f.
//
// Implementation: Aberth–Ehrlich iteration from points on a circle of the
// Cauchy radius, then two Newton steps per root.
func roots(f poly.Int) ([]complex128, error) {
	n := f.Deg()
	a := make([]complex128, n+1)
	for i := range a {
		a[i] = complex(toFloat(f.Coeff(i)), 0)
	}
	radius := 1.0
	for i := 0; i < n; i++ {
		radius = max(radius, 1+cmplx.Abs(a[i]/a[n]))
	}
	z := make([]complex128, n)
	for k := range z {
		z[k] = cmplx.Rect(radius, 2*math.Pi*float64(k)/float64(n)+0.4)
	}
	moved := math.Inf(1)
	for iter := 0; iter < rootIterations && moved > rootTolerance; iter++ {
		moved = 0
		for k := range z {
			p, dp := horner(a, z[k])
			if p == 0 || dp == 0 {
				continue
			}
			ratio := p / dp
			var s complex128
			for j := range z {
				if j != k {
					s += 1 / (z[k] - z[j])
				}
			}
			w := ratio / (1 - ratio*s)
			z[k] -= w
			moved = max(moved, cmplx.Abs(w)/max(1, cmplx.Abs(z[k])))
		}
	}
	for k := range z {
		for step := 0; step < 2; step++ {
			if p, dp := horner(a, z[k]); dp != 0 {
				z[k] -= p / dp
			}
		}
		if cmplx.IsNaN(z[k]) || cmplx.IsInf(z[k]) {
			return nil, nferr.Violation("root iteration for %v diverged", f)
		}
	}
	if moved > 1e-8 {
		return nil, nferr.Violation("root iteration for %v stalled at step %.3g", f, moved)
	}

	return z, nil
}

// horner returns p(z) and p′(z); a is ascending.
func horner(a []complex128, z complex128) (complex128, complex128) {
	var p, dp complex128
	for i := len(a) - 1; i >= 0; i-- {
		dp = dp*z + p
		p = p*z + a[i]
	}

	return p, dp
}

func evalRat(p poly.Poly, z complex128) complex128 {
	var w complex128
	for i := p.Deg(); i >= 0; i-- {
		c, _ := p.Coeff(i).Float64()
		w = w*z + complex(c, 0)
	}

	return w
}

func toFloat(x *big.Int) float64 {
	f, _ := new(big.Float).SetInt(x).Float64()
	return f
}

func dot(x, y []float64) float64 {
	s := 0.0
	for i := range x {
		s += x[i] * y[i]
	}

	return s
}
