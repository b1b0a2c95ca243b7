// SPDX-License-Identifier: MIT
package poly

import (
	"math/big"

	"github.com/katalvlaran/numfield/nferr"
)

// RealRoots returns the number of distinct real roots of p using a Sturm
// sequence p₀ = p, p₁ = p′, pᵢ₊₁ = −(pᵢ₋₁ mod pᵢ). The count is
// V(−∞) − V(+∞) where V counts sign changes of the leading terms.
func RealRoots(p Poly) (int, error) {
	if p.Deg() < 1 {
		return 0, polyErrorf(opRealRoots, nferr.Invalid("degree %d < 1", p.Deg()))
	}
	seq := []Poly{normalizeSturm(p), normalizeSturm(p.Derivative())}
	for {
		last := seq[len(seq)-1]
		if last.Deg() <= 0 {
			break
		}
		_, r, err := seq[len(seq)-2].DivMod(last)
		if err != nil {
			return 0, polyErrorf(opRealRoots, err)
		}
		if r.IsZero() {
			break
		}
		seq = append(seq, normalizeSturm(r.Neg()))
	}

	var atNeg, atPos []int
	for _, s := range seq {
		lc := s.c[len(s.c)-1].Sign()
		atPos = append(atPos, lc)
		if s.Deg()%2 == 1 {
			atNeg = append(atNeg, -lc)
		} else {
			atNeg = append(atNeg, lc)
		}
	}

	return signChanges(atNeg) - signChanges(atPos), nil
}

// normalizeSturm scales by a positive rational so the leading coefficient
// has absolute value 1; signs are preserved.
func normalizeSturm(p Poly) Poly {
	if p.IsZero() {
		return p
	}
	lc := new(big.Rat).Abs(p.c[len(p.c)-1])

	return p.Scale(new(big.Rat).Inv(lc))
}

func signChanges(signs []int) int {
	n, prev := 0, 0
	for _, s := range signs {
		if s == 0 {
			continue
		}
		if prev != 0 && s != prev {
			n++
		}
		prev = s
	}

	return n
}
