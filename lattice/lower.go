// SPDX-License-Identifier: MIT
package lattice

import (
	"math/big"

	"github.com/katalvlaran/numfield/matrix"
)

// LowerHNF returns the mirrored canonical form: each row's pivot is its
// LAST nonzero entry, pivot columns strictly increase down the rows,
// pivots are positive and entries below a pivot lie in [0, pivot).
// For a full-rank lattice the result is lower triangular.
func LowerHNF(m matrix.Int) (matrix.Int, error) {
	h, err := HNF(mirrorCols(m))
	if err != nil {
		return nil, err
	}

	return mirrorRows(mirrorCols(h)), nil
}

// LowerHNFMod is LowerHNF for a lattice containing d·Zⁿ.
func LowerHNFMod(m matrix.Int, d *big.Int, cols int) (matrix.Int, error) {
	h, err := HNFMod(mirrorCols(m), d, cols)
	if err != nil {
		return nil, err
	}

	return mirrorRows(mirrorCols(h)), nil
}

func mirrorCols(m matrix.Int) matrix.Int {
	out := make(matrix.Int, len(m))
	for i, r := range m {
		out[i] = make([]*big.Int, len(r))
		for j, v := range r {
			out[i][len(r)-1-j] = new(big.Int).Set(v)
		}
	}

	return out
}

func mirrorRows(m matrix.Int) matrix.Int {
	out := make(matrix.Int, len(m))
	for i, r := range m {
		out[len(m)-1-i] = r
	}

	return out
}

// Det returns the product of the diagonal of a square triangular basis,
// i.e. the index [Zⁿ : L] for a full-rank HNF.
func Det(h matrix.Int) *big.Int {
	d := big.NewInt(1)
	for i := range h {
		d.Mul(d, h[i][i])
	}

	return d
}

// LowerCoords returns x with x·h = v for a full-rank lower-triangular
// basis h; ok is false when v is not in the lattice.
func LowerCoords(h matrix.Int, v []*big.Int) ([]*big.Int, bool) {
	n := len(h)
	w := matrix.CloneVec(v)
	x := make([]*big.Int, n)
	r := new(big.Int)
	for j := n - 1; j >= 0; j-- {
		q := new(big.Int)
		q.QuoRem(w[j], h[j][j], r)
		if r.Sign() != 0 {
			return nil, false
		}
		x[j] = q
		matrix.AddScaledVec(w, new(big.Int).Neg(q), h[j])
	}

	return x, true
}

// Contains reports whether v lies in the lattice of a full-rank lower HNF.
func Contains(h matrix.Int, v []*big.Int) bool {
	_, ok := LowerCoords(h, v)
	return ok
}

// LowerReduce returns the canonical representative of v modulo the lattice
// of a full-rank lower HNF: entry j ends in [0, h[j][j]).
func LowerReduce(h matrix.Int, v []*big.Int) []*big.Int {
	w := matrix.CloneVec(v)
	for j := len(h) - 1; j >= 0; j-- {
		q := new(big.Int).Div(w[j], h[j][j])
		if q.Sign() != 0 {
			matrix.AddScaledVec(w, q.Neg(q), h[j])
		}
	}

	return w
}

// IsCanonical reports whether h is already a LowerHNF.
func IsCanonical(h matrix.Int) bool {
	g, err := LowerHNF(h)
	return err == nil && g.Equal(h)
}
