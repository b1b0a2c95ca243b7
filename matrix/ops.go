// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"
	"math/big"
)

// Mul returns a·b.
//
// Errors: ErrBadShape, ErrDimensionMismatch.
// Complexity: O(r·k·c) big-integer multiplications.
func Mul(a, b Int) (Int, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := make(Int, len(a))
	for i := range a {
		v, err := VecMul(a[i], b)
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		out[i] = v
	}

	return out, nil
}

// VecMul returns the row vector v·m.
func VecMul(v []*big.Int, m Int) ([]*big.Int, error) {
	if len(v) != len(m) {
		return nil, matrixErrorf(opVecMul, fmt.Errorf("len %d vs %d rows: %w", len(v), len(m), ErrDimensionMismatch))
	}
	out := ZeroVec(m.Cols())
	t := new(big.Int)
	for k, x := range v {
		if x.Sign() == 0 {
			continue
		}
		for j, y := range m[k] {
			out[j].Add(out[j], t.Mul(x, y))
		}
	}

	return out, nil
}

// RatVecMul returns v·m over Q.
func RatVecMul(v []*big.Rat, m Rat) ([]*big.Rat, error) {
	if len(v) != len(m) {
		return nil, matrixErrorf(opVecMul, fmt.Errorf("len %d vs %d rows: %w", len(v), len(m), ErrDimensionMismatch))
	}
	out := make([]*big.Rat, m.Cols())
	for j := range out {
		out[j] = new(big.Rat)
	}
	t := new(big.Rat)
	for k, x := range v {
		if x.Sign() == 0 {
			continue
		}
		for j, y := range m[k] {
			out[j].Add(out[j], t.Mul(x, y))
		}
	}

	return out, nil
}

// AddScaledVec sets dst ← dst + c·src in place.
func AddScaledVec(dst []*big.Int, c *big.Int, src []*big.Int) {
	if c.Sign() == 0 {
		return
	}
	t := new(big.Int)
	for j := range dst {
		dst[j].Add(dst[j], t.Mul(c, src[j]))
	}
}

// ModVec reduces every entry into [0, m) in place and returns v.
func ModVec(v []*big.Int, m *big.Int) []*big.Int {
	for _, x := range v {
		x.Mod(x, m)
	}

	return v
}
