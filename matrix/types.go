// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Int is a row-major integer matrix. Rows may be appended freely; kernels
// validate rectangularity before use.
type Int [][]*big.Int

// Rat is a row-major rational matrix.
type Rat [][]*big.Rat

// NewInt allocates an r×c zero matrix.
func NewInt(r, c int) (Int, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("NewInt(%d,%d): %w", r, c, ErrBadShape)
	}
	m := make(Int, r)
	for i := range m {
		m[i] = ZeroVec(c)
	}

	return m, nil
}

// ZeroVec returns a zero integer vector of length n.
func ZeroVec(n int) []*big.Int {
	v := make([]*big.Int, n)
	for i := range v {
		v[i] = new(big.Int)
	}

	return v
}

// Identity returns the n×n identity.
func Identity(n int) Int {
	m, _ := NewInt(n, n)
	for i := 0; i < n; i++ {
		m[i][i].SetInt64(1)
	}

	return m
}

// ScalarIdentity returns d·I of size n.
func ScalarIdentity(n int, d *big.Int) Int {
	m, _ := NewInt(n, n)
	for i := 0; i < n; i++ {
		m[i][i].Set(d)
	}

	return m
}

// FromInt64 builds an Int from machine integers.
func FromInt64(rows [][]int64) Int {
	m := make(Int, len(rows))
	for i, r := range rows {
		m[i] = make([]*big.Int, len(r))
		for j, v := range r {
			m[i][j] = big.NewInt(v)
		}
	}

	return m
}

// Rows returns the number of rows.
func (m Int) Rows() int { return len(m) }

// Cols returns the number of columns (0 for an empty matrix).
func (m Int) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Clone returns a deep copy.
func (m Int) Clone() Int {
	out := make(Int, len(m))
	for i, r := range m {
		out[i] = CloneVec(r)
	}

	return out
}

// CloneVec returns a deep copy of an integer vector.
func CloneVec(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}

	return out
}

// Transpose returns mᵀ; cols must be passed for empty matrices.
func (m Int) Transpose(cols int) Int {
	out, _ := NewInt(cols, len(m))
	for i, r := range m {
		for j, v := range r {
			out[j][i].Set(v)
		}
	}

	return out
}

// Equal reports entry-wise equality (shapes included).
func (m Int) Equal(o Int) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if !VecEqual(m[i], o[i]) {
			return false
		}
	}

	return true
}

// VecEqual reports entry-wise equality of integer vectors.
func VecEqual(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// IsZeroVec reports whether every entry is zero.
func IsZeroVec(v []*big.Int) bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Rat converts m to a rational matrix.
func (m Int) Rat() Rat {
	out := make(Rat, len(m))
	for i, r := range m {
		out[i] = make([]*big.Rat, len(r))
		for j, v := range r {
			out[i][j] = new(big.Rat).SetInt(v)
		}
	}

	return out
}

// String renders rows as "[a b c]" lines.
func (m Int) String() string {
	var b strings.Builder
	for i, r := range m {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fmt.Sprint(r))
	}

	return b.String()
}

// NewRat allocates an r×c zero rational matrix.
func NewRat(r, c int) (Rat, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("NewRat(%d,%d): %w", r, c, ErrBadShape)
	}
	m := make(Rat, r)
	for i := range m {
		m[i] = make([]*big.Rat, c)
		for j := range m[i] {
			m[i][j] = new(big.Rat)
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m Rat) Rows() int { return len(m) }

// Cols returns the number of columns (0 for an empty matrix).
func (m Rat) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Clone returns a deep copy.
func (m Rat) Clone() Rat {
	out := make(Rat, len(m))
	for i, r := range m {
		out[i] = make([]*big.Rat, len(r))
		for j, v := range r {
			out[i][j] = new(big.Rat).Set(v)
		}
	}

	return out
}

// Denominator returns the least common multiple of all entry denominators.
func (m Rat) Denominator() *big.Int {
	l := big.NewInt(1)
	g := new(big.Int)
	for _, r := range m {
		for _, v := range r {
			g.GCD(nil, nil, l, v.Denom())
			l.Mul(l, v.Denom())
			l.Quo(l, g)
		}
	}

	return l
}

// Scaled returns (d·m) as an integer matrix; d must clear every denominator.
func (m Rat) Scaled(d *big.Int) Int {
	out := make(Int, len(m))
	dr := new(big.Rat).SetInt(d)
	for i, r := range m {
		out[i] = make([]*big.Int, len(r))
		for j, v := range r {
			x := new(big.Rat).Mul(v, dr)
			out[i][j] = new(big.Int).Quo(x.Num(), x.Denom())
		}
	}

	return out
}
