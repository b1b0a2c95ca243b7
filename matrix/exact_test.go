// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numfield/matrix"
)

func TestNewIntAndValidators(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewInt(-1, 2)
	require.True(t, errors.Is(err, matrix.ErrBadShape))

	m, err := matrix.NewInt(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	require.ErrorIs(t, matrix.ValidateSquare(m), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateRect(matrix.FromInt64([][]int64{{1}, {1, 2}})), matrix.ErrBadShape)

	_, err = matrix.Mul(m, m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulTranspose(t *testing.T) {
	t.Parallel()

	a := matrix.FromInt64([][]int64{{1, 2}, {3, 4}})
	b := matrix.FromInt64([][]int64{{0, 1}, {1, 0}})
	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, ab.Equal(matrix.FromInt64([][]int64{{2, 1}, {4, 3}})))
	assert.True(t, a.Transpose(2).Equal(matrix.FromInt64([][]int64{{1, 3}, {2, 4}})))

	v, err := matrix.VecMul([]*big.Int{big.NewInt(1), big.NewInt(-1)}, a)
	require.NoError(t, err)
	assert.Equal(t, "[-2 -2]", matrix.Int{v}.String())
}

func TestInverseSolve(t *testing.T) {
	t.Parallel()

	a := matrix.FromInt64([][]int64{{0, 2}, {3, 1}}).Rat()
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	// a⁻¹ = 1/(−6)·[[1, −2], [−3, 0]]
	assert.Equal(t, "-1/6", inv[0][0].RatString())
	assert.Equal(t, "1/3", inv[0][1].RatString())
	assert.Equal(t, "1/2", inv[1][0].RatString())
	assert.Equal(t, "0", inv[1][1].RatString())

	x, err := matrix.Solve(a, []*big.Rat{big.NewRat(3, 1), big.NewRat(5, 1)})
	require.NoError(t, err)
	back, err := matrix.RatVecMul(x, a)
	require.NoError(t, err)
	assert.Equal(t, "3", back[0].RatString())
	assert.Equal(t, "5", back[1].RatString())

	_, err = matrix.Inverse(matrix.FromInt64([][]int64{{1, 2}, {2, 4}}).Rat())
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestDet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		m    [][]int64
		want int64
	}{
		{[][]int64{{3, 1}, {1, 1}}, 2},
		{[][]int64{{0, 1}, {1, 0}}, -1},
		{[][]int64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}, 4},
		{[][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{[][]int64{{0, 0, 1}, {0, 2, 0}, {3, 0, 0}}, -6},
	}
	for _, tc := range tests {
		d, err := matrix.Det(matrix.FromInt64(tc.m))
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.Int64(), "%v", tc.m)
	}
}

func TestKernelModP(t *testing.T) {
	t.Parallel()

	p := big.NewInt(5)
	m := matrix.FromInt64([][]int64{{1, 2}, {2, 4}, {0, 5}})
	k, err := matrix.KernelModP(m, p)
	require.NoError(t, err)
	assert.Len(t, k, 2)
	for _, u := range k {
		v, err := matrix.VecMul(u, m)
		require.NoError(t, err)
		matrix.ModVec(v, p)
		assert.True(t, matrix.IsZeroVec(v))
	}
	r, err := matrix.RankModP(m, p)
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	x, err := matrix.SolveModP(matrix.FromInt64([][]int64{{1, 1}, {0, 1}}), []*big.Int{big.NewInt(2), big.NewInt(3)}, p)
	require.NoError(t, err)
	assert.Equal(t, "[2 1]", matrix.Int{x}.String())
}

func TestEchelonModP(t *testing.T) {
	t.Parallel()

	p := big.NewInt(5)
	m := matrix.FromInt64([][]int64{{2, 4, 1}, {1, 2, 4}, {0, 0, 5}})
	e, piv, err := matrix.EchelonModP(m, p)
	require.NoError(t, err)
	// Row 1 ≡ 3·row 0 (mod 5) in the first two columns; the third column separates them.
	assert.True(t, e.Equal(matrix.FromInt64([][]int64{{1, 2, 0}, {0, 0, 1}})))
	assert.Equal(t, []int{0, 2}, piv)
}
