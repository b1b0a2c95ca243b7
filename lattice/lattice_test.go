// SPDX-License-Identifier: MIT
package lattice_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
)

func TestHNFSmall(t *testing.T) {
	t.Parallel()

	h, err := lattice.HNF(matrix.FromInt64([][]int64{{3, 1}, {1, 1}}))
	require.NoError(t, err)
	assert.True(t, h.Equal(matrix.FromInt64([][]int64{{1, 1}, {0, 2}})), "got\n%v", h)
	assert.Equal(t, 0, lattice.Det(h).Cmp(big.NewInt(2)))

	l, err := lattice.LowerHNF(matrix.FromInt64([][]int64{{3, 1}, {1, 1}}))
	require.NoError(t, err)
	assert.True(t, l.Equal(matrix.FromInt64([][]int64{{2, 0}, {1, 1}})), "got\n%v", l)

	col, err := lattice.HNF(matrix.FromInt64([][]int64{{1516}, {-154}, {-336}, {-1423}}))
	require.NoError(t, err)
	require.Len(t, col, 1)
	assert.Equal(t, 0, col[0][0].Cmp(big.NewInt(1)))

	empty, err := lattice.HNF(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	zero, err := lattice.HNF(matrix.FromInt64([][]int64{{0, 0}, {0, 0}}))
	require.NoError(t, err)
	assert.Empty(t, zero)

	_, err = lattice.HNF(matrix.FromInt64([][]int64{{1, 2}, {3}}))
	require.True(t, errors.Is(err, lattice.ErrBadShape))
}

func TestHNFCanonical(t *testing.T) {
	t.Parallel()

	base := matrix.FromInt64([][]int64{
		{4, 6, -2, 8},
		{1, -3, 5, 0},
		{7, 2, 2, -1},
		{3, 3, 9, 12},
	})
	unimodular := matrix.FromInt64([][]int64{
		{1, 2, 0, -1},
		{0, 1, 3, 0},
		{0, 0, 1, 5},
		{0, 0, 0, 1},
	})
	permuted := matrix.Int{base[2], base[0], base[3], base[1]}
	transformed, err := matrix.Mul(unimodular, base)
	require.NoError(t, err)

	want, err := lattice.HNF(base)
	require.NoError(t, err)
	for name, m := range map[string]matrix.Int{"permuted": permuted, "unimodular": transformed, "idempotent": want} {
		got, err := lattice.HNF(m)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "%s:\n%v\nwant\n%v", name, got, want)
	}

	// Structure: positive pivots, increasing pivot columns, reduced entries above.
	for i, row := range want {
		assert.Equal(t, 1, row[i].Sign())
		for j := 0; j < i; j++ {
			assert.Equal(t, 0, row[j].Sign())
			assert.True(t, want[j][i].Sign() >= 0 && want[j][i].Cmp(row[i]) < 0)
		}
	}

	lw, err := lattice.LowerHNF(base)
	require.NoError(t, err)
	lp, err := lattice.LowerHNF(transformed)
	require.NoError(t, err)
	assert.True(t, lw.Equal(lp))
	assert.True(t, lattice.IsCanonical(lw))
	assert.Equal(t, 0, lattice.Det(lw).Cmp(lattice.Det(want)))
}

func TestHNFMod(t *testing.T) {
	t.Parallel()

	m := matrix.FromInt64([][]int64{{4, 0}, {0, 6}, {2, 3}, {10, 9}})
	plain, err := lattice.HNF(m)
	require.NoError(t, err)
	mod, err := lattice.HNFMod(m, big.NewInt(12), 2)
	require.NoError(t, err)
	assert.True(t, plain.Equal(mod), "plain\n%v\nmod\n%v", plain, mod)

	lp, err := lattice.LowerHNF(m)
	require.NoError(t, err)
	lm, err := lattice.LowerHNFMod(m, big.NewInt(24), 2)
	require.NoError(t, err)
	assert.True(t, lp.Equal(lm))

	// 2Z² with modulus 2: det 4 does not divide the modulus.
	two, err := lattice.HNFMod(matrix.FromInt64([][]int64{{2, 0}}), big.NewInt(2), 2)
	require.NoError(t, err)
	assert.True(t, two.Equal(matrix.FromInt64([][]int64{{2, 0}, {0, 2}})))

	_, err = lattice.HNFMod(m, big.NewInt(0), 2)
	require.ErrorIs(t, err, lattice.ErrBadModulus)
}

func TestTransformAndKernel(t *testing.T) {
	t.Parallel()

	m := matrix.FromInt64([][]int64{{5, 0}, {7, 0}, {2, 0}})
	h, u, err := lattice.HNFWithTransform(m)
	require.NoError(t, err)
	require.Len(t, h, 1)
	um, err := matrix.Mul(u, m)
	require.NoError(t, err)
	assert.True(t, um[0][0].Cmp(h[0][0]) == 0)
	for _, row := range um[1:] {
		assert.True(t, matrix.IsZeroVec(row))
	}
	d, err := matrix.Det(u)
	require.NoError(t, err)
	assert.Equal(t, 1, new(big.Int).Abs(d).Cmp(big.NewInt(0)))
	assert.Equal(t, 0, new(big.Int).Abs(d).Cmp(big.NewInt(1)))

	k, err := lattice.Kernel(m)
	require.NoError(t, err)
	assert.Len(t, k, 2)
	for _, v := range k {
		w, err := matrix.VecMul(v, m)
		require.NoError(t, err)
		assert.True(t, matrix.IsZeroVec(w))
	}
}

func TestLowerCoords(t *testing.T) {
	t.Parallel()

	h := matrix.FromInt64([][]int64{{2, 0}, {1, 1}})
	x, ok := lattice.LowerCoords(h, []*big.Int{big.NewInt(5), big.NewInt(3)})
	require.True(t, ok)
	assert.Equal(t, "[1 3]", matrix.Int{x}.String())
	assert.False(t, lattice.Contains(h, []*big.Int{big.NewInt(1), big.NewInt(0)}))
	r := lattice.LowerReduce(h, []*big.Int{big.NewInt(7), big.NewInt(-3)})
	assert.Equal(t, "[0 0]", matrix.Int{r}.String())
	r = lattice.LowerReduce(h, []*big.Int{big.NewInt(3), big.NewInt(0)})
	assert.Equal(t, "[1 0]", matrix.Int{r}.String())
}

func TestSmith(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    [][]int64
		want []int64
	}{
		{"classic", [][]int64{{2, 4, 4}, {-6, 6, 12}, {10, -4, -16}}, []int64{2, 6, 12}},
		{"cyclic 6", [][]int64{{2, 0}, {0, 3}}, []int64{1, 6}},
		{"rank deficient", [][]int64{{2, 4}, {1, 2}}, []int64{1}},
		{"identity", [][]int64{{1, 0}, {0, 1}}, []int64{1, 1}},
		{"zero", [][]int64{{0, 0}}, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := lattice.Smith(matrix.FromInt64(tc.m))
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for i := range got {
				assert.Equal(t, 0, got[i].Cmp(big.NewInt(tc.want[i])), "d%d = %v", i, got[i])
			}
		})
	}
}

func TestLLL(t *testing.T) {
	t.Parallel()

	b := matrix.FromInt64([][]int64{{1, 1, 1}, {-1, 0, 2}, {3, 5, 6}})
	red, tr, err := lattice.LLL(b, nil)
	require.NoError(t, err)
	tb, err := matrix.Mul(tr, b)
	require.NoError(t, err)
	assert.True(t, tb.Equal(red))
	d, err := matrix.Det(tr)
	require.NoError(t, err)
	assert.Equal(t, 0, new(big.Int).Abs(d).Cmp(big.NewInt(1)))
	n0 := new(big.Int)
	for _, v := range red[0] {
		n0.Add(n0, new(big.Int).Mul(v, v))
	}
	assert.LessOrEqual(t, n0.Int64(), int64(4))

	_, _, err = lattice.LLL(matrix.FromInt64([][]int64{{1, 2}, {2, 4}}), nil)
	require.ErrorIs(t, err, lattice.ErrNotFullRank)
}
