// SPDX-License-Identifier: MIT
package primedecomp_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numfield/factor"
	"github.com/katalvlaran/numfield/gfp"
	"github.com/katalvlaran/numfield/ideal"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/order"
	"github.com/katalvlaran/numfield/poly"
	"github.com/katalvlaran/numfield/primedecomp"
)

func ring(t *testing.T, coeffs ...int64) *ideal.Ring {
	t.Helper()
	k, err := order.NewField(poly.FromInt64(coeffs...))
	require.NoError(t, err)
	o, err := order.MaximalOrder(k)
	require.NoError(t, err)

	return ideal.NewRing(o)
}

type ef struct{ e, f int }

func shape(ps []primedecomp.Prime) []ef {
	out := make([]ef, len(ps))
	for i, q := range ps {
		out[i] = ef{q.E, q.F}
	}

	return out
}

func TestDecompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coeffs []int64
		p      int64
		want   []ef
		method primedecomp.Method
	}{
		{"Z[i] inert", []int64{1, 0, 1}, 3, []ef{{1, 2}}, primedecomp.KummerDedekind},
		{"Z[i] split", []int64{1, 0, 1}, 5, []ef{{1, 1}, {1, 1}}, primedecomp.KummerDedekind},
		{"Z[i] ramified", []int64{1, 0, 1}, 2, []ef{{2, 1}}, primedecomp.KummerDedekind},
		{"x^3-x-1 at 23", []int64{-1, -1, 0, 1}, 23, []ef{{1, 1}, {2, 1}}, primedecomp.KummerDedekind},
		{"x^3-x-1 at 5", []int64{-1, -1, 0, 1}, 5, []ef{{1, 1}, {1, 2}}, primedecomp.KummerDedekind},
		{"Q(i) via x^2+2x+37 at 2", []int64{37, 2, 1}, 2, []ef{{2, 1}}, primedecomp.BuchmannLenstra},
		{"Q(i) via x^2+2x+37 at 3", []int64{37, 2, 1}, 3, []ef{{1, 2}}, primedecomp.BuchmannLenstra},
		{"Q(i) via x^2+2x+37 at 5", []int64{37, 2, 1}, 5, []ef{{1, 1}, {1, 1}}, primedecomp.KummerDedekind},
		{"cube root of 10 at 3", []int64{-10, 0, 0, 1}, 3, []ef{{1, 1}, {2, 1}}, primedecomp.BuchmannLenstra},
		{"cube root of 10 at 2", []int64{-10, 0, 0, 1}, 2, []ef{{3, 1}}, primedecomp.KummerDedekind},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := ring(t, tc.coeffs...)
			p := big.NewInt(tc.p)
			got, err := primedecomp.Decompose(r, p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, shape(got))
			for _, q := range got {
				assert.Equal(t, tc.method, q.Method)
				assert.Equal(t, 0, q.Ideal.Norm().Cmp(new(big.Rat).SetInt(q.Norm())))
			}

			back, err := primedecomp.Recombine(r, got)
			require.NoError(t, err)
			pO, err := r.Scalar(new(big.Rat).SetInt(p))
			require.NoError(t, err)
			assert.True(t, back.Equal(pO))
		})
	}
}

func TestSplitPrimesAreDistinct(t *testing.T) {
	t.Parallel()

	r := ring(t, 1, 0, 1)
	got, err := primedecomp.Decompose(r, big.NewInt(5))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].Ideal.Equal(got[1].Ideal))
	// 2 + i lies in exactly one of them.
	x := []*big.Int{big.NewInt(2), big.NewInt(1)}
	assert.NotEqual(t, got[0].Ideal.Contains(x), got[1].Ideal.Contains(x))
}

func TestSumEF(t *testing.T) {
	t.Parallel()

	fields := [][]int64{
		{-1, -1, 0, 1},
		{5, 4, 3, 2, 1},
		{-10, 0, 0, 1},
		{37, 2, 1},
		{6, 1, 1},
	}
	for _, coeffs := range fields {
		r := ring(t, coeffs...)
		for _, p := range factor.Primes(40) {
			got, err := primedecomp.Decompose(r, big.NewInt(p))
			require.NoError(t, err, "%v at %d", coeffs, p)
			sum := 0
			for _, q := range got {
				sum += q.E * q.F
			}
			assert.Equal(t, r.Degree(), sum, "%v at %d", coeffs, p)
		}
	}
}

func TestDecomposeAll(t *testing.T) {
	t.Parallel()

	r := ring(t, 1, 0, 1)
	ps := []*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(5), big.NewInt(7), big.NewInt(13)}
	got, err := primedecomp.DecomposeAll(context.Background(), r, ps, 2)
	require.NoError(t, err)
	require.Len(t, got, len(ps))
	counts := []int{1, 1, 2, 1, 2}
	for i := range ps {
		assert.Len(t, got[i], counts[i], "p=%v", ps[i])
	}

	_, err = primedecomp.DecomposeAll(context.Background(), r, []*big.Int{big.NewInt(3), big.NewInt(9)}, 0)
	require.ErrorIs(t, err, gfp.ErrNotPrime)
}

func TestMethod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "kummer-dedekind", primedecomp.KummerDedekind.String())
	assert.Equal(t, "buchmann-lenstra", primedecomp.BuchmannLenstra.String())
	assert.Equal(t, "Method(7)", primedecomp.Method(7).String())

	r := ring(t, 37, 2, 1)
	assert.Equal(t, primedecomp.BuchmannLenstra, primedecomp.MethodFor(r.Order(), big.NewInt(3)))
	assert.Equal(t, primedecomp.KummerDedekind, primedecomp.MethodFor(r.Order(), big.NewInt(7)))
}

func TestDecomposeNonMaximalOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coeffs []int64
		p      int64
		want   []ef // nil: the order is not p-maximal
	}{
		{"Z[sqrt -3] at 2", []int64{3, 0, 1}, 2, nil},
		{"Z[sqrt -3] at 3", []int64{3, 0, 1}, 3, []ef{{2, 1}}},
		{"Z[6i-1] at 2", []int64{37, 2, 1}, 2, nil},
		{"Z[6i-1] at 3", []int64{37, 2, 1}, 3, nil},
		{"Z[6i-1] at 5", []int64{37, 2, 1}, 5, []ef{{1, 1}, {1, 1}}},
		{"Z[cbrt 10] at 3", []int64{-10, 0, 0, 1}, 3, nil},
		{"Z[cbrt 10] at 2", []int64{-10, 0, 0, 1}, 2, []ef{{3, 1}}},
		{"Z[cbrt 10] at 5", []int64{-10, 0, 0, 1}, 5, []ef{{3, 1}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			k, err := order.NewField(poly.FromInt64(tc.coeffs...))
			require.NoError(t, err)
			o, err := order.PowerOrder(k)
			require.NoError(t, err)
			got, err := primedecomp.Decompose(ideal.NewRing(o), big.NewInt(tc.p))
			if tc.want == nil {
				require.ErrorIs(t, err, nferr.ErrInvariantViolation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, shape(got))
		})
	}
}
