// SPDX-License-Identifier: MIT
package classgroup_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numfield/classgroup"
	"github.com/katalvlaran/numfield/ideal"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/order"
	"github.com/katalvlaran/numfield/poly"
)

func ring(t *testing.T, coeffs ...int64) *ideal.Ring {
	t.Helper()
	k, err := order.NewField(poly.FromInt64(coeffs...))
	require.NoError(t, err)
	o, err := order.MaximalOrder(k)
	require.NoError(t, err)

	return ideal.NewRing(o)
}

func ints(g *classgroup.ClassGroup) []int64 {
	out := make([]int64, len(g.Invariants))
	for i, d := range g.Invariants {
		out[i] = d.Int64()
	}

	return out
}

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coeffs []int64
		want   []int64
		number int64
		str    string
	}{
		{"x^3-x-1", []int64{-1, -1, 0, 1}, nil, 1, "trivial"},
		{"Z[i]", []int64{1, 0, 1}, nil, 1, "trivial"},
		{"Q(i) via x^2+2x+37", []int64{37, 2, 1}, nil, 1, "trivial"},
		{"Q(sqrt -5)", []int64{5, 0, 1}, []int64{2}, 2, "Z/2"},
		{"Q(sqrt -23)", []int64{6, 1, 1}, []int64{3}, 3, "Z/3"},
		{"Q(sqrt -14)", []int64{14, 0, 1}, []int64{4}, 4, "Z/4"},
		{"Q(sqrt -21)", []int64{21, 0, 1}, []int64{2, 2}, 4, "Z/2 x Z/2"},
		{"Q(sqrt 10)", []int64{-10, 0, 1}, []int64{2}, 2, "Z/2"},
		{"Q(sqrt 79)", []int64{-79, 0, 1}, []int64{3}, 3, "Z/3"},
		{"Q(sqrt 82)", []int64{-82, 0, 1}, []int64{4}, 4, "Z/4"},
		{"Q(sqrt 223)", []int64{-223, 0, 1}, []int64{3}, 3, "Z/3"},
		{"Q(cbrt 11)", []int64{-11, 0, 0, 1}, []int64{2}, 2, "Z/2"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := ring(t, tc.coeffs...)
			g, err := classgroup.Compute(context.Background(), r, classgroup.WithWorkers(2))
			require.NoError(t, err)
			if tc.want == nil {
				assert.Empty(t, g.Invariants)
			} else {
				assert.Equal(t, tc.want, ints(g))
			}
			assert.Equal(t, tc.number, g.Number.Int64())
			assert.Equal(t, tc.str, g.String())
			assert.Equal(t, 0, g.Bound.Cmp(r.Order().MinkowskiBound()))
			for _, q := range g.FactorBase {
				assert.LessOrEqual(t, q.Norm().Cmp(g.Bound), 0)
			}
		})
	}
}

func TestComputeDivisibilityChain(t *testing.T) {
	t.Parallel()

	g, err := classgroup.Compute(context.Background(), ring(t, 21, 0, 1))
	require.NoError(t, err)
	for i := 1; i < len(g.Invariants); i++ {
		m := new(big.Int).Mod(g.Invariants[i], g.Invariants[i-1])
		assert.Zero(t, m.Sign())
	}
}

func TestComputeBoundNotMachineSized(t *testing.T) {
	t.Parallel()

	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	_, err := classgroup.Compute(context.Background(), ring(t, 5, 0, 1), classgroup.WithBound(huge))
	require.ErrorIs(t, err, nferr.ErrRelationSearchExhausted)
	assert.Equal(t, "RelationSearchExhausted", nferr.Kind(err))
}

func TestComputeCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := classgroup.Compute(ctx, ring(t, 5, 0, 1))
	require.ErrorIs(t, err, context.Canceled)
}

func TestIsPrincipal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coeffs []int64
		gens   [][]int64
		want   bool
	}{
		{"(2, 1+sqrt -5)", []int64{5, 0, 1}, [][]int64{{2, 0}, {1, 1}}, false},
		{"(3, 1+sqrt -5)", []int64{5, 0, 1}, [][]int64{{3, 0}, {1, 1}}, false},
		{"(1+sqrt -5)", []int64{5, 0, 1}, [][]int64{{1, 1}}, true},
		{"(1+i)", []int64{1, 0, 1}, [][]int64{{2, 0}, {1, 1}}, true},
		{"(5, 2+i)", []int64{1, 0, 1}, [][]int64{{5, 0}, {2, 1}}, true},
		{"unit ideal", []int64{-1, -1, 0, 1}, [][]int64{{1, 0, 0}}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := ring(t, tc.coeffs...)
			gens := make([][]*big.Int, len(tc.gens))
			for i, g := range tc.gens {
				gens[i] = make([]*big.Int, len(g))
				for j, c := range g {
					gens[i][j] = big.NewInt(c)
				}
			}
			a, err := r.FromGenerators(gens...)
			require.NoError(t, err)
			alpha, ok, err := classgroup.IsPrincipal(r, a, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
			if ok {
				b, err := r.Principal(alpha)
				require.NoError(t, err)
				assert.True(t, a.Equal(b), "generator %v spans %v, want %v", alpha, b, a)
			}
		})
	}
}

func TestIsPrincipalRejectsFractional(t *testing.T) {
	t.Parallel()

	r := ring(t, 1, 0, 1)
	a, err := r.Scalar(big.NewRat(1, 2))
	require.NoError(t, err)
	_, _, err = classgroup.IsPrincipal(r, a, 1)
	require.ErrorIs(t, err, ideal.ErrNotIntegral)
}

func TestOptionsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { classgroup.WithWorkers(0) })
	assert.Panics(t, func() { classgroup.WithMaxRadius(0) })
	assert.Panics(t, func() { classgroup.WithPrincipalRadius(0) })
	assert.Panics(t, func() { classgroup.WithBound(nil) })
	assert.Panics(t, func() { classgroup.WithBound(big.NewInt(0)) })

	o := classgroup.DefaultOptions()
	classgroup.WithMaxRadius(3)(&o)
	assert.Equal(t, 3, o.MaxRadius)
}

// A short element search either ends certified or reports exhaustion.
func TestComputeSmallRadius(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coeffs []int64
		number int64
	}{
		{"Q(sqrt 223)", []int64{-223, 0, 1}, 3},
		{"Q(sqrt 82)", []int64{-82, 0, 1}, 4},
		{"Q(sqrt -14)", []int64{14, 0, 1}, 4},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := ring(t, tc.coeffs...)
			for radius := 1; radius <= 3; radius++ {
				g, err := classgroup.Compute(context.Background(), r, classgroup.WithMaxRadius(radius))
				if err != nil {
					require.ErrorIs(t, err, nferr.ErrRelationSearchExhausted, "radius %d", radius)
					continue
				}
				assert.Equal(t, tc.number, g.Number.Int64(), "radius %d", radius)
			}
		})
	}
}
