// SPDX-License-Identifier: MIT
package order_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numfield/factor"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/order"
	"github.com/katalvlaran/numfield/poly"
)

func maximal(t *testing.T, coeffs ...int64) *order.Order {
	t.Helper()
	k, err := order.NewField(poly.FromInt64(coeffs...))
	require.NoError(t, err)
	o, err := order.MaximalOrder(k)
	require.NoError(t, err)

	return o
}

func vec(xs ...int64) []*big.Int {
	v := make([]*big.Int, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}

	return v
}

func TestMaximalOrderDiscriminants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coeffs []int64
		disc   int64
		index  int64
		r1, r2 int
	}{
		{"x^3 - x - 1", []int64{-1, -1, 0, 1}, -23, 1, 1, 1},
		{"x^2 + 2x + 37", []int64{37, 2, 1}, -4, 6, 0, 1},
		{"x^3 + 2x^2 + 3x + 4", []int64{4, 3, 2, 1}, -200, 1, 1, 1},
		{"x^4 + 2x^3 + 3x^2 + 4x + 5", []int64{5, 4, 3, 2, 1}, 10800, 1, 0, 2},
		{"x^2 + 5", []int64{5, 0, 1}, -20, 1, 0, 1},
		{"x^2 - 5", []int64{-5, 0, 1}, 5, 2, 2, 0},
		{"x^2 + 3", []int64{3, 0, 1}, -3, 2, 0, 1},
		{"x^3 - 2", []int64{-2, 0, 0, 1}, -108, 1, 1, 1},
		{"x^3 - 10", []int64{-10, 0, 0, 1}, -300, 3, 1, 1},
		{"x + 3", []int64{3, 1}, 1, 1, 1, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			o := maximal(t, tc.coeffs...)
			assert.Equal(t, big.NewInt(tc.disc).String(), o.Discriminant().String())
			assert.Equal(t, big.NewInt(tc.index).String(), o.Index().String())
			r1, r2 := o.Field().Signature()
			assert.Equal(t, tc.r1, r1)
			assert.Equal(t, tc.r2, r2)

			// index² · disc K = disc f
			chk := new(big.Int).Mul(o.Index(), o.Index())
			chk.Mul(chk, o.Discriminant())
			assert.Equal(t, 0, chk.Cmp(o.Field().Discriminant()))

			// ω_0 = 1
			assert.True(t, o.BasisElement(0).Equal(poly.FromInt64(1)))
			require.NoError(t, o.Verify(true))
		})
	}
}

func TestMaximalOrderBasis(t *testing.T) {
	t.Parallel()

	// θ = −1 + 6i, so O_K = Z[(1 + θ)/6].
	o := maximal(t, 37, 2, 1)
	w, d := o.Basis()
	assert.True(t, w.Equal(matrix.FromInt64([][]int64{{6, 0}, {1, 1}})))
	assert.Equal(t, int64(6), d.Int64())

	one := big.NewRat(1, 6)
	assert.True(t, o.BasisElement(1).Equal(poly.New(one, one)))

	// θ has coordinates (−1, 6).
	assert.True(t, matrix.VecEqual(vec(-1, 6), o.Theta()))

	// (1+θ)/6 squared is −1.
	sq, err := o.Mul(vec(0, 1), vec(0, 1))
	require.NoError(t, err)
	assert.True(t, matrix.VecEqual(vec(-1, 0), sq))

	z, err := order.PowerOrder(o.Field())
	require.NoError(t, err)
	assert.False(t, mustMaximal(t, z, 2))
	assert.False(t, mustMaximal(t, z, 3))
	assert.True(t, mustMaximal(t, o, 2))
	idx, err := z.IndexIn(o)
	require.NoError(t, err)
	assert.Equal(t, int64(6), idx.Int64())
	_, err = o.IndexIn(z)
	require.Error(t, err)
}

func mustMaximal(t *testing.T, o *order.Order, p int64) bool {
	t.Helper()
	ok, err := o.IsPMaximal(big.NewInt(p))
	require.NoError(t, err)

	return ok
}

func TestTableGaussianIntegers(t *testing.T) {
	t.Parallel()

	o := maximal(t, 1, 0, 1)
	tab := o.Table()
	require.Equal(t, 2, tab.Dim())
	assert.Equal(t, int64(-1), tab.Const(1, 1, 0).Int64())

	// (2+3i)(4+i) = 5+14i
	prod, err := tab.Mul(vec(2, 3), vec(4, 1))
	require.NoError(t, err)
	assert.True(t, matrix.VecEqual(vec(5, 14), prod))

	n, err := tab.Norm(vec(2, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(13), n.Int64())
	tr, err := tab.Trace(vec(2, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(4), tr.Int64())

	// (1+i)^4 = −4
	pw, err := tab.Pow(vec(1, 1), 4)
	require.NoError(t, err)
	assert.True(t, matrix.VecEqual(vec(-4, 0), pw))
	pm, err := tab.PowMod(vec(1, 1), big.NewInt(4), big.NewInt(3))
	require.NoError(t, err)
	assert.True(t, matrix.VecEqual(vec(2, 0), pm))

	_, err = tab.Mul(vec(1), vec(1, 2))
	require.ErrorIs(t, err, order.ErrBadElement)

	assert.True(t, tab.TraceForm().Equal(matrix.FromInt64([][]int64{{2, 0}, {0, -2}})))
}

func TestNewFieldRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    poly.Poly
	}{
		{"zero", poly.FromInt64()},
		{"constant", poly.FromInt64(7)},
		{"non-monic", poly.FromInt64(3, -2, 1, 2)},
		{"reducible", poly.FromInt64(-1, 0, 1)},
		{"reducible quartic", poly.FromInt64(4, 0, 0, 0, 1)},
		{"not squarefree", poly.FromInt64(1, 2, 1)},
		{"non-integral", poly.New(big.NewRat(1, 2), big.NewRat(0, 1), big.NewRat(1, 1))},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := order.NewField(tc.p)
			require.ErrorIs(t, err, nferr.ErrInvalidPolynomial)
			assert.Equal(t, "InvalidPolynomial", nferr.Kind(err))
		})
	}
}

type failingOracle struct{}

func (failingOracle) Factor(*big.Int) ([]factor.PrimePower, error) {
	return nil, nferr.ErrFactorizationUnavailable
}

func TestMaximalOrderFailures(t *testing.T) {
	t.Parallel()

	k, err := order.NewField(poly.FromInt64(37, 2, 1))
	require.NoError(t, err)

	_, err = order.MaximalOrder(k, order.WithMaxRounds(1))
	require.True(t, errors.Is(err, nferr.ErrNonConvergentOrder))

	_, err = order.MaximalOrder(k, order.WithOracle(failingOracle{}))
	require.ErrorIs(t, err, nferr.ErrFactorizationUnavailable)

	assert.Panics(t, func() { order.WithMaxRounds(0) })
	assert.Panics(t, func() { order.WithOracle(nil) })
}

func TestMinkowskiBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		coeffs []int64
		want   int64
	}{
		{[]int64{-1, -1, 0, 1}, 2},
		{[]int64{5, 0, 1}, 3},
		{[]int64{6, 1, 1}, 4},
		{[]int64{1, 0, 1}, 2},
		{[]int64{3, 1}, 1},
	}
	for _, tc := range tests {
		o := maximal(t, tc.coeffs...)
		assert.Equal(t, tc.want, o.MinkowskiBound().Int64(), "%v", o.Field().Poly())
	}
}

func TestCoordsRoundTrip(t *testing.T) {
	t.Parallel()

	o := maximal(t, -10, 0, 0, 1)
	for i := 0; i < o.Degree(); i++ {
		x, ok := o.FromPower(o.BasisElement(i))
		require.True(t, ok)
		assert.True(t, matrix.VecEqual(o.Table().Unit(i), x))
	}
	// θ⁵ = 10θ² reduces modulo f.
	x, ok := o.FromPower(poly.FromInt64(0, 0, 0, 0, 0, 1))
	require.True(t, ok)
	assert.True(t, o.ToPower(x).Equal(poly.FromInt64(0, 0, 10)))
	// θ/2 is not integral.
	_, ok = o.FromPower(poly.New(big.NewRat(0, 1), big.NewRat(1, 2)))
	assert.False(t, ok)
}
