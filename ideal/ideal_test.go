// SPDX-License-Identifier: MIT
package ideal_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numfield/ideal"
	"github.com/katalvlaran/numfield/matrix"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/order"
	"github.com/katalvlaran/numfield/poly"
)

func vec(xs ...int64) []*big.Int {
	v := make([]*big.Int, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}

	return v
}

func ring(t *testing.T, coeffs ...int64) *ideal.Ring {
	t.Helper()
	k, err := order.NewField(poly.FromInt64(coeffs...))
	require.NoError(t, err)
	o, err := order.MaximalOrder(k)
	require.NoError(t, err)

	return ideal.NewRing(o)
}

func gen(t *testing.T, r *ideal.Ring, gens ...[]*big.Int) ideal.Ideal {
	t.Helper()
	a, err := r.FromGenerators(gens...)
	require.NoError(t, err)

	return a
}

func mul(t *testing.T, r *ideal.Ring, a, b ideal.Ideal) ideal.Ideal {
	t.Helper()
	c, err := r.Mul(a, b)
	require.NoError(t, err)

	return c
}

// Z[√−5]: basis 1, √−5.
func TestSqrtMinusFive(t *testing.T) {
	t.Parallel()

	r := ring(t, 5, 0, 1)
	p2 := gen(t, r, vec(2, 0), vec(1, 1))
	p3 := gen(t, r, vec(3, 0), vec(1, 1))
	two := gen(t, r, vec(2, 0))

	h, d := p2.Basis()
	assert.True(t, h.Equal(matrix.FromInt64([][]int64{{2, 0}, {1, 1}})))
	assert.Equal(t, int64(1), d.Int64())
	assert.Equal(t, "2", p2.Norm().RatString())
	assert.Equal(t, "2", p2.Min().RatString())

	assert.True(t, mul(t, r, p2, p2).Equal(two))

	// (1 + √−5) = p2·p3
	alpha, err := r.Principal(vec(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "6", alpha.Norm().RatString())
	assert.True(t, mul(t, r, p2, p3).Equal(alpha))

	assert.True(t, p2.Contains(vec(1, 1)))
	assert.False(t, p2.Contains(vec(1, 0)))
	assert.True(t, p2.Includes(two))
	assert.False(t, two.Includes(p2))

	sum, err := r.Add(p2, p3)
	require.NoError(t, err)
	assert.True(t, sum.Equal(r.One()))
	sum, err = r.Add(p2, two)
	require.NoError(t, err)
	assert.True(t, sum.Equal(p2))

	v, err := r.Valuation(p2, two)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	v, err = r.ElementValuation(p2, vec(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = r.ElementValuation(p3, vec(2, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestInverseAndPow(t *testing.T) {
	t.Parallel()

	r := ring(t, 5, 0, 1)
	p2 := gen(t, r, vec(2, 0), vec(1, 1))

	inv, err := r.Inverse(p2)
	require.NoError(t, err)
	assert.False(t, inv.IsIntegral())
	assert.Equal(t, "1/2", inv.Norm().RatString())
	assert.True(t, mul(t, r, p2, inv).Equal(r.One()))
	// p2⁻¹ = p2/2
	half, err := r.Scalar(big.NewRat(1, 2))
	require.NoError(t, err)
	assert.True(t, inv.Equal(mul(t, r, p2, half)))

	sq, err := r.Pow(p2, 2)
	require.NoError(t, err)
	assert.True(t, sq.Equal(gen(t, r, vec(2, 0))))
	neg, err := r.Pow(p2, -2)
	require.NoError(t, err)
	assert.True(t, neg.Equal(half))
	zero, err := r.Pow(p2, 0)
	require.NoError(t, err)
	assert.True(t, zero.Equal(r.One()))

	q, err := r.Div(sq, p2)
	require.NoError(t, err)
	assert.True(t, q.Equal(p2))

	invInv, err := r.Inverse(inv)
	require.NoError(t, err)
	assert.True(t, invInv.Equal(p2))
}

func TestIdealLaws(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coeffs []int64
		gens   [][][]*big.Int
	}{
		{"x^3 - x - 1", []int64{-1, -1, 0, 1}, [][][]*big.Int{
			{vec(5, 0, 0), vec(3, 1, 0)},
			{vec(7, 0, 0), vec(2, 1, 0)},
			{vec(1, 2, 3)},
		}},
		{"x^2 + x + 6", []int64{6, 1, 1}, [][][]*big.Int{
			{vec(2, 0), vec(0, 1)},
			{vec(3, 0), vec(0, 1)},
			{vec(1, 2)},
		}},
		{"x^3 - 10", []int64{-10, 0, 0, 1}, [][][]*big.Int{
			{vec(5, 0, 0), vec(0, 1, 0)},
			{vec(2, 0, 0), vec(0, 1, 0)},
			{vec(4, 1, 1)},
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := ring(t, tc.coeffs...)
			a := gen(t, r, tc.gens[0]...)
			b := gen(t, r, tc.gens[1]...)
			c := gen(t, r, tc.gens[2]...)

			ab := mul(t, r, a, b)
			assert.True(t, ab.Equal(mul(t, r, b, a)), "commutative")
			assert.True(t, mul(t, r, ab, c).Equal(mul(t, r, a, mul(t, r, b, c))), "associative")
			assert.True(t, mul(t, r, a, r.One()).Equal(a), "identity")

			want := new(big.Rat).Mul(a.Norm(), b.Norm())
			assert.Equal(t, 0, ab.Norm().Cmp(want), "norm multiplicative")

			for _, x := range []ideal.Ideal{a, b, c, ab} {
				inv, err := r.Inverse(x)
				require.NoError(t, err)
				assert.True(t, mul(t, r, x, inv).Equal(r.One()))
				assert.Equal(t, 0, new(big.Rat).Mul(x.Norm(), inv.Norm()).Cmp(big.NewRat(1, 1)))
			}
			assert.Equal(t, a.Fingerprint(), mul(t, r, a, r.One()).Fingerprint())
			assert.NotEqual(t, a.Fingerprint(), ab.Fingerprint())
		})
	}
}

func TestFromGeneratorsErrors(t *testing.T) {
	t.Parallel()

	r := ring(t, 1, 0, 1)
	_, err := r.FromGenerators(vec(0, 0))
	require.ErrorIs(t, err, ideal.ErrZeroIdeal)
	_, err = r.FromGenerators(vec(1, 0, 0))
	require.ErrorIs(t, err, ideal.ErrBadGenerator)
	_, err = r.Scalar(new(big.Rat))
	require.ErrorIs(t, err, ideal.ErrZeroIdeal)
	_, err = r.Valuation(r.One(), r.One())
	require.ErrorIs(t, err, nferr.ErrInvariantViolation)
}

func TestNonInvertible(t *testing.T) {
	t.Parallel()

	// In Z[√−3] the ideal (2, 1+√−3) satisfies P² = 2P and has no inverse.
	k, err := order.NewField(poly.FromInt64(3, 0, 1))
	require.NoError(t, err)
	z, err := order.PowerOrder(k)
	require.NoError(t, err)
	r := ideal.NewRing(z)
	p := gen(t, r, vec(2, 0), vec(1, 1))
	assert.True(t, mul(t, r, p, p).Equal(mul(t, r, gen(t, r, vec(2, 0)), p)))
	_, err = r.Inverse(p)
	require.ErrorIs(t, err, nferr.ErrInvariantViolation)
}

func TestFromBasis(t *testing.T) {
	t.Parallel()

	r := ring(t, 5, 0, 1)
	p2, err := r.FromBasis(matrix.FromInt64([][]int64{{1, 1}, {2, 0}, {0, 2}}))
	require.NoError(t, err)
	assert.True(t, p2.Equal(gen(t, r, vec(2, 0), vec(1, 1))))

	_, err = r.FromBasis(matrix.FromInt64([][]int64{{2, 0}, {0, 1}}))
	require.ErrorIs(t, err, ideal.ErrNotIdeal)
	_, err = r.FromBasis(matrix.FromInt64([][]int64{{2, 0}}))
	require.ErrorIs(t, err, ideal.ErrZeroIdeal)
}

func TestFingerprintDistinguishesShape(t *testing.T) {
	t.Parallel()

	q := ring(t, 3, 1)
	zi := ring(t, 1, 0, 1)
	cube := ring(t, -2, 0, 0, 1)
	scalar := func(r *ideal.Ring, a, b int64) ideal.Ideal {
		x, err := r.Scalar(big.NewRat(a, b))
		require.NoError(t, err)
		return x
	}
	ideals := []ideal.Ideal{
		q.One(), zi.One(), cube.One(),
		scalar(q, 1, 256), scalar(q, 256, 1), scalar(q, 1, 2),
		scalar(zi, 1, 256), scalar(zi, 256, 1), scalar(zi, 1, 2),
		scalar(cube, 1, 3), scalar(cube, 3, 1),
	}
	seen := map[[32]byte]int{}
	for i, a := range ideals {
		fp := a.Fingerprint()
		if j, ok := seen[fp]; ok {
			t.Fatalf("ideals %d (%v) and %d (%v) share a fingerprint", j, ideals[j], i, a)
		}
		seen[fp] = i
	}
	assert.Equal(t, scalar(zi, 1, 2).Fingerprint(), scalar(zi, 2, 4).Fingerprint())
}
