// SPDX-License-Identifier: MIT
package factor_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numfield/factor"
	"github.com/katalvlaran/numfield/nferr"
)

func TestFactor(t *testing.T) {
	t.Parallel()

	o := factor.New()
	tests := []struct {
		name string
		n    int64
		want []factor.PrimePower
	}{
		{"one", 1, nil},
		{"minus one", -1, nil},
		{"prime", 1000003, []factor.PrimePower{{P: big.NewInt(1000003), E: 1}}},
		{"disc", -1132, []factor.PrimePower{{P: big.NewInt(2), E: 2}, {P: big.NewInt(283), E: 1}}},
		{"large", 36355439941184, []factor.PrimePower{
			{P: big.NewInt(2), E: 6}, {P: big.NewInt(7), E: 1}, {P: big.NewInt(13), E: 1},
			{P: big.NewInt(149), E: 1}, {P: big.NewInt(41894959), E: 1},
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := o.Factor(big.NewInt(tc.n))
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for i := range got {
				assert.Equal(t, 0, got[i].P.Cmp(tc.want[i].P))
				assert.Equal(t, tc.want[i].E, got[i].E)
			}
		})
	}

	_, err := o.Factor(new(big.Int))
	require.ErrorIs(t, err, factor.ErrZero)
}

func TestFactorEffortBound(t *testing.T) {
	t.Parallel()

	// Product of two primes above the trial bound with a tiny effort bound.
	p := big.NewInt(1000003)
	q := big.NewInt(1000033)
	n := new(big.Int).Mul(p, q)
	o := factor.New(factor.WithTrialBound(100), factor.WithMaxBits(8))
	_, err := o.Factor(n)
	require.True(t, errors.Is(err, nferr.ErrFactorizationUnavailable))

	// A prime is never a failure, whatever the bound.
	got, err := o.Factor(p)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// With room to work the same product splits.
	got, err = factor.New(factor.WithTrialBound(100)).Factor(n)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].P.Cmp(p))
	assert.Equal(t, 0, got[1].P.Cmp(q))
}

func TestOptionsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { factor.WithTrialBound(1) })
	assert.Panics(t, func() { factor.WithMaxBits(0) })
}

func TestPrimesAndValuation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}, factor.Primes(50))
	assert.Nil(t, factor.Primes(1))
	assert.Equal(t, 6, factor.Valuation(big.NewInt(36355439941184), big.NewInt(2)))
	assert.Equal(t, 0, factor.Valuation(big.NewInt(9), big.NewInt(2)))
}
