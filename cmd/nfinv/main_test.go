// SPDX-License-Identifier: MIT
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/report"
)

func TestRunRejectsInput(t *testing.T) {
	tests := []struct {
		name    string
		targets string
		args    []string
		kind    string
	}{
		{"not a number", "discriminant", []string{"1", "x"}, "InvalidPolynomial"},
		{"non-monic field", "field_discriminant", []string{"3", "-2", "1", "2"}, "InvalidPolynomial"},
		{"reducible", "index", []string{"-1", "0", "1"}, "InvalidPolynomial"},
		{"unknown target", "genus", []string{"5", "0", "1"}, "Internal"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := run(false, tc.targets, 0, 0, tc.args)
			require.Error(t, err)
			assert.Equal(t, tc.kind, nferr.Kind(err))
		})
	}

	err := run(false, "genus", 0, 0, []string{"5", "0", "1"})
	require.ErrorIs(t, err, report.ErrUnknownTarget)
}

func TestRunDescending(t *testing.T) {
	// 1 0 5 read descending is x² + 5.
	require.NoError(t, run(true, "field_discriminant", 1, 0, []string{"1", "0", "5"}))
	// Ascending it is 5x² + 1, which is not monic.
	err := run(false, "field_discriminant", 1, 0, []string{"1", "0", "5"})
	require.ErrorIs(t, err, nferr.ErrInvalidPolynomial)
}
