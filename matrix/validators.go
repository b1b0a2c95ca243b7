// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape checks used by every kernel.
//   - Return wrapped sentinels so call sites can match with errors.Is.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRect checks that every row of m has the same length.
// An empty matrix is rectangular.
func ValidateRect(m Int) error {
	for i := range m {
		if len(m[i]) != len(m[0]) {
			return validatorErrorf("ValidateRect", fmt.Errorf("row %d has %d entries, want %d: %w", i, len(m[i]), len(m[0]), ErrBadShape))
		}
	}

	return nil
}

// ValidateSquare checks that m is rectangular with Rows == Cols.
func ValidateSquare(m Int) error {
	if err := ValidateRect(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateRatSquare checks that a rational matrix is square.
func ValidateRatSquare(m Rat) error {
	for i := range m {
		if len(m[i]) != len(m) {
			return validatorErrorf("ValidateRatSquare", fmt.Errorf("row %d: %w", i, ErrNonSquare))
		}
	}

	return nil
}

// ValidateMulShape checks that a·b is defined.
func ValidateMulShape(a, b Int) error {
	if err := ValidateRect(a); err != nil {
		return err
	}
	if err := ValidateRect(b); err != nil {
		return err
	}
	if len(a) > 0 && a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShape", fmt.Errorf("%d cols vs %d rows: %w", a.Cols(), b.Rows(), ErrDimensionMismatch))
	}

	return nil
}
