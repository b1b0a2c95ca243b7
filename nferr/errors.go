// SPDX-License-Identifier: MIT

// Package nferr defines the error kinds shared by every numfield package.
//
// Every core operation returns either a value or an error wrapping exactly
// one of the sentinels below. Callers match with errors.Is; the boundary
// layer uses Kind to report the failure class.
//
// Kinds:
//
//	– ErrInvalidPolynomial        zero, constant, non-monic, non-integral,
//	                              non-squarefree or reducible defining polynomial.
//	– ErrFactorizationUnavailable the integer factorization oracle gave up.
//	– ErrNonConvergentOrder       Round 2 exceeded its iteration bound.
//	– ErrInvariantViolation       an exact invariant failed; always a defect.
//	– ErrRelationSearchExhausted  the class group search ran out of radius
//	                              before the relation lattice had full rank.
package nferr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPolynomial rejects a defining polynomial that cannot define a number field.
	ErrInvalidPolynomial = errors.New("numfield: invalid polynomial")

	// ErrFactorizationUnavailable signals that an integer could not be factored within the effort bound.
	ErrFactorizationUnavailable = errors.New("numfield: factorization unavailable")

	// ErrNonConvergentOrder signals that the order enlargement loop exceeded its bound.
	ErrNonConvergentOrder = errors.New("numfield: order enlargement did not converge")

	// ErrInvariantViolation signals an internal-consistency failure.
	ErrInvariantViolation = errors.New("numfield: invariant violation")

	// ErrRelationSearchExhausted signals that not enough class group relations were found.
	ErrRelationSearchExhausted = errors.New("numfield: relation search exhausted")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidPolynomial, "InvalidPolynomial"},
	{ErrFactorizationUnavailable, "FactorizationUnavailable"},
	{ErrNonConvergentOrder, "NonConvergentOrder"},
	{ErrInvariantViolation, "InvariantViolation"},
	{ErrRelationSearchExhausted, "RelationSearchExhausted"},
}

// Kind returns the name of the error kind wrapped by err, or "Internal"
// when err wraps none of the package sentinels. Kind(nil) is "".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}

	return "Internal"
}

// Violation builds an ErrInvariantViolation carrying a formatted cause.
func Violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}

// Invalid builds an ErrInvalidPolynomial carrying a formatted cause.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPolynomial, fmt.Sprintf(format, args...))
}

// Wrap tags err with an operation name, preserving errors.Is matching.
// Wrap(op, nil) is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}
