// SPDX-License-Identifier: MIT
package gfp

import "errors"

var (
	// ErrNotPrime is returned by NewField for a modulus that is not prime.
	ErrNotPrime = errors.New("gfp: modulus is not prime")

	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("gfp: division by zero polynomial")
)
