// SPDX-License-Identifier: MIT
package ideal

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroIdeal is returned when the generators span only zero.
	ErrZeroIdeal = errors.New("ideal: zero ideal")

	// ErrNotIntegral is returned by operations restricted to integral ideals.
	ErrNotIntegral = errors.New("ideal: ideal is not integral")

	// ErrNotIdeal is returned when a lattice is not closed under the order.
	ErrNotIdeal = errors.New("ideal: lattice is not an ideal")

	// ErrBadGenerator is returned for a generator of the wrong dimension.
	ErrBadGenerator = errors.New("ideal: generator has wrong dimension")
)

const (
	opFromGenerators = "FromGenerators"
	opFromBasis      = "FromBasis"
	opMul            = "Mul"
	opAdd            = "Add"
	opInverse        = "Inverse"
	opPow            = "Pow"
	opValuation      = "Valuation"
)

func idealErrorf(op string, err error) error {
	return fmt.Errorf("ideal.%s: %w", op, err)
}
