// SPDX-License-Identifier: MIT
package poly

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when dividing by the zero polynomial.
var ErrDivisionByZero = errors.New("poly: division by zero polynomial")

const (
	opDivMod       = "DivMod"
	opResultant    = "Resultant"
	opDiscriminant = "Discriminant"
	opRealRoots    = "RealRoots"
	opIrreducible  = "IsIrreducible"
	opHensel       = "HenselLift"
)

func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
