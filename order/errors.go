// SPDX-License-Identifier: MIT
package order

import (
	"errors"
	"fmt"
)

// ErrBadElement is returned when an element vector has the wrong length.
var ErrBadElement = errors.New("order: element has wrong dimension")

const (
	opNewField    = "NewField"
	opPowerOrder  = "PowerOrder"
	opMaximal     = "MaximalOrder"
	opRadical     = "Radical"
	opMultipliers = "Multipliers"
	opTable       = "Table"
	opIndex       = "Index"
	opVerify      = "Verify"
)

// orderErrorf tags err with the operation name.
func orderErrorf(op string, err error) error {
	return fmt.Errorf("order.%s: %w", op, err)
}
