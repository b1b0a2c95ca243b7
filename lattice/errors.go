// SPDX-License-Identifier: MIT
package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for ragged rows.
	ErrBadShape = errors.New("lattice: invalid shape")

	// ErrNotFullRank is returned when a full-rank basis was required.
	ErrNotFullRank = errors.New("lattice: basis is not of full rank")

	// ErrBadModulus is returned for a non-positive modulus.
	ErrBadModulus = errors.New("lattice: modulus must be positive")
)

const (
	opHNF       = "HNF"
	opHNFMod    = "HNFMod"
	opTransform = "HNFWithTransform"
	opKernel    = "Kernel"
	opSmith     = "Smith"
	opLLL       = "LLL"
)

func latticeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
