// SPDX-License-Identifier: MIT
package primedecomp

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numfield/ideal"
)

// Method tags how a decomposition was obtained.
type Method int

const (
	// KummerDedekind factors f modulo p.
	KummerDedekind Method = iota

	// BuchmannLenstra splits O/rad(pO).
	BuchmannLenstra
)

func (m Method) String() string {
	switch m {
	case KummerDedekind:
		return "kummer-dedekind"
	case BuchmannLenstra:
		return "buchmann-lenstra"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Prime is a prime ideal above the rational prime P.
type Prime struct {
	Ideal  ideal.Ideal
	P      *big.Int
	E      int // ramification index
	F      int // residue degree
	Method Method
}

// Norm returns N(P) = pᶠ.
func (q Prime) Norm() *big.Int {
	return new(big.Int).Exp(q.P, big.NewInt(int64(q.F)), nil)
}

func (q Prime) String() string {
	return fmt.Sprintf("P(%v, e=%d, f=%d)", q.P, q.E, q.F)
}
