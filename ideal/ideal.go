// SPDX-License-Identifier: MIT
package ideal

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/katalvlaran/numfield/lattice"
	"github.com/katalvlaran/numfield/matrix"
)

// Ideal is the lattice H/Den in order coordinates.
type Ideal struct {
	h   matrix.Int
	den *big.Int
}

// normalize divides out gcd(content h, den).
func normalize(h matrix.Int, den *big.Int) Ideal {
	g := new(big.Int).Set(den)
	for _, row := range h {
		for _, v := range row {
			g.GCD(nil, nil, g, v)
		}
	}
	if g.Cmp(big.NewInt(1)) == 0 {
		return Ideal{h: h, den: new(big.Int).Set(den)}
	}
	out := h.Clone()
	for _, row := range out {
		for _, v := range row {
			v.Quo(v, g)
		}
	}

	return Ideal{h: out, den: new(big.Int).Quo(den, g)}
}

// Basis returns copies of (H, Den).
func (a Ideal) Basis() (matrix.Int, *big.Int) { return a.h.Clone(), new(big.Int).Set(a.den) }

// Dim returns the rank of the lattice.
func (a Ideal) Dim() int { return len(a.h) }

// IsIntegral reports whether a ⊆ O.
func (a Ideal) IsIntegral() bool { return a.den.Cmp(big.NewInt(1)) == 0 }

// Min returns the positive generator of a ∩ Q, i.e. of a ∩ Z when a is integral.
func (a Ideal) Min() *big.Rat { return new(big.Rat).SetFrac(a.h[0][0], a.den) }

// Norm returns the absolute norm [O : a] = det H / Denⁿ.
func (a Ideal) Norm() *big.Rat {
	d := new(big.Int).Exp(a.den, big.NewInt(int64(len(a.h))), nil)
	return new(big.Rat).SetFrac(lattice.Det(a.h), d)
}

// Equal reports whether a and b are the same ideal.
func (a Ideal) Equal(b Ideal) bool { return a.den.Cmp(b.den) == 0 && a.h.Equal(b.h) }

// Contains reports whether the order element x (integer coordinates) is in a.
func (a Ideal) Contains(x []*big.Int) bool {
	if len(x) != len(a.h) {
		return false
	}
	v := make([]*big.Int, len(x))
	for i, xi := range x {
		v[i] = new(big.Int).Mul(xi, a.den)
	}

	return lattice.Contains(a.h, v)
}

// Includes reports whether b ⊆ a.
func (a Ideal) Includes(b Ideal) bool {
	if len(a.h) != len(b.h) {
		return false
	}
	// b ⊆ a ⇔ a.den·b.H ⊆ b.den·a.H
	scaled := make(matrix.Int, len(a.h))
	for i, row := range a.h {
		scaled[i] = make([]*big.Int, len(row))
		for j, v := range row {
			scaled[i][j] = new(big.Int).Mul(v, b.den)
		}
	}
	for _, row := range b.h {
		v := make([]*big.Int, len(row))
		for j, x := range row {
			v[j] = new(big.Int).Mul(x, a.den)
		}
		if !lattice.Contains(scaled, v) {
			return false
		}
	}

	return true
}

// Fingerprint returns a SHAKE-256 digest of the canonical form, suitable
// as a map key for deduplicating ideals.
func (a Ideal) Fingerprint() [32]byte {
	h := sha3.NewShake256()
	h.Write([]byte("numfield/ideal"))
	h.Write(binary.BigEndian.AppendUint32(nil, uint32(len(a.h))))
	field := func(v *big.Int) {
		b := v.Bytes()
		h.Write(binary.BigEndian.AppendUint32(nil, uint32(len(b))))
		h.Write(b)
	}
	field(a.den)
	for _, row := range a.h {
		for _, v := range row {
			field(v)
		}
	}
	var out [32]byte
	h.Read(out[:])

	return out
}

// String renders a as "(H)/Den".
func (a Ideal) String() string {
	if a.IsIntegral() {
		return fmt.Sprint(a.h)
	}
	return fmt.Sprintf("%v/%v", a.h, a.den)
}
