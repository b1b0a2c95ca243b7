// SPDX-License-Identifier: MIT
package gfp

import (
	"fmt"
	"math/big"
)

// Field is the prime field F_p.
type Field struct {
	p *big.Int
}

// Poly is a polynomial over F_p in ascending order; nil is zero.
type Poly []*big.Int

// NewField returns F_p. p is checked with a probabilistic primality test.
func NewField(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("NewField(%v): %w", p, ErrNotPrime)
	}

	return &Field{p: new(big.Int).Set(p)}, nil
}

// MustField is NewField for known primes; it panics on a composite.
func MustField(p int64) *Field {
	f, err := NewField(big.NewInt(p))
	if err != nil {
		panic(err)
	}

	return f
}

// P returns a copy of the characteristic.
func (f *Field) P() *big.Int { return new(big.Int).Set(f.p) }

// Elem reduces x into [0, p).
func (f *Field) Elem(x *big.Int) *big.Int { return new(big.Int).Mod(x, f.p) }

// Inv returns x⁻¹ mod p; x must be nonzero mod p.
func (f *Field) Inv(x *big.Int) *big.Int {
	return new(big.Int).ModInverse(f.Elem(x), f.p)
}

// Reduce maps integer coefficients into a trimmed Poly over F_p.
func (f *Field) Reduce(coeffs []*big.Int) Poly {
	out := make(Poly, len(coeffs))
	for i, c := range coeffs {
		out[i] = f.Elem(c)
	}

	return out.trim()
}

// FromInt64 builds a Poly from machine integers.
func (f *Field) FromInt64(coeffs ...int64) Poly {
	out := make(Poly, len(coeffs))
	for i, c := range coeffs {
		out[i] = f.Elem(big.NewInt(c))
	}

	return out.trim()
}

// X returns the polynomial x.
func (f *Field) X() Poly { return Poly{new(big.Int), big.NewInt(1)} }

// One returns the constant polynomial 1.
func (f *Field) One() Poly { return Poly{big.NewInt(1)} }

func (a Poly) trim() Poly {
	n := len(a)
	for n > 0 && a[n-1].Sign() == 0 {
		n--
	}

	return a[:n]
}

// Deg returns the degree (−1 for zero).
func (a Poly) Deg() int { return len(a.trim()) - 1 }

// IsZero reports whether a is zero.
func (a Poly) IsZero() bool { return a.Deg() < 0 }

// Lead returns the leading coefficient (0 for zero).
func (a Poly) Lead() *big.Int {
	t := a.trim()
	if len(t) == 0 {
		return new(big.Int)
	}

	return t[len(t)-1]
}

func (a Poly) coeff(i int) *big.Int {
	if i < 0 || i >= len(a) {
		return new(big.Int)
	}

	return a[i]
}

// Clone returns a deep copy.
func (a Poly) Clone() Poly {
	out := make(Poly, len(a))
	for i, v := range a {
		out[i] = new(big.Int).Set(v)
	}

	return out
}

// Equal reports equality of trimmed polynomials.
func (a Poly) Equal(b Poly) bool {
	x, y := a.trim(), b.trim()
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i].Cmp(y[i]) != 0 {
			return false
		}
	}

	return true
}

// Compare orders by degree, then by coefficients from the top down.
func (a Poly) Compare(b Poly) int {
	x, y := a.trim(), b.trim()
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if c := x[i].Cmp(y[i]); c != 0 {
			return c
		}
	}

	return 0
}

// String renders the coefficients in ascending order.
func (a Poly) String() string { return fmt.Sprint([]*big.Int(a.trim())) }
