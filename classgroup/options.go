// SPDX-License-Identifier: MIT
package classgroup

import (
	"fmt"
	"math/big"
)

const (
	// DefaultMaxRadius caps the coefficient radius of the element search.
	DefaultMaxRadius = 8

	// DefaultPrincipalRadius is the coefficient radius of IsPrincipal when it
	// screens products of factor-base primes.
	DefaultPrincipalRadius = 2
)

// Options configures Compute.
type Options struct {
	Workers         int
	MaxRadius       int
	PrincipalRadius int
	Bound           *big.Int // nil means the Minkowski bound
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults; Workers = 0 means GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		MaxRadius:       DefaultMaxRadius,
		PrincipalRadius: DefaultPrincipalRadius,
	}
}

// WithWorkers bounds the parallel prime decompositions. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf("classgroup: WithWorkers(%d): need at least one worker", w))
	}
	return func(o *Options) { o.Workers = w }
}

// WithMaxRadius sets the element search cap. Panics if r < 1.
func WithMaxRadius(r int) Option {
	if r < 1 {
		panic(fmt.Sprintf("classgroup: WithMaxRadius(%d): radius must be ≥ 1", r))
	}
	return func(o *Options) { o.MaxRadius = r }
}

// WithPrincipalRadius sets the principality search radius. Panics if r < 1.
func WithPrincipalRadius(r int) Option {
	if r < 1 {
		panic(fmt.Sprintf("classgroup: WithPrincipalRadius(%d): radius must be ≥ 1", r))
	}
	return func(o *Options) { o.PrincipalRadius = r }
}

// WithBound replaces the Minkowski bound. Panics unless b ≥ 1.
func WithBound(b *big.Int) Option {
	if b == nil || b.Sign() <= 0 {
		panic(fmt.Sprintf("classgroup: WithBound(%v): bound must be positive", b))
	}
	return func(o *Options) { o.Bound = new(big.Int).Set(b) }
}
