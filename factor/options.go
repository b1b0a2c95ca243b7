// SPDX-License-Identifier: MIT
package factor

import "fmt"

const (
	// DefaultTrialBound is the largest trial divisor.
	DefaultTrialBound int64 = 1 << 16

	// DefaultMaxBits caps the cofactor size handed to the splitting routine.
	DefaultMaxBits = 200
)

// Options configures the default oracle.
type Options struct {
	TrialBound int64
	MaxBits    int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{TrialBound: DefaultTrialBound, MaxBits: DefaultMaxBits}
}

// WithTrialBound sets the trial division bound. Panics if b < 2.
func WithTrialBound(b int64) Option {
	if b < 2 {
		panic(fmt.Sprintf("factor: WithTrialBound(%d): bound must be ≥ 2", b))
	}
	return func(o *Options) { o.TrialBound = b }
}

// WithMaxBits sets the effort bound in bits. Panics if bits < 1.
func WithMaxBits(bits int) Option {
	if bits < 1 {
		panic(fmt.Sprintf("factor: WithMaxBits(%d): bits must be ≥ 1", bits))
	}
	return func(o *Options) { o.MaxBits = bits }
}
