// SPDX-License-Identifier: MIT
package order

import (
	"fmt"

	"github.com/katalvlaran/numfield/factor"
)

// DefaultMaxRounds caps Round 2 enlargements per prime on top of the
// ⌊v_p(disc f)/2⌋ + 1 bound.
const DefaultMaxRounds = 64

// Options configures MaximalOrder.
type Options struct {
	Oracle    factor.Oracle
	MaxRounds int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the default oracle and round cap.
func DefaultOptions() Options {
	return Options{Oracle: factor.New(), MaxRounds: DefaultMaxRounds}
}

// WithOracle sets the factorization oracle used on disc f. Panics on nil.
func WithOracle(o factor.Oracle) Option {
	if o == nil {
		panic("order: WithOracle(nil)")
	}
	return func(opts *Options) { opts.Oracle = o }
}

// WithMaxRounds caps Round 2 enlargement attempts per prime. Panics if r < 1.
func WithMaxRounds(r int) Option {
	if r < 1 {
		panic(fmt.Sprintf("order: WithMaxRounds(%d): need at least one round", r))
	}
	return func(opts *Options) { opts.MaxRounds = r }
}
