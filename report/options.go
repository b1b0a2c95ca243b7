// SPDX-License-Identifier: MIT
package report

import (
	"fmt"

	"github.com/katalvlaran/numfield/classgroup"
	"github.com/katalvlaran/numfield/factor"
)

// Options configures Compute.
type Options struct {
	Oracle     factor.Oracle // nil means factor.New()
	Workers    int           // 0 means GOMAXPROCS
	ClassGroup []classgroup.Option
}

// Option mutates Options.
type Option func(*Options)

// WithOracle sets the factorization oracle for the field discriminant.
// Panics on nil.
func WithOracle(o factor.Oracle) Option {
	if o == nil {
		panic("report: WithOracle(nil)")
	}
	return func(opts *Options) { opts.Oracle = o }
}

// WithWorkers bounds parallel prime decompositions. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf("report: WithWorkers(%d): need at least one worker", w))
	}
	return func(opts *Options) { opts.Workers = w }
}

// WithClassGroupOptions forwards options to classgroup.Compute.
func WithClassGroupOptions(cg ...classgroup.Option) Option {
	return func(opts *Options) { opts.ClassGroup = append(opts.ClassGroup, cg...) }
}
