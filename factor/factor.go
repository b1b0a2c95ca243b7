// SPDX-License-Identifier: MIT
package factor

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/tuneinsight/lattigo/v6/utils/factorization"

	"github.com/katalvlaran/numfield/nferr"
)

// ErrZero is returned when asked to factor 0.
var ErrZero = errors.New("factor: cannot factor zero")

// PrimePower is one entry pᵉ of a factorization.
type PrimePower struct {
	P *big.Int
	E int
}

// Oracle factors integers completely or reports failure.
type Oracle interface {
	// Factor returns the factorization of |n| sorted by prime; ±1 gives nil.
	Factor(n *big.Int) ([]PrimePower, error)
}

// Default is the oracle returned by New.
type Default struct {
	opts  Options
	small []int64
}

// New returns the default oracle.
func New(opts ...Option) *Default {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Default{opts: o, small: Primes(o.TrialBound)}
}

// Factor implements Oracle.
//
// Implementation:
//   - Stage 1: trial division by every prime ≤ TrialBound.
//   - Stage 2: a cofactor that is 1 or a probable prime finishes the job.
//   - Stage 3: a composite cofactor above MaxBits bits is refused.
//   - Stage 4: GetFactors splits the cofactor; each returned factor is
//     checked for primality and divided out with its multiplicity.
func (d *Default) Factor(n *big.Int) ([]PrimePower, error) {
	if n.Sign() == 0 {
		return nil, ErrZero
	}
	rest := new(big.Int).Abs(n)
	acc := map[string]*PrimePower{}
	add := func(p *big.Int, e int) {
		if e == 0 {
			return
		}
		if pp, ok := acc[p.String()]; ok {
			pp.E += e
			return
		}
		acc[p.String()] = &PrimePower{P: new(big.Int).Set(p), E: e}
	}

	// Stage 1: trial division
	q, r := new(big.Int), new(big.Int)
	for _, sp := range d.small {
		p := big.NewInt(sp)
		if new(big.Int).Mul(p, p).Cmp(rest) > 0 {
			break
		}
		e := 0
		for {
			q.QuoRem(rest, p, r)
			if r.Sign() != 0 {
				break
			}
			rest.Set(q)
			e++
		}
		add(p, e)
	}

	// Stage 2-4: cofactor
	if rest.Cmp(big.NewInt(1)) > 0 {
		switch {
		case rest.ProbablyPrime(20):
			add(rest, 1)
		case rest.BitLen() > d.opts.MaxBits:
			return nil, fmt.Errorf("Factor: cofactor of %d bits exceeds %d: %w", rest.BitLen(), d.opts.MaxBits, nferr.ErrFactorizationUnavailable)
		default:
			if err := d.split(rest, add); err != nil {
				return nil, err
			}
		}
	}

	out := make([]PrimePower, 0, len(acc))
	for _, pp := range acc {
		out = append(out, *pp)
	}
	slices.SortFunc(out, func(a, b PrimePower) int { return a.P.Cmp(b.P) })

	return out, nil
}

func (d *Default) split(rest *big.Int, add func(*big.Int, int)) error {
	for _, f := range factorization.GetFactors(new(big.Int).Set(rest)) {
		if f.Cmp(big.NewInt(1)) <= 0 || !f.ProbablyPrime(20) {
			return fmt.Errorf("Factor: splitting returned non-prime %v: %w", f, nferr.ErrFactorizationUnavailable)
		}
		e := 0
		q, r := new(big.Int), new(big.Int)
		for {
			q.QuoRem(rest, f, r)
			if r.Sign() != 0 {
				break
			}
			rest.Set(q)
			e++
		}
		add(f, e)
	}
	if rest.Cmp(big.NewInt(1)) != 0 {
		return fmt.Errorf("Factor: cofactor %v left unsplit: %w", rest, nferr.ErrFactorizationUnavailable)
	}

	return nil
}

// Valuation returns the exponent of p in n (n ≠ 0, p > 1).
func Valuation(n, p *big.Int) int {
	if n.Sign() == 0 {
		return 0
	}
	t := new(big.Int).Abs(n)
	q, r := new(big.Int), new(big.Int)
	e := 0
	for {
		q.QuoRem(t, p, r)
		if r.Sign() != 0 {
			return e
		}
		t.Set(q)
		e++
	}
}

// Primes returns every prime p ≤ bound in increasing order.
func Primes(bound int64) []int64 {
	if bound < 2 {
		return nil
	}
	composite := make([]bool, bound+1)
	var out []int64
	for i := int64(2); i <= bound; i++ {
		if composite[i] {
			continue
		}
		out = append(out, i)
		for j := i * i; j <= bound; j += i {
			composite[j] = true
		}
	}

	return out
}
