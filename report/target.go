// SPDX-License-Identifier: MIT
package report

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrUnknownTarget is returned for a target name outside the list below.
var ErrUnknownTarget = errors.New("report: unknown target")

// Kind names a family of targets.
type Kind string

const (
	Discriminant        Kind = "discriminant"
	Resultant           Kind = "resultant"
	Signature           Kind = "signature"
	IntegralBasis       Kind = "integral_basis"
	Index               Kind = "index"
	FieldDiscriminant   Kind = "field_discriminant"
	MultiplicationTable Kind = "multiplication_table"
	Decomposition       Kind = "decomposition"
	ClassNumber         Kind = "class_number"
	ClassGroup          Kind = "class_group"
)

// Target is one parsed request; P is set for Decomposition only.
type Target struct {
	Kind Kind
	P    *big.Int
}

// Name returns the request string the target was parsed from.
func (t Target) Name() string {
	if t.Kind == Decomposition {
		return string(t.Kind) + ":" + t.P.String()
	}

	return string(t.Kind)
}

// polynomial reports whether t needs no number field.
func (t Target) polynomial() bool {
	return t.Kind == Discriminant || t.Kind == Resultant
}

// ParseTarget parses "discriminant", "decomposition:7" and the like.
func ParseTarget(s string) (Target, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	k := Kind(name)
	switch k {
	case Discriminant, Resultant, Signature, IntegralBasis, Index,
		FieldDiscriminant, MultiplicationTable, ClassNumber, ClassGroup:
		if hasArg {
			return Target{}, fmt.Errorf("%q takes no argument: %w", s, ErrUnknownTarget)
		}
		return Target{Kind: k}, nil
	case Decomposition:
		p, ok := new(big.Int).SetString(arg, 10)
		if !hasArg || !ok || p.Cmp(big.NewInt(2)) < 0 {
			return Target{}, fmt.Errorf("%q: want decomposition:<prime>: %w", s, ErrUnknownTarget)
		}
		return Target{Kind: k, P: p}, nil
	default:
		return Target{}, fmt.Errorf("%q: %w", s, ErrUnknownTarget)
	}
}

// ParseTargets parses a list, rejecting duplicates.
func ParseTargets(names []string) ([]Target, error) {
	seen := make(map[string]bool, len(names))
	out := make([]Target, 0, len(names))
	for _, s := range names {
		t, err := ParseTarget(s)
		if err != nil {
			return nil, err
		}
		if seen[t.Name()] {
			return nil, fmt.Errorf("%q requested twice: %w", t.Name(), ErrUnknownTarget)
		}
		seen[t.Name()] = true
		out = append(out, t)
	}

	return out, nil
}
