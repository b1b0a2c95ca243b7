// SPDX-License-Identifier: MIT
package report

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numfield/classgroup"
	"github.com/katalvlaran/numfield/ideal"
	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/order"
	"github.com/katalvlaran/numfield/poly"
	"github.com/katalvlaran/numfield/primedecomp"
)

var log = logging.Logger("report")

// Entry is one computed invariant.
type Entry struct {
	Name  string
	Value string
}

// Report is the ordered result of Compute.
type Report struct {
	Entries []Entry
}

// Get returns the value computed for name.
func (r *Report) Get(name string) (string, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e.Value, true
		}
	}

	return "", false
}

// MarshalYAML renders the entries as a mapping in request order.
func (r *Report) MarshalYAML() (interface{}, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range r.Entries {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value, Style: yaml.DoubleQuotedStyle},
		)
	}

	return m, nil
}

// YAML returns the rendered document.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// Compute evaluates targets on f in request order.
//
// Errors: ErrUnknownTarget for a malformed name; nferr.ErrInvalidPolynomial
// when f is zero or, for field targets, not monic irreducible integral;
// every error of order, primedecomp and classgroup; ctx cancellation.
func Compute(ctx context.Context, f poly.Poly, names []string, opts ...Option) (*Report, error) {
	var cfg Options
	for _, fn := range opts {
		fn(&cfg)
	}
	targets, err := ParseTargets(names)
	if err != nil {
		return nil, err
	}
	e := &evaluator{ctx: ctx, f: f, cfg: cfg}
	if err := e.prepare(targets); err != nil {
		return nil, err
	}
	rep := &Report{Entries: make([]Entry, 0, len(targets))}
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := e.value(t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name(), err)
		}
		rep.Entries = append(rep.Entries, Entry{Name: t.Name(), Value: v})
	}

	return rep, nil
}

// evaluator caches the field computations shared by several targets.
type evaluator struct {
	ctx   context.Context
	f     poly.Poly
	cfg   Options
	field *order.Field
	o     *order.Order
	ring  *ideal.Ring
	decs  map[string][]primedecomp.Prime
	group *classgroup.ClassGroup
}

// prepare builds the maximal order when a field target is present and
// decomposes every requested prime in one parallel batch.
func (e *evaluator) prepare(targets []Target) error {
	if e.f.IsZero() {
		return nferr.Invalid("zero polynomial")
	}
	var ps []*big.Int
	field := false
	for _, t := range targets {
		if !t.polynomial() {
			field = true
		}
		if t.Kind == Decomposition {
			ps = append(ps, t.P)
		}
	}
	if !field {
		return nil
	}
	k, err := order.NewField(e.f)
	if err != nil {
		return err
	}
	var oopts []order.Option
	if e.cfg.Oracle != nil {
		oopts = append(oopts, order.WithOracle(e.cfg.Oracle))
	}
	o, err := order.MaximalOrder(k, oopts...)
	if err != nil {
		return err
	}
	log.Debugf("maximal order of %v: index %v", e.f, o.Index())
	e.field, e.o, e.ring = k, o, ideal.NewRing(o)
	if len(ps) == 0 {
		return nil
	}
	decs, err := primedecomp.DecomposeAll(e.ctx, e.ring, ps, e.cfg.Workers)
	if err != nil {
		return err
	}
	e.decs = make(map[string][]primedecomp.Prime, len(ps))
	for i, p := range ps {
		e.decs[p.String()] = decs[i]
	}

	return nil
}

func (e *evaluator) value(t Target) (string, error) {
	switch t.Kind {
	case Discriminant:
		d, err := poly.Discriminant(e.f)
		if err != nil {
			return "", err
		}
		return d.RatString(), nil
	case Resultant:
		return poly.Resultant(e.f, e.f.Derivative()).RatString(), nil
	case Signature:
		r1, r2 := e.field.Signature()
		return fmt.Sprintf("(%d, %d)", r1, r2), nil
	case IntegralBasis:
		return e.o.String(), nil
	case Index:
		return e.o.Index().String(), nil
	case FieldDiscriminant:
		return e.o.Discriminant().String(), nil
	case MultiplicationTable:
		return formatTable(e.o.Table()), nil
	case Decomposition:
		return formatPrimes(e.decs[t.P.String()]), nil
	case ClassNumber, ClassGroup:
		g, err := e.classGroup()
		if err != nil {
			return "", err
		}
		if t.Kind == ClassNumber {
			return g.Number.String(), nil
		}
		return g.String(), nil
	default:
		return "", fmt.Errorf("%q: %w", t.Kind, ErrUnknownTarget)
	}
}

func (e *evaluator) classGroup() (*classgroup.ClassGroup, error) {
	if e.group != nil {
		return e.group, nil
	}
	cg := e.cfg.ClassGroup
	if e.cfg.Workers > 0 {
		cg = append([]classgroup.Option{classgroup.WithWorkers(e.cfg.Workers)}, cg...)
	}
	g, err := classgroup.Compute(e.ctx, e.ring, cg...)
	if err != nil {
		return nil, err
	}
	e.group = g

	return g, nil
}

// formatTable renders c_ijk as "[ω0ω0; ω0ω1; …]", one coordinate vector
// per product, row-major in (i, j).
func formatTable(t *order.Table) string {
	n := t.Dim()
	parts := make([]string, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := make([]string, n)
			for k := range c {
				c[k] = t.Const(i, j, k).String()
			}
			parts = append(parts, "("+strings.Join(c, ", ")+")")
		}
	}

	return "[" + strings.Join(parts, "; ") + "]"
}

// formatPrimes renders pO = Π Pᵉ as "P(p, e=.., f=..) · …".
func formatPrimes(ps []primedecomp.Prime) string {
	parts := make([]string, len(ps))
	for i, q := range ps {
		parts[i] = q.String()
	}

	return strings.Join(parts, " · ")
}
