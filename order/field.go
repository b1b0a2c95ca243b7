// SPDX-License-Identifier: MIT
package order

import (
	"math/big"

	"github.com/katalvlaran/numfield/nferr"
	"github.com/katalvlaran/numfield/poly"
)

// Field is K = Q[x]/(f) for a monic irreducible integer polynomial f.
type Field struct {
	f    poly.Int
	disc *big.Int
	r1   int
}

// NewField validates p and returns the field it defines.
//
// Errors: nferr.ErrInvalidPolynomial when p is zero or constant, not
// monic, not integral, not squarefree, or reducible over Q.
func NewField(p poly.Poly) (*Field, error) {
	switch {
	case p.IsZero():
		return nil, orderErrorf(opNewField, nferr.Invalid("zero polynomial"))
	case p.Deg() < 1:
		return nil, orderErrorf(opNewField, nferr.Invalid("degree %d < 1", p.Deg()))
	case !p.IsMonic():
		return nil, orderErrorf(opNewField, nferr.Invalid("%v is not monic", p))
	}
	f, ok := p.Int()
	if !ok {
		return nil, orderErrorf(opNewField, nferr.Invalid("%v has non-integral coefficients", p))
	}
	disc, err := poly.IntDiscriminant(f)
	if err != nil {
		return nil, orderErrorf(opNewField, err)
	}
	if disc.Sign() == 0 {
		return nil, orderErrorf(opNewField, nferr.Invalid("%v is not squarefree", p))
	}
	irr, err := poly.IsIrreducible(f)
	if err != nil {
		return nil, orderErrorf(opNewField, err)
	}
	if !irr {
		return nil, orderErrorf(opNewField, nferr.Invalid("%v is reducible over Q", p))
	}
	r1, err := poly.RealRoots(p)
	if err != nil {
		return nil, orderErrorf(opNewField, err)
	}

	return &Field{f: f, disc: disc, r1: r1}, nil
}

// Degree returns [K : Q].
func (k *Field) Degree() int { return k.f.Deg() }

// Poly returns the defining polynomial.
func (k *Field) Poly() poly.Poly { return poly.FromInt(k.f) }

// IntPoly returns the defining polynomial over Z.
func (k *Field) IntPoly() poly.Int { return k.f.Clone() }

// Discriminant returns disc f.
func (k *Field) Discriminant() *big.Int { return new(big.Int).Set(k.disc) }

// Signature returns (r1, r2): the number of real embeddings and of pairs
// of complex embeddings.
func (k *Field) Signature() (int, int) {
	return k.r1, (k.Degree() - k.r1) / 2
}

// Reduce returns the representative of p modulo f of degree < n.
func (k *Field) Reduce(p poly.Poly) poly.Poly {
	_, r, _ := p.DivMod(poly.FromInt(k.f))
	return r
}
