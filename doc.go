// SPDX-License-Identifier: MIT

// Package numfield computes exact invariants of algebraic number fields
// K = Q[x]/(f): polynomial discriminants and resultants, the ring of
// integers, prime decomposition and the ideal class group.
//
// What is inside?
//
//	poly/         rational and integer polynomials, resultant, Sturm counts, irreducibility
//	gfp/          polynomials over F_p and their factorization
//	matrix/       exact big.Int / big.Rat matrices, linear algebra mod p
//	lattice/      Hermite and Smith normal forms, kernels, LLL
//	factor/       integer factorization oracle
//	order/        fields, orders, multiplication tables, Round-2 maximal order
//	ideal/        fractional ideals in HNF: sum, product, inverse, valuation
//	primedecomp/  Kummer–Dedekind and Buchmann–Lenstra decomposition of pO
//	classgroup/   relation search and class group structure
//	report/       ordered invariant reports rendered as YAML
//	cmd/nfinv     command-line front end
//
// Everything is exact: no floating point enters any invariant, and every
// lattice is kept in canonical Hermite form so equality is structural.
//
// Quick start:
//
//	k, _ := order.NewField(poly.FromInt64(5, 0, 1)) // x² + 5, ascending
//	o, _ := order.MaximalOrder(k)
//	g, _ := classgroup.Compute(ctx, ideal.NewRing(o))
//	fmt.Println(o.Discriminant(), g) // -20 Z/2
package numfield
