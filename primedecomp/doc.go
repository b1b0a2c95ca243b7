// SPDX-License-Identifier: MIT

// Package primedecomp factors pO into prime ideals of a maximal order.
//
// Two methods, chosen by whether p divides the index [O : Z[θ]]:
//
//   - KummerDedekind (p ∤ index): f ≡ Π gᵢ^eᵢ (mod p) gives the primes
//     (p, gᵢ(θ)) with ramification eᵢ and residue degree deg gᵢ.
//   - BuchmannLenstra (p | index): the p-radical J of O is the product of
//     the primes above p, so O/J is a product of finite fields. It is split
//     by factoring minimal polynomials of elements acting on O/J; each
//     field component K gives a prime with f = dim O/K and e = v_K(p).
//
// Every decomposition is checked: Σ eᵢ·fᵢ = n and N(P) = p^f.
package primedecomp
