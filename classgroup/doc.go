// SPDX-License-Identifier: MIT

// Package classgroup computes the ideal class group of a maximal order.
//
// Every class contains an integral ideal of norm at most the Minkowski
// bound B, so the class group is generated by the factor base: the prime
// ideals of norm ≤ B. Compute collects relations Σ vᵢ·Pᵢ ~ 0 among them
// from three sources:
//
//   - pO = Π Pᵉ for every p ≤ B whose primes all lie in the factor base;
//   - products of factor-base primes of norm ≤ B, deduplicated by
//     canonical form, and screened for principality by IsPrincipal;
//   - elements α of growing coefficient radius whose norm is B-smooth.
//
// The class group is Zᵐ modulo the lattice of all relations. Found
// relations span a sublattice L; Compute certifies L = L* before reading
// off the Smith normal form. A strictly larger L* would contain some
// x ∉ L with q·x ∈ L for a prime q | [Zᵐ : L], and every such x gives an
// ideal Π Pⱼ^xⱼ that is tested for principality exactly.
//
// The exact test enumerates the ideal with Fincke–Pohst under
// T2(α) = Σ |σ(α)|². A principal ideal a has a generator with
// T2 ≤ N(a)^(2/n)·Σᵢ dᵢ·exp(Σⱼ|ℓⱼᵢ|/dᵢ), ℓⱼ the logarithm vectors of
// any r independent units. Units come from dependencies among the
// relations and from a sweep of small elements of norm ±1.
package classgroup
