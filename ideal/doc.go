// SPDX-License-Identifier: MIT

// Package ideal implements fractional ideals of an order.
//
// An Ideal is a full-rank lattice H/Den in the coordinates of the order
// basis, where H is the canonical lower Hermite form of an integral ideal
// and gcd(content H, Den) = 1. Equality of ideals is equality of (H, Den).
//
// Ideals carry no pointer to their order. Every operation that needs the
// multiplication table runs on a Ring, an immutable context built once
// from an order and safe for concurrent use.
//
// Every lattice produced here is renormalized immediately, modulo a known
// integer in the ideal (I ∩ Z = H[0][0]·Z), so entries stay bounded.
package ideal
