// SPDX-License-Identifier: MIT

// Package order builds the maximal order (ring of integers) of a number
// field K = Q[x]/(f) and its multiplication table.
//
// Conventions:
//
//   - f is monic with integer coefficients, listed in ascending powers.
//   - An order is stored as an integer lower Hermite basis W over a common
//     denominator d: ω_i = Σ_j W[i][j]/d · θʲ. Hence ω_0 = 1 and deg ω_i = i.
//   - Elements of an order are integer coordinate vectors in that basis.
//
// Construction (MaximalOrder) is the Round 2 fixed point: starting from
// Z[θ], every prime p with p² | disc f is handled by repeatedly computing
// the p-radical I_p and replacing O by {x : x·I_p ⊆ I_p} until O stops
// growing. Each loop is bounded; exceeding the bound fails with
// nferr.ErrNonConvergentOrder. The result is checked exactly:
// index² · disc K = disc f and sign(disc K) = (−1)^r2.
//
// All values are immutable after construction and safe for concurrent reads.
package order
