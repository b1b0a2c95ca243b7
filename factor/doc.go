// SPDX-License-Identifier: MIT

// Package factor is the integer factorization oracle consumed by order
// construction and the class group.
//
// The Oracle interface returns a complete prime factorization or an error
// wrapping nferr.ErrFactorizationUnavailable; "n is prime" is an ordinary
// successful answer ([{n, 1}]), never an error.
//
// The default oracle (New):
//
//  1. strips primes below the trial bound by division;
//  2. accepts a probable-prime cofactor;
//  3. splits a composite cofactor of at most MaxBits bits with lattigo's
//     utils/factorization.GetFactors, recovering multiplicities by
//     repeated division and re-checking every returned factor;
//  4. gives up (ErrFactorizationUnavailable) on larger cofactors.
//
// Primes returns all primes up to a bound (sieve of Eratosthenes).
package factor
