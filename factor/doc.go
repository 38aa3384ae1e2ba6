// SPDX-License-Identifier: MIT
// Package factor implements the trial-division engine: it strips all prime
// factors below a caller-chosen index bound from an arbitrary-precision
// integer, returning a Factorization and the unresolved cofactor.
//
// How a call proceeds:
//
//  1. Reject n == 0 (ErrZeroInput) — factorization is undefined there.
//  2. Extract the sign; continue with |n|.
//  3. Strip powers of two with a trailing-zero-bit count; if nothing
//     remains, return immediately.
//  4. Ask the product tree (trialtree) which leaf groups of primes may
//     share a factor with the remainder.
//  5. For each surviving group, test its primes individually; on a hit,
//     divide once and hand the remainder to ExtractPower for the full
//     multiplicity via binary lifting.
//  6. Return the accumulated Factorization plus the cofactor — 1, a prime
//     above the window, or an unresolved composite for downstream methods.
//
// Invariant: Sign × ∏ prime^exponent × cofactor == n, always, for every
// successful call. Calls are deterministic: identical (n, numPrimes) yield
// identical results regardless of cache or tree growth ordering.
//
// Options:
//
//   - WithCache / WithTree substitute the shared process-wide cache and tree
//     with caller-built ones; tests use small trees to stay fast.
//
// Errors:
//
//   - ErrNilInput, ErrZeroInput: caller misuse, fail-fast, never retried.
//   - trialtree.ErrPrimesOutOfRange (wrapped): numPrimes beyond capacity.
//   - ErrNegativeExponent: Value() on a merge that went negative.
//
// There is no cancellation: an invocation runs to completion once started,
// and the only blocking anywhere is lock acquisition inside the cache.
package factor
