// SPDX-License-Identifier: MIT
// Package numth is a computational number-theory toolkit built around
// arbitrary-precision integers (math/big), centered on a small-prime
// factorization engine.
//
// 🚀 What is numth?
//
//	A thread-safe, pure-Go library that strips all prime factors below a
//	caller-chosen index bound from an arbitrary-precision integer:
//		• primecache/ — growable, concurrent cache of the first N primes
//		• trialtree/  — build-once product tree for batched GCD coprimality
//		  screening (thousands of divisibility tests become a handful of GCDs)
//		• factor/     — trial-division engine, binary-lifted exponent
//		  extraction, and the Factorization container
//
// ✨ Why choose numth?
//
//   - Sublinear screening — a product-tree query prunes whole prime groups
//     with a single GCD instead of testing every prime
//   - Rock-solid guarantees — R/W locks, build-once structures, deterministic
//     results under concurrent use
//   - Pure Go — no cgo, arithmetic rides math/big
//
// Quick example:
//
//	fz, cofactor, err := factor.Trial(big.NewInt(3072), 10)
//	// fz = 2^10*3, cofactor = 1
//
// The engine removes factors only within its bounded prime-index window; the
// returned cofactor (possibly 1, a larger prime, or an unresolved composite)
// is the input for higher-order methods such as ECM or sieving, which live
// outside this module.
package numth
