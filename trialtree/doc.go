// SPDX-License-Identifier: MIT
// Package trialtree converts "does n share a factor with any of the first K
// primes" from K divisibility tests into a handful of big-integer GCDs.
//
// What:
//
//   - Tree: a balanced multi-level product tree over the first K primes.
//     Level 0 holds the product of each fixed-size leaf group of consecutive
//     primes; every further level holds pairwise products of the level below,
//     with an unpaired trailing node carried forward unchanged, until a
//     single root remains. Every node equals the product of all primes in
//     its subtree's leaf groups.
//   - FindCandidateGroups(n, numPrimes): pick the level whose single node
//     covers numPrimes primes (the "effective root"), then for each leaf
//     group under it walk root→leaf keeping a running gcd(n, node). A gcd of
//     1 proves the whole subtree coprime to n and prunes it.
//
// Why:
//
//   - A single GCD against a group product screens GroupSize primes at once;
//     pruning near the root discards thousands of primes per GCD.
//
// Geometry:
//
//   - Leaf group size and level count derive from the native word width:
//     GroupSize = UintSize/16 packs full 16-bit prime products into one word,
//     and DefaultLevels = 13 - UintSize/32 reduces the default leaf count to
//     a single root. Larger groups mean fewer GCDs but coarser screening.
//
// Contract:
//
//   - No false negatives: every prime dividing n inside the window is inside
//     a returned group. False positives are expected — a shared factor with
//     a product does not say which prime divides n — and must be resolved by
//     the caller with individual divisibility tests.
//
// Errors:
//
//   - ErrBadCapacity: non-positive capacity passed to New.
//   - ErrPrimesOutOfRange: numPrimes outside (0, capacity]; the tree has no
//     coverage beyond its capacity.
//
// The Tree is immutable after construction and safe for concurrent queries
// without locking; the shared Default tree is built exactly once.
package trialtree
