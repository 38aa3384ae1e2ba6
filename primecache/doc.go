// SPDX-License-Identifier: MIT
// Package primecache provides a growable, thread-safe ordered store of the
// first N primes — the source of truth for "the i-th prime".
//
// What:
//
//   - Cache: an append-only list of primes behind a sync.RWMutex, seeded with
//     the first ten primes.
//   - EnsureAtLeast uses double-checked locking: a read-locked length check
//     serves the common case without contention; growth takes the write lock
//     and re-checks before extending, so concurrent growers never repeat work.
//   - Growth scans odd candidates upward from the last cached prime and
//     trial-divides each against cached primes up to its square root. The
//     cache always extends past that square root, so every potential small
//     factor is already present and the test is complete.
//
// Why:
//
//   - Trial division, the product tree, and exponent extraction all address
//     primes by index; one shared monotonic cache keeps those views
//     consistent and the hot read path lock-cheap.
//
// Guarantees:
//
//   - Nth(i) is stable once first observed; the cache never shrinks.
//   - Safe under concurrent EnsureAtLeast/Nth/Prefix from many goroutines.
//   - Cached contents are prime by construction; nothing re-validates them.
//
// Complexity:
//
//   - Reads: O(1) plus an RLock. Growth to N primes: one trial-division pass
//     per odd candidate below the N-th prime.
package primecache
