// SPDX-License-Identifier: MIT
package primecache

import "sync"

// seedPrimes are the primes every Cache starts from. 2 must be seeded here:
// extendTo scans odd candidates only and isPrimeViaCache rejects even input.
var seedPrimes = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

// Cache is an append-only, monotonically growing ordered list of primes.
// Index i holds the (i+1)-th prime. All methods are safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	primes []uint64
}

// New returns a Cache seeded with the first ten primes.
func New() *Cache {
	c := &Cache{primes: make([]uint64, len(seedPrimes), 64)}
	copy(c.primes, seedPrimes)
	return c
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the process-wide shared Cache, creating it on first use.
// It lives for the remainder of the process and never shrinks.
func Default() *Cache {
	defaultOnce.Do(func() { defaultCache = New() })
	return defaultCache
}

// Len reports how many primes are currently cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.primes)
}

// EnsureAtLeast guarantees that at least count primes are cached, growing the
// cache if necessary. It may block on the write lock but never fails; a very
// large count is simply slow.
func (c *Cache) EnsureAtLeast(count int) {
	// Read-locked fast path: the cache is usually already large enough.
	c.mu.RLock()
	if len(c.primes) >= count {
		c.mu.RUnlock()
		return
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check: another goroutine may have grown the cache meanwhile.
	if len(c.primes) >= count {
		return
	}
	c.extendTo(count)
}

// Nth returns the prime at index i (0-indexed), growing the cache as needed.
func (c *Cache) Nth(i int) uint64 {
	c.EnsureAtLeast(i + 1)

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.primes[i]
}

// Prefix returns a copy of the first count cached primes, growing as needed.
func (c *Cache) Prefix(count int) []uint64 {
	c.EnsureAtLeast(count)

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]uint64, count)
	copy(out, c.primes[:count])

	return out
}

// extendTo appends primes until the cache holds target entries.
// The caller must hold the write lock.
func (c *Cache) extendTo(target int) {
	candidate := c.primes[len(c.primes)-1] + 2
	for len(c.primes) < target {
		if isPrimeViaCache(candidate, c.primes) {
			c.primes = append(c.primes, candidate)
		}
		candidate += 2
	}
}

// isPrimeViaCache reports whether n is prime by trial division against the
// cached primes not exceeding √n. Valid during growth because the cache
// always extends past the square root of any candidate under test.
//
// The even short-circuit also rejects the literal 2; the seed list supplies 2
// and extendTo only produces odd candidates, so 2 never reaches this
// predicate in normal operation. TestIsPrimeViaCache_RejectsTwo pins this.
func isPrimeViaCache(n uint64, primes []uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return false
	}
	for _, p := range primes {
		if p > n/p { // p² > n: no factor at or below √n remains
			break
		}
		if n%p == 0 {
			return false
		}
	}

	return true
}
