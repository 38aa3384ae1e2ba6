// SPDX-License-Identifier: MIT
package factor

import "math/big"

// FirstPrimeFactor returns the cache index of the first prime in
// [start, stop) dividing n, scanning in index order, and whether one was
// found. The sign of n is ignored.
//
// Edge semantics: n == 0 reports start (zero is divisible by every prime);
// |n| == 1 reports no factor; an empty or negative range reports no factor.
// When start is 0 the evenness of n answers for index 0 directly before the
// odd primes are scanned.
func (e *Engine) FirstPrimeFactor(n *big.Int, start, stop int) (int, bool) {
	if n == nil || start < 0 || start >= stop {
		return 0, false
	}
	if n.Sign() == 0 {
		return start, true
	}

	x := new(big.Int).Abs(n)
	if x.Cmp(oneInt) == 0 {
		return 0, false
	}

	cache := e.resolveCache()
	cache.EnsureAtLeast(stop)

	i := start
	if i == 0 {
		if x.Bit(0) == 0 {
			return 0, true
		}
		i = 1 // x is odd, 2 is ruled out
	}

	p, r := new(big.Int), new(big.Int)
	for ; i < stop; i++ {
		p.SetUint64(cache.Nth(i))
		if r.Rem(x, p).Sign() == 0 {
			return i, true
		}
	}

	return 0, false
}
