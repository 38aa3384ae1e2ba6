// SPDX-License-Identifier: MIT
package factor

import "math/big"

// ExtractPower divides n by the highest power of p dividing it and returns
// that exponent e, leaving n equal to n / p^e. It returns 0 (and leaves n
// untouched) when p does not divide n. n must be positive and p prime ≥ 2.
//
// Instead of dividing by p repeatedly, the exponent is found by binary
// lifting in O(log e) divisions: an ascending ladder of repeated squares
// p, p², p⁴, ... strips the bulk, and a descending walk back down recovers
// every power the greedy ascent skipped.
func ExtractPower(n, p *big.Int) int64 {
	// Powers of two come off with a single trailing-zero-bit count.
	if p.Cmp(twoInt) == 0 {
		e := int64(n.TrailingZeroBits())
		n.Rsh(n, uint(e))
		return e
	}

	// Ascending phase: squares[i] = p^(2^i). Divide out each rung once,
	// then climb only while the next square could still fit in the
	// shrunken n.
	squares := []*big.Int{p}
	var exp int64
	i := 0
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(n, squares[i], r)
		if r.Sign() != 0 {
			break
		}
		n.Set(q)
		exp += int64(1) << uint(i)

		next := new(big.Int).Mul(squares[i], squares[i])
		if next.Cmp(n) > 0 {
			break
		}
		squares = append(squares, next)
		i++
	}

	// Descending phase: the remaining multiplicity is below 2^(i+1), so one
	// divisibility test per rung on the way down recovers every leftover
	// bit of the exponent.
	for ; i >= 0; i-- {
		if squares[i].Cmp(n) > 0 {
			continue
		}
		q.QuoRem(n, squares[i], r)
		if r.Sign() == 0 {
			n.Set(q)
			exp += int64(1) << uint(i)
		}
	}

	return exp
}
