// SPDX-License-Identifier: MIT
package trialtree

import (
	"math/big"
	"math/bits"
)

var oneInt = big.NewInt(1)

// FindCandidateGroups returns the indices of the leaf groups among the first
// numPrimes primes that may contain a factor of n. Every prime inside the
// window that divides n is inside a returned group (no false negatives);
// returned groups may still contain no factor at all (false positives), and
// the caller resolves them with individual divisibility tests.
//
// n must be non-nil; its sign is ignored. Inputs with |n| ≤ 1 share no
// factor with any prime and yield no candidates. A numPrimes outside
// (0, capacity] is a configuration error.
func (t *Tree) FindCandidateGroups(n *big.Int, numPrimes int) ([]int, error) {
	if numPrimes <= 0 || numPrimes > t.capacity {
		return nil, ErrPrimesOutOfRange
	}

	x := new(big.Int).Abs(n)
	if x.Cmp(oneInt) <= 0 {
		return nil, nil
	}

	root := t.effectiveRoot(numPrimes)
	groupsToCheck := (numPrimes + GroupSize - 1) / GroupSize

	var candidates []int
	scratch := new(big.Int)
	for g := 0; g < groupsToCheck; g++ {
		if t.groupMayDivide(x, scratch, g, root) {
			candidates = append(candidates, g)
		}
	}

	return candidates, nil
}

// effectiveRoot picks the lowest level whose single covering node spans at
// least numPrimes primes; queries below full capacity skip the upper levels
// entirely. ceil(numPrimes/GroupSize) ≤ 2^m holds for the returned m, so
// every queried group sits under node 0 of that level.
func (t *Tree) effectiveRoot(numPrimes int) int {
	m := bits.Len(uint(numPrimes)) - bits.UintSize/32
	if m < 0 {
		m = 0
	}
	if top := len(t.levels) - 1; m > top {
		m = top
	}

	return m
}

// groupMayDivide walks from the effective root down to leaf group g keeping
// a running gcd with x. A gcd of 1 at any node proves the whole subtree
// coprime to x, so the group is pruned without touching the levels below.
func (t *Tree) groupMayDivide(x, scratch *big.Int, group, root int) bool {
	g := scratch.Set(x)
	for level := root; level >= 0; level-- {
		node := t.levels[level][group>>uint(level)]
		g.GCD(nil, nil, g, node)
		if g.Cmp(oneInt) == 0 {
			return false
		}
	}

	return true
}
