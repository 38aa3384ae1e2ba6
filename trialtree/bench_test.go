// SPDX-License-Identifier: MIT
package trialtree_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/numth/primecache"
	"github.com/katalvlaran/numth/trialtree"
)

// BenchmarkNew measures the one-time build at default capacity with a warm
// prime cache.
func BenchmarkNew(b *testing.B) {
	cache := primecache.New()
	cache.EnsureAtLeast(trialtree.DefaultCapacity)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = trialtree.New(cache, trialtree.DefaultCapacity)
	}
}

// BenchmarkFindCandidateGroups measures a full-window query against a number
// with a few scattered small factors.
func BenchmarkFindCandidateGroups(b *testing.B) {
	tr := trialtree.Default()
	n := new(big.Int).SetUint64(3 * 29 * 1223) // three scattered window primes
	n.Mul(n, big.NewInt(1_000_003))            // plus a prime beyond the window
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tr.FindCandidateGroups(n, trialtree.DefaultCapacity)
	}
}
