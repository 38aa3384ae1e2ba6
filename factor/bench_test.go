// SPDX-License-Identifier: MIT
package factor_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/numth/factor"
)

// benchmarkFactor runs the shared engine over n with the full default window.
func benchmarkFactor(b *testing.B, n *big.Int) {
	// Warm the shared cache and tree outside the timed loop.
	if _, _, err := factor.Trial(n, 3512); err != nil {
		b.Fatalf("Trial failed: %v", err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, err := factor.Trial(n, 3512)
		if err != nil {
			b.Fatalf("Trial failed: %v", err)
		}
	}
}

// BenchmarkTrial_Smooth factors a number built entirely from window primes.
func BenchmarkTrial_Smooth(b *testing.B) {
	n := big.NewInt(1)
	for _, f := range []int64{2, 2, 2, 3, 3, 541, 1223, 32749} {
		n.Mul(n, big.NewInt(f))
	}
	benchmarkFactor(b, n)
}

// BenchmarkTrial_PrimeInput factors a prime far beyond the window: the tree
// prunes everything and the whole input returns as cofactor.
func BenchmarkTrial_PrimeInput(b *testing.B) {
	n, ok := new(big.Int).SetString("2305843009213693951", 10) // 2^61 - 1
	if !ok {
		b.Fatal("bad literal")
	}
	benchmarkFactor(b, n)
}
