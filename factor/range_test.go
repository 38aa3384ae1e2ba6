// SPDX-License-Identifier: MIT
package factor_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numth/factor"
	"github.com/katalvlaran/numth/primecache"
)

func TestFirstPrimeFactor(t *testing.T) {
	e := factor.NewEngine(factor.WithCache(primecache.New()))

	cases := []struct {
		name    string
		n       int64
		start   int
		stop    int
		wantIdx int
		wantOK  bool
	}{
		{"two at index zero", 2, 0, 5, 0, true},
		{"three at index one", 3, 0, 5, 1, true},
		{"seven at index three", 7, 0, 5, 3, true},
		{"even composite", 12, 0, 10, 0, true},
		{"skip two when start is one", 6, 1, 5, 1, true},
		{"single index window", 10, 2, 3, 2, true},
		{"sign ignored", -15, 0, 10, 1, true},
		{"zero divisible by anything", 0, 3, 5, 3, true},
		{"one has no factors", 1, 0, 5, 0, false},
		{"prime beyond window", 31, 0, 10, 0, false},
		{"empty range", 6, 5, 5, 0, false},
		{"inverted range", 6, 5, 3, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := e.FirstPrimeFactor(big.NewInt(tc.n), tc.start, tc.stop)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.Equal(t, tc.wantIdx, idx)
			}
		})
	}
}

func TestFirstPrimeFactor_NilInput(t *testing.T) {
	e := factor.NewEngine(factor.WithCache(primecache.New()))
	_, ok := e.FirstPrimeFactor(nil, 0, 5)
	require.False(t, ok)
}

func TestFirstPrimeFactor_GrowsCache(t *testing.T) {
	cache := primecache.New() // seeded with ten primes only
	e := factor.NewEngine(factor.WithCache(cache))

	// 127 is the 31st prime; the scan must grow the cache to reach it.
	idx, ok := e.FirstPrimeFactor(big.NewInt(127), 0, 40)
	require.True(t, ok)
	require.Equal(t, 30, idx)
	require.GreaterOrEqual(t, cache.Len(), 40)
}
