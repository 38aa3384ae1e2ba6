// SPDX-License-Identifier: MIT
package factor_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numth/factor"
)

// TestExtractPower_Exactness builds n = p^e · m with gcd(m, p) = 1 and
// checks the returned exponent is exactly e and n shrinks to m.
func TestExtractPower_Exactness(t *testing.T) {
	cases := []struct {
		p    int64
		e    int64
		mult int64
	}{
		{3, 1, 1},
		{3, 2, 1},
		{3, 10, 7},   // double-digit exponent crosses a ladder rung
		{3, 64, 1},   // exact power of two in the exponent
		{3, 65, 2},   // one past it
		{5, 2, 2},
		{7, 33, 10},
		{11, 5, 13},
		{101, 9, 100003},
	}

	for _, tc := range cases {
		p := big.NewInt(tc.p)
		n := new(big.Int).Exp(p, big.NewInt(tc.e), nil)
		n.Mul(n, big.NewInt(tc.mult))

		e := factor.ExtractPower(n, p)
		require.Equal(t, tc.e, e, "p=%d e=%d", tc.p, tc.e)
		require.Zero(t, n.Cmp(big.NewInt(tc.mult)), "p=%d e=%d", tc.p, tc.e)
	}
}

func TestExtractPower_NonDivisor(t *testing.T) {
	n := big.NewInt(35)
	require.Zero(t, factor.ExtractPower(n, big.NewInt(3)))
	require.Zero(t, n.Cmp(big.NewInt(35))) // untouched
}

// TestExtractPower_TwoShortcut exercises the trailing-zero fast path.
func TestExtractPower_TwoShortcut(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(9), 20) // 2^20 · 9
	require.EqualValues(t, 20, factor.ExtractPower(n, big.NewInt(2)))
	require.Zero(t, n.Cmp(big.NewInt(9)))

	odd := big.NewInt(27)
	require.Zero(t, factor.ExtractPower(odd, big.NewInt(2)))
	require.Zero(t, odd.Cmp(big.NewInt(27)))
}

// TestExtractPower_ResidualNotDivisible asserts the contract p^(e+1) ∤ n by
// re-extracting from the residue.
func TestExtractPower_ResidualNotDivisible(t *testing.T) {
	for _, e := range []int64{1, 2, 3, 7, 8, 15, 16, 31, 100} {
		p := big.NewInt(13)
		n := new(big.Int).Exp(p, big.NewInt(e), nil)
		n.Mul(n, big.NewInt(6)) // coprime to 13

		require.Equal(t, e, factor.ExtractPower(n, p), "e=%d", e)
		require.Zero(t, factor.ExtractPower(n, p), "residue still divisible, e=%d", e)
	}
}
