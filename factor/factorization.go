// SPDX-License-Identifier: MIT
package factor

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// ErrNegativeExponent indicates a Value call on a factorization holding a
// negative exponent, which has no integer value.
var ErrNegativeExponent = errors.New("factor: negative exponent has no integer value")

// PrimePower is one prime factor together with its exponent.
type PrimePower struct {
	Prime *big.Int
	Exp   int64
}

// Factorization records sign × ∏ Prime^Exp for a (partially) factored
// integer. The zero value is not usable; create with NewFactorization.
// A Factorization is owned by a single caller and is not safe for
// concurrent mutation.
type Factorization struct {
	sign    int
	factors map[string]PrimePower
}

// NewFactorization returns the empty positive factorization (the unit 1).
func NewFactorization() *Factorization {
	return &Factorization{sign: 1, factors: make(map[string]PrimePower)}
}

// Sign returns +1 or -1.
func (f *Factorization) Sign() int { return f.sign }

// Negate flips the sign.
func (f *Factorization) Negate() { f.sign = -f.sign }

// Len returns the number of distinct recorded primes.
func (f *Factorization) Len() int { return len(f.factors) }

// Insert adds exp to the exponent recorded for p, dropping the entry when
// the sum reaches zero. p is assumed to be a prime ≥ 2; primality is never
// validated here. The stored prime is a copy, detached from the caller's
// value.
func (f *Factorization) Insert(p *big.Int, exp int64) {
	if exp == 0 {
		return
	}

	key := p.String()
	if cur, ok := f.factors[key]; ok {
		cur.Exp += exp
		if cur.Exp == 0 {
			delete(f.factors, key)
			return
		}
		f.factors[key] = cur
		return
	}
	f.factors[key] = PrimePower{Prime: new(big.Int).Set(p), Exp: exp}
}

// Exponent returns the exponent recorded for p, or 0 when p is absent.
func (f *Factorization) Exponent(p *big.Int) int64 {
	return f.factors[p.String()].Exp
}

// Factors returns the recorded prime powers in ascending prime order.
// The primes are copies; mutating them does not affect the factorization.
func (f *Factorization) Factors() []PrimePower {
	out := make([]PrimePower, 0, len(f.factors))
	for _, pp := range f.factors {
		out = append(out, PrimePower{Prime: new(big.Int).Set(pp.Prime), Exp: pp.Exp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prime.Cmp(out[j].Prime) < 0 })

	return out
}

// Mul merges other into f: signs multiply, exponents of shared primes add,
// and entries whose exponents cancel to zero are dropped.
func (f *Factorization) Mul(other *Factorization) {
	f.sign *= other.sign
	for _, pp := range other.factors {
		f.Insert(pp.Prime, pp.Exp)
	}
}

// Value recomputes sign × ∏ p^e. Merging factorizations can leave negative
// exponents; those have no integer value and yield ErrNegativeExponent.
func (f *Factorization) Value() (*big.Int, error) {
	v := big.NewInt(int64(f.sign))
	pow := new(big.Int)
	for _, pp := range f.factors {
		if pp.Exp < 0 {
			return nil, ErrNegativeExponent
		}
		pow.Exp(pp.Prime, big.NewInt(pp.Exp), nil)
		v.Mul(v, pow)
	}

	return v, nil
}

// String renders the factorization as e.g. "-2^3*5*11^2"; the unit is "1".
func (f *Factorization) String() string {
	var b strings.Builder
	if f.sign < 0 {
		b.WriteByte('-')
	}
	if len(f.factors) == 0 {
		b.WriteByte('1')
		return b.String()
	}

	for i, pp := range f.Factors() {
		if i > 0 {
			b.WriteByte('*')
		}
		if pp.Exp == 1 {
			b.WriteString(pp.Prime.String())
		} else {
			fmt.Fprintf(&b, "%s^%d", pp.Prime, pp.Exp)
		}
	}

	return b.String()
}
