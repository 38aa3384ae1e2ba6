// SPDX-License-Identifier: MIT
package factor

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/katalvlaran/numth/primecache"
	"github.com/katalvlaran/numth/trialtree"
)

// Sentinel errors for engine misuse. Both indicate a programming mistake to
// fix before calling, not a transient condition; nothing is retried.
var (
	// ErrNilInput indicates a nil *big.Int passed to Factor.
	ErrNilInput = errors.New("factor: nil input")

	// ErrZeroInput indicates n == 0, whose factorization is undefined.
	ErrZeroInput = errors.New("factor: zero has no prime factorization")
)

var (
	oneInt = big.NewInt(1)
	twoInt = big.NewInt(2)
)

// Engine strips all prime factors below a caller-chosen index bound from an
// arbitrary-precision integer. The zero-option engine shares the
// process-wide prime cache and product tree; tests substitute smaller ones
// through the options. An Engine is safe for concurrent use.
type Engine struct {
	cache *primecache.Cache
	tree  *trialtree.Tree

	buildOnce sync.Once       // guards the lazily built per-engine tree
	built     *trialtree.Tree // written only inside buildOnce
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithCache substitutes the prime cache backing the engine and the tree it
// builds when none is supplied.
func WithCache(c *primecache.Cache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithTree substitutes the product tree the engine queries.
func WithTree(t *trialtree.Tree) Option {
	return func(e *Engine) { e.tree = t }
}

// NewEngine returns an Engine. With no options it resolves to the shared
// cache and tree lazily, so nothing is built until the first Factor call.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.tree != nil && e.cache == nil {
		e.cache = e.tree.Cache()
	}

	return e
}

// resolveTree returns the tree to query, building one over the engine's own
// cache when a cache was injected without a tree. The one-time guard makes
// racing first callers block and share the build instead of rebuilding.
func (e *Engine) resolveTree() *trialtree.Tree {
	if e.tree != nil { // set only at construction, immutable afterwards
		return e.tree
	}
	if e.cache == nil {
		return trialtree.Default()
	}

	e.buildOnce.Do(func() {
		t, err := trialtree.New(e.cache, trialtree.DefaultCapacity)
		if err != nil {
			panic(err) // unreachable: DefaultCapacity is valid
		}
		e.built = t
	})

	return e.built
}

// resolveCache returns the prime cache the engine reads from.
func (e *Engine) resolveCache() *primecache.Cache {
	if e.cache != nil {
		return e.cache
	}

	return primecache.Default()
}

// Factor strips every prime factor of n whose cache index lies below
// numPrimes. It returns the accumulated factorization, the cofactor (1, a
// prime above the window, or an unresolved composite), and an error for
// n == 0 or a numPrimes beyond the tree's capacity. On success
// Sign × ∏ prime^exponent × cofactor == n. The caller's n is not modified.
func (e *Engine) Factor(n *big.Int, numPrimes int) (*Factorization, *big.Int, error) {
	if n == nil {
		return nil, nil, ErrNilInput
	}
	if n.Sign() == 0 {
		return nil, nil, ErrZeroInput
	}

	fz := NewFactorization()
	if n.Sign() < 0 {
		fz.Negate()
	}
	rem := new(big.Int).Abs(n)

	// Powers of two come off with a trailing-zero count before any tree
	// work; the remainder is odd from here on.
	if tz := rem.TrailingZeroBits(); tz > 0 {
		rem.Rsh(rem, tz)
		fz.Insert(twoInt, int64(tz))
	}
	if rem.Cmp(oneInt) == 0 {
		return fz, rem, nil
	}

	tree := e.resolveTree()
	groups, err := tree.FindCandidateGroups(rem, numPrimes)
	if err != nil {
		return nil, nil, fmt.Errorf("factor: %w", err)
	}

	// Resolve each candidate group to actual factors: a surviving group
	// only proves a shared factor with the group product, not which prime
	// it is. On a confirmed hit, divide once and lift the rest.
	p, q, r := new(big.Int), new(big.Int), new(big.Int)
	for _, g := range groups {
		start := g * trialtree.GroupSize
		stop := min(start+trialtree.GroupSize, numPrimes)
		for i := start; i < stop; i++ {
			p.SetUint64(tree.Prime(i))
			q.QuoRem(rem, p, r)
			if r.Sign() != 0 {
				continue
			}
			rem.Set(q)
			fz.Insert(p, 1+ExtractPower(rem, p))
		}
	}

	return fz, rem, nil
}

var (
	defaultEngineOnce sync.Once
	defaultEngine     *Engine
)

// Trial factors n over the first numPrimes cached primes using the shared
// process-wide engine. It is the package-level facade over Engine.Factor.
func Trial(n *big.Int, numPrimes int) (*Factorization, *big.Int, error) {
	defaultEngineOnce.Do(func() { defaultEngine = NewEngine() })

	return defaultEngine.Factor(n, numPrimes)
}
