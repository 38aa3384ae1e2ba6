// SPDX-License-Identifier: MIT
package trialtree

import (
	"errors"
	"math/big"
	"math/bits"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/numth/primecache"
)

// Tree geometry follows the native word width: a leaf packs as many primes
// as fit a 16-bit-per-prime product inside one word, and the level count
// shrinks as words widen.
const (
	// GroupSize is the number of consecutive primes per leaf group.
	GroupSize = bits.UintSize / 16

	// DefaultLevels is the level count of the default-capacity tree.
	DefaultLevels = 13 - bits.UintSize/32

	// DefaultCapacity is the prime-index coverage of the shared Default tree.
	DefaultCapacity = 3512
)

// Sentinel errors for tree construction and queries.
var (
	// ErrBadCapacity indicates a non-positive capacity passed to New.
	ErrBadCapacity = errors.New("trialtree: capacity must be positive")

	// ErrPrimesOutOfRange indicates a numPrimes bound outside (0, capacity].
	ErrPrimesOutOfRange = errors.New("trialtree: num primes exceeds tree capacity")
)

// Tree is a product tree over the first capacity primes. It is immutable
// after New returns and may be queried concurrently without locking.
type Tree struct {
	cache    *primecache.Cache
	capacity int
	groups   int
	levels   [][]*big.Int
}

// New builds a Tree over the first capacity primes of cache, growing the
// cache first if needed. A nil cache means the shared primecache.Default.
func New(cache *primecache.Cache, capacity int) (*Tree, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	if cache == nil {
		cache = primecache.Default()
	}
	cache.EnsureAtLeast(capacity)

	t := &Tree{
		cache:    cache,
		capacity: capacity,
		groups:   (capacity + GroupSize - 1) / GroupSize,
	}
	t.build(cache.Prefix(capacity))

	return t, nil
}

var (
	defaultOnce sync.Once
	defaultTree *Tree
)

// Default returns the shared Tree over the first DefaultCapacity primes,
// building it on first use. Concurrent first callers block until the build
// completes and then share the result.
func Default() *Tree {
	defaultOnce.Do(func() {
		t, err := New(primecache.Default(), DefaultCapacity)
		if err != nil {
			panic(err) // unreachable: DefaultCapacity is valid
		}
		defaultTree = t
	})

	return defaultTree
}

// Capacity returns the number of primes the tree covers.
func (t *Tree) Capacity() int { return t.capacity }

// Groups returns the number of leaf groups.
func (t *Tree) Groups() int { return t.groups }

// Cache returns the prime cache the tree was built from.
func (t *Tree) Cache() *primecache.Cache { return t.cache }

// Prime returns the i-th prime from the tree's cache. Indices below
// Capacity never trigger cache growth.
func (t *Tree) Prime(i int) uint64 { return t.cache.Nth(i) }

// build constructs level 0 from leaf-group products and each further level
// from pairwise products until a single root remains. Leaf products are
// independent, so they are computed in parallel over disjoint slots.
func (t *Tree) build(primes []uint64) {
	leaves := make([]*big.Int, t.groups)

	eg := new(errgroup.Group)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	const chunk = 64
	for lo := 0; lo < t.groups; lo += chunk {
		lo, hi := lo, min(lo+chunk, t.groups)
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				leaves[i] = leafProduct(primes, i)
			}
			return nil
		})
	}
	_ = eg.Wait() // leafProduct cannot fail

	t.levels = append(t.levels, leaves)
	for level := leaves; len(level) > 1; {
		next := make([]*big.Int, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, new(big.Int).Mul(level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			// Unpaired trailing node carries forward unchanged.
			next = append(next, level[len(level)-1])
		}
		t.levels = append(t.levels, next)
		level = next
	}
}

// leafProduct multiplies the primes of one leaf group; the final group may
// hold fewer than GroupSize primes.
func leafProduct(primes []uint64, group int) *big.Int {
	start := group * GroupSize
	end := min(start+GroupSize, len(primes))

	prod := new(big.Int).SetUint64(primes[start])
	tmp := new(big.Int)
	for i := start + 1; i < end; i++ {
		prod.Mul(prod, tmp.SetUint64(primes[i]))
	}

	return prod
}
