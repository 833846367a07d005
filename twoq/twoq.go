// Package twoq implements the Johnson/Shasha 2Q cache: a fixed-capacity
// cache resistant to scan and one-hit pollution, built from three
// sub-caches with a strict admission/demotion/promotion protocol.
//
// A key moves through at most four states: absent, probation (A1_in,
// FIFO-ordered), ghost (A1_out, a key-only FIFO remembering recently
// demoted probation keys), and hot (Am, LRU-ordered). A key only ever
// reaches hot by way of ghost — there is no direct probation-to-hot
// transition — which is what lets 2Q shrug off a one-time scan that
// would otherwise flush an LRU cache's working set.
package twoq

import (
	"github.com/arjunmenon/qcache"
	"github.com/arjunmenon/qcache/fifo"
	"github.com/arjunmenon/qcache/lru"
)

// Options configures a Cache. FreeValue/FreeKey are invoked on an
// entry's true destruction — capacity eviction from Am, explicit
// Erase, or Clear — and never on Take. InsertOrAssign-overwrite runs
// FreeValue on the replaced value. A probation-to-ghost demotion runs
// FreeValue on the demoted value but not FreeKey, since the key is
// still tracked, just relocated; FreeKey runs when a ghost key later
// falls out of A1_out. OnEvict, if set, is notified once per value evicted
// from Am under capacity pressure; it is the only point at which a
// live (key, value) pair leaves the cache outright rather than
// migrating to another tier.
type Options[K comparable, V any] struct {
	Capacity  int
	FreeValue func(V)
	FreeKey   func(K)
	OnEvict   func(K, V)
}

// Cache is a fixed-capacity 2Q cache composed of a probation FIFO
// (A1_in), a ghost FIFO of keys only (A1_out), and a hot LRU (Am).
type Cache[K comparable, V any] struct {
	capacity  int
	freeValue func(V)
	freeKey   func(K)

	aIn  *fifo.Cache[K, V]
	aOut *fifo.Cache[K, struct{}]
	am   *lru.Cache[K, V]
}

// New constructs a Cache with sub-capacities derived from
// opt.Capacity: |A1_in| = max(1, N/4), |A1_out| = max(1, N/2),
// |Am| = N. It returns qcache.ErrInvalidArgument if opt.Capacity < 1.
func New[K comparable, V any](opt Options[K, V]) (*Cache[K, V], error) {
	if opt.Capacity < 1 {
		return nil, qcache.ErrInvalidArgument
	}
	capIn := opt.Capacity / 4
	if capIn < 1 {
		capIn = 1
	}
	capOut := opt.Capacity / 2
	if capOut < 1 {
		capOut = 1
	}

	c := &Cache[K, V]{
		capacity:  opt.Capacity,
		freeValue: opt.FreeValue,
		freeKey:   opt.FreeKey,
	}

	// A1_out is fully autonomous: it has no values to free, and a key
	// that falls out of the ghost list is truly gone, so its own
	// FreeKey is wired directly to ours.
	aOut, err := fifo.New[K, struct{}](fifo.Options[K, struct{}]{
		Capacity: capOut,
		FreeKey:  opt.FreeKey,
	})
	if err != nil {
		return nil, err
	}
	c.aOut = aOut

	// A1_in frees values on demotion (they're truly destroyed) but
	// never keys: a demoted key is reborn as a ghost entry, not
	// destroyed. OnEvict is how that handoff happens — it fires with
	// the demoted (key, value) before any destructor runs, so the key
	// is still good to hand to A1_out.
	aIn, err := fifo.New[K, V](fifo.Options[K, V]{
		Capacity:  capIn,
		FreeValue: opt.FreeValue,
		OnEvict:   func(k K, _ V) { c.aOut.Insert(k, struct{}{}) },
	})
	if err != nil {
		return nil, err
	}
	c.aIn = aIn

	// Am is fully autonomous: a value evicted from Am under capacity
	// pressure is truly gone, so both destructors and the eviction
	// notification are wired directly to ours.
	am, err := lru.New[K, V](lru.Options[K, V]{
		Capacity:  opt.Capacity,
		FreeValue: opt.FreeValue,
		FreeKey:   opt.FreeKey,
		OnEvict:   opt.OnEvict,
	})
	if err != nil {
		return nil, err
	}
	c.am = am

	return c, nil
}

// Get returns the value for k and whether it was present. A hit in Am
// promotes to MRU; a hit in A1_in does not reorder it (classical 2Q:
// a probationary entry earns hot status only by surviving to a ghost
// re-reference, never by repeated probation hits).
func (c *Cache[K, V]) Get(k K) (V, bool) {
	if v, ok := c.am.Get(k); ok {
		return v, true
	}
	return c.aIn.Get(k)
}

// Contains reports whether k is present in Am or A1_in. A1_out
// (ghost) membership does not count: it remembers a key, not an
// entry. A hit in Am promotes, the same as Get/Contains on Am alone.
func (c *Cache[K, V]) Contains(k K) bool {
	if c.am.Contains(k) {
		return true
	}
	return c.aIn.Contains(k)
}

// Size is |Am| + |A1_in|; A1_out is a ghost list and never counts
// toward live size.
func (c *Cache[K, V]) Size() int { return c.am.Size() + c.aIn.Size() }

// Capacity returns the configured maximum live size, N.
func (c *Cache[K, V]) Capacity() int { return c.capacity }

// Empty reports whether the cache holds no live entries.
func (c *Cache[K, V]) Empty() bool { return c.Size() == 0 }

// Keys returns every live key: Am's keys (MRU-first), then A1_in's
// (most recently admitted first). Ghost keys in A1_out are not included,
// since they carry no value. Intended for bulk introspection, not the
// hot path.
func (c *Cache[K, V]) Keys() []K {
	keys := c.am.Keys()
	return append(keys, c.aIn.Keys()...)
}

// Insert admits (k, v) per the 2Q admission rule:
//
//   - k already hot (in Am) or already on probation (in A1_in): no-op,
//     inserted=false.
//   - k is a ghost (in A1_out): the ghost entry is consumed (not
//     destroyed — the key is reborn, not dropped) and (k, v) is
//     admitted directly into Am, evicting Am's LRU tail first if full.
//   - k unknown to all three: (k, v) is admitted into A1_in, demoting
//     A1_in's oldest entry to A1_out first if full (see Options).
func (c *Cache[K, V]) Insert(k K, v V) (inserted bool) {
	if _, ok := c.am.Peek(k); ok {
		return false
	}
	if c.aIn.Contains(k) {
		return false
	}
	if c.aOut.Contains(k) {
		c.aOut.Take(k)
		c.am.Insert(k, v)
		return true
	}
	c.aIn.Insert(k, v)
	return true
}

// InsertOrAssign follows the same admission routing as Insert, except
// that a hit in Am or A1_in overwrites the existing value in place
// (promoting to MRU for an Am hit) instead of no-op'ing.
func (c *Cache[K, V]) InsertOrAssign(k K, v V) (inserted bool) {
	if _, ok := c.am.Peek(k); ok {
		c.am.InsertOrAssign(k, v)
		return false
	}
	if c.aIn.Contains(k) {
		c.aIn.InsertOrAssign(k, v)
		return false
	}
	if c.aOut.Contains(k) {
		c.aOut.Take(k)
		c.am.Insert(k, v)
		return true
	}
	c.aIn.Insert(k, v)
	return true
}

// Erase removes k if it is live (in Am or A1_in) or a ghost (in
// A1_out), running the configured destructors. Erasing an absent key
// is a silent no-op. Unlike a capacity-triggered A1_in eviction, an
// explicit Erase of a probationary key destroys it outright — it does
// not demote to ghost.
func (c *Cache[K, V]) Erase(k K) {
	if v, ok := c.am.Take(k); ok {
		c.destroy(k, v)
		return
	}
	if v, ok := c.aIn.Take(k); ok {
		c.destroy(k, v)
		return
	}
	if _, ok := c.aOut.Take(k); ok {
		if c.freeKey != nil {
			c.freeKey(k)
		}
	}
}

// Take removes k if it is live (in Am or A1_in) and returns its value
// without running any destructor. A ghost-only key cannot be taken,
// since A1_out holds no value.
func (c *Cache[K, V]) Take(k K) (V, bool) {
	if v, ok := c.am.Take(k); ok {
		return v, true
	}
	if v, ok := c.aIn.Take(k); ok {
		return v, true
	}
	var zero V
	return zero, false
}

// Clear removes every entry from all three tiers, running FreeKey/
// FreeValue on each live and ghost key exactly once. A1_in's keys are
// freed here explicitly, since A1_in's own FreeKey is deliberately
// left unwired (see New) to keep capacity-driven demotion from
// destroying a key that is only moving to A1_out.
func (c *Cache[K, V]) Clear() {
	if c.freeKey != nil {
		for _, k := range c.aIn.Keys() {
			c.freeKey(k)
		}
	}
	c.aIn.Clear()
	c.aOut.Clear()
	c.am.Clear()
}

func (c *Cache[K, V]) destroy(k K, v V) {
	if c.freeValue != nil {
		c.freeValue(v)
	}
	if c.freeKey != nil {
		c.freeKey(k)
	}
}
