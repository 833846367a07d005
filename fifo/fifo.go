// Package fifo implements a bounded first-in-first-out cache: lookups
// never reorder entries, and an overflowing insert always evicts the
// oldest admitted entry.
package fifo

import (
	"github.com/arjunmenon/qcache"
	"github.com/arjunmenon/qcache/internal/recency"
)

// Options configures a Cache. Capacity is the only required field;
// FreeValue/FreeKey are optional destructor capabilities, called
// exactly once per entry that leaves via eviction, Erase, or Clear —
// never via Take; an InsertOrAssign-overwrite runs FreeValue (only) on
// the replaced value. OnEvict, if
// set, is notified once per capacity-triggered eviction, with the
// evicted (key, value), before any destructor for that entry runs;
// it exists so a composed cache (see the twoq package) can observe
// and react to an eviction the fifo.Cache itself decided to make.
type Options[K comparable, V any] struct {
	Capacity  int
	FreeValue func(V)
	FreeKey   func(K)
	OnEvict   func(K, V)
}

// Cache is a fixed-capacity FIFO cache.
type Cache[K comparable, V any] struct {
	list *recency.List[K, V]
	opt  Options[K, V]
}

// New constructs a Cache. It returns qcache.ErrInvalidArgument if
// opt.Capacity < 1.
func New[K comparable, V any](opt Options[K, V]) (*Cache[K, V], error) {
	if opt.Capacity < 1 {
		return nil, qcache.ErrInvalidArgument
	}
	return &Cache[K, V]{list: recency.New[K, V](), opt: opt}, nil
}

// Get returns the value for k and whether it was present. A hit does
// not reorder the cache.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	if n, ok := c.list.Lookup(k); ok {
		return n.Value(), true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present, without reordering anything.
func (c *Cache[K, V]) Contains(k K) bool {
	_, ok := c.list.Lookup(k)
	return ok
}

// Size returns the number of resident entries.
func (c *Cache[K, V]) Size() int { return c.list.Len() }

// Capacity returns the configured maximum size.
func (c *Cache[K, V]) Capacity() int { return c.opt.Capacity }

// Empty reports whether the cache holds no entries.
func (c *Cache[K, V]) Empty() bool { return c.list.Len() == 0 }

// Keys returns every resident key, MRU-first (most to least recently
// admitted). It is O(n); intended for bulk introspection such as a
// composed cache's Clear, not the hot path.
func (c *Cache[K, V]) Keys() []K { return c.list.Keys() }

// Insert admits (k, v) if k is absent. If k is already present, Insert
// is a no-op and returns inserted=false. On admission, if the cache is
// at capacity, the oldest entry is evicted first (OnEvict notified,
// then its destructors run) before (k, v) is pushed to the front.
func (c *Cache[K, V]) Insert(k K, v V) (inserted bool) {
	if _, ok := c.list.Lookup(k); ok {
		return false
	}
	c.evictIfFull()
	c.list.PushFront(k, v)
	return true
}

// InsertOrAssign admits (k, v) if k is absent (same eviction behavior
// as Insert), or overwrites the existing value in place — without
// reordering — if k is already present, running FreeValue on the
// value being replaced.
func (c *Cache[K, V]) InsertOrAssign(k K, v V) (inserted bool) {
	if n, ok := c.list.Lookup(k); ok {
		old := n.Value()
		n.SetValue(v)
		if c.opt.FreeValue != nil {
			c.opt.FreeValue(old)
		}
		return false
	}
	c.evictIfFull()
	c.list.PushFront(k, v)
	return true
}

// Erase removes k if present, running FreeKey/FreeValue on its entry.
// Erasing an absent key is a silent no-op.
func (c *Cache[K, V]) Erase(k K) {
	n, ok := c.list.Lookup(k)
	if !ok {
		return
	}
	v := n.Value()
	c.list.Remove(n)
	c.destroy(k, v)
}

// Take removes k if present and returns its value without running any
// destructor, transferring ownership of the value to the caller.
// Taking an absent key returns false.
func (c *Cache[K, V]) Take(k K) (V, bool) {
	n, ok := c.list.Lookup(k)
	if !ok {
		var zero V
		return zero, false
	}
	v := n.Value()
	c.list.Remove(n)
	return v, true
}

// Clear removes every entry, running FreeKey/FreeValue on each.
func (c *Cache[K, V]) Clear() {
	if c.opt.FreeKey != nil || c.opt.FreeValue != nil {
		for _, k := range c.list.Keys() {
			n, ok := c.list.Lookup(k)
			if !ok {
				continue
			}
			v := n.Value()
			if c.opt.FreeValue != nil {
				c.opt.FreeValue(v)
			}
			if c.opt.FreeKey != nil {
				c.opt.FreeKey(k)
			}
		}
	}
	c.list.Clear()
}

// evictIfFull evicts the oldest entry when the cache is already at
// capacity, notifying OnEvict and running destructors on the evicted
// entry before the caller pushes its replacement.
func (c *Cache[K, V]) evictIfFull() {
	if c.list.Len() < c.opt.Capacity {
		return
	}
	n, ok := c.list.Back()
	if !ok {
		return
	}
	k, v := n.Key(), n.Value()
	c.list.Remove(n)
	if c.opt.OnEvict != nil {
		c.opt.OnEvict(k, v)
	}
	c.destroy(k, v)
}

func (c *Cache[K, V]) destroy(k K, v V) {
	if c.opt.FreeValue != nil {
		c.opt.FreeValue(v)
	}
	if c.opt.FreeKey != nil {
		c.opt.FreeKey(k)
	}
}
