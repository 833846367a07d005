// Package lru implements a bounded least-recently-used cache: every
// Get, Contains, and InsertOrAssign-overwrite promotes the entry to
// most-recently-used, and an overflowing Insert evicts the entry that
// has gone longest unused.
package lru

import (
	"github.com/arjunmenon/qcache"
	"github.com/arjunmenon/qcache/internal/recency"
)

// Options configures a Cache. See fifo.Options for the shared
// Capacity/FreeValue/FreeKey/OnEvict contract; it is identical here.
type Options[K comparable, V any] struct {
	Capacity  int
	FreeValue func(V)
	FreeKey   func(K)
	OnEvict   func(K, V)
}

// Cache is a fixed-capacity LRU cache.
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

// Get returns the value for k and whether it was present. A hit
// promotes k to most-recently-used.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	n, ok := c.list.Lookup(k)
	if !ok {
		var zero V
		return zero, false
	}
	c.list.MoveToFront(n)
	return n.Value(), true
}

// Contains reports whether k is present, promoting it to
// most-recently-used on a hit, the same as Get.
func (c *Cache[K, V]) Contains(k K) bool {
	n, ok := c.list.Lookup(k)
	if !ok {
		return false
	}
	c.list.MoveToFront(n)
	return true
}

// Peek reports whether k is present without promoting it.
func (c *Cache[K, V]) Peek(k K) (V, bool) {
	n, ok := c.list.Lookup(k)
	if !ok {
		var zero V
		return zero, false
	}
	return n.Value(), true
}

// Size returns the number of resident entries.
func (c *Cache[K, V]) Size() int { return c.list.Len() }

// Capacity returns the configured maximum size.
func (c *Cache[K, V]) Capacity() int { return c.opt.Capacity }

// Empty reports whether the cache holds no entries.
func (c *Cache[K, V]) Empty() bool { return c.list.Len() == 0 }

// Keys returns every resident key, MRU-first.
func (c *Cache[K, V]) Keys() []K { return c.list.Keys() }

// Insert admits (k, v) at most-recently-used if k is absent. If k is
// already present, Insert is a no-op and returns inserted=false (it
// does not promote; use Get or InsertOrAssign for that). On
// admission, if the cache is at capacity, the least-recently-used
// entry is evicted first.
func (c *Cache[K, V]) Insert(k K, v V) (inserted bool) {
	if _, ok := c.list.Lookup(k); ok {
		return false
	}
	c.evictIfFull()
	c.list.PushFront(k, v)
	return true
}

// InsertOrAssign admits (k, v) at most-recently-used if k is absent
// (same eviction behavior as Insert), or overwrites the existing
// value and promotes it to most-recently-used if k is already
// present, running FreeValue on the value being replaced.
func (c *Cache[K, V]) InsertOrAssign(k K, v V) (inserted bool) {
	if n, ok := c.list.Lookup(k); ok {
		old := n.Value()
		n.SetValue(v)
		c.list.MoveToFront(n)
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
