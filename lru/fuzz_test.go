//go:build go1.18

package lru

import "testing"

// FuzzCache_InsertGetErase mirrors fifo's fuzz target; the only LRU-
// specific invariant it adds is that Get always promotes, so a second
// Get immediately after the first must still hit.
func FuzzCache_InsertGetErase(f *testing.F) {
	f.Add("", "")
	f.Add("a", "1")
	f.Add("long", "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")

	f.Fuzz(func(t *testing.T, k, v string) {
		const limit = 1 << 12
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c, err := New[string, string](Options[string, string]{Capacity: 16})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		c.Insert(k, v)
		got, ok := c.Get(k)
		if !ok || got != v {
			t.Fatalf("after Insert/Get: want %q, got %q ok=%v", v, got, ok)
		}
		got, ok = c.Get(k)
		if !ok || got != v {
			t.Fatalf("repeated Get: want %q, got %q ok=%v", v, got, ok)
		}

		c.Erase(k)
		if _, ok := c.Get(k); ok {
			t.Fatalf("key must be absent after Erase")
		}
	})
}
