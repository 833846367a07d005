// Package qcache is the shared error vocabulary and key-hashing
// convenience behind three bounded, single-owner, in-memory caches:
//
//   - fifo.Cache  — first-in-first-out eviction.
//   - lru.Cache   — least-recently-used eviction.
//   - twoq.Cache  — the Johnson/Shasha 2Q scheme, composed from a
//     fifo.Cache (the A1in probation queue), a ghost fifo.Cache of
//     keys only (A1out), and an lru.Cache (Am, the hot queue).
//
// All three share one substrate (internal/recency): an intrusive
// MRU→LRU doubly linked list coupled with a key index, giving O(1)
// push-front, move-to-front, unlink-by-key, and peek-back.
//
// None of the three caches lock internally or block; they are
// single-owner data structures. Callers that need to share one across
// goroutines are expected to add their own synchronization.
//
// Basic usage
//
//	c, err := lru.New[string, []byte](lru.Options[string, []byte]{Capacity: 1024})
//	if err != nil {
//	    // Capacity < 1.
//	}
//	c.Insert("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v
//	}
//	c.Erase("a")
//
// Value/key lifetime
//
//	c, _ := fifo.New[string, *conn](fifo.Options[string, *conn]{
//	    Capacity:  64,
//	    FreeValue: func(c *conn) { c.Close() },
//	})
//	// FreeValue runs on eviction, Erase, Clear, and overwrite — never on Take.
package qcache
