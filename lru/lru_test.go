package lru

import "testing"

func TestNew_InvalidCapacity(t *testing.T) {
	t.Parallel()

	if _, err := New[string, int](Options[string, int]{Capacity: 0}); err == nil {
		t.Fatalf("want error for zero capacity")
	}
}

func TestGet_PromotesToFront(t *testing.T) {
	t.Parallel()

	var evicted []string
	c, _ := New[string, int](Options[string, int]{
		Capacity: 2,
		OnEvict:  func(k string, v int) { evicted = append(evicted, k) },
	})
	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Get("a") // promotes a, so b becomes least-recently-used
	c.Insert("c", 3)

	if c.Contains("b") {
		t.Fatalf("b must have been evicted as least-recently-used")
	}
	if !c.Contains("a") {
		t.Fatalf("a must remain, it was promoted by Get")
	}
	if len(evicted) != 1 || evicted[0] != "b" {
		t.Fatalf("OnEvict = %v, want [b]", evicted)
	}
}

func TestContains_Promotes(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](Options[string, int]{Capacity: 2})
	c.Insert("a", 1)
	c.Insert("b", 2)
	if !c.Contains("a") {
		t.Fatalf("a must be present")
	}
	c.Insert("c", 3) // must evict b, since Contains(a) promoted a

	if c.Contains("b") {
		t.Fatalf("b must have been evicted")
	}
	if !c.Contains("a") {
		t.Fatalf("a must remain")
	}
}

func TestPeek_DoesNotPromote(t *testing.T) {
	t.Parallel()

	c, _ := New[string, int](Options[string, int]{Capacity: 2})
	c.Insert("a", 1)
	c.Insert("b", 2)
	if _, ok := c.Peek("a"); !ok {
		t.Fatalf("a must be present")
	}
	c.Insert("c", 3) // a was never promoted by Peek, so a is still oldest

	if c.Contains("a") {
		t.Fatalf("a should have been evicted, Peek must not promote")
	}
}

func TestInsert_DoesNotPromoteExisting(t *testing.T) {
	t.Parallel()

	var evicted []string
	c, _ := New[string, int](Options[string, int]{
		Capacity: 2,
		OnEvict:  func(k string, v int) { evicted = append(evicted, k) },
	})
	c.Insert("a", 1)
	c.Insert("b", 2)
	if ok := c.Insert("a", 99); ok {
		t.Fatalf("Insert on a present key must return false")
	}
	v, _ := c.Peek("a") // Peek, not Get: Get would promote a itself
	if v != 1 {
		t.Fatalf("Insert on a present key must not overwrite, got %v", v)
	}
	c.Insert("c", 3)
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Fatalf("OnEvict = %v, want [a]: duplicate Insert must not have promoted a", evicted)
	}
}

func TestInsertOrAssign_OverwritesAndPromotes(t *testing.T) {
	t.Parallel()

	var freed []int
	c, _ := New[string, int](Options[string, int]{
		Capacity:  2,
		FreeValue: func(v int) { freed = append(freed, v) },
	})
	c.Insert("a", 1)
	c.Insert("b", 2)
	if ok := c.InsertOrAssign("a", 10); ok {
		t.Fatalf("InsertOrAssign on a present key must report inserted=false")
	}
	v, _ := c.Get("a")
	if v != 10 {
		t.Fatalf("value = %v, want 10", v)
	}
	if len(freed) != 1 || freed[0] != 1 {
		t.Fatalf("FreeValue = %v, want [1]", freed)
	}

	c.Insert("c", 3) // a was promoted by the assign, so b is evicted
	if c.Contains("b") {
		t.Fatalf("b must have been evicted")
	}
}

func TestTake_SkipsDestructors(t *testing.T) {
	t.Parallel()

	called := false
	c, _ := New[string, int](Options[string, int]{
		Capacity:  4,
		FreeValue: func(v int) { called = true },
	})
	c.Insert("a", 1)
	v, ok := c.Take("a")
	if !ok || v != 1 {
		t.Fatalf("Take(a) = %v, %v; want 1, true", v, ok)
	}
	if called {
		t.Fatalf("Take must not invoke any destructor")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	var freedK []string
	c, _ := New[string, int](Options[string, int]{
		Capacity: 4,
		FreeKey:  func(k string) { freedK = append(freedK, k) },
	})
	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Clear()
	if c.Size() != 0 || !c.Empty() {
		t.Fatalf("Clear must empty the cache")
	}
	if len(freedK) != 2 {
		t.Fatalf("Clear must run FreeKey on every entry, got %v", freedK)
	}
}
