// Package recency implements the intrusive MRU→LRU doubly linked list
// coupled with a key index that every cache variant in this module is
// built on: one map lookup plus a constant number of pointer fixes for
// every push-front, move-to-front, unlink, and peek-back.
package recency

// Node is one element of a List. It is owned by exactly one List at a
// time; the List's index holds the same pointer, never a copy.
type Node[K comparable, V any] struct {
	key  K
	val  V
	prev *Node[K, V]
	next *Node[K, V]
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the node's current value.
func (n *Node[K, V]) Value() V { return n.val }

// SetValue overwrites the node's value in place, without touching its
// position in the list.
func (n *Node[K, V]) SetValue(v V) { n.val = v }

// List is an MRU (front) → LRU (back) sequence of Nodes with a
// key→Node index, maintained as a bijection: a key is in the index iff
// a node with that key is in the list. All methods except Keys are
// O(1).
type List[K comparable, V any] struct {
	index      map[K]*Node[K, V]
	head, tail *Node[K, V]
}

// New constructs an empty List.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{index: make(map[K]*Node[K, V])}
}

// Len returns the number of resident nodes.
func (l *List[K, V]) Len() int { return len(l.index) }

// Lookup returns the node for k, if any. It does not reorder the list.
func (l *List[K, V]) Lookup(k K) (*Node[K, V], bool) {
	n, ok := l.index[k]
	return n, ok
}

// PushFront inserts a brand-new (k, v) pair at MRU. The caller must
// ensure k is not already present; PushFront does not check.
func (l *List[K, V]) PushFront(k K, v V) *Node[K, V] {
	n := &Node[K, V]{key: k, val: v}
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.index[k] = n
	return n
}

// MoveToFront promotes n to MRU in place.
func (l *List[K, V]) MoveToFront(n *Node[K, V]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

// Back returns the current LRU node, if any.
func (l *List[K, V]) Back() (*Node[K, V], bool) {
	return l.tail, l.tail != nil
}

// Remove unlinks n from the list and erases it from the index.
func (l *List[K, V]) Remove(n *Node[K, V]) {
	l.unlink(n)
	delete(l.index, n.key)
}

// Keys returns every resident key, MRU-first, in O(n). Used only by
// bulk paths (the caches' Clear and Keys); not on any hot path.
func (l *List[K, V]) Keys() []K {
	keys := make([]K, 0, len(l.index))
	for n := l.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Clear empties the list and index without running any destructor;
// callers that own value/key lifetime must drain the list themselves
// (via Keys + Lookup + Remove) before calling Clear if destructors
// must run.
func (l *List[K, V]) Clear() {
	l.index = make(map[K]*Node[K, V])
	l.head, l.tail = nil, nil
}

// unlink detaches n from the list without touching the index.
func (l *List[K, V]) unlink(n *Node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if l.head == n {
		l.head = n.next
	}
	if l.tail == n {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
