package ilist

import "iter"

const none = -1

type node[T any] struct {
	value      T
	prev, next int
	live       bool
}

// List is an index-addressed doubly-linked list. The zero value is an
// empty list ready to use.
type List[T any] struct {
	nodes      []node[T]
	head, tail int
	size       int
	init       bool
}

// New returns a list holding values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	l.lazyInit()
	l.nodes = make([]node[T], 0, len(values))
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if !l.init {
		l.head, l.tail = none, none
		l.init = true
	}
}

// Len returns the number of live nodes.
func (l *List[T]) Len() int { return l.size }

// Head returns the index of the first live node.
func (l *List[T]) Head() (int, bool) {
	l.lazyInit()
	return l.head, l.head != none
}

// Tail returns the index of the last live node.
func (l *List[T]) Tail() (int, bool) {
	l.lazyInit()
	return l.tail, l.tail != none
}

func (l *List[T]) alive(i int) bool {
	return i >= 0 && i < len(l.nodes) && l.nodes[i].live
}

// Value returns the value stored at node i.
func (l *List[T]) Value(i int) (T, bool) {
	if !l.alive(i) {
		var zero T
		return zero, false
	}
	return l.nodes[i].value, true
}

// Set replaces the value at node i; it reports false if i is not live.
func (l *List[T]) Set(i int, v T) bool {
	if !l.alive(i) {
		return false
	}
	l.nodes[i].value = v
	return true
}

// Next returns the index following node i.
func (l *List[T]) Next(i int) (int, bool) {
	if !l.alive(i) || l.nodes[i].next == none {
		return none, false
	}
	return l.nodes[i].next, true
}

// Prev returns the index preceding node i.
func (l *List[T]) Prev(i int) (int, bool) {
	if !l.alive(i) || l.nodes[i].prev == none {
		return none, false
	}
	return l.nodes[i].prev, true
}

// Append adds v at the tail and returns its node index.
func (l *List[T]) Append(v T) int {
	l.lazyInit()
	i := len(l.nodes)
	l.nodes = append(l.nodes, node[T]{value: v, prev: l.tail, next: none, live: true})
	if l.tail != none {
		l.nodes[l.tail].next = i
	} else {
		l.head = i
	}
	l.tail = i
	l.size++
	return i
}

// InsertAfter links a new node holding v right after node at and returns
// its index. It reports false if at is not live.
func (l *List[T]) InsertAfter(at int, v T) (int, bool) {
	if !l.alive(at) {
		return none, false
	}
	next := l.nodes[at].next
	i := len(l.nodes)
	l.nodes = append(l.nodes, node[T]{value: v, prev: at, next: next, live: true})
	l.nodes[at].next = i
	if next != none {
		l.nodes[next].prev = i
	} else {
		l.tail = i
	}
	l.size++
	return i, true
}

// InsertBefore links a new node holding v right before node at.
func (l *List[T]) InsertBefore(at int, v T) (int, bool) {
	if !l.alive(at) {
		return none, false
	}
	prev := l.nodes[at].prev
	i := len(l.nodes)
	l.nodes = append(l.nodes, node[T]{value: v, prev: prev, next: at, live: true})
	l.nodes[at].prev = i
	if prev != none {
		l.nodes[prev].next = i
	} else {
		l.head = i
	}
	l.size++
	return i, true
}

// Delete unlinks node i in O(1). The backing slot is not reclaimed.
// It reports false if i is out of range or already deleted.
func (l *List[T]) Delete(i int) bool {
	if !l.alive(i) {
		return false
	}
	n := &l.nodes[i]
	if n.prev != none {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != none {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	var zero T
	*n = node[T]{value: zero, prev: none, next: none}
	l.size--
	return true
}

// FirstIndex walks from the head and returns the first node whose value
// satisfies pred. At every node stop is tested before pred; if stop fires
// first the search fails. A nil stop never fires.
func (l *List[T]) FirstIndex(pred, stop func(int, T) bool) (int, bool) {
	l.lazyInit()
	for i := l.head; i != none; i = l.nodes[i].next {
		v := l.nodes[i].value
		if stop != nil && stop(i, v) {
			return none, false
		}
		if pred(i, v) {
			return i, true
		}
	}
	return none, false
}

// All yields (index, value) pairs from head to tail.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.lazyInit()
		for i := l.head; i != none; i = l.nodes[i].next {
			if !yield(i, l.nodes[i].value) {
				return
			}
		}
	}
}

// Backward yields (index, value) pairs from tail to head.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.lazyInit()
		for i := l.tail; i != none; i = l.nodes[i].prev {
			if !yield(i, l.nodes[i].value) {
				return
			}
		}
	}
}

// Values returns the live values from head to tail.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}
