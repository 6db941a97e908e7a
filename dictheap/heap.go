package dictheap

import (
	"container/heap"
	"iter"
)

// Heap is a min-heap of values addressed by key.
type Heap[K comparable, V any] struct {
	h entries[K, V]
}

// New returns an empty heap ordered by less.
func New[K comparable, V any](less func(a, b V) bool) *Heap[K, V] {
	return &Heap[K, V]{
		h: entries[K, V]{
			less:  less,
			index: make(map[K]int),
		},
	}
}

// Len returns the number of keys in the heap.
func (hp *Heap[K, V]) Len() int { return len(hp.h.items) }

// Contains reports whether key is present.
func (hp *Heap[K, V]) Contains(key K) bool {
	_, ok := hp.h.index[key]
	return ok
}

// Get returns the current value for key.
func (hp *Heap[K, V]) Get(key K) (V, bool) {
	i, ok := hp.h.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return hp.h.items[i].value, true
}

// Set inserts key with value v, or replaces its value and restores heap
// order if key is already present.
// Complexity: O(log n).
func (hp *Heap[K, V]) Set(key K, v V) {
	if i, ok := hp.h.index[key]; ok {
		hp.h.items[i].value = v
		heap.Fix(&hp.h, i)
		return
	}
	heap.Push(&hp.h, entry[K, V]{key: key, value: v})
}

// Delete removes key. It reports whether key was present.
// Complexity: O(log n).
func (hp *Heap[K, V]) Delete(key K) bool {
	i, ok := hp.h.index[key]
	if !ok {
		return false
	}
	heap.Remove(&hp.h, i)
	return true
}

// Peek returns the minimum entry without removing it.
func (hp *Heap[K, V]) Peek() (K, V, bool) {
	if len(hp.h.items) == 0 {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	e := hp.h.items[0]
	return e.key, e.value, true
}

// RemoveFirst pops the minimum entry. The last element is swapped into the
// root and sifted down.
// Complexity: O(log n).
func (hp *Heap[K, V]) RemoveFirst() (K, V, bool) {
	if len(hp.h.items) == 0 {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	e := heap.Pop(&hp.h).(entry[K, V])
	return e.key, e.value, true
}

// Keys yields the keys in heap-array order (not sorted).
func (hp *Heap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range hp.h.items {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Clear removes every entry and keeps the ordering function.
func (hp *Heap[K, V]) Clear() {
	hp.h.items = hp.h.items[:0]
	clear(hp.h.index)
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// entries implements heap.Interface. Swap, Push and Pop keep index in sync
// with items, so index[items[i].key] == i holds between calls.
type entries[K comparable, V any] struct {
	items []entry[K, V]
	index map[K]int
	less  func(a, b V) bool
}

func (es *entries[K, V]) Len() int { return len(es.items) }

func (es *entries[K, V]) Less(i, j int) bool {
	return es.less(es.items[i].value, es.items[j].value)
}

func (es *entries[K, V]) Swap(i, j int) {
	es.items[i], es.items[j] = es.items[j], es.items[i]
	es.index[es.items[i].key] = i
	es.index[es.items[j].key] = j
}

func (es *entries[K, V]) Push(x any) {
	e := x.(entry[K, V])
	es.index[e.key] = len(es.items)
	es.items = append(es.items, e)
}

func (es *entries[K, V]) Pop() any {
	n := len(es.items)
	e := es.items[n-1]
	es.items[n-1] = entry[K, V]{}
	es.items = es.items[:n-1]
	delete(es.index, e.key)
	return e
}
