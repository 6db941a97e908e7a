package ringbuf

import "fmt"

// Buffer is a bounded FIFO queue backed by a circular slice.
type Buffer[T any] struct {
	data  []T
	head  int // slot of the oldest element
	count int
}

// New returns a buffer holding at most capacity elements, pre-filled with
// initial in order. It fails with ErrBadCapacity when capacity ≤ 0 and with
// ErrCapacityExceeded when len(initial) > capacity.
func New[T any](capacity int, initial ...T) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	if len(initial) > capacity {
		return nil, fmt.Errorf("%w: %d initial elements for capacity %d", ErrCapacityExceeded, len(initial), capacity)
	}
	b := &Buffer[T]{data: make([]T, capacity)}
	b.count = copy(b.data, initial)

	return b, nil
}

// Write appends v at the tail. It fails with ErrCapacityExceeded when the
// buffer is full, leaving the contents unchanged.
func (b *Buffer[T]) Write(v T) error {
	if b.count == len(b.data) {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, len(b.data))
	}
	b.data[(b.head+b.count)%len(b.data)] = v
	b.count++

	return nil
}

// Read removes and returns the oldest element; ok is false when empty.
func (b *Buffer[T]) Read() (v T, ok bool) {
	if b.count == 0 {
		return v, false
	}
	v = b.data[b.head]
	var zero T
	b.data[b.head] = zero
	b.head = (b.head + 1) % len(b.data)
	b.count--

	return v, true
}

// Peek returns the oldest element without removing it.
func (b *Buffer[T]) Peek() (v T, ok bool) {
	if b.count == 0 {
		return v, false
	}
	return b.data[b.head], true
}

func (b *Buffer[T]) Len() int    { return b.count }
func (b *Buffer[T]) Cap() int    { return len(b.data) }
func (b *Buffer[T]) Empty() bool { return b.count == 0 }
func (b *Buffer[T]) Full() bool  { return b.count == len(b.data) }

// Reset drops every element and keeps the capacity.
func (b *Buffer[T]) Reset() {
	clear(b.data)
	b.head, b.count = 0, 0
}
