// Package ringbuf provides a fixed-capacity FIFO ring buffer, sized once at
// construction and intended as a breadth-first-search frontier.
//
// Writing to a full buffer fails with ErrCapacityExceeded instead of
// overwriting the oldest element or growing. An overflowing BFS frontier
// almost always means a missing visited check, and the error surfaces it.
//
// Complexity: Write, Read, Peek are O(1); memory is O(capacity).
//
// A Buffer is synchronous and not safe for concurrent use.
package ringbuf
