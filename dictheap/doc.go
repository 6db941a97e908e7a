// Package dictheap implements an addressable binary min-heap keyed by a
// comparable key (a "dictionary heap").
//
// Unlike a plain container/heap queue with lazy decrease-key, every key
// appears at most once: Set inserts or updates-and-resifts in place, and
// Delete removes an arbitrary key, both in O(log n). An internal key→slot
// map is kept as the exact inverse of the heap array on every swap.
//
// Ordering:
//
//   - The less function is supplied once to New and must be a strict weak
//     ordering over V.
//   - Ties are resolved by heap position. The order in which equal values
//     are popped is NOT stable across different insertion orders.
//
// Complexity:
//
//   - Get, Contains, Len, Peek: O(1).
//   - Set, Delete, RemoveFirst: O(log n).
//
// Missing keys are not errors: Get, Delete and RemoveFirst report absence
// with a boolean result.
//
// A Heap is not safe for concurrent use.
package dictheap
