// Package ilist implements a doubly-linked list whose nodes live in a flat,
// append-only slice and refer to their neighbors by index (arena + index).
//
// Deleting a node only rewrites its neighbors' links: the slot stays in
// the backing slice as unreachable garbage for the life of the list. This
// suits the "build once, delete many, discard" pattern of sequential
// storage that gets fragmented (free-space runs, disk blocks, rings of
// marbles), and node indices handed out by Append stay valid forever.
//
// Complexity:
//
//   - Append, InsertBefore, InsertAfter: O(1) amortized.
//   - Delete, Next, Prev, Value, Set: O(1).
//   - FirstIndex, All, Backward: O(live nodes).
//
// Missing or deleted indices are reported with a false result, never a panic.
package ilist
