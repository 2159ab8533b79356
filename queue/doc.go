// Package queue provides a bounded FIFO queue of vertex indices,
// used as the scratch structure for breadth-first traversal.
//
// The queue has a fixed capacity chosen at creation and never grows.
// It is single-shot rather than circular: items advance front-to-rear
// through a fixed buffer, and the indices reset only when the queue
// drains completely. Sized to the vertex count of a graph, this is
// sufficient for BFS, where each vertex is enqueued at most once per
// traversal.
//
// Complexity: O(1) for every operation; O(capacity) space.
//
// Errors:
//
//	ErrBadCapacity - capacity is zero or negative.
//	ErrFull        - enqueue on a full queue; the queue is unchanged.
//	ErrEmpty       - dequeue on an empty queue; the sentinel -1 is returned.
package queue
