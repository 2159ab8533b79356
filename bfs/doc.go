// Package bfs provides breadth-first traversal over a graph.Graph,
// producing the level-order visit sequence from a start vertex.
//
// BFS discovers vertices in increasing edge-distance from the start,
// scanning each vertex's adjacency list in head-first order (reverse
// insertion order), so the visit sequence is fully determined by the
// graph's edge insertion history. Vertices unreachable from the start are
// never visited. The traversal owns all of its scratch state: a fresh
// visited slice and a bounded queue sized to the vertex count, which is
// sufficient because each vertex enqueues at most once.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V) for the queue, visited markers, and result.
//
// Errors:
//
//	ErrNilGraph        - nil graph pointer.
//	ErrStartOutOfRange - start vertex outside [0, NumVertices()).
package bfs
