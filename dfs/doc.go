// Package dfs provides recursive depth-first traversal over a graph.Graph.
//
// DFS visits vertices in pre-order by discovery: the current vertex is
// emitted, then each of its neighbors is explored to exhaustion before
// the next, scanning adjacency lists in head-first order (reverse
// insertion order). The visit sequence is therefore deterministic for a
// given edge insertion history. Vertices unreachable from the start are
// never visited. Visited markers are a fresh per-call scratch slice; the
// graph itself holds no traversal state.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V) for the visited markers, result, and recursion stack.
//
// Errors:
//
//	ErrNilGraph        - nil graph pointer.
//	ErrStartOutOfRange - start vertex outside [0, NumVertices()).
package dfs
