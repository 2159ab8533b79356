// Package graph provides a directed, integer-weighted graph over a fixed
// set of vertex indices, stored as per-vertex adjacency lists.
//
// A Graph is created with a positive vertex count that never changes.
// Vertices are the indices [0, NumVertices()). Edges are inserted at the
// head of the source vertex's adjacency list, so traversing a list yields
// edges in reverse insertion order (most recent first). This ordering is
// observable through Neighbors, String, and every traversal built on top
// of the graph, and it is deterministic for a given insertion history.
//
// Parallel edges between the same pair and self-loops are permitted; the
// graph never deduplicates. Removal drops only the first matching edge
// found from the head. To model an undirected edge, add both directions.
//
// The graph holds no traversal state: visited markers and distance arrays
// are owned by the algorithm packages (bfs, dfs, dijkstra), so the graph
// itself carries nothing that one call could leak into the next. Mutation
// is single-writer by contract; the graph performs no locking.
//
// Errors:
//
//	ErrNonPositiveVertices - New called with vertices <= 0.
//	ErrVertexOutOfRange    - a vertex argument outside [0, NumVertices()).
//	ErrEdgeNotFound        - RemoveEdge found no matching edge.
package graph
