// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a graph.Graph with non-negative edge weights.
//
// This is the classical O(V²) array-scan variant: each round selects the
// non-finalized vertex with the minimum tentative distance by a linear
// scan (ties broken by lowest vertex index, since the scan keeps the
// first minimum found), finalizes it, and relaxes its outgoing edges.
// The loop ends after V-1 rounds or as soon as every non-finalized vertex
// is at infinite distance, i.e. unreachable. At teaching-scale vertex
// counts the linear scan beats the bookkeeping of a heap.
//
// Negative edge weights are not validated: the algorithm assumes they are
// absent and produces incorrect (but non-crashing) distances if they are
// present. This is a documented limitation, not a runtime-checked error.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V) for the distance, finalized, and predecessor arrays.
//
// Errors:
//
//	ErrNilGraph          - nil graph pointer.
//	ErrStartOutOfRange   - start vertex outside [0, NumVertices()).
//	ErrNoPredecessors    - PathTo on a Result computed without WithReturnPath.
//	ErrVertexUnreachable - PathTo to a vertex at infinite distance.
package dijkstra
