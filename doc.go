// Package dslab is an in-memory playground for the classic data
// structures of an introductory CS curriculum, built as small, focused
// Go packages:
//
//   - graph/    — fixed-vertex, directed, weighted adjacency-list graph
//   - bfs/      — level-order traversal (uses the bounded queue)
//   - dfs/      — pre-order-by-discovery traversal
//   - dijkstra/ — single-source shortest paths (array-scan variant)
//   - queue/    — bounded FIFO of vertex indices
//   - llist/    — singly linked integer list
//   - bst/      — binary search tree
//
// Everything is synchronous and single-owner: a structure is mutated and
// queried from one logical caller at a time, every operation runs to
// completion or fails fast on a precondition, and no error leaves a
// structure unusable. Traversal order over the graph is deterministic —
// adjacency lists keep reverse insertion order, and every algorithm
// scans them head-first.
//
// The cmd/dslab binary exposes the three structures through interactive
// numbered menus.
package dslab
