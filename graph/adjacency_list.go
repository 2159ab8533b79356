// This file implements edge mutation and adjacency queries.
package graph

import "fmt"

// AddEdge inserts a directed edge src→dest with the given weight at the
// head of src's adjacency list. The most recently added edge is therefore
// the first one seen by traversals. Parallel edges and self-loops are
// permitted. For an undirected connection, call AddEdge twice, once per
// direction.
//
// Returns ErrVertexOutOfRange (wrapped with both indices) if either
// endpoint is invalid; no mutation occurs on error.
//
// Complexity: O(1)
func (g *Graph) AddEdge(src, dest, weight int) error {
	if !g.inRange(src) || !g.inRange(dest) {
		return fmt.Errorf("%w: %d -> %d (valid range 0..%d)",
			ErrVertexOutOfRange, src, dest, g.numVertices-1)
	}

	g.adj[src] = &Edge{Dest: dest, Weight: weight, next: g.adj[src]}

	return nil
}

// RemoveEdge deletes the first edge src→dest found scanning src's list
// from the head. If parallel edges exist, one call removes one edge.
// Returns ErrVertexOutOfRange for invalid endpoints or ErrEdgeNotFound if
// no edge matches; no mutation occurs on error.
//
// Complexity: O(d) where d is the out-degree of src.
func (g *Graph) RemoveEdge(src, dest int) error {
	if !g.inRange(src) || !g.inRange(dest) {
		return fmt.Errorf("%w: %d -> %d (valid range 0..%d)",
			ErrVertexOutOfRange, src, dest, g.numVertices-1)
	}

	var prev *Edge
	for cur := g.adj[src]; cur != nil; cur = cur.next {
		if cur.Dest == dest {
			if prev == nil {
				g.adj[src] = cur.next
			} else {
				prev.next = cur.next
			}

			return nil
		}
		prev = cur
	}

	return fmt.Errorf("%w: %d -> %d", ErrEdgeNotFound, src, dest)
}

// HasEdge reports whether at least one edge src→dest exists.
// Out-of-range indices simply report false.
//
// Complexity: O(d)
func (g *Graph) HasEdge(src, dest int) bool {
	if !g.inRange(src) || !g.inRange(dest) {
		return false
	}

	for cur := g.adj[src]; cur != nil; cur = cur.next {
		if cur.Dest == dest {
			return true
		}
	}

	return false
}

// Neighbors returns a snapshot of v's adjacency list in head-first order
// (reverse insertion order). The snapshot is owned by the caller; later
// graph mutation does not alter it. Returns ErrVertexOutOfRange for an
// invalid index.
//
// Complexity: O(d)
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if !g.inRange(v) {
		return nil, fmt.Errorf("%w: %d (valid range 0..%d)",
			ErrVertexOutOfRange, v, g.numVertices-1)
	}

	var out []Edge
	for cur := g.adj[v]; cur != nil; cur = cur.next {
		out = append(out, Edge{Dest: cur.Dest, Weight: cur.Weight})
	}

	return out, nil
}

// Degree returns the number of outgoing edges of v, or 0 for an invalid
// index.
//
// Complexity: O(d)
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	n := 0
	for cur := g.adj[v]; cur != nil; cur = cur.next {
		n++
	}

	return n
}

// Free releases every edge record across all vertices in one teardown.
// The graph stays valid afterwards: same vertex count, all lists empty.
// Safe to call repeatedly.
//
// Complexity: O(V)
func (g *Graph) Free() {
	for v := range g.adj {
		g.adj[v] = nil
	}
}
