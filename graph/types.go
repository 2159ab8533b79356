// This file declares the Graph and Edge types, sentinel errors,
// and the New constructor.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrNonPositiveVertices indicates New was called with vertices <= 0.
	ErrNonPositiveVertices = errors.New("graph: number of vertices must be positive")

	// ErrVertexOutOfRange indicates a vertex index outside [0, NumVertices()).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrEdgeNotFound indicates RemoveEdge found no edge to the destination.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Edge is a directed, weighted connection to Dest, recorded in the
// adjacency list of its source vertex.
type Edge struct {
	// Dest is the destination vertex index.
	Dest int

	// Weight is the integer cost of the edge.
	Weight int

	// next links to the following edge in the same source's list.
	next *Edge
}

// Graph is a fixed-vertex adjacency-list graph.
//
// adj[v] heads vertex v's singly linked edge list; a nil head means v has
// no outgoing edges. Every edge record is reachable from exactly one head.
type Graph struct {
	numVertices int
	adj         []*Edge
}

// New creates a graph over the vertex indices [0, vertices) with all
// adjacency lists empty. Returns ErrNonPositiveVertices if vertices <= 0.
//
// Complexity: O(vertices)
func New(vertices int) (*Graph, error) {
	if vertices <= 0 {
		return nil, ErrNonPositiveVertices
	}

	return &Graph{
		numVertices: vertices,
		adj:         make([]*Edge, vertices),
	}, nil
}

// NumVertices returns the vertex count fixed at creation.
//
// Complexity: O(1)
func (g *Graph) NumVertices() int {
	return g.numVertices
}

// inRange reports whether v is a valid vertex index.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.numVertices
}
