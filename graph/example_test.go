package graph_test

import (
	"fmt"

	"github.com/dslab-go/dslab/graph"
)

// ExampleGraph builds a small directed graph and prints its adjacency
// listing. Note the head-first order: the edge added last is shown first.
func ExampleGraph() {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)

	fmt.Print(g)
	// Output:
	// Vertex 0: -> 2(w:1) -> 1(w:4)
	// Vertex 1: No connections
	// Vertex 2: -> 1(w:1)
}

// ExampleGraph_RemoveEdge removes one of two parallel edges: only the
// first match from the head goes away.
func ExampleGraph_RemoveEdge() {
	g, _ := graph.New(2)
	_ = g.AddEdge(0, 1, 10)
	_ = g.AddEdge(0, 1, 20)

	_ = g.RemoveEdge(0, 1)
	fmt.Print(g)

	err := g.RemoveEdge(1, 0)
	fmt.Println(err)
	// Output:
	// Vertex 0: -> 1(w:10)
	// Vertex 1: No connections
	// graph: edge not found: 1 -> 0
}
