package dijkstra_test

import (
	"fmt"

	"github.com/dslab-go/dslab/dijkstra"
	"github.com/dslab-go/dslab/graph"
)

// ExampleDijkstra computes shortest distances in a triangle where the
// two-hop route 0->2->1 beats the direct edge.
func ExampleDijkstra() {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)

	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(res)
	// Output:
	// Vertex	Distance from Source
	// 0		0
	// 1		2
	// 2		1
}

// ExampleResult_PathTo reconstructs the cheapest route after running with
// predecessor tracking enabled.
func ExampleResult_PathTo() {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := res.PathTo(1)
	fmt.Println(path)
	// Output:
	// [0 2 1]
}
