package bfs_test

import (
	"fmt"

	"github.com/dslab-go/dslab/bfs"
	"github.com/dslab-go/dslab/graph"
)

// ExampleBFS traverses a small two-level graph. Vertex 0's adjacency list
// is [2,1] (head-first), so 2 is expanded before 1.
func ExampleBFS() {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(1, 3, 1)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	// Output:
	// [0 2 1 3]
}
