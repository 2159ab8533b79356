package main

import (
	"fmt"
	"strings"

	"github.com/dslab-go/dslab/bfs"
	"github.com/dslab-go/dslab/dfs"
	"github.com/dslab-go/dslab/dijkstra"
	"github.com/dslab-go/dslab/graph"
)

const graphMenuText = `
Enter your Choice:
Press 1 to Add an Edge
Press 2 to Remove an Edge
Press 3 to Display the Graph
Press 4 for BFS Traversal
Press 5 for DFS Traversal
Press 6 for Dijkstra's Shortest Path
Press 0 to EXIT.	`

// graphMenu creates a graph from a prompted vertex count, then loops over
// edge mutation, display, traversal, and shortest-path operations.
func (s *session) graphMenu() error {
	var g *graph.Graph
	for g == nil {
		n, ok := s.readInt("Enter the Number of Vertices: ")
		if !ok {
			return nil
		}
		created, err := graph.New(n)
		if err != nil {
			s.printf("Error: %v\n", err)
			continue
		}
		g = created
		s.printf("Graph created successfully with %d vertices\n", n)
	}

	for {
		ch, ok := s.readInt(graphMenuText)
		if !ok || ch == 0 {
			g.Free()
			s.printf("Graph memory freed successfully\n")

			return nil
		}

		switch ch {
		case 1:
			s.addEdge(g)
		case 2:
			s.removeEdge(g)
		case 3:
			s.printf("\n=== Graph Adjacency List ===\n%s=============================\n\n", g)
		case 4:
			s.runBFS(g)
		case 5:
			s.runDFS(g)
		case 6:
			s.runDijkstra(g)
		}
	}
}

func (s *session) addEdge(g *graph.Graph) {
	src, ok := s.readInt("Enter Source Vertex: ")
	if !ok {
		return
	}
	dest, ok := s.readInt("Enter Destination Vertex: ")
	if !ok {
		return
	}
	weight, ok := s.readInt("Enter Edge Weight: ")
	if !ok {
		return
	}
	if err := g.AddEdge(src, dest, weight); err != nil {
		s.printf("Error: %v\n", err)

		return
	}
	s.printf("Edge added: %d -> %d (weight: %d)\n", src, dest, weight)
}

func (s *session) removeEdge(g *graph.Graph) {
	src, ok := s.readInt("Enter Source Vertex: ")
	if !ok {
		return
	}
	dest, ok := s.readInt("Enter Destination Vertex: ")
	if !ok {
		return
	}
	if err := g.RemoveEdge(src, dest); err != nil {
		s.printf("Error: %v\n", err)

		return
	}
	s.printf("Edge removed: %d -> %d\n", src, dest)
}

func (s *session) runBFS(g *graph.Graph) {
	start, ok := s.readInt("Enter Start Vertex: ")
	if !ok {
		return
	}
	s.printf("\n=== BFS Traversal starting from vertex %d ===\n", start)
	s.printf("Visit order: ")
	_, err := bfs.BFS(g, start, bfs.WithOnVisit(func(v int) {
		s.printf("%d ", v)
	}))
	if err != nil {
		s.printf("\nError: %v\n", err)

		return
	}
	s.printf("\n=======================================\n\n")
}

func (s *session) runDFS(g *graph.Graph) {
	start, ok := s.readInt("Enter Start Vertex: ")
	if !ok {
		return
	}
	s.printf("\n=== DFS Traversal starting from vertex %d ===\n", start)
	s.printf("Visit order: ")
	_, err := dfs.DFS(g, start, dfs.WithOnVisit(func(v int) {
		s.printf("%d ", v)
	}))
	if err != nil {
		s.printf("\nError: %v\n", err)

		return
	}
	s.printf("\n=======================================\n\n")
}

func (s *session) runDijkstra(g *graph.Graph) {
	start, ok := s.readInt("Enter Start Vertex: ")
	if !ok {
		return
	}
	res, err := dijkstra.Dijkstra(g, start)
	if err != nil {
		s.printf("Error: %v\n", err)

		return
	}
	s.printf("\n=== Dijkstra's Shortest Path from vertex %d ===\n", start)
	s.printf("%s", res)
	s.printf("==========================================\n\n")
}

// joinInts renders a visit order as space-separated indices.
func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, " ")
}
