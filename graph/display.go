// This file implements the human-readable adjacency listing.
package graph

import (
	"fmt"
	"io"
	"strings"
)

// Display writes one line per vertex to w, in vertex order:
//
//	Vertex 0: -> 2(w:5) -> 1(w:3)
//	Vertex 1: No connections
//
// Edges appear in head-first (reverse insertion) order. Pure read; graph
// state is untouched.
//
// Complexity: O(V + E)
func (g *Graph) Display(w io.Writer) error {
	var v int
	for v = 0; v < g.numVertices; v++ {
		if _, err := fmt.Fprintf(w, "Vertex %d:", v); err != nil {
			return err
		}
		if g.adj[v] == nil {
			if _, err := io.WriteString(w, " No connections"); err != nil {
				return err
			}
		} else {
			for cur := g.adj[v]; cur != nil; cur = cur.next {
				if _, err := fmt.Fprintf(w, " -> %d(w:%d)", cur.Dest, cur.Weight); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// String returns the Display listing as a string.
func (g *Graph) String() string {
	var sb strings.Builder
	// strings.Builder never errors
	_ = g.Display(&sb)

	return sb.String()
}
