package dfs

import (
	"fmt"

	"github.com/dslab-go/dslab/graph"
)

// walker encapsulates mutable DFS state.
type walker struct {
	graph   *graph.Graph
	opts    Options
	visited []bool
	res     *Result
}

// DFS runs depth-first traversal on g starting from start, applying any
// number of functional Options. Returns ErrNilGraph or ErrStartOutOfRange
// for invalid input. The visit order is pre-order by discovery, expanding
// each vertex's neighbors in head-first adjacency order.
func DFS(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumVertices()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (valid range 0..%d)", ErrStartOutOfRange, start, n-1)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	if err := w.traverse(start, 0, -1); err != nil {
		return nil, err
	}

	return w.res, nil
}

// traverse visits v at the given depth, then recurses into each unvisited
// neighbor in head-first order.
func (w *walker) traverse(v, depth, parent int) error {
	w.visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)
	w.opts.OnVisit(v)

	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
	}
	for _, e := range neighbors {
		if !w.visited[e.Dest] {
			if err = w.traverse(e.Dest, depth+1, v); err != nil {
				return err
			}
		}
	}

	return nil
}
