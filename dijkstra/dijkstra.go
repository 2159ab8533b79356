package dijkstra

import (
	"fmt"

	"github.com/dslab-go/dslab/graph"
)

// Dijkstra computes shortest distances from start to every vertex of g.
// Returns ErrNilGraph or ErrStartOutOfRange for invalid input. Vertices
// with no path from start end at distance Unreachable. Edge weights are
// assumed non-negative; see the package documentation.
func Dijkstra(g *graph.Graph, start int, opts ...Option) (*Result, error) {
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

	r := &runner{
		graph:     g,
		finalized: make([]bool, n),
		res:       &Result{Start: start, Dist: make([]int64, n)},
	}
	if o.ReturnPath {
		r.res.Prev = make([]int, n)
	}
	r.init()

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	graph     *graph.Graph
	finalized []bool
	res       *Result
}

// init sets every distance to Unreachable except the start at zero, and
// clears predecessors when tracked.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = Unreachable
		if r.res.Prev != nil {
			r.res.Prev[v] = -1
		}
	}
	r.res.Dist[r.res.Start] = 0
}

// process runs at most V-1 selection rounds, finalizing the minimum-
// distance vertex each round and relaxing its outgoing edges. It stops
// early once every non-finalized vertex is unreachable.
func (r *runner) process() error {
	n := len(r.res.Dist)
	for count := 0; count < n-1; count++ {
		u := r.minDistance()
		if u == -1 {
			break
		}
		r.finalized[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// minDistance returns the non-finalized vertex with the smallest tentative
// distance, or -1 if all remaining vertices are unreachable. The strict
// comparison keeps the first minimum found, so ties resolve to the lowest
// vertex index.
func (r *runner) minDistance() int {
	min := Unreachable
	minIndex := -1
	for v, d := range r.res.Dist {
		if !r.finalized[v] && d < min {
			min = d
			minIndex = v
		}
	}

	return minIndex
}

// relax examines each edge out of u in head-first order and improves the
// tentative distance of every non-finalized neighbor it betters.
func (r *runner) relax(u int) error {
	neighbors, err := r.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range neighbors {
		v := e.Dest
		if r.finalized[v] {
			continue
		}
		if newDist := du + int64(e.Weight); newDist < r.res.Dist[v] {
			r.res.Dist[v] = newDist
			if r.res.Prev != nil {
				r.res.Prev[v] = u
			}
		}
	}

	return nil
}
