package bfs

import (
	"fmt"

	"github.com/dslab-go/dslab/graph"
	"github.com/dslab-go/dslab/queue"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *graph.Graph
	opts    Options
	queue   *queue.Queue
	visited []bool
	res     *Result
}

// BFS runs breadth-first traversal on g starting from start, applying any
// number of functional Options. Returns ErrNilGraph or ErrStartOutOfRange
// for invalid input. The visit order is level order from start; each
// vertex's neighbors are expanded in head-first adjacency order.
func BFS(g *graph.Graph, start int, opts ...Option) (*Result, error) {
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

	// Capacity n suffices: each vertex enqueues at most once per traversal.
	q, err := queue.New(n)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   q,
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

	// Seed the queue with the start vertex at depth 0, no parent.
	if err = w.enqueue(start, 0, -1); err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, and appends it
// to the queue.
func (w *walker) enqueue(v, d, parent int) error {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	if err := w.queue.Enqueue(v); err != nil {
		return fmt.Errorf("bfs: %w", err)
	}

	return nil
}

// loop processes the queue until empty.
func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		v, err := w.queue.Dequeue()
		if err != nil {
			return fmt.Errorf("bfs: %w", err)
		}
		w.visit(v)
		if err = w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// visit records v in Order and calls OnVisit.
func (w *walker) visit(v int) {
	w.res.Order = append(w.res.Order, v)
	w.opts.OnVisit(v)
}

// enqueueNeighbors expands v's adjacency list in head-first order,
// enqueueing each unseen neighbor one level deeper.
func (w *walker) enqueueNeighbors(v int) error {
	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", v, err)
	}

	d := w.res.Depth[v] + 1
	for _, e := range neighbors {
		if !w.visited[e.Dest] {
			if err = w.enqueue(e.Dest, d, v); err != nil {
				return err
			}
		}
	}

	return nil
}
