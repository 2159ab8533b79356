// Package dfs defines options, errors, and the result type for
// depth-first traversal.
package dfs

import "errors"

// Sentinel errors for DFS execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange is returned when the start vertex index is invalid.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds the callbacks that customize DFS execution.
type Options struct {
	// OnVisit is called for each vertex as it is discovered (pre-order).
	OnVisit func(v int)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int) {},
	}
}

// WithOnVisit registers a callback invoked for each discovered vertex.
func WithOnVisit(fn func(v int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a DFS traversal:
//   - Order: vertices in discovery sequence.
//   - Depth: per-vertex recursion depth from the start; -1 if unreached.
//   - Parent: per-vertex predecessor in the DFS tree; -1 for the start
//     and for unreached vertices.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Visited reports whether v was reached by the traversal.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
