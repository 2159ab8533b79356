// Package dijkstra defines options, errors, and the result type for the
// shortest-path computation.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for Dijkstra execution and path reconstruction.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartOutOfRange is returned when the start vertex index is invalid.
	ErrStartOutOfRange = errors.New("dijkstra: start vertex out of range")

	// ErrNoPredecessors is returned by PathTo when the Result was computed
	// without WithReturnPath.
	ErrNoPredecessors = errors.New("dijkstra: no predecessor data; rerun with WithReturnPath")

	// ErrVertexUnreachable is returned by PathTo for a vertex at infinite
	// distance from the start.
	ErrVertexUnreachable = errors.New("dijkstra: vertex unreachable from start")
)

// Unreachable is the distance assigned to vertices with no path from the
// start vertex.
const Unreachable = int64(math.MaxInt64)

// Option configures Dijkstra behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters that customize a Dijkstra run.
type Options struct {
	// ReturnPath, if true, records per-vertex predecessors so that Result.PathTo
	// can reconstruct shortest paths.
	ReturnPath bool
}

// DefaultOptions returns Options with predecessor tracking disabled.
func DefaultOptions() Options {
	return Options{ReturnPath: false}
}

// WithReturnPath enables predecessor tracking for path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// Result holds the outcome of a Dijkstra run:
//   - Start: the source vertex.
//   - Dist: per-vertex shortest distance from Start; Unreachable if no
//     path exists.
//   - Prev: per-vertex predecessor on a shortest path, or -1 for the
//     start and unreachable vertices. Nil unless WithReturnPath was given.
type Result struct {
	Start int
	Dist  []int64
	Prev  []int
}

// Reachable reports whether v has a finite distance from the start.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// PathTo reconstructs the shortest path from the start vertex to dest,
// inclusive of both endpoints. Requires a Result computed with
// WithReturnPath; returns ErrVertexUnreachable if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrVertexUnreachable, dest)
	}
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w: %d", ErrVertexUnreachable, dest)
	}

	// Walk predecessors back to the start, then reverse.
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		if cur == r.Start {
			break
		}
		cur = r.Prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// String renders the distance table, one row per vertex, with INFINITE
// for unreachable vertices:
//
//	Vertex	Distance from Source
//	0		0
//	1		INFINITE
func (r *Result) String() string {
	var sb strings.Builder
	sb.WriteString("Vertex\tDistance from Source\n")
	for v, d := range r.Dist {
		if d == Unreachable {
			fmt.Fprintf(&sb, "%d\t\tINFINITE\n", v)
		} else {
			fmt.Fprintf(&sb, "%d\t\t%d\n", v, d)
		}
	}

	return sb.String()
}
