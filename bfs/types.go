// Package bfs provides tunable options, traversal-state types, and error
// definitions for breadth-first search over a digraph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Color is the classic three-color discovery state of a vertex within
// one traversal. State is scoped to a single Result, never stored on the
// graph, so unrelated traversals cannot corrupt each other.
type Color uint8

const (
	// Unvisited marks a vertex the traversal has not reached. Vertices
	// absent from Result.Color are Unvisited (zero value).
	Unvisited Color = iota

	// Discovered marks a vertex that has been reached and enqueued but
	// whose neighbors have not yet been expanded.
	Discovered

	// Finished marks a vertex whose neighbor expansion is complete.
	Finished
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth: vertices at
	// exactly MaxDepth are still recorded, but their neighbors are not.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnVisit:  func(string, int) error { return nil },
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth caps recorded depths at d.
//
//	d > 0: vertices beyond depth d are never discovered
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of one BFS traversal:
//   - Order: vertices visited, in discovery sequence; Order[0] is the start.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//     Unreachable vertices are absent - absence is the "infinite" sentinel.
//   - Parent: map from vertex ID to its predecessor in the BFS tree;
//     the start vertex has no entry.
//   - Color: final discovery state per reached vertex; IDs absent from the
//     map were never reached (Unvisited).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Color  map[string]Color
}

// Candidates returns the reached vertices excluding the start itself,
// in discovery order: exactly the IDs with 1 ≤ depth ≤ MaxDepth when a
// limit was set. The slice aliases Result.Order.
func (r *Result) Candidates() []string {
	if len(r.Order) == 0 {
		return nil
	}

	return r.Order[1:]
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
