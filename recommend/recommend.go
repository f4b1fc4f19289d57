// Package recommend builds a symmetric friend-recommendation graph by
// running depth-limited BFS from every vertex of a connection graph.
package recommend

import (
	"fmt"

	"github.com/katalvlaran/friendrec/bfs"
	"github.com/katalvlaran/friendrec/digraph"
)

// ForUser returns the candidate connections for userID: every vertex
// within maxDepth hops of userID in g, excluding userID itself, in BFS
// discovery order.
//
// Returns ErrGraphNil, ErrBadMaxDepth, or ErrUserNotFound for invalid
// input, and propagates traversal errors otherwise.
func ForUser(g *digraph.Graph, userID string, maxDepth int, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxDepth, maxDepth)
	}
	if !g.HasVertex(userID) {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, userID)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res, err := bfs.BFS(g, userID, bfs.WithContext(o.Ctx), bfs.WithMaxDepth(maxDepth))
	if err != nil {
		return nil, err
	}

	return res.Candidates(), nil
}

// All generates recommendations for every user of g by running one
// depth-limited BFS per vertex, strictly sequentially, in Vertices()
// order (deterministic within a run).
//
// For each candidate v discovered from user u, the pair is recommended
// unless g already contains the reverse edge v → u; a recommendation
// inserts both u → v and v → u, so the output graph is symmetric by
// construction. A user is never recommended to themselves: the walk
// cannot produce its own source, and the builder additionally skips
// u == v as explicit policy rather than relying on that property.
// Only vertices that take part in at least one recommendation appear in
// the output.
func All(g *digraph.Graph, maxDepth int, opts ...Option) (*digraph.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxDepth, maxDepth)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := digraph.New()
	for _, u := range g.Vertices() {
		// cancellation check (once per user)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		candidates, err := ForUser(g, u, maxDepth, WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
		for _, v := range candidates {
			if v == u {
				continue // no self-recommendation, by policy
			}
			if g.HasEdge(v, u) {
				continue // v already connects back to u
			}
			if err = out.AddEdge(u, v); err != nil {
				return nil, err
			}
			if err = out.AddEdge(v, u); err != nil {
				return nil, err
			}
		}
		o.OnUser(u, len(candidates))
	}

	return out, nil
}
