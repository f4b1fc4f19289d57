// Package bfs implements breadth-first search over a digraph.Graph,
// returning hop distances, parent links, and discovery order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional depth ceiling and a visit hook. All traversal state
// (colors, depths, parents) lives in the per-call Result.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/friendrec/digraph"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	graph *digraph.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
//
// Every call allocates a fresh Result, so each traversal begins from a
// fully reset state and two traversals never observe each other.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied OnVisit error.
func BFS(g *digraph.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Color:  make(map[string]Color, n),
		},
	}

	// Seed queue with start vertex (no parent, depth 0)
	w.discover(startID, 0, "")
	// Main loop
	return w.res, w.loop()
}

// discover marks id Discovered at depth d, records its parent, appends
// it to the discovery order, and adds it to the queue. The Unvisited
// guard at the call sites ensures each vertex is discovered at most once.
func (w *walker) discover(id string, d int, parent string) {
	w.res.Color[id] = Discovered
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
		w.res.Color[item.id] = Finished
	}

	return nil
}

// dequeue pops and returns the first queue item (FIFO).
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// expand discovers all still-Unvisited outgoing neighbors of item,
// honoring MaxDepth as a hard ceiling on recorded depth: a neighbor
// whose depth would exceed the limit is left Unvisited entirely, so
// vertices at exactly MaxDepth appear in the result but are dead ends.
// Returns ErrNeighbors on lookup failure.
func (w *walker) expand(item queueItem) error {
	neighbors, err := w.graph.OutgoingNeighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		// first time seen?
		if w.res.Color[nbr] == Unvisited {
			w.discover(nbr, nextDepth, item.id)
		}
	}

	return nil
}
