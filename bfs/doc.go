// Package bfs provides breadth-first search over a digraph.Graph,
// returning hop distances, parent links, and discovery order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     start vertex, following directed edges only.
//   - Returns a Result containing:
//   - Order: discovery sequence (Order[0] is the start)
//   - Depth: map from vertex → distance (edges) from start; unreachable
//     vertices are absent (absence is the "infinite" sentinel)
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Color: final three-color state (Unvisited / Discovered / Finished)
//   - Honors a MaxDepth ceiling (d>0) or explicit "no limit" (d==0):
//     vertices at exactly MaxDepth are recorded but never expanded.
//   - Supports an OnVisit hook that may abort the traversal with an error.
//
// Why
//
//   - Compute unweighted shortest hop counts in O(V + E) time.
//   - The depth-limited form is the discovery primitive behind the
//     recommend package: candidates are exactly Result.Candidates(),
//     the vertices with 1 ≤ depth ≤ MaxDepth in discovery order.
//
// Determinism
//
//	Because digraph.OutgoingNeighbors returns IDs sorted lexicographically
//	and BFS enqueues neighbors in that order, the discovery sequence is
//	fully reproducible.
//
// Traversal state
//
//	Colors, depths, and parents live in the per-call Result, never on the
//	shared graph. Each call therefore starts from a fully reset state, and
//	sequential or concurrent traversals over one graph cannot corrupt each
//	other; the graph itself is only read.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth, Parent, Color, Order)
//
// Usage
//
//	// Plain BFS:
//	result, err := bfs.BFS(g, "start")
//
//	// Depth-limited, with cancellation:
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if digraph.OutgoingNeighbors fails.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
