// Package recommend builds a symmetric friend-recommendation graph from
// a directed connection graph.
//
// What
//
//   - ForUser: depth-limited BFS from one user, returning candidate IDs
//     (vertices within maxDepth hops, source excluded) in discovery order.
//   - All: runs ForUser for every vertex, strictly sequentially, in sorted
//     vertex order; for each candidate v of user u with no existing edge
//     v → u, inserts both u → v and v → u into the output graph.
//
// Why
//
//	Friends-of-friends is the classic link-prediction baseline: users two
//	or three hops apart in the follow graph are likely future connections.
//	The symmetric insert reflects that a suggested friendship goes both
//	ways regardless of which side's walk discovered it.
//
// Invariants
//
//   - The output edge set is symmetric: (u,v) present ⇒ (v,u) present.
//   - No recommended pair duplicates an existing reverse connection.
//   - No user is ever recommended to themselves (explicit policy, not an
//     accident of the traversal).
//
// Determinism
//
//	Source users are walked in digraph.Vertices() order and each walk is
//	itself deterministic, so one run's output is fully reproducible.
//	Walks run one at a time; the input graph is only read.
//
// Complexity
//
//	O(V · (V + E)) worst case - one bounded BFS per vertex. In practice
//	each walk touches only the ≤ maxDepth-hop neighborhood.
//
// Errors
//
//   - ErrGraphNil     if the graph pointer is nil.
//   - ErrBadMaxDepth  if maxDepth < 1.
//   - ErrUserNotFound if ForUser names an absent user.
//   - Propagated bfs errors and context cancellation otherwise.
package recommend
