// Package digraph provides the directed-graph container at the heart of
// friendrec: an id-keyed vertex catalog plus adjacency sets with
// set-semantics edges.
//
// What
//
//   - Vertex: identity only (a user ID); no traversal scratch state.
//   - Graph: adjacency[from][to] sets with O(1) insert/lookup, an O(1)
//     unique-edge counter, and deterministic enumeration (Vertices,
//     OutgoingNeighbors are sorted).
//   - EdgeSet: the full set of ordered (From, To) pairs, consumed by the
//     evaluate package for precision/recall intersection.
//
// Why
//
//   - Canonical identity: every edge naming the same ID resolves to one
//     stored Vertex, so there is exactly one node per user regardless of
//     how many edge records mention it.
//   - Duplicate edge records collapse silently; EdgeCount always equals
//     the true cardinality of the edge set.
//
// Determinism
//
//	Vertices() and OutgoingNeighbors() return IDs sorted lexicographically
//	ascending. Traversals seeded from these surfaces are fully reproducible.
//
// Concurrency
//
//	A single RWMutex guards the catalog and adjacency. Mutation and
//	querying are safe across goroutines; traversals take only read paths.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - AddVertex / AddEdge / HasVertex / HasEdge: O(1) amortized
//   - OutgoingNeighbors: O(d log d) for out-degree d
//   - EdgeSet: O(V + E); Vertices: O(V log V)
//
// Errors
//
//   - ErrEmptyVertexID  if an operation receives an empty ID.
//   - ErrVertexNotFound if OutgoingNeighbors names an absent vertex.
package digraph
