// Package digraph: Graph method implementations.
//
// This file provides thread-safe, O(1) (amortized) operations for vertex
// and edge management on the Graph type defined in types.go, plus the
// deterministic enumeration surfaces (Vertices, OutgoingNeighbors) that
// higher-level algorithms rely on for reproducible output.

package digraph

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id in the catalog and bootstraps its
// adjacency set. Caller must hold g.mu.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id}
	g.adjacency[id] = make(map[string]struct{})
}

// AddEdge inserts the directed edge from → to, creating both endpoint
// vertices if absent. Both endpoints are canonicalized through the
// id-keyed catalog, so every edge naming the same ID shares one Vertex.
// Adding an edge that already exists is a no-op: the adjacency sets
// collapse duplicates and the edge count is not incremented.
// Self-loops are stored as-is, without special casing.
// Returns ErrEmptyVertexID if either endpoint ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure both endpoints exist (idempotent).
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// Set semantics: duplicate insert leaves the count untouched.
	if _, exists := g.adjacency[from][to]; exists {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.edgeCount++

	return nil
}

// HasVertex reports whether a vertex with the given ID exists
// (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// HasEdge reports whether the directed edge from → to exists.
// Returns false, not an error, when either endpoint is absent.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[from][to]

	return exists
}

// Vertex returns the canonical stored Vertex for id, or false when absent.
// The returned pointer is the single shared instance every edge naming
// this ID resolves to; treat it as read-only.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]

	return v, ok
}

// OutgoingNeighbors returns the IDs of all vertices reachable from id by
// one directed edge, sorted lexicographically for determinism.
// Returns ErrVertexNotFound when id is absent; callers are expected to
// precheck with HasVertex, so hitting the error is a contract violation
// rather than a recoverable condition.
// Complexity: O(d log d), where d is the out-degree of id.
func (g *Graph) OutgoingNeighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// EdgeSet returns the set of all ordered (From, To) pairs in the graph.
// Intended for set-intersection metrics; iteration order is undefined.
// Complexity: O(V + E).
func (g *Graph) EdgeSet() map[Edge]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := make(map[Edge]struct{}, g.edgeCount)
	for from, tos := range g.adjacency {
		for to := range tos {
			set[Edge{From: from, To: to}] = struct{}{}
		}
	}

	return set
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// This is the stable enumeration surface higher-level code uses for
// reproducible traversal seeds and test assertions.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of unique directed edges. O(1).
// The counter is maintained incrementally and always equals the
// cardinality of EdgeSet(): duplicate AddEdge calls do not drift it.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
