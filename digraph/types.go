// Package digraph defines the DirectedGraph container used throughout
// friendrec: an id-keyed vertex catalog plus adjacency sets.
//
// This file declares Vertex, Edge, Graph, sentinel errors, and the New
// constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
package digraph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("digraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("digraph: vertex not found")
)

// Vertex represents a user node in the graph.
//
// ID uniquely identifies this Vertex within its Graph; two vertices are
// equal iff their IDs are equal. Vertices carry no traversal state -
// colors, distances, and predecessors live in a per-call bfs.Result.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge is an ordered (From, To) pair, meaning From connects-to To.
// Used as a set key by EdgeSet and the evaluate package.
type Edge struct {
	From string
	To   string
}

// Graph is an in-memory directed graph with set-semantics edges.
//
// Vertices are canonicalized through an id-keyed catalog: every edge
// naming the same ID resolves to the single stored Vertex instance.
// Adjacency is stored as adjacency[from][to] = struct{}{}, giving
// constant-time existence, insertion, and duplicate collapse.
// One RWMutex guards both maps; traversals take only read paths.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]*Vertex             // vertex ID → Vertex
	adjacency map[string]map[string]struct{} // from ID → set of to IDs

	// edgeCount tracks true unique-edge cardinality: re-adding an
	// existing edge is a no-op and does not increment it.
	edgeCount int
}

// New creates an empty directed Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
}
