// Package friendrec turns a directed social graph into friend
// recommendations and tells you how good they are.
//
// Pipeline
//
//	edge records → digraph (training, testing)
//	             → recommend.All(training, maxDepth)   // one bounded BFS per user
//	             → evaluate.Evaluate(rec, testing)     // precision & recall
//
// Subpackages:
//
//	digraph/   — DirectedGraph: id-keyed vertex catalog + adjacency sets
//	bfs/       — breadth-first search with per-call traversal state and a depth ceiling
//	recommend/ — symmetric friends-of-friends recommendation builder
//	evaluate/  — precision/recall over edge sets
//	edgelist/  — whitespace-separated edge-list loader
//
// The cmd/friendrec binary wires the pipeline end to end:
//
//	friendrec --train train.txt --test test.txt --max-depth 2
//
// Everything is pure Go and in-memory; the algorithms are deterministic,
// sequential, and safe to rerun - traversal state never outlives a call.
package friendrec
