// Package evaluate scores recommendation quality against held-out
// ground truth.
//
// What
//
//   - Precision: fraction of recommended edges that appear in the ground
//     truth (how rarely the recommender is wrong).
//   - Recall: fraction of ground-truth edges that were recommended (how
//     little the recommender misses).
//   - Evaluate: both ratios plus the raw edge-set sizes, as a Report.
//
// Both metrics are pure set computations over DirectedGraph edge sets:
// no mutation, no iteration-order dependence, no failure modes. Empty
// denominators yield 0.0 by explicit policy, and nil graphs behave as
// empty edge sets.
//
// Complexity: O(V + E) per graph to materialize the edge sets, O(|rec|)
// for the intersection.
package evaluate
