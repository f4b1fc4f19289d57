// Package evaluate scores a recommendation graph against a held-out
// ground-truth graph using precision and recall over their edge sets.
package evaluate

import "github.com/katalvlaran/friendrec/digraph"

// Report carries the evaluation outcome for one recommendation run.
type Report struct {
	// Precision is the fraction of recommended edges found in the ground
	// truth; 0 when nothing was recommended.
	Precision float64 `json:"precision"`

	// Recall is the fraction of ground-truth edges that were recommended;
	// 0 when the ground truth is empty.
	Recall float64 `json:"recall"`

	// Recommended, GroundTruth, and Matched are the raw edge-set sizes
	// behind the two ratios.
	Recommended int `json:"recommended_edges"`
	GroundTruth int `json:"ground_truth_edges"`
	Matched     int `json:"matched_edges"`
}

// Precision returns |rec ∩ truth| / |rec|, or 0.0 when the
// recommendation edge set is empty. A precise recommender rarely
// suggests connections that never form. Pure; never fails; a nil graph
// behaves as an empty edge set.
func Precision(rec, truth *digraph.Graph) float64 {
	return Evaluate(rec, truth).Precision
}

// Recall returns |rec ∩ truth| / |truth|, or 0.0 when the ground-truth
// edge set is empty. A high-recall recommender misses few of the
// connections that actually formed. Pure; never fails; a nil graph
// behaves as an empty edge set.
func Recall(rec, truth *digraph.Graph) float64 {
	return Evaluate(rec, truth).Recall
}

// Evaluate computes precision and recall in one pass over the two edge
// sets, along with the raw counts behind them.
func Evaluate(rec, truth *digraph.Graph) Report {
	recEdges := edgeSet(rec)
	truthEdges := edgeSet(truth)

	matched := 0
	for e := range recEdges {
		if _, ok := truthEdges[e]; ok {
			matched++
		}
	}

	r := Report{
		Recommended: len(recEdges),
		GroundTruth: len(truthEdges),
		Matched:     matched,
	}
	// Division-by-zero is replaced by an explicit 0.0 policy.
	if r.Recommended > 0 {
		r.Precision = float64(matched) / float64(r.Recommended)
	}
	if r.GroundTruth > 0 {
		r.Recall = float64(matched) / float64(r.GroundTruth)
	}

	return r
}

// edgeSet tolerates nil graphs so the metrics never fail.
func edgeSet(g *digraph.Graph) map[digraph.Edge]struct{} {
	if g == nil {
		return nil
	}

	return g.EdgeSet()
}
