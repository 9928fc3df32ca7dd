package metrics

import (
	"causalbench/domain/graph"
)

// PairCounts is the exhaustive classification of node-pair
// relationships between a reference and a test CPDAG. Follows the PDAG
// strategy of aGrUM's StructuralComparator: a misoriented arc or a
// type mismatch (arc vs edge) counts as a false positive only, never
// also as a false negative.
type PairCounts struct {
	TrueArc        int // ref arc, test arc with same direction
	TrueEdge       int // ref edge, test edge
	Misoriented    int // ref arc, test arc reversed
	RefArcTestEdge int // ref arc, test edge
	RefEdgeTestArc int // ref edge, test arc (either direction)
	SpuriousArc    int // ref none, test arc
	SpuriousEdge   int // ref none, test edge
	MissingArc     int // ref arc, test none
	MissingEdge    int // ref edge, test none
}

// Classify compares every linked node pair of ref and test. Both
// structures must share a node set.
func Classify(ref, test *graph.Structure) (PairCounts, error) {
	if !ref.SameNodeSet(test) {
		return PairCounts{}, errNodeSet(ref, test)
	}

	var c PairCounts

	for _, arc := range ref.Arcs() {
		switch {
		case test.HasArc(arc.Tail, arc.Head):
			c.TrueArc++
		case test.HasArc(arc.Head, arc.Tail):
			c.Misoriented++
		case test.HasEdge(arc.Tail, arc.Head):
			c.RefArcTestEdge++
		default:
			c.MissingArc++
		}
	}

	for _, edge := range ref.Edges() {
		switch {
		case test.HasEdge(edge.X, edge.Y):
			c.TrueEdge++
		case test.HasArc(edge.X, edge.Y) || test.HasArc(edge.Y, edge.X):
			c.RefEdgeTestArc++
		default:
			c.MissingEdge++
		}
	}

	// Links in test with no counterpart in ref at all.
	for _, arc := range test.Arcs() {
		if !ref.Linked(arc.Tail, arc.Head) {
			c.SpuriousArc++
		}
	}
	for _, edge := range test.Edges() {
		if !ref.Linked(edge.X, edge.Y) {
			c.SpuriousEdge++
		}
	}

	return c, nil
}

// TP returns the true-positive count.
func (c PairCounts) TP() int {
	return c.TrueArc + c.TrueEdge
}

// FP returns the false-positive count. Every wrong link in test counts
// here, including misorientations and type mismatches.
func (c PairCounts) FP() int {
	return c.Misoriented + c.RefArcTestEdge + c.RefEdgeTestArc + c.SpuriousArc + c.SpuriousEdge
}

// FN returns the false-negative count: reference links completely
// absent from test.
func (c PairCounts) FN() int {
	return c.MissingArc + c.MissingEdge
}

// Precision returns TP/(TP+FP), or 0 when nothing was predicted.
func (c PairCounts) Precision() float64 {
	tp, fp := c.TP(), c.FP()
	if tp+fp == 0 {
		return 0.0
	}
	return float64(tp) / float64(tp+fp)
}

// Recall returns TP/(TP+FN), or 0 when the reference is empty.
func (c PairCounts) Recall() float64 {
	tp, fn := c.TP(), c.FN()
	if tp+fn == 0 {
		return 0.0
	}
	return float64(tp) / float64(tp+fn)
}

// F1 returns the harmonic mean of precision and recall, or 0 when both
// are 0.
func (c PairCounts) F1() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0.0
	}
	return 2.0 * p * r / (p + r)
}

// TPR is the true-positive rate, identical to recall.
func (c PairCounts) TPR() float64 {
	return c.Recall()
}
