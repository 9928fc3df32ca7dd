package metrics

import (
	"fmt"

	"causalbench/domain/core"
	"causalbench/domain/graph"
	"causalbench/ports"
)

func errNodeSet(ref, test *graph.Structure) error {
	return fmt.Errorf("%w: %d vs %d", core.ErrNodeSetDiffers, ref.NodeCount(), test.NodeCount())
}

// F1Score scores a learned CPDAG against a reference by structural
// match of arcs and edges.
type F1Score struct{}

var _ ports.Metric = F1Score{}

func (F1Score) Name() string {
	return "F1-Score"
}

// Compute returns F1 in [0, 1]; 0.0 when both precision and recall
// are 0.
func (F1Score) Compute(ref, test *graph.Structure) (float64, error) {
	counts, err := Classify(ref, test)
	if err != nil {
		return 0, err
	}
	return counts.F1(), nil
}

// Precision scores the fraction of test links that match the reference.
type Precision struct{}

var _ ports.Metric = Precision{}

func (Precision) Name() string {
	return "Precision"
}

func (Precision) Compute(ref, test *graph.Structure) (float64, error) {
	counts, err := Classify(ref, test)
	if err != nil {
		return 0, err
	}
	return counts.Precision(), nil
}
