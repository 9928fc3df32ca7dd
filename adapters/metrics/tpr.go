package metrics

import (
	"causalbench/domain/graph"
	"causalbench/ports"
)

// TPR is the true-positive rate (recall): the fraction of reference
// links recovered by the test CPDAG.
type TPR struct{}

var _ ports.Metric = TPR{}

func (TPR) Name() string {
	return "TPR"
}

// Compute returns TPR in [0, 1]; 0.0 when the reference has no links.
func (TPR) Compute(ref, test *graph.Structure) (float64, error) {
	counts, err := Classify(ref, test)
	if err != nil {
		return 0, err
	}
	return counts.TPR(), nil
}
