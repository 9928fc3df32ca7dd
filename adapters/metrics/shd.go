package metrics

import (
	"causalbench/domain/graph"
	"causalbench/internal/errors"
	"causalbench/ports"
)

// SHD is the structural Hamming distance between two CPDAGs after each
// is completed to a consistent DAG by the configured collaborator:
// every node pair whose arc differs (missing, extra, or reversed)
// contributes one.
type SHD struct {
	completer ports.DAGCompleter
}

var _ ports.Metric = SHD{}

// NewSHD builds the metric around a DAG-completion collaborator.
func NewSHD(completer ports.DAGCompleter) SHD {
	return SHD{completer: completer}
}

func (SHD) Name() string {
	return "SHD"
}

// Compute completes both CPDAGs and counts arc differences.
func (m SHD) Compute(ref, test *graph.Structure) (float64, error) {
	if !ref.SameNodeSet(test) {
		return 0, errNodeSet(ref, test)
	}
	if m.completer == nil {
		return 0, errors.ConfigInvalid("SHD metric requires a DAG completer")
	}

	refDAG, err := m.completer.Complete(ref)
	if err != nil {
		return 0, errors.Wrap(err, "completing reference CPDAG")
	}
	testDAG, err := m.completer.Complete(test)
	if err != nil {
		return 0, errors.Wrap(err, "completing test CPDAG")
	}

	diff := 0
	for _, arc := range refDAG.Arcs() {
		if !testDAG.HasArc(arc.Tail, arc.Head) {
			// reversed or absent, one difference either way
			diff++
		}
	}
	for _, arc := range testDAG.Arcs() {
		// reversed arcs were already counted from the reference side
		if !refDAG.HasArc(arc.Tail, arc.Head) && !refDAG.HasArc(arc.Head, arc.Tail) {
			diff++
		}
	}
	return float64(diff), nil
}
