package ports

import (
	"causalbench/domain/graph"
)

// Metric scores a learned structure against a reference structure.
// Implementations must be deterministic and total over any two
// structures sharing a node set.
type Metric interface {
	// Name returns the metric name used as the score key.
	Name() string

	// Compute scores test against ref.
	Compute(ref, test *graph.Structure) (float64, error)
}

// DAGCompleter extends a CPDAG to a consistent DAG by orienting its
// undirected edges. Metrics defined on DAGs (structural Hamming
// distance) delegate completion to this collaborator.
type DAGCompleter interface {
	Complete(s *graph.Structure) (*graph.Structure, error)
}
