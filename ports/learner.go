package ports

import (
	"context"

	"causalbench/domain/dataset"
	"causalbench/domain/graph"
)

// Learner is the contract for external structure-learning algorithms.
// Implementations wrap constraint-based, score-based, or
// continuous-optimization libraries; the core never depends on a
// concrete learner.
type Learner interface {
	// Name returns the algorithm name.
	Name() string

	// LearnStructure learns a CPDAG from the dataset. Errors are
	// implementation-defined and treated as opaque by callers.
	LearnStructure(ctx context.Context, ds *dataset.Dataset) (*graph.Structure, error)
}

// LearnerFactory constructs a learner from a parameter assignment.
// The grid-search engine calls it once per trial with the fixed
// parameters merged with the trial's combination.
type LearnerFactory interface {
	// Algorithm returns the name of the algorithm being configured.
	Algorithm() string

	// New builds a learner; invalid parameters fail with a
	// configuration error.
	New(params map[string]interface{}) (Learner, error)
}
