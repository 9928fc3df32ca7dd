package app

import (
	"context"
	"log"

	"causalbench/domain/dataset"
	"causalbench/internal/analysis"
	"causalbench/internal/discretize"
	"causalbench/internal/errors"
	"causalbench/ports"
)

// BenchmarkService runs a set of learners over one dataset, scoring
// every learned structure against the ground truth. Thin orchestration:
// the algorithmic work lives in discretize, metrics, and analysis.
type BenchmarkService struct {
	learners []ports.Learner
	metrics  []ports.Metric

	// discretizeOpts, when set, converts continuous datasets before
	// learning; learners that accept continuous data directly can run
	// the service without it.
	discretizeOpts *discretize.Options
}

// NewBenchmarkService wires learners and metrics.
func NewBenchmarkService(learners []ports.Learner, metrics []ports.Metric, discretizeOpts *discretize.Options) (*BenchmarkService, error) {
	if len(learners) == 0 {
		return nil, errors.ConfigInvalid("benchmark requires at least one learner")
	}
	return &BenchmarkService{
		learners:       learners,
		metrics:        metrics,
		discretizeOpts: discretizeOpts,
	}, nil
}

// Run executes every learner on the dataset and scores the results. A
// learner failure is recorded on its result and does not abort the
// other learners.
func (s *BenchmarkService) Run(ctx context.Context, ds *dataset.Dataset) ([]*analysis.RunResult, error) {
	input := ds
	if ds.DataType() == dataset.Continuous && s.discretizeOpts != nil {
		table, err := discretize.Discretize(ds, *s.discretizeOpts)
		if err != nil {
			return nil, errors.Wrap(err, "discretizing dataset")
		}
		discrete, err := table.ToDataset(ds.Name())
		if err != nil {
			return nil, errors.Wrap(err, "converting discretized table")
		}
		if golden := ds.Golden(); golden != nil {
			if err := discrete.AttachGolden(golden); err != nil {
				return nil, err
			}
		}
		input = discrete
	}

	results := make([]*analysis.RunResult, 0, len(s.learners))
	for _, learner := range s.learners {
		result := analysis.NewRunResult(learner.Name(), nil, input)
		learned, err := learner.LearnStructure(ctx, input)
		if err != nil {
			log.Printf("[benchmark] %s failed: %v", learner.Name(), err)
			result.Error = err.Error()
		} else {
			result.Learned = learned
		}
		results = append(results, result)
	}

	if golden := input.Golden(); golden != nil && len(s.metrics) > 0 {
		analyzer := analysis.NewAnalyzer(results, golden)
		if err := analyzer.ComputeVsGolden(s.metrics); err != nil {
			return nil, err
		}
	}
	return results, nil
}
