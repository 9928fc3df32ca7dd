package testkit

import (
	"context"
	"fmt"
	"math/rand"

	"causalbench/domain/dataset"
	"causalbench/domain/graph"
	"causalbench/ports"
)

// ChainDataset generates n samples from a linear chain X0 -> X1 -> X2
// with Gaussian noise and attaches the chain CPDAG as ground truth.
// Deterministic for a given seed.
func ChainDataset(n int, seed int64) (*dataset.Dataset, error) {
	rng := rand.New(rand.NewSource(seed))

	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		x0 := rng.NormFloat64()
		x1 := 0.8*x0 + 0.3*rng.NormFloat64()
		x2 := 0.8*x1 + 0.3*rng.NormFloat64()
		data[i] = []float64{x0, x1, x2}
	}

	ds, err := dataset.New("chain", data, []string{"X0", "X1", "X2"}, dataset.Continuous)
	if err != nil {
		return nil, err
	}

	golden, err := graph.NewBuilder(3).
		AddArc(0, 1).
		AddArc(1, 2).
		Build()
	if err != nil {
		return nil, err
	}
	if err := ds.AttachGolden(golden); err != nil {
		return nil, err
	}
	return ds, nil
}

// IndependentColumns generates n samples of k independent standard
// normal columns. Deterministic for a given seed.
func IndependentColumns(n, k int, seed int64) (*dataset.Dataset, error) {
	rng := rand.New(rand.NewSource(seed))

	data := make([][]float64, n)
	features := make([]string, k)
	for j := 0; j < k; j++ {
		features[j] = fmt.Sprintf("X%d", j)
	}
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		for j := 0; j < k; j++ {
			row[j] = rng.NormFloat64()
		}
		data[i] = row
	}
	return dataset.New("independent", data, features, dataset.Continuous)
}

// StubLearner returns a fixed structure or error, for exercising the
// grid search and pipeline without a real algorithm.
type StubLearner struct {
	LearnerName string
	Structure   *graph.Structure
	Err         error
}

var _ ports.Learner = (*StubLearner)(nil)

func (l *StubLearner) Name() string {
	return l.LearnerName
}

func (l *StubLearner) LearnStructure(ctx context.Context, ds *dataset.Dataset) (*graph.Structure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Structure, nil
}

// StubFactory builds StubLearners. Params carrying "fail": true make
// construction fail; "fail_learn": true make learning fail. Everything
// else returns the configured structure.
type StubFactory struct {
	Structure *graph.Structure
}

var _ ports.LearnerFactory = (*StubFactory)(nil)

func (f *StubFactory) Algorithm() string {
	return "stub"
}

func (f *StubFactory) New(params map[string]interface{}) (ports.Learner, error) {
	if fail, ok := params["fail"].(bool); ok && fail {
		return nil, fmt.Errorf("stub construction failed with params %v", params)
	}
	learner := &StubLearner{LearnerName: "stub", Structure: f.Structure}
	if fail, ok := params["fail_learn"].(bool); ok && fail {
		learner.Err = fmt.Errorf("stub learning failed")
	}
	return learner, nil
}

