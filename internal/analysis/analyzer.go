package analysis

import (
	"log"
	"math"

	"causalbench/domain/dataset"
	"causalbench/domain/graph"
	"causalbench/internal/errors"
	"causalbench/ports"
)

// RunResult records one learner's output on one dataset: the learned
// structure, dataset metadata, and the metrics computed for it.
type RunResult struct {
	Algorithm string
	Learned   *graph.Structure
	Dataset   string
	NSamples  int
	NFeatures int
	Error     string

	Metrics     map[string]float64
	metricOrder []string
}

// NewRunResult captures a learner outcome; only dataset metadata is
// retained.
func NewRunResult(algorithm string, learned *graph.Structure, ds *dataset.Dataset) *RunResult {
	return &RunResult{
		Algorithm: algorithm,
		Learned:   learned,
		Dataset:   ds.Name(),
		NSamples:  ds.NSamples(),
		NFeatures: ds.NFeatures(),
		Metrics:   make(map[string]float64),
	}
}

// AddMetric records a metric value, preserving insertion order for
// export.
func (r *RunResult) AddMetric(name string, value float64) {
	if _, exists := r.Metrics[name]; !exists {
		r.metricOrder = append(r.metricOrder, name)
	}
	r.Metrics[name] = value
}

// MetricNames returns metric names in insertion order.
func (r *RunResult) MetricNames() []string {
	out := make([]string, len(r.metricOrder))
	copy(out, r.metricOrder)
	return out
}

// Analyzer scores a set of learner results against a ground truth and
// against each other.
type Analyzer struct {
	results []*RunResult
	golden  *graph.Structure
}

// NewAnalyzer wraps the results of a benchmark run.
func NewAnalyzer(results []*RunResult, golden *graph.Structure) *Analyzer {
	return &Analyzer{results: results, golden: golden}
}

// ComputeVsGolden computes every metric for every result against the
// golden structure, adding values in place. A metric failure for one
// result is logged and skipped; it never aborts the pass.
func (a *Analyzer) ComputeVsGolden(metrics []ports.Metric) error {
	if a.golden == nil {
		return errors.UsageError("no golden structure available for comparison")
	}
	for _, result := range a.results {
		if result.Learned == nil {
			continue
		}
		for _, metric := range metrics {
			value, err := metric.Compute(a.golden, result.Learned)
			if err != nil {
				log.Printf("[analyzer] %s: computing %s failed: %v", result.Algorithm, metric.Name(), err)
				continue
			}
			result.AddMetric(metric.Name(), value)
		}
	}
	return nil
}

// PairwiseMatrix holds a metric computed between every ordered pair of
// algorithms. The diagonal is 0; failed cells are NaN.
type PairwiseMatrix struct {
	Metric string
	Names  []string
	Values [][]float64
}

// Pairwise computes a metric between all pairs of learned structures.
func (a *Analyzer) Pairwise(metric ports.Metric) (*PairwiseMatrix, error) {
	n := len(a.results)
	names := make([]string, n)
	values := make([][]float64, n)
	for i, result := range a.results {
		names[i] = result.Algorithm
		values[i] = make([]float64, n)
	}

	for i, ri := range a.results {
		for j, rj := range a.results {
			if i == j {
				continue
			}
			if ri.Learned == nil || rj.Learned == nil {
				values[i][j] = math.NaN()
				continue
			}
			value, err := metric.Compute(ri.Learned, rj.Learned)
			if err != nil {
				log.Printf("[analyzer] pairwise %s between %s and %s failed: %v",
					metric.Name(), names[i], names[j], err)
				values[i][j] = math.NaN()
				continue
			}
			values[i][j] = value
		}
	}

	return &PairwiseMatrix{Metric: metric.Name(), Names: names, Values: values}, nil
}
