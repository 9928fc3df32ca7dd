package analysis

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"causalbench/domain/graph"
	"causalbench/internal/errors"
	"causalbench/internal/testkit"
	"causalbench/ports"
)

// arcCountDiff scores the absolute difference in arc counts. Enough
// structure sensitivity for analyzer tests without a real metric.
type arcCountDiff struct{}

func (arcCountDiff) Name() string { return "arc_count_diff" }

func (arcCountDiff) Compute(ref, test *graph.Structure) (float64, error) {
	return math.Abs(float64(ref.ArcCount() - test.ArcCount())), nil
}

func mustStructure(t *testing.T, n int, arcs [][2]int) *graph.Structure {
	t.Helper()
	b := graph.NewBuilder(n)
	for _, a := range arcs {
		b.AddArc(graph.NodeID(a[0]), graph.NodeID(a[1]))
	}
	s, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestRunResult_MetricOrder(t *testing.T) {
	ds, err := testkit.ChainDataset(20, 3)
	if err != nil {
		t.Fatalf("ChainDataset: %v", err)
	}
	r := NewRunResult("pc", ds.Golden(), ds)
	if r.Dataset != "chain" || r.NSamples != 20 || r.NFeatures != 3 {
		t.Errorf("metadata = %s/%d/%d", r.Dataset, r.NSamples, r.NFeatures)
	}

	r.AddMetric("f1", 0.8)
	r.AddMetric("shd", 2)
	r.AddMetric("f1", 0.9) // overwrite keeps position

	if !reflect.DeepEqual(r.MetricNames(), []string{"f1", "shd"}) {
		t.Errorf("MetricNames = %v", r.MetricNames())
	}
	if r.Metrics["f1"] != 0.9 {
		t.Errorf("f1 = %v after overwrite", r.Metrics["f1"])
	}
}

func TestAnalyzer_ComputeVsGolden(t *testing.T) {
	ds, err := testkit.ChainDataset(20, 3)
	if err != nil {
		t.Fatalf("ChainDataset: %v", err)
	}
	exact := NewRunResult("exact", ds.Golden(), ds)
	sparse := NewRunResult("sparse", mustStructure(t, 3, [][2]int{{0, 1}}), ds)
	failed := NewRunResult("failed", nil, ds)
	failed.Error = "learner crashed"

	a := NewAnalyzer([]*RunResult{exact, sparse, failed}, ds.Golden())
	if err := a.ComputeVsGolden([]ports.Metric{arcCountDiff{}}); err != nil {
		t.Fatalf("ComputeVsGolden: %v", err)
	}

	if exact.Metrics["arc_count_diff"] != 0 {
		t.Errorf("exact diff = %v", exact.Metrics["arc_count_diff"])
	}
	if sparse.Metrics["arc_count_diff"] != 1 {
		t.Errorf("sparse diff = %v", sparse.Metrics["arc_count_diff"])
	}
	if len(failed.Metrics) != 0 {
		t.Errorf("failed result should stay unscored, got %v", failed.Metrics)
	}
}

func TestAnalyzer_NoGolden(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	err := a.ComputeVsGolden([]ports.Metric{arcCountDiff{}})
	if !errors.HasCode(err, errors.CodeUsageError) {
		t.Errorf("err = %v, want %s", err, errors.CodeUsageError)
	}
}

func TestAnalyzer_MetricFailureSkipped(t *testing.T) {
	ds, err := testkit.ChainDataset(20, 3)
	if err != nil {
		t.Fatalf("ChainDataset: %v", err)
	}
	r := NewRunResult("pc", ds.Golden(), ds)
	a := NewAnalyzer([]*RunResult{r}, ds.Golden())

	failing := constMetric{name: "shd", err: fmt.Errorf("no extension")}
	if err := a.ComputeVsGolden([]ports.Metric{failing, arcCountDiff{}}); err != nil {
		t.Fatalf("ComputeVsGolden: %v", err)
	}
	if _, ok := r.Metrics["shd"]; ok {
		t.Error("failing metric should be skipped")
	}
	if _, ok := r.Metrics["arc_count_diff"]; !ok {
		t.Error("later metrics should still be computed")
	}
}

func TestAnalyzer_Pairwise(t *testing.T) {
	ds, err := testkit.ChainDataset(20, 3)
	if err != nil {
		t.Fatalf("ChainDataset: %v", err)
	}
	chain := NewRunResult("chain", ds.Golden(), ds)
	single := NewRunResult("single", mustStructure(t, 3, [][2]int{{0, 1}}), ds)
	broken := NewRunResult("broken", nil, ds)

	a := NewAnalyzer([]*RunResult{chain, single, broken}, ds.Golden())
	m, err := a.Pairwise(arcCountDiff{})
	if err != nil {
		t.Fatalf("Pairwise: %v", err)
	}

	if m.Metric != "arc_count_diff" {
		t.Errorf("Metric = %s", m.Metric)
	}
	if !reflect.DeepEqual(m.Names, []string{"chain", "single", "broken"}) {
		t.Errorf("Names = %v", m.Names)
	}
	if m.Values[0][0] != 0 || m.Values[1][1] != 0 {
		t.Error("diagonal should be 0")
	}
	if m.Values[0][1] != 1 || m.Values[1][0] != 1 {
		t.Errorf("chain vs single = %v / %v", m.Values[0][1], m.Values[1][0])
	}
	if !math.IsNaN(m.Values[0][2]) || !math.IsNaN(m.Values[2][0]) {
		t.Error("pairs involving a failed result should be NaN")
	}
}
