package discretize

import (
	"math/rand"
	"strconv"
	"testing"

	"causalbench/domain/dataset"
	"causalbench/internal/errors"
)

func correlatedDataset(t *testing.T, n int, seed int64) *dataset.Dataset {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		x := rng.NormFloat64()
		y := 0.9*x + 0.2*rng.NormFloat64()
		z := -0.7*y + 0.3*rng.NormFloat64()
		data[i] = []float64{x, y, z}
	}
	ds, err := dataset.New("corr", data, []string{"x", "y", "z"}, dataset.Continuous)
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}
	return ds
}

func TestDiscretize_ExactTargetBins(t *testing.T) {
	ds := correlatedDataset(t, 300, 11)

	table, err := Discretize(ds, Options{NBins: 3})
	if err != nil {
		t.Fatalf("Discretize failed: %v", err)
	}

	if table.NSamples() != 300 || table.NFeatures() != 3 {
		t.Fatalf("unexpected shape %dx%d", table.NSamples(), table.NFeatures())
	}

	for j := 0; j < table.NFeatures(); j++ {
		if got := table.Cardinality(j); got != 3 {
			t.Errorf("column %d: cardinality %d, want 3", j, got)
		}
		seen := map[int]bool{}
		for i := 0; i < table.NSamples(); i++ {
			code := table.Code(i, j)
			if code < 0 || code > 2 {
				t.Fatalf("column %d row %d: code %d out of range", j, i, code)
			}
			if table.Label(i, j) != strconv.Itoa(code) {
				t.Fatalf("label/code mismatch at (%d,%d)", i, j)
			}
			seen[code] = true
		}
		for code := 0; code < 3; code++ {
			if !seen[code] {
				t.Errorf("column %d: label %d never used", j, code)
			}
		}
	}
}

func TestDiscretize_UniformMethod(t *testing.T) {
	ds := correlatedDataset(t, 200, 5)

	table, err := Discretize(ds, Options{NBins: 2, Method: MethodUniform})
	if err != nil {
		t.Fatalf("Discretize failed: %v", err)
	}
	for j := 0; j < table.NFeatures(); j++ {
		if got := table.Cardinality(j); got != 2 {
			t.Errorf("column %d: cardinality %d, want 2", j, got)
		}
	}
}

func TestDiscretize_InitialBinsMustExceedTarget(t *testing.T) {
	ds := correlatedDataset(t, 50, 1)

	for _, initial := range []int{3, 2, 1} {
		_, err := Discretize(ds, Options{NBins: 3, InitialBins: initial})
		if err == nil {
			t.Fatalf("initial_bins=%d: expected configuration error", initial)
		}
		if !errors.HasCode(err, errors.CodeConfigInvalid) {
			t.Errorf("initial_bins=%d: expected CONFIG_INVALID, got %s", initial, errors.GetCode(err))
		}
	}
}

func TestDiscretize_UnknownMethod(t *testing.T) {
	ds := correlatedDataset(t, 50, 2)

	_, err := Discretize(ds, Options{NBins: 3, Method: "kmeans"})
	if err == nil {
		t.Fatal("expected configuration error for unknown method")
	}
	if !errors.HasCode(err, errors.CodeConfigInvalid) {
		t.Errorf("expected CONFIG_INVALID, got %s", errors.GetCode(err))
	}
}

func TestDiscretize_InvalidTargetBins(t *testing.T) {
	ds := correlatedDataset(t, 50, 3)

	for _, nBins := range []int{0, -1} {
		_, err := Discretize(ds, Options{NBins: nBins})
		if !errors.HasCode(err, errors.CodeConfigInvalid) {
			t.Errorf("n_bins=%d: expected CONFIG_INVALID, got %v", nBins, err)
		}
	}
}

func TestDiscretize_ConstantColumnCollapses(t *testing.T) {
	// A constant column yields duplicate quantile edges; it collapses
	// below the target instead of failing.
	data := make([][]float64, 100)
	rng := rand.New(rand.NewSource(9))
	for i := range data {
		data[i] = []float64{1.0, rng.NormFloat64()}
	}
	ds, err := dataset.New("const", data, []string{"c", "x"}, dataset.Continuous)
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}

	table, err := Discretize(ds, Options{NBins: 3})
	if err != nil {
		t.Fatalf("Discretize failed: %v", err)
	}
	if got := table.Cardinality(0); got != 1 {
		t.Errorf("constant column cardinality %d, want 1", got)
	}
	if got := table.Cardinality(1); got != 3 {
		t.Errorf("varying column cardinality %d, want 3", got)
	}
}

func TestDiscretize_PreservesDependency(t *testing.T) {
	// After discretization, strongly coupled columns should keep more
	// mutual information than an independent pair.
	ds := correlatedDataset(t, 500, 21)
	table, err := Discretize(ds, Options{NBins: 3})
	if err != nil {
		t.Fatalf("Discretize failed: %v", err)
	}

	coupled := MutualInformation(table.Column(0), table.Column(1))

	rng := rand.New(rand.NewSource(22))
	indep := make([]int, table.NSamples())
	for i := range indep {
		indep[i] = rng.Intn(3)
	}
	baseline := MutualInformation(table.Column(0), indep)

	if coupled <= baseline {
		t.Errorf("discretization lost the dependency: MI(x,y)=%f <= MI(x,noise)=%f", coupled, baseline)
	}
}
