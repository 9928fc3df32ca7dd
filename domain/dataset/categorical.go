package dataset

import (
	"strconv"
)

// CategoricalTable is the output of discretization: a samples x features
// matrix of dense category codes, each column labeled 0..k-1 with k the
// column's cardinality.
type CategoricalTable struct {
	features    []string
	codes       [][]int
	cardinality []int
}

// NewCategoricalTable wraps a code matrix. Codes must already be dense
// per column (0..k-1); cardinality holds each column's k.
func NewCategoricalTable(features []string, codes [][]int, cardinality []int) *CategoricalTable {
	return &CategoricalTable{
		features:    features,
		codes:       codes,
		cardinality: cardinality,
	}
}

// NSamples returns the number of rows.
func (t *CategoricalTable) NSamples() int { return len(t.codes) }

// NFeatures returns the number of columns.
func (t *CategoricalTable) NFeatures() int { return len(t.features) }

// FeatureNames returns a copy of the ordered feature names.
func (t *CategoricalTable) FeatureNames() []string {
	out := make([]string, len(t.features))
	copy(out, t.features)
	return out
}

// Cardinality returns the number of distinct labels in column j.
func (t *CategoricalTable) Cardinality(j int) int { return t.cardinality[j] }

// Code returns the integer label at row i, column j.
func (t *CategoricalTable) Code(i, j int) int { return t.codes[i][j] }

// Label returns the string label ("0".."k-1") at row i, column j.
func (t *CategoricalTable) Label(i, j int) string {
	return strconv.Itoa(t.codes[i][j])
}

// Column returns a copy of the integer labels in column j.
func (t *CategoricalTable) Column(j int) []int {
	out := make([]int, len(t.codes))
	for i, row := range t.codes {
		out[i] = row[j]
	}
	return out
}

// ToDataset converts the table to a discrete Dataset, with codes cast
// to float64, so discrete-only learners consume it through the usual
// Dataset contract.
func (t *CategoricalTable) ToDataset(name string) (*Dataset, error) {
	data := make([][]float64, len(t.codes))
	for i, row := range t.codes {
		data[i] = make([]float64, len(row))
		for j, c := range row {
			data[i][j] = float64(c)
		}
	}
	return New(name, data, t.FeatureNames(), Discrete)
}
