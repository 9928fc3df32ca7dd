package dataset

import (
	"fmt"

	"causalbench/domain/core"
	"causalbench/domain/graph"
)

// DataType tags whether a dataset holds continuous measurements or
// discrete category codes. Consumers switch on it exhaustively.
type DataType int

const (
	Continuous DataType = iota
	Discrete
)

func (t DataType) String() string {
	switch t {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// Dataset is a samples x features numeric matrix with ordered, unique
// feature names and an optional ground-truth structure. Immutable after
// construction except for AttachGolden.
type Dataset struct {
	name     string
	data     [][]float64
	features []string
	dataType DataType
	golden   *graph.Structure
}

// New validates and wraps a data matrix. The matrix is not copied;
// callers hand over ownership.
func New(name string, data [][]float64, features []string, dataType DataType) (*Dataset, error) {
	if len(data) == 0 {
		return nil, core.ErrEmptyDataset
	}
	nFeatures := len(data[0])
	if len(features) != nFeatures {
		return nil, fmt.Errorf("%w: %d names for %d columns",
			core.ErrFeatureCountMismatch, len(features), nFeatures)
	}
	seen := make(map[string]struct{}, len(features))
	for _, f := range features {
		if _, dup := seen[f]; dup {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateFeature, f)
		}
		seen[f] = struct{}{}
	}
	for i, row := range data {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				core.ErrRaggedMatrix, i, len(row), nFeatures)
		}
	}
	return &Dataset{
		name:     name,
		data:     data,
		features: features,
		dataType: dataType,
	}, nil
}

// AttachGolden records the ground-truth structure. It can be set once;
// the structure's node set must match the feature count.
func (d *Dataset) AttachGolden(s *graph.Structure) error {
	if d.golden != nil {
		return core.ErrGoldenAlreadySet
	}
	if s.NodeCount() != d.NFeatures() {
		return fmt.Errorf("%w: %d nodes for %d features",
			core.ErrGoldenSizeMismatch, s.NodeCount(), d.NFeatures())
	}
	d.golden = s
	return nil
}

// Name returns the dataset name.
func (d *Dataset) Name() string { return d.name }

// NSamples returns the number of rows.
func (d *Dataset) NSamples() int { return len(d.data) }

// NFeatures returns the number of columns.
func (d *Dataset) NFeatures() int { return len(d.features) }

// DataType returns the continuous/discrete tag.
func (d *Dataset) DataType() DataType { return d.dataType }

// Golden returns the attached ground-truth structure, or nil.
func (d *Dataset) Golden() *graph.Structure { return d.golden }

// FeatureNames returns a copy of the ordered feature names.
func (d *Dataset) FeatureNames() []string {
	out := make([]string, len(d.features))
	copy(out, d.features)
	return out
}

// Value returns the cell at row i, column j.
func (d *Dataset) Value(i, j int) float64 { return d.data[i][j] }

// Column returns a copy of column j.
func (d *Dataset) Column(j int) []float64 {
	out := make([]float64, len(d.data))
	for i, row := range d.data {
		out[i] = row[j]
	}
	return out
}

func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset(name=%s, n_samples=%d, n_features=%d, data_type=%s, has_golden=%t)",
		d.name, d.NSamples(), d.NFeatures(), d.dataType, d.golden != nil)
}
