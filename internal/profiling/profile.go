package profiling

import (
	"math"

	"github.com/montanaflynn/stats"

	"causalbench/domain/dataset"
)

// ColumnProfile summarizes one dataset column for reports and sanity
// checks before discretization.
type ColumnProfile struct {
	Name        string
	Mean        float64
	StdDev      float64
	Min         float64
	Max         float64
	Median      float64
	Cardinality int
	MissingRate float64
}

// ProfileColumn computes summary statistics for a single column.
func ProfileColumn(name string, data []float64) (ColumnProfile, error) {
	profile := ColumnProfile{Name: name}

	valid := make([]float64, 0, len(data))
	distinct := make(map[float64]struct{})
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		valid = append(valid, v)
		distinct[v] = struct{}{}
	}
	profile.Cardinality = len(distinct)
	if len(data) > 0 {
		profile.MissingRate = 1.0 - float64(len(valid))/float64(len(data))
	}
	if len(valid) == 0 {
		return profile, nil
	}

	var err error
	if profile.Mean, err = stats.Mean(valid); err != nil {
		return profile, err
	}
	if profile.StdDev, err = stats.StandardDeviation(valid); err != nil {
		return profile, err
	}
	if profile.Min, err = stats.Min(valid); err != nil {
		return profile, err
	}
	if profile.Max, err = stats.Max(valid); err != nil {
		return profile, err
	}
	if profile.Median, err = stats.Median(valid); err != nil {
		return profile, err
	}
	return profile, nil
}

// ProfileDataset profiles every column of a dataset.
func ProfileDataset(ds *dataset.Dataset) ([]ColumnProfile, error) {
	names := ds.FeatureNames()
	profiles := make([]ColumnProfile, len(names))
	for j, name := range names {
		profile, err := ProfileColumn(name, ds.Column(j))
		if err != nil {
			return nil, err
		}
		profiles[j] = profile
	}
	return profiles, nil
}
