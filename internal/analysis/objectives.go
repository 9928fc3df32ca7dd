package analysis

import (
	"sort"
)

// Direction is the optimization direction for a metric.
type Direction int

const (
	// LowerIsBetter suits distance-like metrics (SHD). The default.
	LowerIsBetter Direction = iota
	// HigherIsBetter suits score-like metrics (F1, TPR).
	HigherIsBetter
)

// Objectives maps metric names to their optimization direction.
// Metrics absent from the map default to LowerIsBetter.
type Objectives map[string]Direction

// Get returns the direction for a metric, defaulting to LowerIsBetter.
func (o Objectives) Get(metric string) Direction {
	if d, ok := o[metric]; ok {
		return d
	}
	return LowerIsBetter
}

// Names returns the objective metric names in sorted order, for
// deterministic iteration.
func (o Objectives) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// better reports whether a improves on b under the direction.
func (d Direction) better(a, b float64) bool {
	if d == LowerIsBetter {
		return a < b
	}
	return a > b
}

// worse reports whether a is strictly worse than b under the direction.
func (d Direction) worse(a, b float64) bool {
	if d == LowerIsBetter {
		return a > b
	}
	return a < b
}
