package discretize

import (
	"math"
)

// MutualInformation computes the empirical mutual information, in nats,
// between two equal-length sequences of category labels. Labels need
// not be dense or 0-based; observed values are mapped to contingency
// table indices first. Returns 0 for an empty sample.
//
// The result is symmetric, non-negative up to floating-point error, and
// equals the entropy of either sequence when the two are identical.
func MutualInformation(x, y []int) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0.0
	}

	xIdx := denseIndex(x)
	yIdx := denseIndex(y)

	counts := make([][]float64, len(xIdx))
	for i := range counts {
		counts[i] = make([]float64, len(yIdx))
	}
	for i := 0; i < n; i++ {
		counts[xIdx[x[i]]][yIdx[y[i]]]++
	}

	total := float64(n)
	px := make([]float64, len(xIdx))
	py := make([]float64, len(yIdx))
	for i := range counts {
		for j := range counts[i] {
			p := counts[i][j] / total
			counts[i][j] = p
			px[i] += p
			py[j] += p
		}
	}

	mi := 0.0
	for i := range counts {
		for j := range counts[i] {
			// cells with zero joint probability are skipped (0*log 0 convention)
			if counts[i][j] > 0 {
				mi += counts[i][j] * math.Log(counts[i][j]/(px[i]*py[j]))
			}
		}
	}
	return mi
}

// denseIndex maps each distinct observed value to a dense table index.
func denseIndex(values []int) map[int]int {
	idx := make(map[int]int)
	for _, v := range values {
		if _, ok := idx[v]; !ok {
			idx[v] = len(idx)
		}
	}
	return idx
}
