package sensitivity

import (
	"math"
	"sort"
)

// summary holds the aggregate statistics of one Monte Carlo run.
type summary struct {
	mean             float64
	median           float64
	std              float64
	percentiles      map[float64]float64
	fractionPositive float64
}

// summaryPercentiles are the reported percentile levels.
var summaryPercentiles = []float64{5, 10, 25, 75, 90, 95}

func summarize(values []float64) summary {
	s := summary{percentiles: make(map[float64]float64, len(summaryPercentiles))}
	n := len(values)
	if n == 0 {
		return s
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	positive := 0
	for _, v := range sorted {
		sum += v
		if v > 0 {
			positive++
		}
	}
	s.mean = sum / float64(n)
	s.median = percentile(sorted, 50)
	s.fractionPositive = float64(positive) / float64(n)

	if n > 1 {
		var ss float64
		for _, v := range sorted {
			d := v - s.mean
			ss += d * d
		}
		s.std = math.Sqrt(ss / float64(n-1))
	}

	for _, p := range summaryPercentiles {
		s.percentiles[p] = percentile(sorted, p)
	}
	return s
}

// percentile computes the p-th percentile of sorted values with linear
// interpolation between adjacent ranks.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
