package sensitivity

import (
	"fmt"
	"sort"

	"github.com/openimpact/lnpv/internal/params"
)

// SweepResult is one parameter's row in a tornado analysis.
type SweepResult struct {
	Parameter string  `json:"parameter"`
	Baseline  float64 `json:"baseline"`
	LowLNPV   float64 `json:"low_lnpv"`
	HighLNPV  float64 `json:"high_lnpv"`

	// Swing is |HighLNPV - LowLNPV|; rows are ranked by descending swing.
	Swing float64 `json:"swing"`
	Rank  int     `json:"rank"`

	// Err records a per-parameter failure (typically an unknown name in a
	// batch sweep). Failed rows keep Rank 0 and sort after ranked rows.
	Err error `json:"-"`
}

// Tornado computes the one-way sweep: for each named parameter, the metric
// at baseline, at the parameter's low bound, and at its high bound, with all
// other parameters fixed. A nil names slice sweeps every registered
// parameter in registration order, which is also the deterministic
// tie-break for equal swings.
//
// A failure for one parameter is isolated to its row; sibling sweeps still
// run. A failure computing the shared baseline aborts the whole sweep.
func Tornado(reg *params.Registry, names []string, metric Metric) ([]SweepResult, error) {
	if names == nil {
		names = reg.Names()
	}

	baseline, err := metric(reg)
	if err != nil {
		return nil, fmt.Errorf("computing baseline: %w", err)
	}

	results := make([]SweepResult, 0, len(names))
	for _, name := range names {
		row := SweepResult{Parameter: name, Baseline: baseline}

		p, err := reg.Get(name)
		if err != nil {
			row.Err = err
			results = append(results, row)
			continue
		}

		if row.LowLNPV, row.Err = metricAt(reg, name, p.Low, metric); row.Err != nil {
			results = append(results, row)
			continue
		}
		if row.HighLNPV, row.Err = metricAt(reg, name, p.High, metric); row.Err != nil {
			results = append(results, row)
			continue
		}

		row.Swing = row.HighLNPV - row.LowLNPV
		if row.Swing < 0 {
			row.Swing = -row.Swing
		}
		results = append(results, row)
	}

	rank(results)
	return results, nil
}

// metricAt evaluates the metric with a single shadowed value.
func metricAt(reg *params.Registry, name string, value float64, metric Metric) (float64, error) {
	view, err := reg.WithOverride(name, value)
	if err != nil {
		return 0, err
	}
	return metric(view)
}

// rank orders rows by descending swing, failed rows last. The sort is
// stable, so equal swings keep their registration order.
func rank(results []SweepResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Swing > results[j].Swing
	})
	next := 1
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		results[i].Rank = next
		next++
	}
}
