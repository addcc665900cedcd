// Package export renders engine results as CSV tables. Every writer takes
// an io.Writer so callers decide whether output lands in a file, a buffer,
// or stdout.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/openimpact/lnpv/internal/model"
	"github.com/openimpact/lnpv/internal/params"
	"github.com/openimpact/lnpv/internal/sensitivity"
	"github.com/openimpact/lnpv/internal/validate"
)

// WriteBaseline writes one row per scenario with the LNPV and its
// decomposition. Rows appear in the order given.
func WriteBaseline(w io.Writer, results []model.Result) error {
	cw := csv.NewWriter(w)
	header := []string{
		"intervention", "region", "gender", "location",
		"lnpv_inr", "p_formal_treatment", "p_formal_control",
		"placement_effect_inr", "mincer_effect_inr",
		"year0_differential_inr", "discount_rate", "horizon_years",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write baseline header: %w", err)
	}
	for _, r := range results {
		row := []string{
			string(r.Scenario.Intervention),
			string(r.Scenario.Region),
			string(r.Scenario.Gender),
			string(r.Scenario.Location),
			ftoa(r.LNPV),
			ftoa(r.PFormalTreatment),
			ftoa(r.PFormalControl),
			ftoa(r.PlacementEffect),
			ftoa(r.MincerEffect),
			ftoa(r.Year0Differential),
			ftoa(r.DiscountRate),
			strconv.Itoa(r.Horizon),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write baseline row %s: %w", r.Scenario.Key(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTornado writes the ranked one-way sweep table. Failed sweeps carry
// an error column instead of LNPV bounds.
func WriteTornado(w io.Writer, rows []sensitivity.SweepResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"rank", "parameter", "baseline_lnpv_inr",
		"low_lnpv_inr", "high_lnpv_inr", "swing_inr", "error",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write tornado header: %w", err)
	}
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Rank),
			r.Parameter,
			ftoa(r.Baseline),
			ftoa(r.LowLNPV),
			ftoa(r.HighLNPV),
			ftoa(r.Swing),
			errString(r.Err),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write tornado row %s: %w", r.Parameter, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTwoWay writes a two-way grid in long form, one row per (x, y) cell.
func WriteTwoWay(w io.Writer, g sensitivity.Grid) error {
	cw := csv.NewWriter(w)
	header := []string{g.XParameter, g.YParameter, "lnpv_inr"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write two-way header: %w", err)
	}
	for i, x := range g.XValues {
		for j, y := range g.YValues {
			row := []string{ftoa(x), ftoa(y), ftoa(g.Values[i][j])}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write two-way cell (%d,%d): %w", i, j, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMonteCarlo writes one row of distribution statistics per subject.
func WriteMonteCarlo(w io.Writer, results []sensitivity.MonteCarloResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"subject", "n_iterations", "mean_inr", "median_inr", "std_inr",
		"p5_inr", "p10_inr", "p25_inr", "p75_inr", "p90_inr", "p95_inr",
		"fraction_positive",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write monte carlo header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Subject,
			strconv.Itoa(r.Iterations),
			ftoa(r.Mean), ftoa(r.Median), ftoa(r.Std),
			ftoa(r.P5), ftoa(r.P10), ftoa(r.P25),
			ftoa(r.P75), ftoa(r.P90), ftoa(r.P95),
			ftoa(r.FractionPositive),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write monte carlo row %s: %w", r.Subject, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBreakEven writes break-even program costs per scenario and target
// benefit-cost ratio.
func WriteBreakEven(w io.Writer, rows []sensitivity.BreakEvenRow) error {
	cw := csv.NewWriter(w)
	header := []string{"scenario", "lnpv_inr", "target_bcr", "max_cost_inr"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write break-even header: %w", err)
	}
	for _, r := range rows {
		row := []string{r.Scenario, ftoa(r.LNPV), ftoa(r.TargetBCR), ftoa(r.MaxCost)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write break-even row %s: %w", r.Scenario, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteValidation flattens the check battery into one row per criterion so
// the full pass/fail detail survives in spreadsheet form.
func WriteValidation(w io.Writer, report validate.Report) error {
	cw := csv.NewWriter(w)
	header := []string{"check", "check_status", "criterion", "criterion_status", "observed", "expected"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write validation header: %w", err)
	}
	for _, check := range report.Checks {
		for _, cr := range check.Criteria {
			row := []string{
				check.Name,
				check.Status(),
				cr.Name,
				status(cr.Passed),
				cr.Observed,
				cr.Expected,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write validation row %s/%s: %w", check.Name, cr.Name, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteParameters writes a registry in the same column layout Load accepts,
// so an exported table can be edited and fed back in.
func WriteParameters(w io.Writer, reg *params.Registry) error {
	cw := csv.NewWriter(w)
	header := []string{"name", "value", "low", "high", "tier", "unit", "distribution", "source"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write parameter header: %w", err)
	}
	for _, name := range reg.Names() {
		p, err := reg.Get(name)
		if err != nil {
			return err
		}
		row := []string{
			p.Name,
			ftoa(p.Value), ftoa(p.Low), ftoa(p.High),
			strconv.Itoa(p.Tier),
			p.Unit,
			string(p.EffectiveDistribution()),
			p.Source,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write parameter row %s: %w", p.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func status(passed bool) string {
	if passed {
		return "pass"
	}
	return "fail"
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
