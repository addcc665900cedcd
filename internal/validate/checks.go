package validate

import (
	"fmt"
	"math"
	"sort"

	"github.com/openimpact/lnpv/internal/model"
	"github.com/openimpact/lnpv/internal/sensitivity"
)

// Tolerances and bounds for the battery.
const (
	decompRelTolerance   = 0.01 // placement + mincer vs total
	halflifeRatioTol     = 0.01 // premium(halflife)/premium(0) vs 0.5, in ratio points
	monteCarloMedianTol  = 0.15 // MC median vs deterministic baseline
	breakEvenRelTol      = 1e-9
	magnitudeLowINR      = 50_000     // 0.5 lakh
	magnitudeHighINR     = 10_000_000 // 100 lakh
	genderRatioLow       = 0.3
	genderRatioHigh      = 1.2
	fractionPositiveBond = 0.5
)

// Inputs are the precomputed collections the battery inspects. Missing or
// degenerate inputs produce explicit failing criteria, never silent skips.
type Inputs struct {
	// Baseline holds the deterministic per-scenario results, normally all 32.
	Baseline []model.Result

	// MonteCarlo holds one aggregate per intervention, Subject keyed by the
	// intervention name.
	MonteCarlo []sensitivity.MonteCarloResult

	// BreakEven holds the derived max-cost rows.
	BreakEven []sensitivity.BreakEvenRow

	// PremiumCurve is the apprenticeship premium per working year, and
	// Halflife the decay half-life (years) used to produce it.
	PremiumCurve []float64
	Halflife     float64
}

// Run executes the full battery and returns the report in full.
func Run(in Inputs) Report {
	checks := []Check{
		checkBaseline(in),
		checkRegionalOrdering(in),
		checkPremiumDecay(in),
		checkDecomposition(in),
		checkMonteCarlo(in),
		checkBreakEven(in),
		checkGenderRatio(in),
		checkMagnitude(in),
	}

	r := Report{Checks: checks, Passed: true}
	for _, c := range checks {
		if !c.Passed {
			r.Passed = false
		}
	}
	return r
}

func criterion(name string, passed bool, observed, expected string) Criterion {
	return Criterion{Name: name, Passed: passed, Observed: observed, Expected: expected}
}

func missing(name, what string) Criterion {
	return criterion(name, false, "missing", what)
}

// checkBaseline: the full scenario cross product is present with finite,
// positive LNPVs.
func checkBaseline(in Inputs) Check {
	var crit []Criterion

	want := len(model.Scenarios())
	crit = append(crit, criterion("scenario count", len(in.Baseline) == want,
		fmt.Sprintf("%d", len(in.Baseline)), fmt.Sprintf("%d scenarios", want)))

	if len(in.Baseline) == 0 {
		crit = append(crit, missing("all lnpv finite and positive", "baseline results"))
		return newCheck("baseline_lnpv", crit)
	}

	finite, positive := true, true
	minLNPV := math.Inf(1)
	for _, r := range in.Baseline {
		if math.IsNaN(r.LNPV) || math.IsInf(r.LNPV, 0) {
			finite = false
		}
		if r.LNPV <= 0 {
			positive = false
		}
		if r.LNPV < minLNPV {
			minLNPV = r.LNPV
		}
	}
	crit = append(crit,
		criterion("all lnpv finite", finite, fmt.Sprintf("min %.0f", minLNPV), "no NaN or Inf"),
		criterion("all lnpv positive", positive, fmt.Sprintf("min %.0f", minLNPV), "> 0"),
	)
	return newCheck("baseline_lnpv", crit)
}

// regionAverages computes mean LNPV per region for one intervention.
func regionAverages(results []model.Result, iv model.Intervention) map[model.Region]float64 {
	sums := make(map[model.Region]float64)
	counts := make(map[model.Region]int)
	for _, r := range results {
		if r.Scenario.Intervention != iv {
			continue
		}
		sums[r.Scenario.Region] += r.LNPV
		counts[r.Scenario.Region]++
	}
	avgs := make(map[model.Region]float64, len(sums))
	for region, sum := range sums {
		avgs[region] = sum / float64(counts[region])
	}
	return avgs
}

// checkRegionalOrdering: with the default regional multipliers, South must
// rank in the top 2 by average LNPV and strictly above East, for both
// interventions.
func checkRegionalOrdering(in Inputs) Check {
	var crit []Criterion
	for _, iv := range model.Interventions() {
		avgs := regionAverages(in.Baseline, iv)
		if len(avgs) < len(model.Regions()) {
			crit = append(crit, missing(fmt.Sprintf("%s: regional averages", iv), "results for all 4 regions"))
			continue
		}

		regions := model.Regions()
		sort.Slice(regions, func(i, j int) bool { return avgs[regions[i]] > avgs[regions[j]] })
		southRank := 0
		for i, region := range regions {
			if region == model.South {
				southRank = i + 1
			}
		}

		crit = append(crit,
			criterion(fmt.Sprintf("%s: South in top 2 regions", iv), southRank <= 2,
				fmt.Sprintf("rank %d", southRank), "rank <= 2"),
			criterion(fmt.Sprintf("%s: avg South > avg East", iv), avgs[model.South] > avgs[model.East],
				fmt.Sprintf("South %.0f, East %.0f", avgs[model.South], avgs[model.East]), "South > East"),
		)
	}
	return newCheck("regional_ordering", crit)
}

// checkPremiumDecay: the apprenticeship premium is monotone non-increasing
// and halves at the half-life within 1 percentage point.
func checkPremiumDecay(in Inputs) Check {
	var crit []Criterion

	if len(in.PremiumCurve) == 0 {
		crit = append(crit, missing("premium curve", "per-year premium values"))
		return newCheck("premium_decay", crit)
	}

	monotone := true
	for t := 1; t < len(in.PremiumCurve); t++ {
		if in.PremiumCurve[t] > in.PremiumCurve[t-1] {
			monotone = false
			break
		}
	}
	crit = append(crit, criterion("premium monotone non-increasing", monotone,
		fmt.Sprintf("%d years", len(in.PremiumCurve)), "premium(t1) >= premium(t2) for t1 < t2"))

	h := int(math.Round(in.Halflife))
	switch {
	case in.PremiumCurve[0] == 0:
		crit = append(crit, criterion("premium at half-life", false, "undefined ratio (premium(0) = 0)", "ratio ~ 0.5"))
	case h < 0 || h >= len(in.PremiumCurve):
		crit = append(crit, criterion("premium at half-life", false,
			fmt.Sprintf("half-life %d outside horizon %d", h, len(in.PremiumCurve)), "half-life within horizon"))
	default:
		ratio := in.PremiumCurve[h] / in.PremiumCurve[0]
		crit = append(crit, criterion("premium at half-life", math.Abs(ratio-0.5) <= halflifeRatioTol,
			fmt.Sprintf("ratio %.4f", ratio), "0.5 +/- 0.01"))
	}
	return newCheck("premium_decay", crit)
}

// checkDecomposition: for every RTE scenario, placement + mincer must equal
// the total within 1%, both components positive, and placement dominant.
func checkDecomposition(in Inputs) Check {
	var crit []Criterion

	var rte []model.Result
	for _, r := range in.Baseline {
		if r.Scenario.Intervention == model.RTE {
			rte = append(rte, r)
		}
	}
	if len(rte) == 0 {
		crit = append(crit, missing("decomposition sum", "RTE baseline results"))
		return newCheck("rte_decomposition", crit)
	}

	maxRel := 0.0
	sumOK, positive, dominant := true, true, true
	for _, r := range rte {
		if r.LNPV == 0 {
			sumOK = false
			crit = append(crit, criterion(fmt.Sprintf("decomposition defined (%s)", r.Scenario.Key()),
				false, "undefined ratio (lnpv = 0)", "lnpv != 0"))
			continue
		}
		rel := math.Abs(r.PlacementEffect+r.MincerEffect-r.LNPV) / math.Abs(r.LNPV)
		if rel > maxRel {
			maxRel = rel
		}
		if rel > decompRelTolerance {
			sumOK = false
		}
		if r.PlacementEffect <= 0 || r.MincerEffect <= 0 {
			positive = false
		}
		if r.PlacementEffect <= r.MincerEffect {
			dominant = false
		}
	}
	crit = append(crit,
		criterion("placement + mincer = lnpv", sumOK, fmt.Sprintf("max diff %.4f%%", maxRel*100), "within 1%"),
		criterion("both effects positive", positive, fmt.Sprintf("%d RTE scenarios", len(rte)), "> 0"),
		criterion("placement effect dominant", dominant, fmt.Sprintf("%d RTE scenarios", len(rte)), "placement > mincer"),
	)
	return newCheck("rte_decomposition", crit)
}

// checkMonteCarlo: each intervention's sampled median must sit within 15% of
// its deterministic baseline, with a majority of draws positive.
func checkMonteCarlo(in Inputs) Check {
	var crit []Criterion

	if len(in.MonteCarlo) == 0 {
		crit = append(crit, missing("monte carlo median", "monte carlo results"))
		return newCheck("monte_carlo", crit)
	}

	for _, mc := range in.MonteCarlo {
		if mc.Iterations == 0 {
			crit = append(crit, criterion(fmt.Sprintf("%s: median vs baseline", mc.Subject),
				false, "undefined ratio (0 iterations)", "n_iterations > 0"))
			continue
		}

		avgs := regionAverages(in.Baseline, model.Intervention(mc.Subject))
		var det float64
		var n int
		for _, v := range avgs {
			det += v
			n++
		}
		if n == 0 || det == 0 {
			crit = append(crit, criterion(fmt.Sprintf("%s: median vs baseline", mc.Subject),
				false, "undefined ratio (no deterministic baseline)", "baseline results present"))
			continue
		}
		det /= float64(n)

		rel := math.Abs(mc.Median-det) / math.Abs(det)
		crit = append(crit,
			criterion(fmt.Sprintf("%s: median within 15%% of baseline", mc.Subject),
				rel <= monteCarloMedianTol,
				fmt.Sprintf("median %.0f vs baseline %.0f (%.1f%%)", mc.Median, det, rel*100), "within 15%"),
			criterion(fmt.Sprintf("%s: majority of draws positive", mc.Subject),
				mc.FractionPositive >= fractionPositiveBond,
				fmt.Sprintf("%.1f%% positive", mc.FractionPositive*100), ">= 50%"),
		)
	}
	return newCheck("monte_carlo", crit)
}

// checkBreakEven: max_cost x target_bcr must reproduce the LNPV exactly.
func checkBreakEven(in Inputs) Check {
	var crit []Criterion

	if len(in.BreakEven) == 0 {
		crit = append(crit, missing("break-even arithmetic", "break-even rows"))
		return newCheck("break_even", crit)
	}

	ok := true
	maxRel := 0.0
	for _, row := range in.BreakEven {
		if row.LNPV == 0 {
			ok = false
			crit = append(crit, criterion(fmt.Sprintf("break-even defined (%s)", row.Scenario),
				false, "undefined ratio (lnpv = 0)", "lnpv != 0"))
			continue
		}
		rel := math.Abs(row.MaxCost*row.TargetBCR-row.LNPV) / math.Abs(row.LNPV)
		if rel > maxRel {
			maxRel = rel
		}
		if rel > breakEvenRelTol {
			ok = false
		}
	}
	crit = append(crit, criterion("max_cost x bcr = lnpv", ok,
		fmt.Sprintf("max diff %.2e over %d rows", maxRel, len(in.BreakEven)), "exact within rounding"))
	return newCheck("break_even", crit)
}

// checkGenderRatio: the female/male average LNPV ratio must be defined and
// plausible. A zero-sized or zero-valued male group is reported as an
// explicit undefined-ratio failure rather than propagating a NaN.
func checkGenderRatio(in Inputs) Check {
	var crit []Criterion

	for _, iv := range model.Interventions() {
		var femaleSum, maleSum float64
		var femaleN, maleN int
		for _, r := range in.Baseline {
			if r.Scenario.Intervention != iv {
				continue
			}
			switch r.Scenario.Gender {
			case model.Female:
				femaleSum += r.LNPV
				femaleN++
			case model.Male:
				maleSum += r.LNPV
				maleN++
			}
		}

		name := fmt.Sprintf("%s: female/male lnpv ratio", iv)
		if maleN == 0 || femaleN == 0 {
			crit = append(crit, criterion(name, false,
				fmt.Sprintf("undefined ratio (%d female, %d male results)", femaleN, maleN),
				"both groups non-empty"))
			continue
		}
		maleAvg := maleSum / float64(maleN)
		if maleAvg == 0 {
			crit = append(crit, criterion(name, false, "undefined ratio (male average = 0)", "male average != 0"))
			continue
		}
		ratio := (femaleSum / float64(femaleN)) / maleAvg
		crit = append(crit, criterion(name,
			ratio > genderRatioLow && ratio < genderRatioHigh && !math.IsNaN(ratio),
			fmt.Sprintf("ratio %.3f", ratio),
			fmt.Sprintf("(%.1f, %.1f)", genderRatioLow, genderRatioHigh)))
	}
	return newCheck("gender_ratio", crit)
}

// checkMagnitude: every LNPV must land in the plausible band.
func checkMagnitude(in Inputs) Check {
	var crit []Criterion

	if len(in.Baseline) == 0 {
		crit = append(crit, missing("lnpv magnitude", "baseline results"))
		return newCheck("lnpv_magnitude", crit)
	}

	ok := true
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, r := range in.Baseline {
		if r.LNPV < magnitudeLowINR || r.LNPV > magnitudeHighINR {
			ok = false
		}
		lo = math.Min(lo, r.LNPV)
		hi = math.Max(hi, r.LNPV)
	}
	crit = append(crit, criterion("lnpv within plausible band", ok,
		fmt.Sprintf("range [%.0f, %.0f]", lo, hi),
		fmt.Sprintf("[%d, %d] INR", magnitudeLowINR, magnitudeHighINR)))
	return newCheck("lnpv_magnitude", crit)
}
