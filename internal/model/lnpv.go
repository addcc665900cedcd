package model

import (
	"context"
	"fmt"
	"math"

	"github.com/openimpact/lnpv/internal/params"
	"golang.org/x/sync/errgroup"
)

// decompTolerance is the relative tolerance for the RTE decomposition
// identity placement + mincer = lnpv. The two terms are additive by
// construction, so anything beyond floating-point noise is a model defect.
const decompTolerance = 1e-4

// pFormalCeiling caps treatment-side formal entry after regional scaling.
const pFormalCeiling = 0.90

// Control-side formal entry bounds for the apprenticeship counterfactual.
const (
	pControlFloor = 0.03
	pControlCap   = 0.25
)

// Config tunes the calculator. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// Regional holds the region multipliers layered over national values.
	Regional RegionalAdjustments

	// TrainingYear prepends the one-year apprenticeship training period:
	// the treatment cohort earns the monthly stipend in year 0 while the
	// control earns its informal entry wage, and premium decay starts at
	// the first working year.
	TrainingYear bool

	// WageFloorFraction clamps grown wages at this fraction of the entry
	// wage, so aggressively negative sampled growth never produces
	// negative pay.
	WageFloorFraction float64
}

// DefaultConfig returns the baseline calculator configuration.
func DefaultConfig() Config {
	return Config{
		Regional:          DefaultRegionalAdjustments(),
		WageFloorFraction: 0.01,
	}
}

// Result is the outcome of one scenario's LNPV calculation.
type Result struct {
	Scenario Scenario `json:"scenario"`

	// LNPV is the discounted sum of annual wage differentials in INR.
	LNPV float64 `json:"lnpv"`

	PFormalTreatment float64 `json:"p_formal_treatment"`
	PFormalControl   float64 `json:"p_formal_control"`

	// PlacementEffect and MincerEffect decompose the RTE LNPV into its two
	// causal pathways; they sum to LNPV exactly. Zero for Apprenticeship.
	PlacementEffect float64 `json:"placement_effect,omitempty"`
	MincerEffect    float64 `json:"mincer_effect,omitempty"`

	// Year0Differential is the annual treatment-control differential at t=0.
	Year0Differential float64 `json:"year0_differential"`

	DiscountRate float64 `json:"discount_rate"`
	Horizon      int     `json:"horizon"`
}

// Calculator computes LNPV results over an immutable parameter snapshot.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	src params.Source
	cfg Config
}

// NewCalculator builds a calculator over the given parameter source.
func NewCalculator(src params.Source, cfg Config) *Calculator {
	if cfg.WageFloorFraction <= 0 {
		cfg.WageFloorFraction = DefaultConfig().WageFloorFraction
	}
	if cfg.Regional.PFormalHS == nil {
		cfg.Regional = DefaultRegionalAdjustments()
	}
	return &Calculator{src: src, cfg: cfg}
}

// inputs is one scenario's parameter snapshot resolved to concrete numbers.
type inputs struct {
	horizon  int
	discount float64

	entryFormal   float64 // monthly, region-adjusted
	entryInformal float64
	gFormal       float64
	gInformal     float64

	mincer float64 // treatment wage multiplier; 1 outside RTE

	pTreat   float64
	pControl float64

	premium0 float64 // monthly apprenticeship premium at entry; 0 outside Apprenticeship
	halflife float64
	stipend  float64 // monthly training stipend
}

func (c *Calculator) loadInputs(sc Scenario) (inputs, error) {
	val := func(name string) (float64, error) { return c.src.Value(name) }

	horizonF, err := val("career_horizon")
	if err != nil {
		return inputs{}, err
	}
	horizon := int(horizonF)
	if horizon <= 0 {
		return inputs{}, &DomainError{Field: "career_horizon", Value: horizonF, Reason: "career horizon must be positive"}
	}

	discount, err := val("discount_rate")
	if err != nil {
		return inputs{}, err
	}
	if discount <= -1 {
		return inputs{}, &DomainError{Field: "discount_rate", Value: discount, Reason: "discount rate at or below -100% inverts discounting"}
	}

	entryFormal, err := val(fmt.Sprintf("formal_wage_%s_%s", sc.Location, sc.Gender))
	if err != nil {
		return inputs{}, err
	}
	entryInformal, err := val(fmt.Sprintf("informal_wage_%s_%s", sc.Location, sc.Gender))
	if err != nil {
		return inputs{}, err
	}
	premium := c.cfg.Regional.wagePremium(sc.Region)
	entryFormal *= premium
	entryInformal *= premium

	gFormal, err := val("wage_growth_formal")
	if err != nil {
		return inputs{}, err
	}
	gInformal, err := val("wage_growth_informal")
	if err != nil {
		return inputs{}, err
	}

	in := inputs{
		horizon:       horizon,
		discount:      discount,
		entryFormal:   entryFormal,
		entryInformal: entryInformal,
		gFormal:       gFormal,
		gInformal:     gInformal,
		mincer:        1,
	}

	switch sc.Intervention {
	case RTE:
		pRTE, err := val("p_formal_rte")
		if err != nil {
			return inputs{}, err
		}
		in.pTreat = math.Min(pFormalCeiling, pRTE*c.cfg.Regional.TreatmentEntryMultiplier(sc.Region))

		// Control formal entry is the national higher-secondary baseline;
		// regional heterogeneity enters on the treatment side only.
		if in.pControl, err = val("p_formal_hs"); err != nil {
			return inputs{}, err
		}

		beta, err := val("mincer_return")
		if err != nil {
			return inputs{}, err
		}
		gain, err := val("rte_test_score_gain")
		if err != nil {
			return inputs{}, err
		}
		yearsPerSD, err := val("test_score_to_years")
		if err != nil {
			return inputs{}, err
		}
		deltaYears := gain * yearsPerSD
		in.mincer = math.Exp(beta * c.cfg.Regional.mincerMultiplier(sc.Region) * deltaYears)

	case Apprenticeship:
		// Placement runs through specific employers, so no regional
		// adjustment on the treatment side.
		if in.pTreat, err = val("p_formal_apprentice"); err != nil {
			return inputs{}, err
		}
		pNoTrain, err := val("p_formal_no_training")
		if err != nil {
			return inputs{}, err
		}
		in.pControl = math.Min(pControlCap, math.Max(pControlFloor, pNoTrain))

		premiumAnnual, err := val("apprentice_premium_annual")
		if err != nil {
			return inputs{}, err
		}
		in.premium0 = premiumAnnual / 12
		if in.halflife, err = val("apprentice_decay_halflife"); err != nil {
			return inputs{}, err
		}
		if in.stipend, err = val("apprentice_stipend_monthly"); err != nil {
			return inputs{}, err
		}
	}

	return in, nil
}

// grow compounds an entry wage t years forward, clamped at the wage floor.
func (c *Calculator) grow(entry, rate float64, t int) float64 {
	w := entry * math.Pow(1+rate, float64(t))
	floor := c.cfg.WageFloorFraction * entry
	if w < floor {
		return floor
	}
	return w
}

// variant selects which causal pathway a trajectory run isolates.
type variant struct {
	neutralMincer      bool // force the Mincer multiplier to 1 for both groups
	controlAtTreatment bool // raise the control's formal entry to the treatment's
}

// run accumulates the discounted differential for one variant. Returns the
// LNPV and the undiscounted year-0 annual differential.
func (c *Calculator) run(sc Scenario, in inputs, v variant) (lnpv, year0 float64) {
	m := in.mincer
	if v.neutralMincer {
		m = 1
	}
	pT := in.pTreat
	pC := in.pControl
	if v.controlAtTreatment {
		pC = pT
	}

	trainingYear := c.cfg.TrainingYear && sc.Intervention == Apprenticeship

	total := in.horizon
	if trainingYear {
		total++
	}

	for t := 0; t < total; t++ {
		var wT, wC float64
		if trainingYear && t == 0 {
			wT = in.stipend
			wC = in.entryInformal
		} else {
			work := t
			if trainingYear {
				work = t - 1
			}
			formal := c.grow(in.entryFormal, in.gFormal, work)
			informal := c.grow(in.entryInformal, in.gInformal, work)

			treatFormal := m*formal + DecayedPremium(in.premium0, in.halflife, float64(work))
			treatInformal := m * informal

			wT = pT*treatFormal + (1-pT)*treatInformal
			wC = pC*formal + (1-pC)*informal
		}

		diff := 12 * (wT - wC)
		if t == 0 {
			year0 = diff
		}
		lnpv += diff / math.Pow(1+in.discount, float64(t))
	}
	return lnpv, year0
}

// LNPV computes the full result for one scenario, including the RTE causal
// decomposition.
func (c *Calculator) LNPV(sc Scenario) (Result, error) {
	if err := sc.Validate(); err != nil {
		return Result{}, err
	}
	in, err := c.loadInputs(sc)
	if err != nil {
		return Result{}, err
	}

	total, year0 := c.run(sc, in, variant{})

	res := Result{
		Scenario:          sc,
		LNPV:              total,
		PFormalTreatment:  in.pTreat,
		PFormalControl:    in.pControl,
		Year0Differential: year0,
		DiscountRate:      in.discount,
		Horizon:           in.horizon,
	}

	if sc.Intervention == RTE {
		placement, _ := c.run(sc, in, variant{neutralMincer: true})
		mincer, _ := c.run(sc, in, variant{controlAtTreatment: true})
		res.PlacementEffect = placement
		res.MincerEffect = mincer

		gap := math.Abs(placement + mincer - total)
		if gap > decompTolerance*math.Max(math.Abs(total), 1) {
			// Divergence means the trajectory expectation stopped being
			// linear in levels. Surface it, never rescale.
			return Result{}, fmt.Errorf(
				"model defect: decomposition diverges for %s: placement %.4f + mincer %.4f != lnpv %.4f",
				sc.Key(), placement, mincer, total)
		}
	}

	return res, nil
}

// All computes every scenario in parallel. Each scenario is an independent
// computation over the same immutable snapshot, so the fan-out needs no
// locking. Results come back in Scenarios() order.
func (c *Calculator) All(ctx context.Context) ([]Result, error) {
	scenarios := Scenarios()
	results := make([]Result, len(scenarios))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			res, err := c.LNPV(sc)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", sc.Key(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
