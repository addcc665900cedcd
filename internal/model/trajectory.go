package model

import "github.com/openimpact/lnpv/internal/params"

// WagePoint is one (year, sector, monthly wage) observation within a
// trajectory.
type WagePoint struct {
	Year    int     `json:"year"`
	Sector  Sector  `json:"sector"`
	Monthly float64 `json:"monthly"`
}

// Trajectory is the simulated wage path for one group under one scenario:
// per-year formal and informal monthly wages plus the group's formal-entry
// probability. Trajectories are produced fresh per calculation and never
// persisted.
type Trajectory struct {
	Scenario Scenario    `json:"scenario"`
	Group    Group       `json:"group"`
	PFormal  float64     `json:"p_formal"`
	Points   []WagePoint `json:"points"`
}

// ExpectedMonthly returns the sector-probability-weighted monthly wage at
// the given working year, or 0 when the year is out of range.
func (tr Trajectory) ExpectedMonthly(year int) float64 {
	var formal, informal float64
	found := false
	for _, p := range tr.Points {
		if p.Year != year {
			continue
		}
		found = true
		switch p.Sector {
		case Formal:
			formal = p.Monthly
		case Informal:
			informal = p.Monthly
		}
	}
	if !found {
		return 0
	}
	return tr.PFormal*formal + (1-tr.PFormal)*informal
}

// Trajectory simulates the working-career wage path for one group. The
// treatment path carries the Mincer multiplier (RTE) or the decaying
// placement premium (Apprenticeship); the control path carries neither.
func (c *Calculator) Trajectory(sc Scenario, group Group) (Trajectory, error) {
	if err := sc.Validate(); err != nil {
		return Trajectory{}, err
	}
	in, err := c.loadInputs(sc)
	if err != nil {
		return Trajectory{}, err
	}

	tr := Trajectory{Scenario: sc, Group: group}
	m := 1.0
	premium0 := 0.0
	if group == Treatment {
		tr.PFormal = in.pTreat
		m = in.mincer
		premium0 = in.premium0
	} else {
		tr.PFormal = in.pControl
	}

	for t := 0; t < in.horizon; t++ {
		formal := m*c.grow(in.entryFormal, in.gFormal, t) +
			DecayedPremium(premium0, in.halflife, float64(t))
		informal := m * c.grow(in.entryInformal, in.gInformal, t)
		tr.Points = append(tr.Points,
			WagePoint{Year: t, Sector: Formal, Monthly: formal},
			WagePoint{Year: t, Sector: Informal, Monthly: informal},
		)
	}
	return tr, nil
}

// PremiumCurve evaluates the apprenticeship premium over the career horizon
// of the given snapshot: one monthly premium value per working year. The
// validator consumes this as a computed output rather than re-deriving the
// decay itself.
func PremiumCurve(src params.Source) ([]float64, error) {
	horizonF, err := src.Value("career_horizon")
	if err != nil {
		return nil, err
	}
	horizon := int(horizonF)
	if horizon <= 0 {
		return nil, &DomainError{Field: "career_horizon", Value: horizonF, Reason: "career horizon must be positive"}
	}
	annual, err := src.Value("apprentice_premium_annual")
	if err != nil {
		return nil, err
	}
	halflife, err := src.Value("apprentice_decay_halflife")
	if err != nil {
		return nil, err
	}

	curve := make([]float64, horizon)
	for t := range curve {
		curve[t] = DecayedPremium(annual/12, halflife, float64(t))
	}
	return curve, nil
}
