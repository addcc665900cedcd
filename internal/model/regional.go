package model

// RegionalAdjustments hold the region-specific multipliers layered over the
// national parameter table. Defaults follow the documented regional spread
// with South > West > North > East on every axis.
type RegionalAdjustments struct {
	// WagePremium multiplies both entry wages.
	WagePremium map[Region]float64

	// PFormalHS is the regional formal-entry rate for higher-secondary
	// graduates. Treatment-side formal entry scales by the ratio of the
	// regional rate to the national mean.
	PFormalHS map[Region]float64

	// MincerMultiplier scales the national Mincer return.
	MincerMultiplier map[Region]float64
}

// DefaultRegionalAdjustments returns the documented regional spread.
func DefaultRegionalAdjustments() RegionalAdjustments {
	return RegionalAdjustments{
		WagePremium: map[Region]float64{
			North: 0.95,
			South: 1.10,
			East:  0.85,
			West:  1.05,
		},
		PFormalHS: map[Region]float64{
			North: 0.15,
			South: 0.25,
			East:  0.12,
			West:  0.20,
		},
		MincerMultiplier: map[Region]float64{
			North: 0.914,
			South: 1.069,
			East:  0.879,
			West:  1.000,
		},
	}
}

// TreatmentEntryMultiplier is the regional scaling applied to treatment-side
// formal-entry probabilities: the regional higher-secondary formal rate
// relative to the national mean.
// The mean accumulates in canonical region order, never map order, so
// repeated calls are bit-identical.
func (ra RegionalAdjustments) TreatmentEntryMultiplier(region Region) float64 {
	var sum float64
	var n int
	for _, r := range Regions() {
		if v, ok := ra.PFormalHS[r]; ok {
			sum += v
			n++
		}
	}
	if n == 0 || sum == 0 {
		return 1
	}
	mean := sum / float64(n)
	return ra.PFormalHS[region] / mean
}

// wagePremium returns the regional wage multiplier, defaulting to 1 for an
// unknown region.
func (ra RegionalAdjustments) wagePremium(region Region) float64 {
	if v, ok := ra.WagePremium[region]; ok {
		return v
	}
	return 1
}

// mincerMultiplier returns the regional Mincer scaling, defaulting to 1.
func (ra RegionalAdjustments) mincerMultiplier(region Region) float64 {
	if v, ok := ra.MincerMultiplier[region]; ok {
		return v
	}
	return 1
}
