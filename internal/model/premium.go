package model

import "math"

// DecayedPremium returns the apprenticeship wage premium after year working
// years: initial * exp(-ln2 * year / halflife). At year == halflife the
// premium has fallen to exactly half its initial value. A non-positive
// half-life means no decay.
func DecayedPremium(initial, halflife, year float64) float64 {
	if initial == 0 || year <= 0 {
		return initial
	}
	if halflife <= 0 {
		return initial
	}
	lambda := math.Ln2 / halflife
	return initial * math.Exp(-lambda*year)
}
