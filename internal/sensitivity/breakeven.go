package sensitivity

import "fmt"

// DefaultBCRTargets are the benefit-cost ratios reported by default.
var DefaultBCRTargets = []float64{1, 2, 3}

// BreakEvenRow is the maximum program cost that still clears a target
// benefit-cost ratio for one scenario: max_cost = lnpv / target_bcr.
type BreakEvenRow struct {
	Scenario  string  `json:"scenario"`
	LNPV      float64 `json:"lnpv"`
	TargetBCR float64 `json:"target_bcr"`
	MaxCost   float64 `json:"max_cost"`
}

// BreakEven derives break-even costs for one scenario's LNPV at each target
// ratio. Purely arithmetic; no simulation. A non-positive target ratio is a
// caller error.
func BreakEven(scenario string, lnpv float64, targets []float64) ([]BreakEvenRow, error) {
	if len(targets) == 0 {
		targets = DefaultBCRTargets
	}
	rows := make([]BreakEvenRow, 0, len(targets))
	for _, bcr := range targets {
		if bcr <= 0 {
			return nil, fmt.Errorf("break-even: target BCR must be positive, got %g", bcr)
		}
		rows = append(rows, BreakEvenRow{
			Scenario:  scenario,
			LNPV:      lnpv,
			TargetBCR: bcr,
			MaxCost:   lnpv / bcr,
		})
	}
	return rows, nil
}
