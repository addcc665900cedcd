// Package sensitivity quantifies how the LNPV estimate responds to its
// uncertain inputs: one-way tornado sweeps, two-way interaction grids,
// Monte Carlo resampling, and break-even cost ratios.
//
// Every analysis is expressed over a Metric — a pure function from a
// parameter snapshot to a single figure — so sweeps and simulations stay
// decoupled from which scenarios they aggregate.
package sensitivity

import (
	"errors"

	"github.com/openimpact/lnpv/internal/model"
	"github.com/openimpact/lnpv/internal/params"
)

// Metric reduces one parameter snapshot to a single figure of merit,
// typically an LNPV aggregate.
type Metric func(src params.Source) (float64, error)

// ScenarioLNPV is the metric returning one scenario's LNPV.
func ScenarioLNPV(sc model.Scenario, cfg model.Config) Metric {
	return func(src params.Source) (float64, error) {
		res, err := model.NewCalculator(src, cfg).LNPV(sc)
		if err != nil {
			return 0, err
		}
		return res.LNPV, nil
	}
}

// AverageLNPV is the metric averaging LNPV over a scenario set, e.g. the 16
// scenarios of one intervention. An empty set is an error, not a NaN.
func AverageLNPV(scenarios []model.Scenario, cfg model.Config) Metric {
	return func(src params.Source) (float64, error) {
		if len(scenarios) == 0 {
			return 0, errors.New("average lnpv: empty scenario set")
		}
		calc := model.NewCalculator(src, cfg)
		var sum float64
		for _, sc := range scenarios {
			res, err := calc.LNPV(sc)
			if err != nil {
				return 0, err
			}
			sum += res.LNPV
		}
		return sum / float64(len(scenarios)), nil
	}
}
