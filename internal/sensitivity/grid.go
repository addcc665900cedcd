package sensitivity

import (
	"fmt"

	"github.com/openimpact/lnpv/internal/params"
)

// MinGridPoints is the smallest two-way grid per axis: {low, baseline, high}.
const MinGridPoints = 3

// Grid is the metric evaluated over the Cartesian product of two
// parameters' value ranges, for heatmap-style inspection of interactions.
// Values[i][j] corresponds to (XValues[i], YValues[j]).
type Grid struct {
	XParameter string      `json:"x_parameter"`
	YParameter string      `json:"y_parameter"`
	XValues    []float64   `json:"x_values"`
	YValues    []float64   `json:"y_values"`
	Values     [][]float64 `json:"values"`
}

// TwoWay computes the interaction grid for a pair of parameters. With the
// minimum 3 points each axis is {low, baseline, high}; more points spread
// evenly over [low, high]. An unknown parameter fails the sweep with
// *params.UnknownParameterError.
func TwoWay(reg *params.Registry, xName, yName string, points int, metric Metric) (Grid, error) {
	if points < MinGridPoints {
		points = MinGridPoints
	}

	px, err := reg.Get(xName)
	if err != nil {
		return Grid{}, err
	}
	py, err := reg.Get(yName)
	if err != nil {
		return Grid{}, err
	}

	g := Grid{
		XParameter: xName,
		YParameter: yName,
		XValues:    axisValues(px, points),
		YValues:    axisValues(py, points),
	}

	g.Values = make([][]float64, len(g.XValues))
	for i, xv := range g.XValues {
		g.Values[i] = make([]float64, len(g.YValues))
		xView, err := reg.WithOverride(xName, xv)
		if err != nil {
			return Grid{}, err
		}
		for j, yv := range g.YValues {
			view, err := xView.WithOverride(yName, yv)
			if err != nil {
				return Grid{}, err
			}
			v, err := metric(view)
			if err != nil {
				return Grid{}, fmt.Errorf("grid point (%s=%g, %s=%g): %w", xName, xv, yName, yv, err)
			}
			g.Values[i][j] = v
		}
	}
	return g, nil
}

// axisValues spreads points over the sensitivity range. The 3-point axis is
// {low, point value, high} so the baseline always appears in the grid.
func axisValues(p params.Parameter, points int) []float64 {
	if points == MinGridPoints {
		return []float64{p.Low, p.Value, p.High}
	}
	out := make([]float64, points)
	step := (p.High - p.Low) / float64(points-1)
	for i := range out {
		out[i] = p.Low + float64(i)*step
	}
	return out
}
