package sensitivity

import (
	"errors"
	"testing"

	"github.com/openimpact/lnpv/internal/params"
)

func TestTwoWayThreePointAxes(t *testing.T) {
	reg := testRegistry(t)

	g, err := TwoWay(reg, "a", "b", 3, sumMetric)
	if err != nil {
		t.Fatalf("TwoWay failed: %v", err)
	}

	if g.XParameter != "a" || g.YParameter != "b" {
		t.Errorf("expected axes a/b, got %s/%s", g.XParameter, g.YParameter)
	}

	// The 3-point axis is {low, point value, high}.
	wantX := []float64{1, 2, 3}
	wantY := []float64{0, 10, 20}
	for i := range wantX {
		if g.XValues[i] != wantX[i] {
			t.Errorf("x value %d: expected %g, got %g", i, wantX[i], g.XValues[i])
		}
		if g.YValues[i] != wantY[i] {
			t.Errorf("y value %d: expected %g, got %g", i, wantY[i], g.YValues[i])
		}
	}

	// sumMetric means cell (i,j) = x + y + 5.
	for i, x := range g.XValues {
		for j, y := range g.YValues {
			approxf(t, "cell value", g.Values[i][j], x+y+5, 1e-12)
		}
	}

	// The center cell is the deterministic baseline.
	approxf(t, "center cell", g.Values[1][1], 17, 1e-12)
}

func TestTwoWayMorePoints(t *testing.T) {
	reg := testRegistry(t)

	g, err := TwoWay(reg, "a", "b", 5, sumMetric)
	if err != nil {
		t.Fatalf("TwoWay failed: %v", err)
	}
	if len(g.XValues) != 5 || len(g.YValues) != 5 {
		t.Fatalf("expected 5x5 grid, got %dx%d", len(g.XValues), len(g.YValues))
	}

	// Even spread over [low, high].
	wantX := []float64{1, 1.5, 2, 2.5, 3}
	for i := range wantX {
		approxf(t, "x value", g.XValues[i], wantX[i], 1e-12)
	}
	if len(g.Values) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(g.Values))
	}
	for i := range g.Values {
		if len(g.Values[i]) != 5 {
			t.Fatalf("row %d: expected 5 cells, got %d", i, len(g.Values[i]))
		}
	}
}

func TestTwoWayClampsBelowMinimum(t *testing.T) {
	reg := testRegistry(t)

	g, err := TwoWay(reg, "a", "b", 1, sumMetric)
	if err != nil {
		t.Fatalf("TwoWay failed: %v", err)
	}
	if len(g.XValues) != MinGridPoints {
		t.Errorf("expected %d points, got %d", MinGridPoints, len(g.XValues))
	}
}

func TestTwoWayUnknownParameter(t *testing.T) {
	reg := testRegistry(t)

	_, err := TwoWay(reg, "nope", "b", 3, sumMetric)
	var unknown *params.UnknownParameterError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownParameterError, got %v", err)
	}
}
