package model

import (
	"math"
	"testing"
)

func TestControlTrajectoryEntryWages(t *testing.T) {
	calc := defaultCalc(t)
	sc := Scenario{Intervention: RTE, Region: North, Gender: Male, Location: Urban}

	tr, err := calc.Trajectory(sc, Control)
	if err != nil {
		t.Fatalf("Trajectory failed: %v", err)
	}

	if tr.Group != Control {
		t.Errorf("expected control group, got %s", tr.Group)
	}
	approx(t, "p_formal", tr.PFormal, 0.091, 1e-12)
	if len(tr.Points) != 2*40 {
		t.Fatalf("expected 80 wage points, got %d", len(tr.Points))
	}

	// Entry wages carry the regional premium and nothing else.
	entryFormal := 32800 * 0.95
	entryInformal := 13425 * 0.95
	want := 0.091*entryFormal + (1-0.091)*entryInformal
	approx(t, "expected monthly at entry", tr.ExpectedMonthly(0), want, 1e-6)

	if got := tr.ExpectedMonthly(40); got != 0 {
		t.Errorf("expected 0 for out-of-range year, got %g", got)
	}
}

func TestTreatmentTrajectoryCarriesMincer(t *testing.T) {
	calc := defaultCalc(t)
	sc := Scenario{Intervention: RTE, Region: West, Gender: Female, Location: Rural}

	treat, err := calc.Trajectory(sc, Treatment)
	if err != nil {
		t.Fatalf("treatment Trajectory failed: %v", err)
	}
	control, err := calc.Trajectory(sc, Control)
	if err != nil {
		t.Fatalf("control Trajectory failed: %v", err)
	}

	// West has a neutral regional Mincer multiplier, so the treatment
	// formal wage is the control's scaled by exp(beta * gain * years).
	m := math.Exp(0.058 * 0.137 * 6.8)
	for year := 0; year < 40; year += 13 {
		var treatFormal, controlFormal float64
		for _, p := range treat.Points {
			if p.Year == year && p.Sector == Formal {
				treatFormal = p.Monthly
			}
		}
		for _, p := range control.Points {
			if p.Year == year && p.Sector == Formal {
				controlFormal = p.Monthly
			}
		}
		approx(t, "mincer scaling", treatFormal, m*controlFormal, 1e-6)
	}
}

func TestApprenticeTrajectoryCarriesPremium(t *testing.T) {
	calc := defaultCalc(t)
	sc := Scenario{Intervention: Apprenticeship, Region: East, Gender: Male, Location: Rural}

	treat, err := calc.Trajectory(sc, Treatment)
	if err != nil {
		t.Fatalf("Trajectory failed: %v", err)
	}
	approx(t, "p_formal", treat.PFormal, 0.68, 1e-12)

	// Year-0 formal wage is the regional entry wage plus the full monthly
	// premium; by the half-life only half the premium remains.
	entryFormal := 22880 * 0.85
	var year0, year12 float64
	for _, p := range treat.Points {
		if p.Sector != Formal {
			continue
		}
		switch p.Year {
		case 0:
			year0 = p.Monthly
		case 12:
			year12 = p.Monthly
		}
	}
	approx(t, "year 0 formal", year0, entryFormal+6500, 1e-6)
	wantYear12 := entryFormal*math.Pow(1.015, 12) + 3250
	approx(t, "year 12 formal", year12, wantYear12, 1e-6)
}
