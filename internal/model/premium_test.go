package model

import (
	"math"
	"testing"

	"github.com/openimpact/lnpv/internal/params"
)

func TestDecayedPremiumHalflife(t *testing.T) {
	initial := 6500.0
	halflife := 12.0

	if got := DecayedPremium(initial, halflife, 0); got != initial {
		t.Errorf("year 0: expected %g, got %g", initial, got)
	}
	if got := DecayedPremium(initial, halflife, halflife); math.Abs(got-initial/2) > 1e-9 {
		t.Errorf("at half-life: expected %g, got %g", initial/2, got)
	}
	if got := DecayedPremium(initial, halflife, 2*halflife); math.Abs(got-initial/4) > 1e-9 {
		t.Errorf("at two half-lives: expected %g, got %g", initial/4, got)
	}
}

func TestDecayedPremiumMonotone(t *testing.T) {
	prev := math.Inf(1)
	for year := 0; year <= 40; year++ {
		p := DecayedPremium(6500, 12, float64(year))
		if p <= 0 {
			t.Fatalf("year %d: premium %g not positive", year, p)
		}
		if p > prev {
			t.Fatalf("year %d: premium %g increased from %g", year, p, prev)
		}
		prev = p
	}
}

func TestDecayedPremiumEdgeCases(t *testing.T) {
	if got := DecayedPremium(0, 12, 5); got != 0 {
		t.Errorf("zero initial: expected 0, got %g", got)
	}
	// A non-positive half-life means no decay, not a division blow-up.
	if got := DecayedPremium(6500, 0, 5); got != 6500 {
		t.Errorf("zero half-life: expected 6500, got %g", got)
	}
	if got := DecayedPremium(6500, 12, -3); got != 6500 {
		t.Errorf("negative year: expected 6500, got %g", got)
	}
}

func TestPremiumCurve(t *testing.T) {
	reg := params.Defaults()

	curve, err := PremiumCurve(reg)
	if err != nil {
		t.Fatalf("PremiumCurve failed: %v", err)
	}
	if len(curve) != 40 {
		t.Fatalf("expected 40 years, got %d", len(curve))
	}
	if math.Abs(curve[0]-6500) > 1e-9 {
		t.Errorf("expected entry premium 6500 (78000/12), got %g", curve[0])
	}
	// Default half-life is 12 years, so year 12 sits at exactly half.
	if ratio := curve[12] / curve[0]; math.Abs(ratio-0.5) > 1e-9 {
		t.Errorf("expected ratio 0.5 at half-life, got %g", ratio)
	}
	for i := 1; i < len(curve); i++ {
		if curve[i] > curve[i-1] {
			t.Fatalf("curve not monotone at year %d", i)
		}
	}
}

func TestPremiumCurveBadHorizon(t *testing.T) {
	view, err := params.Defaults().WithOverride("career_horizon", 0)
	if err != nil {
		t.Fatalf("WithOverride failed: %v", err)
	}
	if _, err := PremiumCurve(view); err == nil {
		t.Error("expected error for non-positive horizon")
	}
}
