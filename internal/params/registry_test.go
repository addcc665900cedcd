package params

import (
	"errors"
	"math/rand"
	"testing"
)

func testParameters() []Parameter {
	return []Parameter{
		{Name: "p_formal_rte", Value: 0.30, Low: 0.20, High: 0.50, Tier: 1},
		{Name: "discount_rate", Value: 0.05, Low: 0.03, High: 0.08, Tier: 2},
		{Name: "career_horizon", Value: 40, Low: 35, High: 45, Tier: 3},
		{Name: "mincer_return", Value: 0.058, Low: 0.05, High: 0.09, Tier: 2},
	}
}

func TestNewPreservesRegistrationOrder(t *testing.T) {
	reg, err := New(testParameters())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := []string{"p_formal_rte", "discount_rate", "career_horizon", "mincer_return"}
	got := reg.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if reg.Len() != 4 {
		t.Errorf("expected Len 4, got %d", reg.Len())
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	ps := testParameters()
	ps = append(ps, Parameter{Name: "discount_rate", Value: 0.04, Low: 0.03, High: 0.08, Tier: 2})

	_, err := New(ps)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Name != "discount_rate" {
		t.Errorf("expected duplicate name 'discount_rate', got %q", ve.Name)
	}
}

func TestGetUnknownParameter(t *testing.T) {
	reg, err := New(testParameters())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = reg.Get("no_such_parameter")
	var unknown *UnknownParameterError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownParameterError, got %v", err)
	}
	if unknown.Name != "no_such_parameter" {
		t.Errorf("expected name 'no_such_parameter', got %q", unknown.Name)
	}
}

func TestByTierSortedByName(t *testing.T) {
	reg, err := New(testParameters())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tier2 := reg.ByTier(2)
	if len(tier2) != 2 {
		t.Fatalf("expected 2 tier-2 parameters, got %d", len(tier2))
	}
	if tier2[0].Name != "discount_rate" || tier2[1].Name != "mincer_return" {
		t.Errorf("expected name-sorted [discount_rate mincer_return], got [%s %s]",
			tier2[0].Name, tier2[1].Name)
	}

	if got := reg.ByTier(9); len(got) != 0 {
		t.Errorf("expected no tier-9 parameters, got %d", len(got))
	}
}

func TestOverlayShadowsWithoutMutatingBase(t *testing.T) {
	reg, err := New(testParameters())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	view, err := reg.WithOverride("discount_rate", 0.08)
	if err != nil {
		t.Fatalf("WithOverride failed: %v", err)
	}

	v, err := view.Value("discount_rate")
	if err != nil {
		t.Fatalf("overlay Value failed: %v", err)
	}
	if v != 0.08 {
		t.Errorf("expected overlay value 0.08, got %g", v)
	}

	base, err := reg.Value("discount_rate")
	if err != nil {
		t.Fatalf("base Value failed: %v", err)
	}
	if base != 0.05 {
		t.Errorf("expected base value unchanged at 0.05, got %g", base)
	}

	// Non-overridden names pass through.
	h, err := view.Value("career_horizon")
	if err != nil {
		t.Fatalf("pass-through Value failed: %v", err)
	}
	if h != 40 {
		t.Errorf("expected pass-through value 40, got %g", h)
	}
}

func TestOverlayKeepsBoundsAndTier(t *testing.T) {
	reg, err := New(testParameters())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	view, err := reg.WithOverride("discount_rate", 0.08)
	if err != nil {
		t.Fatalf("WithOverride failed: %v", err)
	}

	p, err := view.Get("discount_rate")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Low != 0.03 || p.High != 0.08 || p.Tier != 2 {
		t.Errorf("expected bounds and tier from base, got low=%g high=%g tier=%d", p.Low, p.High, p.Tier)
	}
}

func TestOverlayChaining(t *testing.T) {
	reg, err := New(testParameters())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	first, err := reg.WithOverride("discount_rate", 0.03)
	if err != nil {
		t.Fatalf("WithOverride failed: %v", err)
	}
	second, err := first.WithOverride("p_formal_rte", 0.50)
	if err != nil {
		t.Fatalf("chained WithOverride failed: %v", err)
	}

	d, _ := second.Value("discount_rate")
	p, _ := second.Value("p_formal_rte")
	if d != 0.03 || p != 0.50 {
		t.Errorf("expected both overrides visible, got discount=%g p_formal=%g", d, p)
	}

	// The first view is unaffected by the second layer.
	if v, _ := first.Value("p_formal_rte"); v != 0.30 {
		t.Errorf("expected first view untouched at 0.30, got %g", v)
	}

	// Re-applying the same override yields the same effective value.
	again, err := second.WithOverride("discount_rate", 0.03)
	if err != nil {
		t.Fatalf("idempotent WithOverride failed: %v", err)
	}
	if v, _ := again.Value("discount_rate"); v != 0.03 {
		t.Errorf("expected idempotent override 0.03, got %g", v)
	}
}

func TestOverrideUnknownName(t *testing.T) {
	reg, err := New(testParameters())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = reg.WithOverride("no_such_parameter", 1)
	var unknown *UnknownParameterError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownParameterError, got %v", err)
	}

	_, err = reg.WithOverrides(map[string]float64{"discount_rate": 0.04, "bogus": 1})
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownParameterError from batch, got %v", err)
	}
}

func TestRegistrySampleUsesDeclaredBounds(t *testing.T) {
	reg, err := New(testParameters())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		v, err := reg.Sample("p_formal_rte", rng)
		if err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
		if v < 0.20 || v > 0.50 {
			t.Fatalf("draw %d out of bounds: %g", i, v)
		}
	}

	if _, err := reg.Sample("bogus", rng); err == nil {
		t.Error("expected error sampling unknown parameter")
	}
}
