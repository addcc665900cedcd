package sensitivity

import "testing"

func TestBreakEvenDefaults(t *testing.T) {
	rows, err := BreakEven("RTE/South/female/urban", 1400000, nil)
	if err != nil {
		t.Fatalf("BreakEven failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	wantCosts := []float64{1400000, 700000, 1400000.0 / 3}
	for i, row := range rows {
		if row.Scenario != "RTE/South/female/urban" {
			t.Errorf("row %d: unexpected scenario %s", i, row.Scenario)
		}
		approxf(t, "target bcr", row.TargetBCR, DefaultBCRTargets[i], 0)
		approxf(t, "max cost", row.MaxCost, wantCosts[i], 1e-9)
		approxf(t, "lnpv", row.LNPV, 1400000, 0)
		// The identity max_cost * bcr = lnpv inverts exactly.
		approxf(t, "identity", row.MaxCost*row.TargetBCR, row.LNPV, 1e-6)
	}
}

func TestBreakEvenCustomTargets(t *testing.T) {
	rows, err := BreakEven("s", 900000, []float64{1.5, 4})
	if err != nil {
		t.Fatalf("BreakEven failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	approxf(t, "bcr 1.5", rows[0].MaxCost, 600000, 1e-9)
	approxf(t, "bcr 4", rows[1].MaxCost, 225000, 1e-9)
}

func TestBreakEvenRejectsNonPositiveTargets(t *testing.T) {
	if _, err := BreakEven("s", 100, []float64{0}); err == nil {
		t.Error("expected error for zero target")
	}
	if _, err := BreakEven("s", 100, []float64{2, -1}); err == nil {
		t.Error("expected error for negative target")
	}
}

func TestBreakEvenNegativeLNPV(t *testing.T) {
	// A negative LNPV yields negative max costs; the arithmetic still holds.
	rows, err := BreakEven("s", -300000, []float64{3})
	if err != nil {
		t.Fatalf("BreakEven failed: %v", err)
	}
	approxf(t, "max cost", rows[0].MaxCost, -100000, 1e-9)
}
