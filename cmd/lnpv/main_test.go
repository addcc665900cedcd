package main

import (
	"testing"

	"github.com/openimpact/lnpv/internal/model"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}
}

func TestNewBaselineCmd(t *testing.T) {
	cmd := newBaselineCmd()
	if cmd.Use != "baseline" {
		t.Errorf("Use = %q, want %q", cmd.Use, "baseline")
	}
	if cmd.Flags().Lookup("csv") == nil {
		t.Error("missing --csv flag")
	}
}

func TestNewTornadoCmd(t *testing.T) {
	cmd := newTornadoCmd()
	if cmd.Use != "tornado" {
		t.Errorf("Use = %q, want %q", cmd.Use, "tornado")
	}

	for _, flag := range []string{"intervention", "scenario", "top", "csv"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing --%s flag", flag)
		}
	}
}

func TestNewTwoWayCmd(t *testing.T) {
	cmd := newTwoWayCmd()
	for _, flag := range []string{"points", "intervention", "scenario", "csv"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing --%s flag", flag)
		}
	}
}

func TestNewMonteCarloCmd(t *testing.T) {
	cmd := newMonteCarloCmd()
	if cmd.Use != "montecarlo" {
		t.Errorf("Use = %q, want %q", cmd.Use, "montecarlo")
	}

	for _, flag := range []string{"iterations", "seed", "workers", "scenario", "csv"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing --%s flag", flag)
		}
	}
}

func TestNewBreakEvenCmd(t *testing.T) {
	cmd := newBreakEvenCmd()
	for _, flag := range []string{"bcr", "csv"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing --%s flag", flag)
		}
	}
}

func TestNewValidateCmd(t *testing.T) {
	cmd := newValidateCmd()
	if cmd.Use != "validate" {
		t.Errorf("Use = %q, want %q", cmd.Use, "validate")
	}
}

func TestNewParamsCmd(t *testing.T) {
	cmd := newParamsCmd()
	for _, flag := range []string{"tier", "export"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing --%s flag", flag)
		}
	}
}

func TestParseIntervention(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Intervention
		wantErr bool
	}{
		{"rte", model.RTE, false},
		{"RTE", model.RTE, false},
		{"apprenticeship", model.Apprenticeship, false},
		{"Apprenticeship", model.Apprenticeship, false},
		{"apprentice", model.Apprenticeship, false},
		{"voucher", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseIntervention(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseIntervention(%q): expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseIntervention(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseIntervention(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseScenario(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    model.Scenario
		wantErr bool
	}{
		{
			"canonical key", "RTE/South/female/urban",
			model.Scenario{Intervention: model.RTE, Region: model.South, Gender: model.Female, Location: model.Urban},
			false,
		},
		{
			"lowercase everything", "rte/south/female/urban",
			model.Scenario{Intervention: model.RTE, Region: model.South, Gender: model.Female, Location: model.Urban},
			false,
		},
		{
			"apprentice short form", "apprentice/North/MALE/Rural",
			model.Scenario{Intervention: model.Apprenticeship, Region: model.North, Gender: model.Male, Location: model.Rural},
			false,
		},
		{"too few parts", "RTE/South/female", model.Scenario{}, true},
		{"too many parts", "RTE/South/female/urban/extra", model.Scenario{}, true},
		{"bad intervention", "voucher/South/female/urban", model.Scenario{}, true},
		{"bad region", "RTE/Central/female/urban", model.Scenario{}, true},
		{"bad gender", "RTE/South/other/urban", model.Scenario{}, true},
		{"bad location", "RTE/South/female/suburban", model.Scenario{}, true},
		{"empty", "", model.Scenario{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScenario(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseScenario(%q): expected error", tt.key)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseScenario(%q) failed: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("parseScenario(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"south", "South"},
		{"SOUTH", "South"},
		{"South", "South"},
		{"", ""},
		{"e", "E"},
	}
	for _, tt := range tests {
		if got := title(tt.input); got != tt.want {
			t.Errorf("title(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLakh(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{1950000, "₹19.50L"},
		{100000, "₹1.00L"},
		{0, "₹0.00L"},
		{-250000, "₹-2.50L"},
	}
	for _, tt := range tests {
		if got := lakh(tt.input); got != tt.want {
			t.Errorf("lakh(%g) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
