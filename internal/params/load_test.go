package params

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// minimalTable renders a CSV table containing every required parameter,
// with one row optionally replaced by override.
func minimalTable(override string) string {
	var b strings.Builder
	b.WriteString("name,value,low,high,unit,source,tier,distribution\n")
	for _, name := range Required() {
		row := fmt.Sprintf("%s,10,5,20,INR,test,3,\n", name)
		if override != "" && strings.HasPrefix(override, name+",") {
			row = override + "\n"
		}
		b.WriteString(row)
	}
	return b.String()
}

func TestLoadFullTable(t *testing.T) {
	reg, err := Load(strings.NewReader(minimalTable("")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reg.Len() != len(Required()) {
		t.Errorf("expected %d parameters, got %d", len(Required()), reg.Len())
	}
	v, err := reg.Value("discount_rate")
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != 10 {
		t.Errorf("expected value 10, got %g", v)
	}
}

func TestLoadParsesDeclaredDistribution(t *testing.T) {
	reg, err := Load(strings.NewReader(minimalTable("discount_rate,10,5,20,rate,test,2,triangular")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p, err := reg.Get("discount_rate")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Distribution != DistTriangular {
		t.Errorf("expected triangular, got %q", p.Distribution)
	}
	if p.Tier != 2 {
		t.Errorf("expected tier 2, got %d", p.Tier)
	}
}

func TestLoadFailsClosed(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{
			name:  "missing required column",
			table: "name,value,low\nx,1,0\n",
		},
		{
			name:  "non-numeric value",
			table: minimalTable("discount_rate,abc,5,20,rate,test,2,"),
		},
		{
			name:  "bounds inverted",
			table: minimalTable("discount_rate,10,15,20,rate,test,2,"),
		},
		{
			name:  "tier out of range",
			table: minimalTable("discount_rate,10,5,20,rate,test,5,"),
		},
		{
			name:  "unknown distribution",
			table: minimalTable("discount_rate,10,5,20,rate,test,2,beta"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.table))
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}
}

func TestLoadRejectsMissingRequiredParameter(t *testing.T) {
	// Drop one required row from the table.
	full := minimalTable("")
	partial := strings.Replace(full, "career_horizon,10,5,20,INR,test,3,\n", "", 1)

	_, err := Load(strings.NewReader(partial))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Name != "career_horizon" {
		t.Errorf("expected missing parameter 'career_horizon', got %q", ve.Name)
	}
}

func TestLoadOptionalColumnsAbsent(t *testing.T) {
	var b strings.Builder
	b.WriteString("name,value,low,high,tier\n")
	for _, name := range Required() {
		b.WriteString(fmt.Sprintf("%s,10,5,20,3\n", name))
	}

	reg, err := Load(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Load without optional columns failed: %v", err)
	}
	p, err := reg.Get("discount_rate")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Unit != "" || p.Source != "" || p.Distribution != "" {
		t.Errorf("expected empty optional fields, got unit=%q source=%q dist=%q", p.Unit, p.Source, p.Distribution)
	}
}
