package params

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// csvColumns is the required header of a parameter table.
var csvColumns = []string{"name", "value", "low", "high", "unit", "source", "tier", "distribution"}

// Required lists the parameters the economic core depends on. Load fails
// closed when any of them is absent from the table.
func Required() []string {
	return []string{
		"p_formal_rte",
		"p_formal_hs",
		"p_formal_apprentice",
		"p_formal_no_training",
		"rte_test_score_gain",
		"test_score_to_years",
		"mincer_return",
		"apprentice_premium_annual",
		"apprentice_decay_halflife",
		"apprentice_stipend_monthly",
		"wage_growth_formal",
		"wage_growth_informal",
		"discount_rate",
		"career_horizon",
		"formal_wage_urban_male",
		"formal_wage_urban_female",
		"formal_wage_rural_male",
		"formal_wage_rural_female",
		"informal_wage_urban_male",
		"informal_wage_urban_female",
		"informal_wage_rural_male",
		"informal_wage_rural_female",
	}
}

// Load parses a CSV parameter table. Any row violating the
// low <= value <= high invariant, any malformed field, and any missing
// required parameter aborts the load with *ValidationError — malformed rows
// are never silently skipped.
func Load(r io.Reader) (*Registry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading parameter table header: %w", err)
	}
	col, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var parameters []Parameter
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading parameter table line %d: %w", line, err)
		}
		p, err := parseRow(record, col, line)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, p)
	}

	reg, err := New(parameters)
	if err != nil {
		return nil, err
	}
	for _, name := range Required() {
		if _, ok := reg.byName[name]; !ok {
			return nil, &ValidationError{Name: name, Field: "name", Issue: "required parameter missing from table"}
		}
	}
	return reg, nil
}

// LoadFile loads a CSV parameter table from disk.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening parameter table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func mapHeader(header []string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range csvColumns {
		// unit, source, and distribution are optional columns
		if want == "unit" || want == "source" || want == "distribution" {
			continue
		}
		if _, ok := col[want]; !ok {
			return nil, &ValidationError{Field: want, Issue: fmt.Sprintf("missing column %q", want)}
		}
	}
	return col, nil
}

func parseRow(record []string, col map[string]int, line int) (Parameter, error) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	if name == "" {
		return Parameter{}, &ValidationError{Field: "name", Issue: fmt.Sprintf("line %d: empty name", line)}
	}

	num := func(colName string) (float64, error) {
		raw := field(colName)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, &ValidationError{
				Name:  name,
				Field: colName,
				Issue: fmt.Sprintf("line %d: %q is not a number", line, raw),
			}
		}
		return v, nil
	}

	value, err := num("value")
	if err != nil {
		return Parameter{}, err
	}
	low, err := num("low")
	if err != nil {
		return Parameter{}, err
	}
	high, err := num("high")
	if err != nil {
		return Parameter{}, err
	}

	tierRaw := field("tier")
	tier, err := strconv.Atoi(tierRaw)
	if err != nil {
		return Parameter{}, &ValidationError{
			Name:  name,
			Field: "tier",
			Issue: fmt.Sprintf("line %d: %q is not an integer tier", line, tierRaw),
		}
	}

	p := Parameter{
		Name:         name,
		Value:        value,
		Low:          low,
		High:         high,
		Unit:         field("unit"),
		Tier:         tier,
		Distribution: Distribution(strings.ToLower(field("distribution"))),
		Source:       field("source"),
	}
	if err := p.Validate(); err != nil {
		return Parameter{}, err
	}
	return p, nil
}
