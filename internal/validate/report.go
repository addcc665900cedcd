// Package validate runs a fixed battery of plausibility checks against
// already-computed engine outputs. It performs no simulation itself, and a
// failing criterion is data in the report, never an error: stakeholders
// must see which checks failed, not just that the run failed.
package validate

// Criterion is a single assertion within a check: an observed value tested
// against an expected bound or relation.
type Criterion struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Observed string `json:"observed"`
	Expected string `json:"expected"`
}

// Check groups related criteria. It passes only when every criterion holds.
type Check struct {
	Name     string      `json:"name"`
	Passed   bool        `json:"passed"`
	Criteria []Criterion `json:"criteria"`
}

// Status renders "pass" or "fail".
func (c Check) Status() string { return status(c.Passed) }

// Report is the full battery outcome. It is always returned in full, even
// when every check fails; the overall status is the conjunction of all
// checks.
type Report struct {
	Checks []Check `json:"checks"`
	Passed bool    `json:"passed"`
}

// Status renders "pass" or "fail".
func (r Report) Status() string { return status(r.Passed) }

func status(passed bool) string {
	if passed {
		return "pass"
	}
	return "fail"
}

// newCheck seals a check from its criteria, deriving the conjunction.
func newCheck(name string, criteria []Criterion) Check {
	c := Check{Name: name, Passed: true, Criteria: criteria}
	for _, cr := range criteria {
		if !cr.Passed {
			c.Passed = false
		}
	}
	return c
}
