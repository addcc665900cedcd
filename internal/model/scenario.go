// Package model implements the economic core: counterfactual wage
// trajectories per scenario and the discounted lifetime differential (LNPV)
// with its causal decomposition.
package model

import "fmt"

// Intervention identifies which program a scenario evaluates.
type Intervention string

const (
	RTE            Intervention = "RTE"
	Apprenticeship Intervention = "Apprenticeship"
)

// Region is one of the four macro regions with distinct labor markets.
type Region string

const (
	North Region = "North"
	South Region = "South"
	East  Region = "East"
	West  Region = "West"
)

// Gender of the simulated cohort.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Location is the urban/rural split of the simulated cohort.
type Location string

const (
	Urban Location = "urban"
	Rural Location = "rural"
)

// Sector of employment within a wage trajectory.
type Sector string

const (
	Formal   Sector = "formal"
	Informal Sector = "informal"
)

// Group distinguishes the treatment cohort from its counterfactual.
type Group string

const (
	Treatment Group = "treatment"
	Control   Group = "control"
)

// Interventions, Regions, Genders, and Locations enumerate the axis values
// in their canonical order.
func Interventions() []Intervention { return []Intervention{RTE, Apprenticeship} }
func Regions() []Region             { return []Region{North, South, East, West} }
func Genders() []Gender             { return []Gender{Male, Female} }
func Locations() []Location         { return []Location{Urban, Rural} }

// Scenario is one cell of the intervention x region x gender x location
// cross product. Together with a parameter snapshot it fully determines an
// LNPV calculation.
type Scenario struct {
	Intervention Intervention `json:"intervention"`
	Region       Region       `json:"region"`
	Gender       Gender       `json:"gender"`
	Location     Location     `json:"location"`
}

// Key returns the canonical "intervention/region/gender/location" form.
func (s Scenario) Key() string {
	return fmt.Sprintf("%s/%s/%s/%s", s.Intervention, s.Region, s.Gender, s.Location)
}

func (s Scenario) String() string { return s.Key() }

// Validate checks that every axis value is one of the declared constants.
func (s Scenario) Validate() error {
	switch s.Intervention {
	case RTE, Apprenticeship:
	default:
		return fmt.Errorf("invalid intervention %q", s.Intervention)
	}
	switch s.Region {
	case North, South, East, West:
	default:
		return fmt.Errorf("invalid region %q", s.Region)
	}
	switch s.Gender {
	case Male, Female:
	default:
		return fmt.Errorf("invalid gender %q", s.Gender)
	}
	switch s.Location {
	case Urban, Rural:
	default:
		return fmt.Errorf("invalid location %q", s.Location)
	}
	return nil
}

// Scenarios enumerates all 32 scenarios in deterministic order:
// intervention, then region, then gender, then location.
func Scenarios() []Scenario {
	var out []Scenario
	for _, iv := range Interventions() {
		for _, r := range Regions() {
			for _, g := range Genders() {
				for _, l := range Locations() {
					out = append(out, Scenario{Intervention: iv, Region: r, Gender: g, Location: l})
				}
			}
		}
	}
	return out
}

// ScenariosFor enumerates the 16 scenarios of a single intervention.
func ScenariosFor(iv Intervention) []Scenario {
	var out []Scenario
	for _, s := range Scenarios() {
		if s.Intervention == iv {
			out = append(out, s)
		}
	}
	return out
}
