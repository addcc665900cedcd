package model

import "fmt"

// DomainError reports a mathematically invalid model configuration, such as
// a non-positive career horizon or a discount rate at or below -100%.
type DomainError struct {
	Field  string  // offending parameter, e.g. "career_horizon"
	Value  float64 // offending value
	Reason string  // why the value inverts or degenerates the model
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid model configuration: %s = %g (%s)", e.Field, e.Value, e.Reason)
}
