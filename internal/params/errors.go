package params

import "fmt"

// UnknownParameterError reports a lookup or sweep referencing a parameter
// that was never registered.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Name)
}

// ValidationError reports a malformed parameter rejected at load time.
// Loading fails closed: one bad row aborts the whole load.
type ValidationError struct {
	Name  string // parameter name, empty when the row has none
	Field string // offending column: "name", "value", "low", "high", "tier", "distribution"
	Issue string // human-readable description with the offending values
}

func (e *ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid parameter: %s", e.Issue)
	}
	return fmt.Sprintf("invalid parameter %q: %s", e.Name, e.Issue)
}
