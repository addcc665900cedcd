package params

import (
	"math/rand"
	"sort"
)

// Source is a read-only view over parameter values. The base Registry and
// Overlay views both implement it; the economic core accepts a Source so a
// sweep can hand it a shadowed view without copying the registry.
type Source interface {
	// Get returns the parameter by name, or *UnknownParameterError.
	Get(name string) (Parameter, error)

	// Value is shorthand for Get(name).Value.
	Value(name string) (float64, error)
}

// Registry is the immutable base table of parameters. Build one with New,
// Load, or Defaults; it is never mutated afterwards and is safe for
// concurrent readers.
type Registry struct {
	byName map[string]Parameter
	order  []string // registration order, used as the deterministic tie-break
}

// New builds a registry from the given parameters, preserving their order
// as the registration order. It fails with *ValidationError on any invalid
// parameter or duplicate name.
func New(parameters []Parameter) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Parameter, len(parameters)),
		order:  make([]string, 0, len(parameters)),
	}
	for _, p := range parameters {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[p.Name]; dup {
			return nil, &ValidationError{Name: p.Name, Field: "name", Issue: "duplicate parameter name"}
		}
		r.byName[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	return r, nil
}

// Get returns the parameter by name.
func (r *Registry) Get(name string) (Parameter, error) {
	p, ok := r.byName[name]
	if !ok {
		return Parameter{}, &UnknownParameterError{Name: name}
	}
	return p, nil
}

// Value returns the point value of the named parameter.
func (r *Registry) Value(name string) (float64, error) {
	p, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	return p.Value, nil
}

// Names returns all parameter names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int { return len(r.order) }

// ByTier returns all parameters of the given tier, ordered by name for
// determinism.
func (r *Registry) ByTier(tier int) []Parameter {
	var out []Parameter
	for _, p := range r.byName {
		if p.Tier == tier {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Sample draws one value for the named parameter from its declared
// distribution using the caller-supplied source.
func (r *Registry) Sample(name string, rng *rand.Rand) (float64, error) {
	p, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	return p.Sample(rng), nil
}

// WithOverride returns a view that reports value for name and delegates
// every other lookup to r. The base registry is never mutated.
func (r *Registry) WithOverride(name string, value float64) (*Overlay, error) {
	return r.WithOverrides(map[string]float64{name: value})
}

// WithOverrides returns a view shadowing several parameters at once, as one
// Monte Carlo draw does. Every overridden name must exist in the base.
func (r *Registry) WithOverrides(values map[string]float64) (*Overlay, error) {
	overrides := make(map[string]float64, len(values))
	for name, v := range values {
		if _, err := r.Get(name); err != nil {
			return nil, err
		}
		overrides[name] = v
	}
	return &Overlay{base: r, overrides: overrides}, nil
}

// Overlay is a Source that shadows selected point values over a base
// registry. Bounds, tier, and provenance always come from the base; only
// the point value is replaced. Overlays are immutable and safe for
// concurrent readers.
type Overlay struct {
	base      Source
	overrides map[string]float64
}

// Get returns the base parameter with the point value replaced when
// shadowed.
func (o *Overlay) Get(name string) (Parameter, error) {
	p, err := o.base.Get(name)
	if err != nil {
		return Parameter{}, err
	}
	if v, ok := o.overrides[name]; ok {
		p.Value = v
	}
	return p, nil
}

// Value returns the effective point value of the named parameter.
func (o *Overlay) Value(name string) (float64, error) {
	p, err := o.Get(name)
	if err != nil {
		return 0, err
	}
	return p.Value, nil
}

// WithOverride layers one more shadowed value on top of this view.
// Re-applying the same name/value yields an equivalent view.
func (o *Overlay) WithOverride(name string, value float64) (*Overlay, error) {
	if _, err := o.base.Get(name); err != nil {
		return nil, err
	}
	merged := make(map[string]float64, len(o.overrides)+1)
	for k, v := range o.overrides {
		merged[k] = v
	}
	merged[name] = value
	return &Overlay{base: o.base, overrides: merged}, nil
}
