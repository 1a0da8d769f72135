package anim

import "github.com/motionforge/svg2lottie/internal/domain"

// Constructor builds a variant with the given total duration in frames.
type Constructor func(duration int) Variant

// Registry maps animation type names to variant constructors. Register is
// called only during startup; afterwards the registry is read-only and safe
// for unlimited concurrent reads.
type Registry struct {
	names        []string
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a named variant constructor. Re-registering a name replaces
// its constructor without changing the registration order.
func (r *Registry) Register(name string, c Constructor) {
	if _, exists := r.constructors[name]; !exists {
		r.names = append(r.names, name)
	}
	r.constructors[name] = c
}

// Create instantiates the named variant with the given duration. Unknown
// names fail with a domain.UnknownVariantError whose message enumerates
// every registered name.
func (r *Registry) Create(name string, duration int) (Variant, error) {
	c, ok := r.constructors[name]
	if !ok {
		return nil, &domain.UnknownVariantError{Name: name, Known: r.List()}
	}
	return c(duration), nil
}

// List returns the registered names in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// defaultRegistry is populated once at process start.
var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeFadeIn, NewFadeIn)
	r.Register(TypeScaleUp, NewScaleUp)
	r.Register(TypeBounce, NewBounce)
	r.Register(TypeBottomToCenter, NewBottomToCenter)
	r.Register(TypeRotate, NewRotate)
	r.Register(TypeShake, NewShake)
	r.Register(TypeComplex, NewComplex)
	return r
}

// DefaultRegistry returns the process-wide registry holding every built-in
// variant.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
