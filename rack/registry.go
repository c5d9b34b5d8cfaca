package rack

import (
	"errors"
	"fmt"
	"sort"
)

// Factory builds one Module instance.
type Factory func() (Module, error)

// Registry maps model names to their factories.
type Registry struct {
	factories map[string]Factory
}

var (
	// ErrUnknownModel is returned when a model name has no factory.
	ErrUnknownModel = errors.New("unknown model")

	errDuplicateModel = errors.New("duplicate model")
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given model name.
func (r *Registry) Register(model string, factory Factory) error {
	if model == "" {
		return errors.New("empty model name")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[model]; exists {
		return fmt.Errorf("%w: %s", errDuplicateModel, model)
	}

	r.factories[model] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(model string, factory Factory) {
	err := r.Register(model, factory)
	if err != nil {
		panic("rack registry: " + err.Error())
	}
}

// Lookup returns the factory for the given model, or nil.
func (r *Registry) Lookup(model string) Factory {
	return r.factories[model]
}

// New builds a module of the given model.
func (r *Registry) New(model string) (Module, error) {
	factory := r.Lookup(model)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}

	m, err := factory()
	if err != nil {
		return nil, fmt.Errorf("rack: build %q: %w", model, err)
	}

	return m, nil
}

// Models returns the registered model names in sorted order.
func (r *Registry) Models() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
