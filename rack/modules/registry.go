package modules

import "github.com/cwbudde/algo-rack/rack"

// Model names as registered with a rack.Registry.
const (
	ModelPhoenix    = "Phoenix"
	ModelSeed       = "Seed"
	ModelRandomWalk = "RandomWalkLFO"
	ModelTrigger    = "Trigger"
)

// Register adds every module model to reg. opts are passed to each
// constructor.
func Register(reg *rack.Registry, opts ...Option) error {
	factories := []struct {
		name    string
		factory rack.Factory
	}{
		{ModelPhoenix, func() (rack.Module, error) { return NewPhoenix(opts...) }},
		{ModelSeed, func() (rack.Module, error) { return NewSeed(opts...) }},
		{ModelRandomWalk, func() (rack.Module, error) { return NewRandomWalk(opts...) }},
		{ModelTrigger, func() (rack.Module, error) { return NewTrigger(opts...) }},
	}

	for _, f := range factories {
		if err := reg.Register(f.name, f.factory); err != nil {
			return err
		}
	}

	return nil
}

// DefaultRegistry returns a registry with every module model.
func DefaultRegistry() *rack.Registry {
	reg := rack.NewRegistry()
	if err := Register(reg); err != nil {
		panic("modules: " + err.Error())
	}

	return reg
}
