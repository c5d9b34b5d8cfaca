// Package noise provides seeded, deterministic coherent noise fields.
//
// A Field maps a two-dimensional coordinate to a value in [-1, 1]. Two
// fields built from the same seed return identical values for identical
// coordinates, which lets modules placed in a chain share correlated
// randomness from one propagated seed.
package noise

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/cwbudde/algo-rack/dsp/core"
)

// Field evaluates deterministic noise at a coordinate.
type Field interface {
	// Eval returns the noise value at (x, y) in [-1, 1].
	Eval(x, y float64) float64
}

// Factory builds a Field for a seed.
type Factory func(seed int) Field

// Simplex is an OpenSimplex noise field.
type Simplex struct {
	seed int
	src  opensimplex.Noise
}

// NewSimplex returns an OpenSimplex field for seed.
func NewSimplex(seed int) *Simplex {
	return &Simplex{
		seed: seed,
		src:  opensimplex.New(int64(seed)),
	}
}

// Eval returns the noise value at (x, y), clamped to [-1, 1].
func (s *Simplex) Eval(x, y float64) float64 {
	return core.Clamp(s.src.Eval2(x, y), -1, 1)
}

// Seed returns the seed the field was built from.
func (s *Simplex) Seed() int { return s.seed }

// SimplexFactory builds Simplex fields. It is the default Factory.
func SimplexFactory(seed int) Field {
	return NewSimplex(seed)
}
