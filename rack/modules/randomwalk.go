package modules

import (
	"math"

	"github.com/cwbudde/algo-rack/dsp/core"
	"github.com/cwbudde/algo-rack/dsp/trigger"
	"github.com/cwbudde/algo-rack/rack"
	"github.com/cwbudde/algo-rack/rack/chain"
)

const (
	// ClockPPQN is the clock resolution the chain runs at.
	ClockPPQN = 24

	minWalkLength     = 1
	maxWalkLength     = 17
	defaultWalkLength = 1
	defaultWalkRate   = 0.5
	maxVariant        = 32.0

	// Per-tick step through the noise field at rate 0 and rate 1.
	minWalkStep = 0.001
	maxWalkStep = 0.25

	walkRange = 5.0
)

// RandomWalkInputs are the RandomWalk input voltages.
type RandomWalkInputs struct {
	Reset float64
}

// RandomWalkOutputs are the RandomWalk output voltages.
type RandomWalkOutputs struct {
	CV float64
}

// RandomWalk walks through a seeded noise field one step per received
// clock tick and outputs the value as a ±5 V CV. The walk loops every
// Length beats, so a chain with the same seed repeats the same phrase.
//
// Length, Rate and Variant are latched only at the start of the loop.
type RandomWalk struct {
	Inputs  RandomWalkInputs
	Outputs RandomWalkOutputs

	length  int
	rate    float64
	variant float64

	latchedLength  int
	latchedStep    float64
	latchedVariant float64

	ticks        int
	resetTrigger trigger.Schmitt

	follower
}

// NewRandomWalk creates a RandomWalk seeded with 0.
func NewRandomWalk(opts ...Option) (*RandomWalk, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	r := &RandomWalk{
		length:       defaultWalkLength,
		rate:         defaultWalkRate,
		resetTrigger: trigger.DefaultSchmitt(),
		follower:     newFollower(ModelRandomWalk, cfg),
	}
	r.latch()

	return r, nil
}

// ChainLink exposes the inbound link.
func (r *RandomWalk) ChainLink() *chain.Link { return r.node.Inbound() }

// SetNeighbors records the neighbors.
func (r *RandomWalk) SetNeighbors(left, right any) { r.node.SetNeighbors(left, right) }

// SetLength sets the loop length in beats, clamped to [1, 17].
func (r *RandomWalk) SetLength(beats int) {
	r.length = int(core.Clamp(float64(beats), minWalkLength, maxWalkLength))
}

// SetRate sets the walk speed in [0, 1]; the step grows exponentially.
func (r *RandomWalk) SetRate(rate float64) {
	if !core.IsFinite(rate) {
		return
	}
	r.rate = core.Clamp(rate, 0, 1)
}

// SetVariant selects a row of the noise field in [0, 32].
func (r *RandomWalk) SetVariant(variant float64) {
	if !core.IsFinite(variant) {
		return
	}
	r.variant = core.Clamp(variant, 0, maxVariant)
}

// Ticks returns the position within the loop in clock ticks.
func (r *RandomWalk) Ticks() int { return r.ticks }

// Seed returns the seed of the noise field.
func (r *RandomWalk) Seed() int { return r.seed() }

// Variant returns the latched variant.
func (r *RandomWalk) Variant() float64 { return r.latchedVariant }

// Process advances RandomWalk by one sample.
func (r *RandomWalk) Process(args rack.ProcessArgs) {
	if r.resetTrigger.Process(r.Inputs.Reset) {
		r.ticks = 0
	}

	clock, resync := r.receive(args.Frame)
	if resync {
		r.ticks = 0
	}

	r.latch()

	if clock {
		r.ticks++
		if r.ticks >= r.latchedLength*ClockPPQN {
			r.ticks = 0
		}
	}

	position := float64(r.ticks) * r.latchedStep
	r.Outputs.CV = core.Rescale(r.field.Eval(r.latchedVariant, position), -1, 1, -walkRange, walkRange)
}

// Reset rewinds the walk. The seed is kept.
func (r *RandomWalk) Reset() {
	r.ticks = 0
	r.resetTrigger.Reset()
	r.latch()
}

func (r *RandomWalk) latch() {
	if r.ticks != 0 {
		return
	}

	r.latchedLength = r.length
	r.latchedStep = minWalkStep * math.Pow(maxWalkStep/minWalkStep, r.rate)
	r.latchedVariant = r.variant
}
