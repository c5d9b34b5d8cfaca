package modules

import (
	"github.com/cwbudde/algo-rack/dsp/core"
	"github.com/cwbudde/algo-rack/dsp/trigger"
	"github.com/cwbudde/algo-rack/rack"
	"github.com/cwbudde/algo-rack/rack/chain"
)

// Divisions lists the Trigger division choices in clock ticks at 24 ppqn,
// indexed by the Division parameter.
var Divisions = [...]uint32{
	48, // 1/2
	32, // 1/2t
	72, // 1/2.
	24, // 1/4
	16, // 1/4t
	36, // 1/4.
	12, // 1/8
	8,  // 1/8t
	18, // 1/8.
	6,  // 1/16
	4,  // 1/16t
	9,  // 1/16.
}

// DivisionLabels names the entries of Divisions.
var DivisionLabels = [...]string{
	"1/2", "1/2t", "1/2.",
	"1/4", "1/4t", "1/4.",
	"1/8", "1/8t", "1/8.",
	"1/16", "1/16t", "1/16.",
}

const maxDensity = 100.0

// LightColor is the state of the Trigger density light.
type LightColor int

const (
	LightOff LightColor = iota
	LightYellow
	LightRed
)

func (c LightColor) String() string {
	switch c {
	case LightYellow:
		return "yellow"
	case LightRed:
		return "red"
	default:
		return "off"
	}
}

// TriggerInputs are the Trigger input voltages.
type TriggerInputs struct {
	Block float64
	Reset float64
}

// TriggerOutputs are the Trigger output voltages.
type TriggerOutputs struct {
	Out float64
}

// Trigger fires pulses on a divided chain clock. On each division step it
// reads the seeded noise field at the current phase and fires if Density
// is at or above the value scaled to [0, 100].
//
// Division and Variant are latched only while the phase is 0.
type Trigger struct {
	Inputs  TriggerInputs
	Outputs TriggerOutputs

	density  float64
	division int
	variant  float64

	latchedVariant float64

	phase        int
	divider      trigger.Divider
	pulse        trigger.Pulse
	resetTrigger trigger.Schmitt
	light        LightColor

	follower
}

// NewTrigger creates a Trigger seeded with 0.
func NewTrigger(opts ...Option) (*Trigger, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	t := &Trigger{
		divider:      trigger.NewDivider(1),
		resetTrigger: trigger.DefaultSchmitt(),
		follower:     newFollower(ModelTrigger, cfg),
	}
	t.latch()

	return t, nil
}

// ChainLink exposes the inbound link.
func (t *Trigger) ChainLink() *chain.Link { return t.node.Inbound() }

// SetNeighbors records the neighbors.
func (t *Trigger) SetNeighbors(left, right any) { t.node.SetNeighbors(left, right) }

// SetDensity sets the firing density in percent, clamped to [0, 100].
func (t *Trigger) SetDensity(percent float64) {
	if !core.IsFinite(percent) {
		return
	}
	t.density = core.Clamp(percent, 0, maxDensity)
}

// SetDivision selects an entry of Divisions, clamped to a valid index.
func (t *Trigger) SetDivision(index int) {
	t.division = int(core.Clamp(float64(index), 0, float64(len(Divisions)-1)))
}

// SetVariant selects a row of the noise field in [0, 32].
func (t *Trigger) SetVariant(variant float64) {
	if !core.IsFinite(variant) {
		return
	}
	t.variant = core.Clamp(variant, 0, maxVariant)
}

// Density returns the density in percent.
func (t *Trigger) Density() float64 { return t.density }

// Division returns the latched division in clock ticks.
func (t *Trigger) Division() uint32 { return t.divider.Division() }

// Variant returns the latched variant.
func (t *Trigger) Variant() float64 { return t.latchedVariant }

// Phase returns the number of clock ticks since the last reset.
func (t *Trigger) Phase() int { return t.phase }

// Seed returns the seed of the noise field.
func (t *Trigger) Seed() int { return t.seed() }

// Light returns the density light color.
func (t *Trigger) Light() LightColor { return t.light }

// Process advances Trigger by one sample.
func (t *Trigger) Process(args rack.ProcessArgs) {
	if t.resetTrigger.Process(t.Inputs.Reset) {
		t.rewind()
	}

	clock, resync := t.receive(args.Frame)
	if resync {
		t.rewind()
	}

	t.latch()

	if clock {
		t.phase++
	}

	fired := clock && t.divider.Process()
	blocked := t.Inputs.Block >= blockThreshold

	level := core.Rescale(t.field.Eval(t.latchedVariant, float64(t.phase)), -1, 1, 0, maxDensity)
	open := t.density >= level

	switch {
	case fired && open && !blocked:
		t.pulse.Trigger(trigger.DefaultPulseWidth)
		t.light = LightYellow
	case fired && blocked:
		t.light = LightRed
	case fired:
		t.light = LightOff
	}

	t.Outputs.Out = gate(t.pulse.Process(args.SampleTime))
}

// Reset rewinds the phase and cancels a running pulse. The seed is kept.
func (t *Trigger) Reset() {
	t.rewind()
	t.resetTrigger.Reset()
	t.light = LightOff
	t.Outputs = TriggerOutputs{}
	t.latch()
}

func (t *Trigger) rewind() {
	t.pulse.Reset()
	t.divider.Reset()
	t.phase = 0
}

func (t *Trigger) latch() {
	if t.phase != 0 {
		return
	}

	t.divider.SetDivision(Divisions[t.division])
	t.latchedVariant = t.variant
}
