package modules

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rack/dsp/core"
	"github.com/cwbudde/algo-rack/dsp/envelope"
	"github.com/cwbudde/algo-rack/dsp/trigger"
	"github.com/cwbudde/algo-rack/rack"
)

const (
	defaultPhoenixFall    = 0.1
	defaultPhoenixRecover = envelope.MinRecoverySpeed
	defaultPhoenixShape   = 1.0

	maxPhoenixRecover = 300.0

	// signalRange is the full-scale voltage of Phoenix's signal path.
	signalRange = 10.0
)

// OutputMode selects how the baseline is applied to the signal.
type OutputMode int

const (
	// OutputOffset lowers the ceiling of the signal range with the baseline.
	OutputOffset OutputMode = iota
	// OutputAttenuate multiplies the signal by the baseline.
	OutputAttenuate
)

// PhoenixInputs are the Phoenix input voltages.
type PhoenixInputs struct {
	Signal  float64
	Trigger float64
	Invert  float64
}

// PhoenixOutputs are the Phoenix output voltages.
type PhoenixOutputs struct {
	Out    float64
	EOC    float64
	Fallen float64
}

// Phoenix drives a signal with a baseline that falls by Fall on every
// trigger and recovers over Recover seconds.
//
// EOC pulses when a recovery completes. Fallen pulses when a trigger pushes
// a resting baseline all the way down.
type Phoenix struct {
	Inputs  PhoenixInputs
	Outputs PhoenixOutputs

	fall       float64
	recover    float64
	outputMode OutputMode

	baseline      *envelope.Baseline
	weakenTrigger trigger.Schmitt
	invertTrigger trigger.Schmitt
	eoc           trigger.Pulse
	fallen        trigger.Pulse

	env     []float64
	scratch []float64

	logger *slog.Logger
}

// NewPhoenix creates a Phoenix with default parameters.
func NewPhoenix(opts ...Option) (*Phoenix, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	p := &Phoenix{
		fall:          defaultPhoenixFall,
		recover:       defaultPhoenixRecover,
		baseline:      envelope.NewBaseline(),
		weakenTrigger: trigger.DefaultSchmitt(),
		invertTrigger: trigger.DefaultSchmitt(),
		logger:        cfg.logger,
	}
	p.baseline.SetLinExpRatio(defaultPhoenixShape)

	return p, nil
}

// SetFall sets the amount removed per trigger, clamped to [0, 1].
func (p *Phoenix) SetFall(fall float64) {
	if !core.IsFinite(fall) {
		return
	}
	p.fall = core.Clamp(fall, 0, 1)
}

// SetRecover sets the recovery time in seconds, clamped to [0.01, 300].
func (p *Phoenix) SetRecover(seconds float64) {
	if !core.IsFinite(seconds) {
		return
	}
	p.recover = core.Clamp(seconds, envelope.MinRecoverySpeed, maxPhoenixRecover)
}

// SetShape sets the recovery curve: 0 linear, 1 fully eased.
func (p *Phoenix) SetShape(ratio float64) {
	p.baseline.SetLinExpRatio(ratio)
}

// SetWeakeningMode selects whether triggers are honored during recovery.
func (p *Phoenix) SetWeakeningMode(mode envelope.WeakeningMode) {
	p.baseline.SetWeakeningMode(mode)
}

// ToggleWeakeningMode flips the weakening policy and returns the new one.
func (p *Phoenix) ToggleWeakeningMode() envelope.WeakeningMode {
	return p.baseline.ToggleWeakeningMode()
}

// SetOutputMode selects offset or attenuation.
func (p *Phoenix) SetOutputMode(mode OutputMode) {
	p.outputMode = mode
}

// Fall returns the amount removed per trigger.
func (p *Phoenix) Fall() float64 { return p.fall }

// Recover returns the recovery time in seconds.
func (p *Phoenix) Recover() float64 { return p.recover }

// OutputMode returns the output mode.
func (p *Phoenix) OutputMode() OutputMode { return p.outputMode }

// Baseline returns the underlying tracker.
func (p *Phoenix) Baseline() *envelope.Baseline { return p.baseline }

// Process advances Phoenix by one sample.
func (p *Phoenix) Process(args rack.ProcessArgs) {
	p.baseline.SetRecoverySpeed(p.recover)

	if p.invertTrigger.Process(p.Inputs.Invert) {
		mode := p.baseline.Invert()
		p.logger.Debug("phoenix inverted", "mode", mode, "frame", args.Frame)
	}

	if p.weakenTrigger.Process(p.Inputs.Trigger) {
		if p.baseline.Weaken(p.fall) {
			p.fallen.Trigger(trigger.DefaultPulseWidth)
		}
	}

	level := p.baseline.Process(args.SampleTime)
	p.Outputs.Out = p.apply(p.Inputs.Signal, level)

	p.advanceGates(args.SampleTime)
}

// ProcessBlock runs Phoenix over a block with no trigger or invert
// activity, writing the processed signal to dst. dst may alias signal.
// Outputs hold the values of the last sample.
func (p *Phoenix) ProcessBlock(dst, signal []float64, sampleTime float64) error {
	if len(dst) != len(signal) {
		return fmt.Errorf("phoenix: block length mismatch: dst %d, signal %d", len(dst), len(signal))
	}
	if len(signal) == 0 {
		return nil
	}

	p.baseline.SetRecoverySpeed(p.recover)

	p.env = core.EnsureLen(p.env, len(signal))
	for i := range p.env {
		p.env[i] = p.baseline.Process(sampleTime)
		p.advanceGates(sampleTime)
	}

	if p.outputMode == OutputAttenuate {
		vecmath.MulBlock(dst, signal, p.env)
	} else {
		// out = env*signal + range*(env-1)
		p.scratch = core.EnsureLen(p.scratch, len(signal))
		for i, e := range p.env {
			p.scratch[i] = e - 1
		}
		vecmath.ScaleBlock(p.scratch, p.scratch, signalRange)
		vecmath.MulBlock(dst, signal, p.env)
		vecmath.AddBlockInPlace(dst, p.scratch)
	}

	p.Outputs.Out = dst[len(dst)-1]

	return nil
}

// Reset returns the tracker, edge detectors and pulses to their initial
// state. Parameters are kept.
func (p *Phoenix) Reset() {
	ratio := p.baseline.LinExpRatio()
	mode := p.baseline.WeakeningMode()

	p.baseline.Reset()
	p.baseline.SetLinExpRatio(ratio)
	p.baseline.SetWeakeningMode(mode)

	p.weakenTrigger.Reset()
	p.invertTrigger.Reset()
	p.eoc.Reset()
	p.fallen.Reset()
	p.Outputs = PhoenixOutputs{}
}

func (p *Phoenix) apply(signal, level float64) float64 {
	if p.outputMode == OutputAttenuate {
		return signal * level
	}

	ceiling := core.Rescale(level, 0, 1, -signalRange, signalRange)

	return core.Rescale(signal, -signalRange, signalRange, -signalRange, ceiling)
}

func (p *Phoenix) advanceGates(sampleTime float64) {
	if p.baseline.State() == envelope.StateRecovered {
		p.eoc.Trigger(trigger.DefaultPulseWidth)
	}

	p.Outputs.EOC = gate(p.eoc.Process(sampleTime))
	p.Outputs.Fallen = gate(p.fallen.Process(sampleTime))
}
