package modules

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cwbudde/algo-rack/dsp/trigger"
	"github.com/cwbudde/algo-rack/rack"
	"github.com/cwbudde/algo-rack/rack/chain"
)

// ButtonState is the position of a three-state Seed button.
type ButtonState int

const (
	ButtonA ButtonState = iota
	ButtonB
	ButtonC
)

// Next returns the state a press moves to: A→B→C→A.
func (b ButtonState) Next() ButtonState {
	return (b + 1) % 3
}

func (b ButtonState) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonC:
		return "C"
	default:
		return "?"
	}
}

func (b ButtonState) valid() bool {
	return b >= ButtonA && b <= ButtonC
}

var errInvalidButtonState = errors.New("invalid seed button state")

// SeedInputs are the Seed input voltages.
type SeedInputs struct {
	// Clock expects 24 pulses per quarter note.
	Clock float64
	Reset float64
}

// Seed is the source of a module chain. Its buttons derive a seed; the
// seed, clock edges and reset edges are sent to the right neighbor.
type Seed struct {
	Inputs SeedInputs

	states  []ButtonState
	pressed []bool
	pushes  []trigger.Boolean

	clockTrigger trigger.Schmitt
	resetTrigger trigger.Schmitt

	seed     int
	announce bool
	node     chain.Node

	logger *slog.Logger
}

// NewSeed creates a Seed with all buttons at A.
func NewSeed(opts ...Option) (*Seed, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	s := &Seed{
		states:       make([]ButtonState, cfg.buttons),
		pressed:      make([]bool, cfg.buttons),
		pushes:       make([]trigger.Boolean, cfg.buttons),
		clockTrigger: trigger.DefaultSchmitt(),
		resetTrigger: trigger.DefaultSchmitt(),
		node:         chain.NewSource(),
		announce:     true,
		logger:       cfg.logger,
	}
	s.updateSeed()

	return s, nil
}

// SetButton sets the momentary state of button i. A press registers on the
// next Process after the button goes from released to pressed.
func (s *Seed) SetButton(i int, pressed bool) {
	if i < 0 || i >= len(s.pressed) {
		return
	}
	s.pressed[i] = pressed
}

// Buttons returns the number of buttons.
func (s *Seed) Buttons() int { return len(s.states) }

// ButtonState returns the state of button i.
func (s *Seed) ButtonState(i int) ButtonState {
	if i < 0 || i >= len(s.states) {
		return ButtonA
	}
	return s.states[i]
}

// Seed returns the current seed.
func (s *Seed) Seed() int { return s.seed }

// SetNeighbors records the neighbors. A new placement re-announces the
// seed to whatever is now on the right.
func (s *Seed) SetNeighbors(left, right any) {
	s.node.SetNeighbors(left, right)
	s.announce = true
}

// Process advances Seed by one sample.
func (s *Seed) Process(args rack.ProcessArgs) {
	msg := chain.Message{
		Clock:       s.clockTrigger.Process(s.Inputs.Clock),
		GlobalReset: s.resetTrigger.Process(s.Inputs.Reset),
	}

	changed := false
	for i := range s.states {
		if s.pushes[i].Process(s.pressed[i]) {
			s.states[i] = s.states[i].Next()
			changed = true
		}
	}

	if changed {
		s.updateSeed()
		s.announce = true
		s.logger.Debug("seed changed", "seed", s.seed, "frame", args.Frame)
	}

	if msg.GlobalReset {
		s.logger.Debug("seed global reset", "frame", args.Frame)
	}

	msg.Seed = s.seed
	msg.SeedChanged = s.announce

	if s.node.Forward(msg) {
		s.announce = false
	}
}

// Reset returns every button to A and re-announces the seed.
func (s *Seed) Reset() {
	for i := range s.states {
		s.states[i] = ButtonA
		s.pushes[i].Reset()
	}

	s.clockTrigger.Reset()
	s.resetTrigger.Reset()
	s.updateSeed()
	s.announce = true
}

type seedState struct {
	Buttons map[string]int `json:"buttons"`
}

// MarshalJSON stores the button states keyed by position.
func (s *Seed) MarshalJSON() ([]byte, error) {
	state := seedState{Buttons: make(map[string]int, len(s.states))}
	for i, b := range s.states {
		state.Buttons[strconv.Itoa(i)] = int(b)
	}

	return json.Marshal(state)
}

// UnmarshalJSON restores button states. Missing positions default to A;
// positions beyond the button count are ignored.
func (s *Seed) UnmarshalJSON(data []byte) error {
	var state seedState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("seed: decode state: %w", err)
	}

	restored := make([]ButtonState, len(s.states))
	for key, v := range state.Buttons {
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 {
			return fmt.Errorf("seed: invalid button key %q", key)
		}
		if i >= len(restored) {
			continue
		}

		b := ButtonState(v)
		if !b.valid() {
			return fmt.Errorf("%w: button %d = %d", errInvalidButtonState, i, v)
		}
		restored[i] = b
	}

	copy(s.states, restored)
	s.updateSeed()
	s.announce = true

	return nil
}

func (s *Seed) updateSeed() {
	values := make([]int, len(s.states))
	for i, b := range s.states {
		values[i] = int(b)
	}

	s.seed = chain.Seed(values)
}
