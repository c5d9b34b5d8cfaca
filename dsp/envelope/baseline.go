package envelope

import (
	"math"

	"github.com/cwbudde/algo-rack/dsp/core"
)

// MinRecoverySpeed is the shortest allowed recovery ramp in seconds.
const MinRecoverySpeed = 0.01

const defaultLinExpRatio = 1.0

// State labels the tracker after the most recent Process call.
type State int

const (
	// StateIdle means the tracker is at rest and was at rest before the tick.
	StateIdle State = iota
	// StateRecovering means a ramp towards the target is in progress.
	StateRecovering
	// StateRecovered means the ramp completed on this tick.
	StateRecovered
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecovering:
		return "recovering"
	case StateRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// Mode selects the polarity of the tracker.
type Mode int

const (
	// ModeNormal rests at 1 and is weakened towards 0.
	ModeNormal Mode = iota
	// ModeInverted rests at 0 and is weakened towards 1.
	ModeInverted
)

func (m Mode) String() string {
	if m == ModeInverted {
		return "inverted"
	}

	return "normal"
}

// WeakeningMode decides whether Weaken is honored during a ramp.
type WeakeningMode int

const (
	// WeakenAlways honors every Weaken call.
	WeakenAlways WeakeningMode = iota
	// WeakenUntilRecovered ignores Weaken while a ramp is in progress.
	WeakenUntilRecovered
)

func (w WeakeningMode) String() string {
	if w == WeakenAlways {
		return "always"
	}

	return "until-recovered"
}

// Baseline tracks a value in [0, 1] that falls on Weaken and recovers
// towards its target over RecoverySpeed seconds.
//
// State transitions compare current and target with exact equality. Ramp
// completion snaps current onto target so the comparison is reliable.
//
// Baseline is not safe for concurrent use.
type Baseline struct {
	current    float64
	target     float64
	startValue float64
	progress   float64

	recoverySpeed float64
	linExpRatio   float64

	state         State
	mode          Mode
	weakeningMode WeakeningMode
}

// NewBaseline returns a tracker resting at 1 in normal mode.
func NewBaseline() *Baseline {
	b := &Baseline{}
	b.Reset()

	return b
}

// Reset restores the construction state.
func (b *Baseline) Reset() {
	*b = Baseline{
		current:       1,
		target:        1,
		startValue:    1,
		recoverySpeed: MinRecoverySpeed,
		linExpRatio:   defaultLinExpRatio,
		state:         StateIdle,
		mode:          ModeNormal,
		weakeningMode: WeakenUntilRecovered,
	}
}

// Process advances the recovery ramp by delta seconds and returns the
// updated value. At rest it only relabels the state as idle.
func (b *Baseline) Process(delta float64) float64 {
	if b.current == b.target {
		b.state = StateIdle
		return b.current
	}

	b.progress += delta
	p := core.Clamp(b.progress/b.recoverySpeed, 0, 1)
	shaped := Shape(p, b.linExpRatio)

	b.current = core.Clamp(core.Crossfade(b.startValue, b.target, shaped), 0, 1)

	if p >= 1 || shaped >= 1 {
		b.current = b.target
		b.progress = 0
		b.startValue = b.current
	}

	if b.current == b.target {
		b.state = StateRecovered
	} else {
		b.state = StateRecovering
	}

	return b.current
}

// Weaken pushes the value away from its target by strength and starts a
// fresh ramp from there. It reports whether the tracker, not already
// recovering, has been pushed all the way to its weakest extreme.
//
// In WeakenUntilRecovered mode the call is ignored while recovering.
func (b *Baseline) Weaken(strength float64) bool {
	wasRecovering := b.state == StateRecovering
	if b.weakeningMode == WeakenUntilRecovered && wasRecovering {
		return false
	}

	strength = core.Clamp(strength, 0, 1)
	if math.IsNaN(strength) {
		strength = 0
	}

	if b.mode == ModeNormal {
		b.current -= strength
	} else {
		b.current += strength
	}

	b.current = core.Clamp(b.current, 0, 1)
	b.startValue = b.current
	b.progress = 0

	return !wasRecovering && b.current == b.weakest()
}

// Invert toggles the polarity and ramps from the current value towards the
// new target. It returns the new mode.
func (b *Baseline) Invert() Mode {
	if b.mode == ModeNormal {
		b.mode = ModeInverted
		b.target = 0
	} else {
		b.mode = ModeNormal
		b.target = 1
	}

	b.startValue = b.current
	b.progress = 0

	return b.mode
}

// SetRecoverySpeed sets the ramp duration in seconds, floored at
// MinRecoverySpeed. Already elapsed progress is kept.
func (b *Baseline) SetRecoverySpeed(seconds float64) {
	if math.IsNaN(seconds) || seconds < MinRecoverySpeed {
		seconds = MinRecoverySpeed
	}

	b.recoverySpeed = seconds
}

// SetLinExpRatio sets the ramp shape: 0 linear, 1 fully eased.
func (b *Baseline) SetLinExpRatio(ratio float64) {
	if math.IsNaN(ratio) {
		return
	}

	b.linExpRatio = core.Clamp(ratio, 0, 1)
}

// SetWeakeningMode selects the weakening policy.
func (b *Baseline) SetWeakeningMode(mode WeakeningMode) {
	b.weakeningMode = mode
}

// ToggleWeakeningMode flips between WeakenAlways and WeakenUntilRecovered
// and returns the new policy.
func (b *Baseline) ToggleWeakeningMode() WeakeningMode {
	if b.weakeningMode == WeakenAlways {
		b.weakeningMode = WeakenUntilRecovered
	} else {
		b.weakeningMode = WeakenAlways
	}

	return b.weakeningMode
}

// Current returns the tracked value.
func (b *Baseline) Current() float64 { return b.current }

// Target returns the resting value for the current mode.
func (b *Baseline) Target() float64 { return b.target }

// Progress returns the elapsed seconds of the current ramp.
func (b *Baseline) Progress() float64 { return b.progress }

// State returns the label computed by the last Process call.
func (b *Baseline) State() State { return b.state }

// Mode returns the polarity.
func (b *Baseline) Mode() Mode { return b.mode }

// WeakeningMode returns the weakening policy.
func (b *Baseline) WeakeningMode() WeakeningMode { return b.weakeningMode }

// RecoverySpeed returns the ramp duration in seconds.
func (b *Baseline) RecoverySpeed() float64 { return b.recoverySpeed }

// LinExpRatio returns the ramp shape blend factor.
func (b *Baseline) LinExpRatio() float64 { return b.linExpRatio }

func (b *Baseline) weakest() float64 {
	if b.mode == ModeNormal {
		return 0
	}

	return 1
}
