package trigger

const (
	// DefaultLowThreshold is the voltage at or below which a gate reads low.
	DefaultLowThreshold = 0.1
	// DefaultHighThreshold is the voltage at or above which a gate reads high.
	DefaultHighThreshold = 2.0
)

// Schmitt detects rising edges of a gate voltage through a hysteresis band.
type Schmitt struct {
	low  float64
	high float64
	on   bool
}

// NewSchmitt returns a detector with the given thresholds. Swapped
// thresholds are reordered.
func NewSchmitt(low, high float64) Schmitt {
	if low > high {
		low, high = high, low
	}

	return Schmitt{low: low, high: high}
}

// DefaultSchmitt returns a detector using the 0.1 V / 2 V convention.
func DefaultSchmitt() Schmitt {
	return NewSchmitt(DefaultLowThreshold, DefaultHighThreshold)
}

// Process feeds one voltage and reports whether it produced a rising edge.
func (s *Schmitt) Process(v float64) bool {
	if s.on {
		if v <= s.low {
			s.on = false
		}

		return false
	}

	if v >= s.high {
		s.on = true
		return true
	}

	return false
}

// IsHigh reports the latched gate state.
func (s *Schmitt) IsHigh() bool { return s.on }

// Reset forgets the latched state.
func (s *Schmitt) Reset() { s.on = false }

// Boolean detects false-to-true transitions.
type Boolean struct {
	state bool
}

// Process feeds one state and reports whether it is a rising edge.
func (b *Boolean) Process(state bool) bool {
	rising := state && !b.state
	b.state = state

	return rising
}

// Reset forgets the previous state.
func (b *Boolean) Reset() { b.state = false }
