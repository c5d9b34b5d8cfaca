package trigger

// DefaultPulseWidth is the width of a trigger pulse in seconds.
const DefaultPulseWidth = 1e-3

// Pulse holds its output high for a fixed duration after Trigger.
type Pulse struct {
	remaining float64
}

// Trigger starts a pulse of the given duration in seconds. A running pulse
// is only ever extended, never shortened.
func (p *Pulse) Trigger(duration float64) {
	if duration > p.remaining {
		p.remaining = duration
	}
}

// Process advances the pulse by delta seconds and reports whether the
// output is high for this sample.
func (p *Pulse) Process(delta float64) bool {
	if p.remaining > 0 {
		p.remaining -= delta
		return true
	}

	return false
}

// Reset cancels a running pulse.
func (p *Pulse) Reset() { p.remaining = 0 }

// Divider fires once every Division calls to Process.
type Divider struct {
	count    uint32
	division uint32
}

// NewDivider returns a divider firing every division events. Zero is
// treated as one.
func NewDivider(division uint32) Divider {
	d := Divider{}
	d.SetDivision(division)

	return d
}

// SetDivision changes the period without resetting the count.
func (d *Divider) SetDivision(division uint32) {
	if division == 0 {
		division = 1
	}

	d.division = division
}

// Division returns the current period.
func (d *Divider) Division() uint32 {
	if d.division == 0 {
		return 1
	}

	return d.division
}

// Process counts one event and reports whether the divider fired.
func (d *Divider) Process() bool {
	d.count++
	if d.count >= d.Division() {
		d.count = 0
		return true
	}

	return false
}

// Reset restarts the count.
func (d *Divider) Reset() { d.count = 0 }
