// Package trigger provides the small edge and timing primitives that
// per-sample modules use to read gate voltages and emit pulses:
//
//   - Schmitt: rising-edge detector with a hysteresis band.
//   - Boolean: rising-edge detector for button states.
//   - Pulse: fixed-width pulse generator.
//   - Divider: counts events and fires every N of them.
package trigger
