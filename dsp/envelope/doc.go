// Package envelope provides control-rate envelope state machines.
//
// [Baseline] models a resting level that drops instantly when weakened and
// recovers along a ramp whose shape blends a linear progression with the
// cubic [EaseInOut] curve. The tracker can be inverted, in which case it
// rests at 0 and is weakened upwards.
//
// All types are single-threaded and meant to be advanced once per sample by
// the owning module.
package envelope
