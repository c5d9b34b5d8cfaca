// Package modules contains the per-sample module implementations:
//
//   - Phoenix: baseline-recovery envelope that falls on a trigger and
//     recovers along a shaped ramp, offsetting or attenuating a signal.
//   - Seed: source of the chain protocol; eight three-state buttons derive
//     a seed, and clock and reset inputs are broadcast down the chain.
//   - RandomWalk: clocked, seeded noise walk producing a bipolar CV.
//   - Trigger: clocked, seeded probabilistic trigger generator.
//
// Seed, RandomWalk and Trigger talk to each other through package chain
// when placed next to each other in a rack. RandomWalk and Trigger relay
// every message they receive to their right neighbor.
package modules
