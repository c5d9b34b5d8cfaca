// Package rack is a minimal host for per-sample modules.
//
// A [Rack] keeps modules in left-to-right order, tells each module who its
// neighbors are, calls every module once per sample and then performs the
// chain buffer flips that modules requested during the step. The order in
// which modules are processed within a step is configurable and must not
// change results.
//
// Module implementations live in package modules; the neighbor protocol in
// package chain.
package rack
