// Package chain implements the neighbor-to-neighbor event protocol that
// lets adjacently placed modules share a seed, clock ticks and a global
// reset without a central bus.
//
// Every participant owns a [Link] with two [Message] slots. The module on
// its left writes the producer slot and requests a flip; the host swaps
// producer and consumer between steps; the owner reads its consumer slot
// once and marks it processed. A message that was already processed reads
// as empty, so a slot that is read again before the next flip has no
// further effect.
//
// Compatibility is a capability check: a right neighbor takes part in the
// protocol if and only if it implements [Participant]. Propagation stops
// silently at the first neighbor that does not.
package chain
