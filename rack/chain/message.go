package chain

// Message is one chain event travelling from a module to its right
// neighbor.
type Message struct {
	// Seed is the seed every downstream noise generator should use.
	Seed int
	// Clock marks one clock tick to be counted by the receiver.
	Clock bool
	// GlobalReset asks every receiver to reset its local position.
	GlobalReset bool
	// SeedChanged asks every receiver to reseed from Seed.
	SeedChanged bool
	// Processed is set by the receiver once the slot has been consumed.
	Processed bool
}

// NewMessage returns a fresh slot value. It announces seed 0 as changed so
// the first read after construction synchronizes the receiver.
func NewMessage() Message {
	return Message{SeedChanged: true}
}

// HasSignal reports whether the message carries anything worth forwarding.
func (m Message) HasSignal() bool {
	return m.Clock || m.GlobalReset || m.SeedChanged
}

// Resync reports whether the receiver must reseed and reset.
func (m Message) Resync() bool {
	return m.SeedChanged || m.GlobalReset
}

// Merge returns local with every flag of inbound OR-ed in. Seed is taken
// from local, which is expected to already reflect inbound.
func Merge(inbound, local Message) Message {
	return Message{
		Seed:        local.Seed,
		Clock:       inbound.Clock || local.Clock,
		GlobalReset: inbound.GlobalReset || local.GlobalReset,
		SeedChanged: inbound.SeedChanged || local.SeedChanged,
	}
}
