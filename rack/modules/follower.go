package modules

import (
	"log/slog"

	"github.com/cwbudde/algo-rack/dsp/noise"
	"github.com/cwbudde/algo-rack/rack/chain"
)

// follower is the chain behavior shared by seeded relay modules: consume
// the inbound message once, reseed on request, pass the message on.
type follower struct {
	node chain.Node

	factory   noise.Factory
	field     noise.Field
	fieldSeed int

	name   string
	logger *slog.Logger
}

func newFollower(name string, cfg config) follower {
	return follower{
		node:      chain.NewNode(),
		factory:   cfg.noise,
		field:     cfg.noise(0),
		fieldSeed: 0,
		name:      name,
		logger:    cfg.logger,
	}
}

// receive handles this tick's inbound message. It reports whether a clock
// tick arrived and whether the owner must reset its position.
func (f *follower) receive(frame int64) (clock, resync bool) {
	msg, ok := f.node.Receive()
	if !ok {
		return false, false
	}

	if msg.Resync() {
		f.reseed(msg.Seed)
		f.logger.Debug("chain resync",
			"module", f.name,
			"seed", msg.Seed,
			"reset", msg.GlobalReset,
			"frame", frame)
	}

	f.node.Forward(msg)

	return msg.Clock, msg.Resync()
}

func (f *follower) reseed(seed int) {
	if f.field != nil && f.fieldSeed == seed {
		return
	}

	f.field = f.factory(seed)
	f.fieldSeed = seed
}

func (f *follower) seed() int { return f.fieldSeed }
