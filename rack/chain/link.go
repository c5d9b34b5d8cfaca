package chain

// Link is the double-buffered inbound channel of one participant.
//
// The left neighbor writes Producer and calls RequestFlip; the host calls
// Flip between steps; the owner reads Consumer. Neither side touches the
// other's slot.
type Link struct {
	slots    [2]Message
	producer int
	flip     bool
}

// NewLink returns a link whose slots both hold NewMessage.
func NewLink() *Link {
	return &Link{
		slots:    [2]Message{NewMessage(), NewMessage()},
		producer: 0,
	}
}

// Producer returns the slot written by the left neighbor.
func (l *Link) Producer() *Message {
	return &l.slots[l.producer]
}

// Consumer returns the slot read by the owner.
func (l *Link) Consumer() *Message {
	return &l.slots[1-l.producer]
}

// RequestFlip asks the host to publish the producer slot.
func (l *Link) RequestFlip() {
	l.flip = true
}

// FlipRequested reports whether a flip is pending.
func (l *Link) FlipRequested() bool {
	return l.flip
}

// Flip swaps producer and consumer if a flip was requested and reports
// whether it did. Only the host calls Flip, and only between steps.
func (l *Link) Flip() bool {
	if !l.flip {
		return false
	}

	l.producer = 1 - l.producer
	l.flip = false

	return true
}
