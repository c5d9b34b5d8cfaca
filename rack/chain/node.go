package chain

// Participant is implemented by every module that accepts chain messages
// from its left neighbor.
type Participant interface {
	ChainLink() *Link
}

// Node carries the protocol state shared by chain modules. Embed it and
// let the host wire the right neighbor with SetNeighbors.
//
// A Node built with NewSource has no inbound link: it only produces.
type Node struct {
	link  *Link
	right any
}

// NewNode returns a relay node with its own inbound link.
func NewNode() Node {
	return Node{link: NewLink()}
}

// NewSource returns a node that never receives.
func NewSource() Node {
	return Node{}
}

// Inbound returns the node's own link, or nil for a source. Participants
// whose link may be nil should not expose it through ChainLink.
func (n *Node) Inbound() *Link {
	return n.link
}

// SetNeighbors records the modules placed to the left and right. Only the
// right neighbor matters for forwarding.
func (n *Node) SetNeighbors(_, right any) {
	n.right = right
}

// Right returns the recorded right neighbor.
func (n *Node) Right() any {
	return n.right
}

// Receive consumes the pending inbound message. It returns false when
// there is no link or the slot was already processed.
func (n *Node) Receive() (Message, bool) {
	if n.link == nil {
		return Message{}, false
	}

	slot := n.link.Consumer()
	if slot.Processed {
		return Message{}, false
	}

	msg := *slot
	slot.Processed = true

	return msg, true
}

// Forward writes msg into the right neighbor's producer slot and requests
// a flip. Messages without a signal are dropped, and so is everything when
// the right neighbor is missing or not a Participant. It reports whether
// the message was delivered.
func (n *Node) Forward(msg Message) bool {
	if !msg.HasSignal() {
		return false
	}

	next := Compatible(n.right)
	if next == nil {
		return false
	}

	link := next.ChainLink()
	if link == nil {
		return false
	}

	msg.Processed = false
	*link.Producer() = msg
	link.RequestFlip()

	return true
}

// Compatible returns m as a Participant, or nil if it cannot take part in
// the protocol.
func Compatible(m any) Participant {
	if m == nil {
		return nil
	}

	p, ok := m.(Participant)
	if !ok || p == nil {
		return nil
	}

	return p
}

// Seed derives a seed from three-state button values: the XOR over i of
// (state[i]+1) << (2*i).
func Seed(states []int) int {
	seed := 0
	for i, s := range states {
		seed ^= (s + 1) << (2 * i)
	}

	return seed
}
