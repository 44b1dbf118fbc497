package internal

// NodeID is a graph-scoped opaque identifier, allocated by a monotonic
// counter on the owning Graph and never reused within that Graph (spec §3).
type NodeID uint64

// signalNode is implemented by anything that can be read and observed:
// Source and Computed. It is the producer-side view of an edge.
type signalNode interface {
	nodeID() NodeID
	addSubscriber(NodeID)
	removeSubscriber(NodeID)
	subscriberIDs() []NodeID
	hasSubscriber(NodeID) bool
	subscriberCount() int
}

// consumerNode is implemented by anything that captures dependencies during
// a run: Computed and Effect. It is the consumer-side view of an edge.
type consumerNode interface {
	nodeID() NodeID
	addDependency(NodeID)
}
