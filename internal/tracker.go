package internal

// recordEdge implements the tracked-read half of spec §4.1: if tracking is
// enabled and a current consumer exists, it adds a bidirectional edge
// between producer and that consumer, deduplicated by orderedSet.add.
// Operating on the producer's node pointer directly (rather than looking it
// up by id) keeps tracked reads working even for nodes no longer present in
// the graph's registry.
func (g *Graph) recordEdge(producer signalNode) {
	if !g.tracking {
		return
	}

	var consumerID NodeID
	var consumer consumerNode
	switch {
	case g.currentEffect != nil:
		consumerID, consumer = g.currentEffect.id, g.currentEffect
	case g.currentComputed != nil:
		consumerID, consumer = g.currentComputed.id, g.currentComputed
	default:
		return
	}

	if !producer.hasSubscriber(consumerID) {
		producer.addSubscriber(consumerID)
		consumer.addDependency(producer.nodeID())
	}
}

// Untrack runs body with dependency capture suppressed, then restores the
// previous tracking state (spec §4.1). Reentrant: nesting Untrack calls is
// safe because each call saves and restores its own snapshot of the flag.
func (g *Graph) Untrack(body func()) {
	prev := g.tracking
	g.tracking = false
	defer func() { g.tracking = prev }()

	body()
}
