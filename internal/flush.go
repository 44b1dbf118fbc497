package internal

// markDirty enqueues id for structural dirty-marking: a computed goes onto
// the update queue, an effect onto the effect queue. orderedSet.add already
// dedups against whatever is currently queued (spec §4.2/§4.3 coalescing),
// so this always sets the dirty flag and always offers the id to its queue
// rather than trusting the flag alone. A node left dirty by a recompute
// that panicked mid-flush is no longer present in either queue (flush
// drains a queue before running its batch), and re-checking the flag here
// would leave it dirty forever without a later write ever resurrecting it.
func (g *Graph) markDirty(id NodeID) {
	if c, ok := g.signals[id].(*Computed); ok {
		c.dirty = true
		g.updateQueue.add(id)
		return
	}

	if e, ok := g.effects[id]; ok {
		e.dirty = true
		g.effectQueue.add(id)
	}
}

// flush drains the update queue to fixpoint, then drains the effect queue
// (spec §4.3). Structural dirty-marking never recomputes a Computed; that
// happens lazily the next time something reads it (including an effect
// pulling its value during this very drain).
func (g *Graph) flush() {
	if g.flushing {
		// Already draining; the running loop below will pick up whatever
		// this nested call enqueued. Writes inside an effect body land
		// here (spec §5: reentrant writes append to the current flush's
		// queues rather than recursing into a new dispatch).
		return
	}
	g.flushing = true
	defer func() { g.flushing = false }()

	// Downstream edges only ever run from a node to what reads it, and the
	// graph is acyclic once committed (cycles panic during recompute before
	// any edge is recorded), so this fixpoint always terminates even though
	// a node already walked this phase can be re-enqueued and walked again.
	for g.updateQueue.len() > 0 {
		batch := g.updateQueue.drain()
		for _, id := range batch {
			c, ok := g.signals[id].(*Computed)
			if !ok {
				continue
			}
			for _, subID := range c.subscriberIDs() {
				g.markDirty(subID)
			}
		}
	}

	for g.effectQueue.len() > 0 {
		batch := g.effectQueue.drain()
		for _, id := range batch {
			e, ok := g.effects[id]
			if !ok || e.disposed || !e.dirty {
				continue
			}
			g.runEffect(e)
		}
	}
}

// Batch defers flush until the outermost Batch call exits (spec §4.2,
// §9 Open Questions: nested batches must not flush). Writes performed
// inside body still mark dirty immediately; only the drain is deferred.
func (g *Graph) Batch(body func()) {
	g.batchDepth++
	defer func() { g.batchDepth-- }()

	body()

	if g.batchDepth == 1 {
		g.flush()
	}
}
