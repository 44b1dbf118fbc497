package internal

// Source is a writable reactive cell. It has no dependencies and is never
// dirty; only its subscriber set changes over its lifetime (spec §3).
//
// Source carries its own value and a back-pointer to its owning Graph, so a
// handle keeps working after the Graph disposes even though disposal clears
// the Graph's lookup tables.
type Source struct {
	id    NodeID
	graph *Graph
	value any
	subs  *orderedSet
}

func (s *Source) nodeID() NodeID                { return s.id }
func (s *Source) addSubscriber(id NodeID)       { s.subs.add(id) }
func (s *Source) removeSubscriber(id NodeID)    { s.subs.remove(id) }
func (s *Source) subscriberIDs() []NodeID       { return s.subs.snapshot() }
func (s *Source) hasSubscriber(id NodeID) bool  { return s.subs.contains(id) }
func (s *Source) subscriberCount() int          { return s.subs.len() }

// ID returns the node's graph-scoped identifier.
func (s *Source) ID() NodeID { return s.id }

// Context returns the owning graph.
func (s *Source) Context() *Graph { return s.graph }

// CreateSource allocates a new source with initial value v.
func (g *Graph) CreateSource(v any) *Source {
	if g.disposed {
		panic(&DisposedError{Op: "create_source"})
	}
	id := g.nextNodeID()
	s := &Source{id: id, graph: g, value: v, subs: newOrderedSet()}
	g.signals[id] = s
	return s
}

// Read returns the stored value, recording a tracked edge to the current
// consumer if any (spec §4.1). After the owning graph disposes it still
// returns the stored value, just without recording anything.
func (s *Source) Read() any {
	if !s.graph.disposed {
		s.graph.recordEdge(s)
	}
	return s.value
}

// Peek returns the stored value without recording an edge (spec §4.1).
func (s *Source) Peek() any {
	return s.value
}

// Write replaces the value, a no-op if v equals the current value.
// Otherwise every subscriber is marked dirty and enqueued, and the graph
// flushes immediately unless a batch is open (spec §4.2). On a disposed
// graph the value is still stored but nothing propagates.
func (s *Source) Write(v any) {
	if s.value == v {
		return
	}
	s.value = v

	if s.graph.disposed {
		return
	}

	for _, subID := range s.subs.snapshot() {
		s.graph.markDirty(subID)
	}

	if s.graph.batchDepth == 0 {
		s.graph.flush()
	}
}

// Update writes f applied to the current value, read without tracking so
// the source is never added to the caller's own dependency set (spec §4.2).
func (s *Source) Update(f func(any) any) {
	s.Write(f(s.Peek()))
}

// SubscriberCount is a debug accessor (spec §6).
func (s *Source) SubscriberCount() int { return s.subs.len() }
