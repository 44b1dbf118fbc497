package internal

// Computed is a memoized pure function of other nodes' values. It starts
// dirty with no committed value; its value is defined only after the first
// successful recompute (spec §3).
type Computed struct {
	id      NodeID
	graph   *Graph
	value   any
	dirty   bool
	deps    *orderedSet
	subs    *orderedSet
	compute func() any
}

func (c *Computed) nodeID() NodeID                { return c.id }
func (c *Computed) addSubscriber(id NodeID)       { c.subs.add(id) }
func (c *Computed) removeSubscriber(id NodeID)    { c.subs.remove(id) }
func (c *Computed) subscriberIDs() []NodeID       { return c.subs.snapshot() }
func (c *Computed) hasSubscriber(id NodeID) bool  { return c.subs.contains(id) }
func (c *Computed) subscriberCount() int          { return c.subs.len() }
func (c *Computed) addDependency(id NodeID)       { c.deps.add(id) }

// ID returns the node's graph-scoped identifier.
func (c *Computed) ID() NodeID { return c.id }

// Context returns the owning graph.
func (c *Computed) Context() *Graph { return c.graph }

// CreateComputed allocates a new computed backed by the pure function
// compute. It starts dirty; nothing runs until the first read.
func (g *Graph) CreateComputed(compute func() any) *Computed {
	if g.disposed {
		panic(&DisposedError{Op: "create_computed"})
	}
	id := g.nextNodeID()
	c := &Computed{
		id:      id,
		graph:   g,
		dirty:   true,
		deps:    newOrderedSet(),
		subs:    newOrderedSet(),
		compute: compute,
	}
	g.signals[id] = c
	return c
}

// Read triggers a lazy recompute if dirty, then returns the cached value and
// records a tracked edge (spec §4.1). Once the owning graph disposes, Read
// returns the last cached value without recomputing, matching Source's
// post-disposal behavior.
func (c *Computed) Read() any {
	if c.graph.disposed {
		return c.value
	}
	if c.dirty {
		c.graph.recomputeComputed(c)
	}
	c.graph.recordEdge(c)
	return c.value
}

// Peek returns the last committed value without recomputing, even if the
// node is currently dirty (spec §4.1).
func (c *Computed) Peek() any {
	return c.value
}

// IsDirty reports the node's dirty flag for debug/introspection.
func (c *Computed) IsDirty() bool { return c.dirty }

// SubscriberCount is a debug accessor (spec §6).
func (c *Computed) SubscriberCount() int { return c.subs.len() }

// DependencyCount is a debug accessor (spec §6).
func (c *Computed) DependencyCount() int { return c.deps.len() }

// Write always raises InvalidTargetError: computeds are derived, never
// written directly (spec §4.2). The generic wrapper in the root package
// never exposes this method; it exists here to keep Source and Computed
// interchangeable inside the engine and for direct testing.
func (c *Computed) Write(any) {
	panic(&InvalidTargetError{Node: c.id})
}

// recomputeComputed implements the lazy recompute algorithm of spec §4.3.
func (g *Graph) recomputeComputed(c *Computed) {
	for _, sid := range g.computeStack {
		if sid == c.id {
			chain := append(append([]NodeID(nil), g.computeStack...), c.id)
			panic(&CycleError{Chain: chain})
		}
	}

	for _, depID := range c.deps.snapshot() {
		if dep, ok := g.signals[depID]; ok {
			dep.removeSubscriber(c.id)
		}
	}
	c.deps = newOrderedSet()

	prevComputed, prevEffect, prevTracking := g.currentComputed, g.currentEffect, g.tracking
	g.currentComputed, g.currentEffect, g.tracking = c, nil, true
	g.computeStack = append(g.computeStack, c.id)

	defer func() {
		g.computeStack = g.computeStack[:len(g.computeStack)-1]
		g.currentComputed, g.currentEffect, g.tracking = prevComputed, prevEffect, prevTracking
	}()

	value := c.compute()

	// Only reached if compute() did not panic: commit and clear dirty. On
	// panic, the deferred restore above still runs, but dirty is left set
	// so a later read retries (spec §4.3 step 6).
	c.value = value
	c.dirty = false
}
