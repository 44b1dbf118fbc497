package internal

// Effect is a re-runnable side effect. Effects have no subscribers: they
// are leaves of the reactive graph (spec §3).
type Effect struct {
	id       NodeID
	graph    *Graph
	deps     *orderedSet
	fn       func() func()
	cleanup  func()
	dirty    bool
	disposed bool
}

func (e *Effect) nodeID() NodeID          { return e.id }
func (e *Effect) addDependency(id NodeID) { e.deps.add(id) }

// ID returns the node's graph-scoped identifier.
func (e *Effect) ID() NodeID { return e.id }

// Context returns the owning graph.
func (e *Effect) Context() *Graph { return e.graph }

// CreateEffect allocates a new effect, places it in the effect table marked
// dirty, and runs it once synchronously to capture its initial dependencies
// (spec §4.4). fn may return a cleanup function or nil.
func (g *Graph) CreateEffect(fn func() func()) *Effect {
	if g.disposed {
		panic(&DisposedError{Op: "create_effect"})
	}
	id := g.nextNodeID()
	e := &Effect{id: id, graph: g, deps: newOrderedSet(), fn: fn, dirty: true}
	g.effects[id] = e
	g.runEffect(e)
	return e
}

// Dispose is idempotent: it runs the cleanup (failures swallowed), removes
// the effect from every producer's subscriber set, and removes it from the
// effect table (spec §4.4).
func (e *Effect) Dispose() {
	g := e.graph
	if e.disposed {
		return
	}

	g.runCleanupSafely(e)

	for _, depID := range e.deps.snapshot() {
		if dep, ok := g.signals[depID]; ok {
			dep.removeSubscriber(e.id)
		}
	}
	e.deps = newOrderedSet()
	e.disposed = true

	delete(g.effects, e.id)
	g.updateQueue.remove(e.id)
	g.effectQueue.remove(e.id)
}

// IsDisposed reports whether Dispose has run on this effect.
func (e *Effect) IsDisposed() bool { return e.disposed }

// DependencyCount is a debug accessor (spec §6).
func (e *Effect) DependencyCount() int { return e.deps.len() }

// IsDirty is a debug accessor (spec §6).
func (e *Effect) IsDirty() bool { return e.dirty }

// OnCleanup registers fn to run before the next run of the currently
// executing effect, or at its disposal, whichever comes first. Only the
// current effect may register; calling it outside an effect is a no-op
// (spec §4.4).
func (g *Graph) OnCleanup(fn func()) {
	if g.currentEffect == nil {
		return
	}
	g.currentEffect.cleanup = fn
}

// runCleanupSafely invokes and clears an effect's cleanup, swallowing and
// logging any panic so the next run or disposal always proceeds (spec §7).
func (g *Graph) runCleanupSafely(e *Effect) {
	cleanup := e.cleanup
	e.cleanup = nil
	if cleanup == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			g.logCleanupFailure(e.id, r)
		}
	}()
	cleanup()
}

// runEffect implements "Run an effect" (spec §4.4).
func (g *Graph) runEffect(e *Effect) {
	if g.disposed {
		return
	}

	g.runCleanupSafely(e)

	for _, depID := range e.deps.snapshot() {
		if dep, ok := g.signals[depID]; ok {
			dep.removeSubscriber(e.id)
		}
	}
	e.deps = newOrderedSet()
	e.dirty = false

	prevComputed, prevEffect, prevTracking := g.currentComputed, g.currentEffect, g.tracking
	g.currentComputed, g.currentEffect, g.tracking = nil, e, true

	succeeded := false
	defer func() {
		g.currentComputed, g.currentEffect, g.tracking = prevComputed, prevEffect, prevTracking
		if !succeeded {
			e.dirty = true
		}
	}()

	// A returned cleanup takes precedence; a nil return keeps whatever the
	// body registered through OnCleanup.
	if cleanup := e.fn(); cleanup != nil {
		e.cleanup = cleanup
	}
	succeeded = true
}
