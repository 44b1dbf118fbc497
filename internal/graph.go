package internal

import "github.com/sirupsen/logrus"

// Graph is the arena owning a population of nodes and the propagation
// machinery that keeps them consistent (spec §3). It performs no locking:
// the engine is single-threaded per graph by design (spec §5).
type Graph struct {
	nextID NodeID

	signals map[NodeID]signalNode
	effects map[NodeID]*Effect

	// current consumer slots (spec §3): at most one active effect and at
	// most one active computed.
	currentComputed *Computed
	currentEffect   *Effect
	tracking        bool

	batchDepth int
	flushing   bool

	updateQueue *orderedSet
	effectQueue *orderedSet

	computeStack []NodeID

	disposed bool

	logger *logrus.Entry
}

// NewGraph returns a fresh, live graph.
func NewGraph() *Graph {
	return &Graph{
		tracking:    true,
		signals:     make(map[NodeID]signalNode),
		effects:     make(map[NodeID]*Effect),
		updateQueue: newOrderedSet(),
		effectQueue: newOrderedSet(),
	}
}

func (g *Graph) nextNodeID() NodeID {
	g.nextID++
	return g.nextID
}

// SetLogger overrides the logger used for swallowed cleanup failures. A nil
// entry restores the standard logger.
func (g *Graph) SetLogger(logger *logrus.Entry) {
	g.logger = logger
}

// IsDisposed reports whether Dispose has run on this graph.
func (g *Graph) IsDisposed() bool {
	return g.disposed
}

// SignalCount returns the number of live sources and computeds.
func (g *Graph) SignalCount() int {
	return len(g.signals)
}

// EffectCount returns the number of live (non-disposed) effects.
func (g *Graph) EffectCount() int {
	return len(g.effects)
}

// Dispose tears the graph down (spec §4.4). Idempotent: for every effect,
// its cleanup runs (failures swallowed); then the signal, effect, and queue
// tables are cleared and the graph is marked disposed.
func (g *Graph) Dispose() {
	if g.disposed {
		return
	}

	effects := make([]*Effect, 0, len(g.effects))
	for _, e := range g.effects {
		effects = append(effects, e)
	}

	for _, e := range effects {
		g.runCleanupSafely(e)
		e.disposed = true
	}

	g.disposed = true
	g.signals = make(map[NodeID]signalNode)
	g.effects = make(map[NodeID]*Effect)
	g.updateQueue = newOrderedSet()
	g.effectQueue = newOrderedSet()
	g.computeStack = nil
	g.currentComputed = nil
	g.currentEffect = nil
}
