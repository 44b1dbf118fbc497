package reactor

import "github.com/nodeflow/reactor/internal"

// EffectFunc is the shape a reactive effect's body may take: either a bare
// side effect, or one that returns a cleanup function to run before the
// next execution (or at disposal).
type EffectFunc interface {
	func() | func() func()
}

// Effect is a re-runnable side effect whose producers are captured
// automatically. Effects have no subscribers; they are leaves of the graph.
type Effect struct {
	node *internal.Effect
}

// NewEffect creates an effect on g and runs it once synchronously to
// capture its initial dependencies. Panics with DisposedError if g is
// disposed.
func NewEffect[T EffectFunc](g *Graph, fn T) *Effect {
	wrapped := adaptEffectFunc(fn)
	return &Effect{node: g.CreateEffect(wrapped)}
}

// NewWatcher is an alias for NewEffect.
func NewWatcher[T EffectFunc](g *Graph, fn T) *Effect { return NewEffect(g, fn) }

func adaptEffectFunc[T EffectFunc](fn T) func() func() {
	switch f := any(fn).(type) {
	case func():
		return func() func() {
			f()
			return nil
		}
	case func() func():
		return f
	default:
		panic("reactor: unreachable effect function shape")
	}
}

// Dispose is idempotent: it runs the effect's cleanup (swallowing
// failures), removes it from every producer's subscriber set, and it never
// runs again even if re-dirtied.
func (e *Effect) Dispose() {
	e.node.Dispose()
}

// IsDisposed reports whether Dispose has run on this effect.
func (e *Effect) IsDisposed() bool {
	return e.node.IsDisposed()
}

// IsDirty reports whether the effect is queued to rerun.
func (e *Effect) IsDirty() bool {
	return e.node.IsDirty()
}

// DependencyCount is a debug accessor.
func (e *Effect) DependencyCount() int {
	return e.node.DependencyCount()
}

// Graph returns the owning graph.
func (e *Effect) Graph() *Graph { return e.node.Context() }

// ID returns the node's graph-scoped identifier.
func (e *Effect) ID() NodeID { return e.node.ID() }

// OnCleanup registers fn to run before the next run of the currently
// executing effect on g, or at its disposal, whichever comes first. Only
// the current effect may register; calling it outside an effect is a
// no-op.
func OnCleanup(g *Graph, fn func()) {
	g.OnCleanup(fn)
}
