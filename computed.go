package reactor

import "github.com/nodeflow/reactor/internal"

// Computed is a memoized pure function of other nodes' values.
type Computed[T any] struct {
	node *internal.Computed
}

// NewComputed creates a computed on g backed by compute. compute must be a
// pure function of values read through Source/Computed.Read calls; it runs
// lazily on first read, not at creation. Panics with DisposedError if g is
// disposed.
func NewComputed[T any](g *Graph, compute func() T) *Computed[T] {
	return &Computed[T]{node: g.CreateComputed(func() any { return compute() })}
}

// NewMemo is an alias for NewComputed.
func NewMemo[T any](g *Graph, compute func() T) *Computed[T] { return NewComputed(g, compute) }

// NewDerived is an alias for NewComputed.
func NewDerived[T any](g *Graph, compute func() T) *Computed[T] { return NewComputed(g, compute) }

// Read triggers a recompute if dirty, then returns the cached value and
// records a dependency on the current consumer if one is active. May
// panic with CycleError if the recompute depends on itself, or propagate
// whatever the compute function panicked with. Once the owning graph
// disposes, Read returns the last cached value without recomputing.
func (c *Computed[T]) Read() T {
	return c.node.Read().(T)
}

// Peek returns the last committed value without recomputing, even if the
// node is currently dirty. Peeking a computed that has never been
// successfully read is undefined.
func (c *Computed[T]) Peek() T {
	return c.node.Peek().(T)
}

// IsDirty reports whether the node requires a recompute before its value
// is next observed.
func (c *Computed[T]) IsDirty() bool {
	return c.node.IsDirty()
}

// Graph returns the owning graph.
func (c *Computed[T]) Graph() *Graph { return c.node.Context() }

// ID returns the node's graph-scoped identifier.
func (c *Computed[T]) ID() NodeID { return c.node.ID() }

// SubscriberCount is a debug accessor.
func (c *Computed[T]) SubscriberCount() int {
	return c.node.SubscriberCount()
}

// DependencyCount is a debug accessor.
func (c *Computed[T]) DependencyCount() int {
	return c.node.DependencyCount()
}
