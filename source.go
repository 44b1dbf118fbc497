package reactor

import "github.com/nodeflow/reactor/internal"

// Source is a writable reactive cell holding a value of type T.
type Source[T comparable] struct {
	node *internal.Source
}

// NewSource creates a source on g with initial value v. Panics with
// DisposedError if g is disposed.
func NewSource[T comparable](g *Graph, v T) *Source[T] {
	return &Source[T]{node: g.CreateSource(v)}
}

// NewState is an alias for NewSource.
func NewState[T comparable](g *Graph, v T) *Source[T] { return NewSource(g, v) }

// Read returns the current value, recording a dependency on the current
// consumer if one is active. Still works after the owning graph disposes,
// returning the stored value without recording anything.
func (s *Source[T]) Read() T {
	v, _ := s.node.Read().(T)
	return v
}

// Write replaces the value. Equal-valued writes are a no-op; otherwise
// every subscriber is marked dirty and the graph flushes immediately
// unless a batch is open. On a disposed graph the value is still stored but
// nothing propagates.
func (s *Source[T]) Write(v T) {
	s.node.Write(v)
}

// Update writes f applied to the current value, without tracking the read
// of that current value against the caller's own dependency set.
func (s *Source[T]) Update(f func(T) T) {
	s.node.Update(func(v any) any {
		cur, _ := v.(T)
		return f(cur)
	})
}

// Peek returns the current value without recording a dependency.
func (s *Source[T]) Peek() T {
	v, _ := s.node.Peek().(T)
	return v
}

// Graph returns the owning graph.
func (s *Source[T]) Graph() *Graph { return s.node.Context() }

// ID returns the node's graph-scoped identifier.
func (s *Source[T]) ID() NodeID { return s.node.ID() }

// SubscriberCount is a debug accessor.
func (s *Source[T]) SubscriberCount() int {
	return s.node.SubscriberCount()
}
