// Package reactor implements a general-purpose reactive state graph:
// mutable state cells ("sources"), derived values computed as pure
// functions over other cells ("computeds"), and side effects that
// re-execute whenever the cells they observed change.
//
// A Graph owns a population of nodes and the propagation machinery that
// keeps them consistent: when a Source changes, every transitively
// dependent Computed appears up to date on next read, and every live
// Effect that observed the change reruns exactly once. The engine is
// single-threaded per Graph; see Graph and DefaultGraph.
//
// Typical use:
//
//	g := reactor.NewGraph()
//	count := reactor.NewSource(g, 0)
//	double := reactor.NewComputed(g, func() int { return count.Read() * 2 })
//	reactor.NewEffect(g, func() func() {
//		fmt.Println("double is now", double.Read())
//		return nil
//	})
//	count.Write(5) // prints "double is now 10"
package reactor

import "github.com/nodeflow/reactor/internal"

// Graph is the arena owning a population of nodes and the propagation
// machinery that keeps them consistent. See NewGraph and DefaultGraph.
type Graph = internal.Graph

// NodeID is a graph-scoped opaque identifier.
type NodeID = internal.NodeID

// NewGraph returns a fresh, live graph.
func NewGraph() *Graph { return internal.NewGraph() }

// DefaultGraph returns the calling goroutine's thread-local default graph,
// lazily creating it on first use. Each goroutine observes a distinct
// default; nodes must never move between graphs or goroutines.
func DefaultGraph() *Graph { return internal.DefaultGraph() }

// ResetDefaultGraph drops the calling goroutine's reference to its default
// graph without disposing it. A later DefaultGraph call on this goroutine
// allocates a brand new graph.
func ResetDefaultGraph() { internal.ResetDefaultGraph() }
