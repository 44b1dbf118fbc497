//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// defaultGraphs keys a lazily-created default Graph by goroutine id, one per
// goroutine, mirroring the teacher's per-goroutine runtime registry.
var defaultGraphs sync.Map

// DefaultGraph returns the calling goroutine's thread-local default graph,
// creating it on first use (spec §6).
func DefaultGraph() *Graph {
	gid := goid.Get()
	if g, ok := defaultGraphs.Load(gid); ok {
		return g.(*Graph)
	}

	g := NewGraph()
	defaultGraphs.Store(gid, g)
	return g
}

// ResetDefaultGraph drops the calling goroutine's reference to its default
// graph without disposing it (spec §6). A later DefaultGraph call on this
// goroutine allocates a brand new one.
func ResetDefaultGraph() {
	defaultGraphs.Delete(goid.Get())
}
