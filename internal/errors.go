package internal

import (
	"fmt"
	"strings"
)

// CycleError is raised by a read on a Computed whose recompute depends,
// transitively, on itself (spec §7).
type CycleError struct {
	Chain []NodeID
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, id := range e.Chain {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return "reactor: cycle detected: " + strings.Join(parts, " -> ")
}

// DisposedError is raised by any operation that would create or observably
// mutate reactive structure on a disposed Graph (spec §7).
type DisposedError struct {
	Op string
}

func (e *DisposedError) Error() string {
	return "reactor: graph disposed: " + e.Op
}

// InvalidTargetError is raised when writing to a Computed (spec §7).
type InvalidTargetError struct {
	Node NodeID
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("reactor: invalid target: computed #%d is not writable", e.Node)
}
