package reactor

import "github.com/nodeflow/reactor/internal"

// CycleError is raised by a read on a Computed whose recompute depends,
// transitively, on itself. Reading Chain names the offending node chain.
type CycleError = internal.CycleError

// DisposedError is raised by any operation that would create or observably
// mutate reactive structure on a disposed Graph.
type DisposedError = internal.DisposedError

// InvalidTargetError is raised by attempting to write to a Computed.
type InvalidTargetError = internal.InvalidTargetError

// UserFailure is not a distinct error type: a panic raised by a
// user-supplied compute or effect function propagates out of Read/Write/
// Batch unchanged, exactly as it was raised.
