package edgestore

import "errors"

// Internal invariant violations (§4.7): these are programming bugs, not
// user-facing errors. They are asserted here instead of panicking so the
// sweep driver can wrap them with call-site context before surfacing
// ErrInternal to Build's caller.
var (
	// ErrRefCountUnderflow fires when a junction's reference count would
	// go negative — more than three edges tried to resolve onto it.
	ErrRefCountUnderflow = errors.New("edgestore: junction ref-count underflow")
	// ErrDeadEdge fires when the driver tries to resolve an endpoint of
	// an edge record already emitted or dropped.
	ErrDeadEdge = errors.New("edgestore: edge record already finalized")
)
