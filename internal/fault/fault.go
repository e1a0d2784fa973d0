// Package fault holds the single sentinel every internal invariant
// violation in the sweep is wrapped in (§4.7/§10.2), so both the sweep
// packages and the public API can check the same error with errors.Is
// without creating an import cycle between them.
package fault

import "errors"

// ErrInternal marks a violated invariant: a programming bug in this
// implementation, not a problem with the caller's input. Per §4.7 these
// are preconditions satisfied by construction; this implementation
// reports them as a wrapped error rather than panicking, so an embedding
// service can log and continue instead of crashing.
var ErrInternal = errors.New("voronoi: internal invariant violation")
