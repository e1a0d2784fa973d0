package voronoi

import (
	"errors"

	"github.com/hanting/fortune-voronoi/internal/fault"
)

// Input validation errors (§10.2), checked with errors.Is.
var (
	// ErrNoSites is returned by Build when sites is empty.
	ErrNoSites = errors.New("voronoi: at least one site is required")
	// ErrDuplicateSite is returned when two sites coincide within the
	// active epsilon.
	ErrDuplicateSite = errors.New("voronoi: duplicate site coordinates")
	// ErrSiteOutOfBounds is returned when a site lies outside bounds.
	ErrSiteOutOfBounds = errors.New("voronoi: site lies outside bounds")
	// ErrNonFiniteCoordinate is returned when a site has a NaN or
	// infinite coordinate.
	ErrNonFiniteCoordinate = errors.New("voronoi: site has a non-finite coordinate")
	// ErrDegenerateBounds is returned when bounds has zero or negative
	// area.
	ErrDegenerateBounds = errors.New("voronoi: bounds has zero or negative area")
)

// ErrInternal marks a violated sweep invariant: a bug in this
// implementation, not a problem with the caller's input. Build never
// panics; an invariant violation is wrapped in this sentinel instead.
var ErrInternal = fault.ErrInternal
