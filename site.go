package voronoi

import "github.com/hanting/fortune-voronoi/geometry"

// validateSites checks the §2 Site preconditions: at least one site, every
// coordinate finite, every site inside bounds, no two sites coincident
// within epsilon.
func validateSites(sites []geometry.Point, bounds geometry.Rect, epsilon float64) error {
	if len(sites) == 0 {
		return ErrNoSites
	}
	if !bounds.Valid() {
		return ErrDegenerateBounds
	}
	for i, s := range sites {
		if !s.Finite() {
			return ErrNonFiniteCoordinate
		}
		if !bounds.Contains(s) {
			return ErrSiteOutOfBounds
		}
		for j := 0; j < i; j++ {
			if s.Dist(sites[j]) <= epsilon {
				return ErrDuplicateSite
			}
		}
	}
	return nil
}
