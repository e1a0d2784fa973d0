package voronoi

import (
	"github.com/hanting/fortune-voronoi/geometry"
	"github.com/hanting/fortune-voronoi/internal/sweep"
)

// Build computes the Voronoi diagram of sites clipped to bounds using
// Fortune's sweep-line algorithm (§4). A single site is a valid input and
// produces a Diagram with no edges. Returns one of the sentinel errors in
// errors.go if sites or bounds fail validation (skippable with
// WithoutValidation), or an error wrapping ErrInternal if the sweep
// detects a violated invariant.
func Build(sites []geometry.Point, bounds geometry.Rect, opts ...Option) (*Diagram, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.validate {
		if err := validateSites(sites, bounds, cfg.epsilon); err != nil {
			return nil, err
		}
	}

	sitesCopy := make([]geometry.Point, len(sites))
	copy(sitesCopy, sites)

	d := sweep.New(sitesCopy, bounds, cfg.epsilon, cfg.logger)
	res, err := d.Run()
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, len(res.Edges))
	for i, e := range res.Edges {
		edges[i] = Edge{Site1: e.Site1, Site2: e.Site2, Vertex1: int(e.Vertex1), Vertex2: int(e.Vertex2)}
	}

	return &Diagram{
		Sites:    sitesCopy,
		Vertices: res.Vertices,
		Edges:    edges,
		Bounds:   bounds,
	}, nil
}
