// Package lloyd implements centroidal Voronoi relaxation (§12 / the
// reference Lloyd.cpp driver this module generalizes): repeatedly
// rebuild the diagram and move each site to a summary point of its own
// cell, which tends toward evenly-spaced, convex cells as iterations
// progress.
package lloyd

import (
	"math/rand"

	"github.com/emirpasic/gods/sets/hashset"

	voronoi "github.com/hanting/fortune-voronoi"
	"github.com/hanting/fortune-voronoi/geometry"
)

// Predicate computes the next position for site, given the deduplicated
// vertex indices of its cell and the diagram's full vertex list. A
// predicate must return a point; clamping to bounds is applied by the
// caller afterward.
type Predicate func(site geometry.Point, cellVertices []int, vertices []geometry.Point) geometry.Point

// CentroidPredicate returns the arithmetic mean of the cell's vertices —
// an approximation of the cell's centroid that is exact for regular
// polygons and a close match otherwise, matching the dedup-and-average
// scan the reference Lloyd.cpp performs rather than the exact shoelace
// centroid formula.
func CentroidPredicate(site geometry.Point, cellVertices []int, vertices []geometry.Point) geometry.Point {
	if len(cellVertices) == 0 {
		return site
	}
	var sx, sy float64
	for _, vi := range cellVertices {
		sx += vertices[vi].X
		sy += vertices[vi].Y
	}
	n := float64(len(cellVertices))
	return geometry.Point{X: sx / n, Y: sy / n}
}

// options configure a relaxation run.
type options struct {
	jitterAmplitude float64
	rng             *rand.Rand
}

// Option configures Relax/Iterate.
type Option func(*options)

// WithJitter perturbs every relaxed site by up to amplitude in both axes
// before clamping to bounds, using rng for randomness. Off by default
// (§9 Design Notes): Lloyd relaxation is deterministic unless a caller
// explicitly asks for jitter, e.g. to break up the perfectly hexagonal
// packing many-iteration relaxation converges to.
func WithJitter(amplitude float64, rng *rand.Rand) Option {
	return func(o *options) {
		o.jitterAmplitude = amplitude
		o.rng = rng
	}
}

// Relax runs one relaxation step over sites within bounds, returning the
// new site positions and the diagram they were computed from (the
// diagram of the *input* sites, not the relaxed output — callers that
// need a visual of the moved sites must rebuild).
func Relax(sites []geometry.Point, bounds geometry.Rect, pred Predicate, voronoiOpts []voronoi.Option, opts ...Option) ([]geometry.Point, *voronoi.Diagram, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	d, err := voronoi.Build(sites, bounds, voronoiOpts...)
	if err != nil {
		return nil, nil, err
	}

	next := make([]geometry.Point, len(sites))
	for i, s := range sites {
		cellVerts := dedupCellVertices(d, i)
		p := pred(s, cellVerts, d.Vertices)
		if cfg.rng != nil && cfg.jitterAmplitude > 0 {
			p.X += (cfg.rng.Float64()*2 - 1) * cfg.jitterAmplitude
			p.Y += (cfg.rng.Float64()*2 - 1) * cfg.jitterAmplitude
		}
		next[i] = clamp(p, bounds)
	}

	return next, d, nil
}

// Iterate runs k relaxation steps in sequence, returning the final site
// positions and the diagram of those final positions (one more Build than
// the naive k-step loop, since each Relax's returned diagram describes
// the sites *before* that step's move).
func Iterate(sites []geometry.Point, bounds geometry.Rect, k int, pred Predicate, voronoiOpts []voronoi.Option, opts ...Option) ([]geometry.Point, *voronoi.Diagram, error) {
	cur := sites
	for i := 0; i < k; i++ {
		next, _, err := Relax(cur, bounds, pred, voronoiOpts, opts...)
		if err != nil {
			return nil, nil, err
		}
		cur = next
	}
	final, err := voronoi.Build(cur, bounds, voronoiOpts...)
	if err != nil {
		return nil, nil, err
	}
	return cur, final, nil
}

// dedupCellVertices mirrors the reference Lloyd.cpp's dedup scan over a
// cell's edges: a hashset keyed by vertex index, since a convex cell's
// vertices are each shared by exactly two of its own bordering edges.
func dedupCellVertices(d *voronoi.Diagram, site int) []int {
	set := hashset.New()
	for _, ei := range d.CellEdges(site) {
		e := d.Edges[ei]
		set.Add(e.Vertex1, e.Vertex2)
	}
	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}
	return out
}

func clamp(p geometry.Point, bounds geometry.Rect) geometry.Point {
	x, y := p.X, p.Y
	if x < bounds.LB.X {
		x = bounds.LB.X
	}
	if x > bounds.RT.X {
		x = bounds.RT.X
	}
	if y < bounds.LB.Y {
		y = bounds.LB.Y
	}
	if y > bounds.RT.Y {
		y = bounds.RT.Y
	}
	return geometry.Point{X: x, Y: y}
}
