package sweep

import (
	"github.com/hanting/fortune-voronoi/geometry"
	"github.com/hanting/fortune-voronoi/internal/edgestore"
)

// postProcess walks every edge record the sweep left alive and clips it
// into a finalized Output (§4.6). Three shapes occur, keyed off how many
// ends are EndJunction:
//
//   - both ends EndJunction: a segment between the two circumcenters
//     (at least one of which lies outside bounds);
//   - one end EndJunction, the other open (EndBreakpoint/EndInfinite): a
//     ray from the known vertex along the bisector direction, oriented
//     away from the junction's third site;
//   - neither end EndJunction: the bisector never closed into a vertex at
//     all — the full infinite line between the two sites.
//
// A clip that does not produce exactly two points inside bounds (the
// bisector misses the rectangle entirely) is dropped.
func postProcess(store *edgestore.Store, sites []geometry.Point, bounds geometry.Rect) error {
	for _, r := range store.Residual() {
		e := r.Edge
		j1, ok1 := junctionOf(store, e.E1)
		j2, ok2 := junctionOf(store, e.E2)

		switch {
		case ok1 && ok2:
			emitSegment(store, bounds, e, j1, j2)
		case ok1 && !ok2:
			emitRay(store, sites, bounds, e, j1)
		case !ok1 && ok2:
			emitRay(store, sites, bounds, e, j2)
		default:
			emitLine(store, sites, bounds, e)
		}
	}
	return nil
}

func junctionOf(store *edgestore.Store, ep edgestore.Endpoint) (edgestore.Junction, bool) {
	if ep.Kind != edgestore.EndJunction {
		return edgestore.Junction{}, false
	}
	return store.Junction(ep.Junction), true
}

func emitSegment(store *edgestore.Store, bounds geometry.Rect, e edgestore.Edge, j1, j2 edgestore.Junction) {
	clipped := geometry.ClipSegmentToRect(bounds, geometry.Segment{A: j1.Pos, B: j2.Pos})
	if len(clipped) != 2 {
		return
	}
	v1 := resolveVertex(store, j1, clipped[0])
	v2 := resolveVertex(store, j2, clipped[1])
	store.EmitFromPostProcess(e.Site1, e.Site2, v1, v2)
}

// emitRay handles the one-vertex-one-open-end case. j's Sites carries the
// third site at this junction (the apex the ray must point away from);
// j.Inside is false as often as true here — a junction born outside
// bounds still has a definite position and direction to clip from, it
// just has no pre-assigned output vertex id to reuse for that end.
func emitRay(store *edgestore.Store, sites []geometry.Point, bounds geometry.Rect, e edgestore.Edge, j edgestore.Junction) {
	apex := thirdSite(j.Sites, e.Site1, e.Site2)
	clipped := geometry.ClipRayFromApex(bounds, sites[e.Site1], sites[e.Site2], sites[apex], j.Pos)
	if len(clipped) != 2 {
		return
	}
	v1 := resolveVertex(store, j, clipped[0])
	v2 := store.AddVertex(clipped[1])
	store.EmitFromPostProcess(e.Site1, e.Site2, v1, v2)
}

func emitLine(store *edgestore.Store, sites []geometry.Point, bounds geometry.Rect, e edgestore.Edge) {
	line := geometry.LineThrough(sites[e.Site1], sites[e.Site2]).Perpendicular(geometry.Midpoint(sites[e.Site1], sites[e.Site2]))
	clipped := geometry.ClipLineToRect(bounds, line)
	if len(clipped) != 2 {
		return
	}
	v1 := store.AddVertex(clipped[0])
	v2 := store.AddVertex(clipped[1])
	store.EmitFromPostProcess(e.Site1, e.Site2, v1, v2)
}

// resolveVertex reuses j's already-registered output vertex when it was
// finalized inside bounds during the sweep; otherwise the clip point
// computed here becomes its first and only output vertex.
func resolveVertex(store *edgestore.Store, j edgestore.Junction, clipped geometry.Point) int32 {
	if j.Inside {
		return j.VertexID
	}
	return store.AddVertex(clipped)
}

func thirdSite(sites [3]int, a, b int) int {
	for _, s := range sites {
		if s != a && s != b {
			return s
		}
	}
	return sites[0]
}
