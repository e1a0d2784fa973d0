// Package edgestore is the arena of intermediate edge records and their
// polymorphic endpoints (§3 "Edge record (intermediate)" / "Endpoint").
// Every Voronoi vertex — interior or boundary-clipped — is also arena-
// allocated here and shared by index between the sweep and the
// post-processor, so vertex indices in emitted edges are stable once
// assigned.
package edgestore

import "github.com/hanting/fortune-voronoi/geometry"

// EndpointKind tags which variant an edge endpoint currently is.
type EndpointKind uint8

const (
	// EndBreakpoint: the endpoint is still sweeping; the live beach-line
	// breakpoint id that tracks it is recorded for live rewiring (§4.5),
	// but carries no position — post-processing treats any residual
	// EndBreakpoint the same as EndInfinite (see below).
	EndBreakpoint EndpointKind = iota
	// EndJunction: the endpoint has a computed circumcenter, tracked in
	// the Junction arena; Inside tells the post-processor whether it is
	// already a finalized output vertex or still needs clipping.
	EndJunction
	// EndInfinite: the endpoint was born with no computed position at
	// all — only InsertTopArc's degenerate top-of-sweep edge produces
	// this (§4.2); the post-processor treats it exactly like
	// EndBreakpoint (an open end with no known point).
	EndInfinite
)

// Endpoint is one end of an intermediate Edge record.
type Endpoint struct {
	Kind       EndpointKind
	Breakpoint int32 // valid when Kind == EndBreakpoint: beach-line node id
	Junction   int32 // valid when Kind == EndJunction: junction arena index
}

// Junction is a computed circumcenter — the finalized three-edge
// intersection §3 describes. Sites holds the three site indices whose
// cells meet here, needed by the post-processor to reconstruct a ray's
// direction (§4.6) even after the sweep has torn down the beach line.
type Junction struct {
	Pos      geometry.Point
	Sites    [3]int
	Inside   bool
	VertexID int32 // valid when Inside: index into the shared vertex arena
	RefCount int
}

// Edge is an intermediate edge record: two endpoints and the two sites it
// separates.
type Edge struct {
	E1, E2       Endpoint
	Site1, Site2 int
	alive        bool
}

// Output is a finalized Voronoi edge: site and vertex indices only.
type Output struct {
	Site1, Site2     int
	Vertex1, Vertex2 int32
}

// Store is the arena for edge records, junctions, and output vertices.
type Store struct {
	edges     []Edge
	junctions []Junction
	vertices  []geometry.Point
	outputs   []Output
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// AddVertex appends p to the shared output-vertex arena and returns its
// index.
func (s *Store) AddVertex(p geometry.Point) int32 {
	id := int32(len(s.vertices))
	s.vertices = append(s.vertices, p)
	return id
}

// Vertices returns the accumulated output vertex list.
func (s *Store) Vertices() []geometry.Point { return s.vertices }

// Outputs returns the accumulated finalized edges.
func (s *Store) Outputs() []Output { return s.outputs }

// NewJunction allocates a junction for the circumcenter pos with the
// three meeting sites, ref-count 3 per §4.2 RemoveArc. If inside is true
// it is also immediately registered as an output vertex.
func (s *Store) NewJunction(pos geometry.Point, sites [3]int, inside bool) int32 {
	j := Junction{Pos: pos, Sites: sites, Inside: inside, RefCount: 3, VertexID: -1}
	if inside {
		j.VertexID = s.AddVertex(pos)
	}
	id := int32(len(s.junctions))
	s.junctions = append(s.junctions, j)
	return id
}

// Junction returns the junction record at id.
func (s *Store) Junction(id int32) Junction { return s.junctions[id] }

// releaseJunction decrements a junction's reference count; once it hits
// zero the junction is done (no further edge will reference it). There is
// nothing to free in a slice arena, so this is purely bookkeeping — kept
// because a negative ref-count is an invariant violation worth detecting.
func (s *Store) releaseJunction(id int32) error {
	j := &s.junctions[id]
	j.RefCount--
	if j.RefCount < 0 {
		return ErrRefCountUnderflow
	}
	return nil
}

// NewEdgeBetweenBreakpoints creates an edge with both endpoints open at
// fresh breakpoints bp1, bp2 (§4.2 InsertArcIntoArc).
func (s *Store) NewEdgeBetweenBreakpoints(bp1, bp2 int32, site1, site2 int) int32 {
	return s.newEdge(Endpoint{Kind: EndBreakpoint, Breakpoint: bp1}, Endpoint{Kind: EndBreakpoint, Breakpoint: bp2}, site1, site2)
}

// NewEdgeFromTop creates the degenerate edge InsertTopArc produces: one
// open breakpoint end, one EndInfinite end with no position (§4.2).
func (s *Store) NewEdgeFromTop(bp int32, site1, site2 int) int32 {
	return s.newEdge(Endpoint{Kind: EndBreakpoint, Breakpoint: bp}, Endpoint{Kind: EndInfinite}, site1, site2)
}

// NewEdgeFromJunction creates an edge with one open breakpoint end and
// one end already finalized at junction (§4.2 RemoveArc's "new edge
// between bpModify and the vertex").
func (s *Store) NewEdgeFromJunction(bp int32, junction int32, site1, site2 int) int32 {
	return s.newEdge(Endpoint{Kind: EndBreakpoint, Breakpoint: bp}, Endpoint{Kind: EndJunction, Junction: junction}, site1, site2)
}

func (s *Store) newEdge(e1, e2 Endpoint, site1, site2 int) int32 {
	id := int32(len(s.edges))
	s.edges = append(s.edges, Edge{E1: e1, E2: e2, Site1: site1, Site2: site2, alive: true})
	return id
}

// Edge returns the edge record at id.
func (s *Store) Edge(id int32) Edge { return s.edges[id] }

// SetBreakpointEdge rebinds the open end (1 or 2) of edgeID to track bp,
// replacing whatever endpoint that end held. The sweep driver does not
// call it: it creates each edge after the breakpoints it references.
func (s *Store) SetBreakpointEdge(edgeID int32, end int, bp int32) {
	e := &s.edges[edgeID]
	if end == 1 {
		e.E1 = Endpoint{Kind: EndBreakpoint, Breakpoint: bp}
	} else {
		e.E2 = Endpoint{Kind: EndBreakpoint, Breakpoint: bp}
	}
}

// ResolveToJunction replaces the endpoint of edgeID at end (1 or 2),
// previously an open breakpoint, with junction — the rewiring §4.5
// UpdateEdge performs when a breakpoint dies. It then attempts
// finalization: if both ends are now EndJunction with Inside, the edge is
// emitted as an Output and the record is retired, releasing both
// junctions' ref counts.
func (s *Store) ResolveToJunction(edgeID int32, end int, junction int32) error {
	e := &s.edges[edgeID]
	if !e.alive {
		return ErrDeadEdge
	}
	ep := Endpoint{Kind: EndJunction, Junction: junction}
	if end == 1 {
		e.E1 = ep
	} else {
		e.E2 = ep
	}

	if e.E1.Kind == EndJunction && e.E2.Kind == EndJunction {
		j1 := s.junctions[e.E1.Junction]
		j2 := s.junctions[e.E2.Junction]
		if j1.Inside && j2.Inside {
			s.outputs = append(s.outputs, Output{
				Site1: e.Site1, Site2: e.Site2,
				Vertex1: j1.VertexID, Vertex2: j2.VertexID,
			})
			e.alive = false
			if err := s.releaseJunction(e.E1.Junction); err != nil {
				return err
			}
			if err := s.releaseJunction(e.E2.Junction); err != nil {
				return err
			}
		}
	}
	return nil
}

// Residual returns every edge record still alive after the sweep —
// handed to the post-processor per §4.5/§4.6.
func (s *Store) Residual() []struct {
	ID   int32
	Edge Edge
} {
	var out []struct {
		ID   int32
		Edge Edge
	}
	for i, e := range s.edges {
		if e.alive {
			out = append(out, struct {
				ID   int32
				Edge Edge
			}{int32(i), e})
		}
	}
	return out
}

// EmitFromPostProcess records a post-processor-finalized edge directly
// (§4.6's three clip cases all end by emitting an Output from two fresh
// or reused vertex ids, bypassing the junction-refcount machinery that
// only applies to sweep-time finalization).
func (s *Store) EmitFromPostProcess(site1, site2 int, v1, v2 int32) {
	s.outputs = append(s.outputs, Output{Site1: site1, Site2: site2, Vertex1: v1, Vertex2: v2})
}
