package voronoi

import "github.com/hanting/fortune-voronoi/geometry"

// Edge is one finalized Voronoi edge: the indices (into the owning
// Diagram's Sites) of the two cells it separates, and the indices (into
// Vertices) of its two endpoints.
type Edge struct {
	Site1, Site2     int
	Vertex1, Vertex2 int
}

// Diagram is the result of Build.
type Diagram struct {
	Sites    []geometry.Point
	Vertices []geometry.Point
	Edges    []Edge
	Bounds   geometry.Rect
}

// CellEdges returns the indices into d.Edges of every edge bordering
// site.
func (d *Diagram) CellEdges(site int) []int {
	var out []int
	for i, e := range d.Edges {
		if e.Site1 == site || e.Site2 == site {
			out = append(out, i)
		}
	}
	return out
}

// CellVertices returns the deduplicated vertex indices of every edge
// bordering site, in no particular order.
func (d *Diagram) CellVertices(site int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, i := range d.CellEdges(site) {
		e := d.Edges[i]
		if !seen[e.Vertex1] {
			seen[e.Vertex1] = true
			out = append(out, e.Vertex1)
		}
		if !seen[e.Vertex2] {
			seen[e.Vertex2] = true
			out = append(out, e.Vertex2)
		}
	}
	return out
}
