package geometry

import "math"

// ClipLineToRect intersects an infinite line with the rectangle's four
// sides and keeps only the intersections that fall inside the rectangle.
// Returns 0 or 2 points; order is not meaningful for a bare line.
func ClipLineToRect(r Rect, l Line) []Point {
	var points []Point
	for _, side := range r.sides() {
		if !l.Intersects(side) {
			continue
		}
		p := l.Intersect(side)
		if r.Contains(p) {
			points = append(points, p)
		}
	}
	points = dedupPairs(points)
	if len(points) < 2 {
		return nil
	}
	return points
}

// ClipSegmentToRect clips segment a->b to the rectangle, preserving the
// a->b orientation in the returned pair. Returns 0 or 2 points.
func ClipSegmentToRect(r Rect, seg Segment) []Point {
	line := LineThrough(seg.A, seg.B)
	segRect := boundingRect(seg.A, seg.B)

	var candidates []Point
	for _, side := range r.sides() {
		if !line.Intersects(side) {
			continue
		}
		p := line.Intersect(side)
		if r.Contains(p) && segRect.Contains(p) {
			candidates = append(candidates, p)
		}
	}
	candidates = dedupPairs(candidates)

	var out []Point
	if len(candidates) < 2 {
		aIn, bIn := r.Contains(seg.A), r.Contains(seg.B)
		switch {
		case aIn && bIn:
			return []Point{seg.A, seg.B}
		case aIn && len(candidates) == 1:
			return []Point{seg.A, candidates[0]}
		case bIn && len(candidates) == 1:
			return []Point{candidates[0], seg.B}
		default:
			return nil
		}
	}

	if r.Contains(seg.A) {
		out = append(out, seg.A)
	} else if seg.A.Dist(candidates[0]) < seg.A.Dist(candidates[1]) {
		out = append(out, candidates[0])
	} else {
		out = append(out, candidates[1])
	}

	if r.Contains(seg.B) {
		out = append(out, seg.B)
	} else if seg.B.Dist(candidates[0]) < seg.B.Dist(candidates[1]) {
		out = append(out, candidates[0])
	} else {
		out = append(out, candidates[1])
	}

	return out
}

// ClipRayToRect clips a ray (origin ray.Point, through ray.Dir) to the
// rectangle. The returned pair, if any, is ordered from the ray's origin
// outward.
func ClipRayToRect(r Rect, ray Ray) []Point {
	points := []Point{ray.Point}
	for _, side := range r.segments() {
		if intersectsRaySegment(side, ray) {
			line := LineThrough(ray.Point, ray.Dir)
			sideLine := LineThrough(side.A, side.B)
			if line.Intersects(sideLine) {
				points = append(points, line.Intersect(sideLine))
			}
		}
	}

	var inside []Point
	for _, p := range points {
		if r.Contains(p) {
			inside = append(inside, p)
		}
	}
	inside = dedupPairs(inside)
	if len(inside) < 2 {
		return nil
	}

	if ray.Point.Dist(inside[0]) < ray.Point.Dist(inside[1]) {
		return []Point{inside[0], inside[1]}
	}
	return []Point{inside[1], inside[0]}
}

// ClipRayFromApex builds the bisector ray for sites a,b with origin
// origin, oriented away from apex (the third site at a junction), then
// clips it to the rectangle.
func ClipRayFromApex(r Rect, a, b, apex, origin Point) []Point {
	mid := Midpoint(a, b)
	bisector := LineThrough(a, b).Perpendicular(mid)
	ray := Ray{Point: origin, Dir: apex}.reorient(bisector, mid)
	return ClipRayToRect(r, ray)
}

func (r Rect) segments() [4]Segment {
	c := r.corners()
	return [4]Segment{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

func boundingRect(a, b Point) Rect {
	lo := Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
	hi := Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
	return Rect{LB: lo, RT: hi}
}

// intersectsRaySegment reports whether ray crosses segment, following the
// same cosine/rotation test as the reference geometry kernel this package
// is modeled on: an obtuse angle between the ray direction and the segment
// means the segment lies behind the ray's origin, not ahead of it.
func intersectsRaySegment(seg Segment, ray Ray) bool {
	line := LineThrough(seg.A, seg.B)
	perp := line.Perpendicular(ray.Point)
	if !line.Intersects(perp) {
		return false
	}
	p := line.Intersect(perp)

	ax := p.X - ray.Point.X
	ay := p.Y - ray.Point.Y
	bx := ray.Dir.X - ray.Point.X
	by := ray.Dir.Y - ray.Point.Y

	na := math.Sqrt(ax*ax + ay*ay)
	nb := math.Sqrt(bx*bx + by*by)
	if na == 0 || nb == 0 {
		return true
	}
	cos := (ax*bx + ay*by) / (na * nb)
	if cos < 0 {
		return false
	}

	t1 := ClockwiseSign(ray.Point, ray.Dir, seg.A)
	t2 := ClockwiseSign(ray.Point, ray.Dir, seg.B)
	return (t1 >= 0 && t2 <= 0) || (t2 >= 0 && t1 <= 0)
}

// dedupPairs removes near-duplicate points (within Epsilon), since a
// rectangle corner can otherwise be double-counted by two adjacent sides,
// and keeps at most the first two. It can return fewer than two points;
// each clip function checks the count itself.
func dedupPairs(points []Point) []Point {
	var out []Point
	for _, p := range points {
		dup := false
		for _, q := range out {
			if p.Eq(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	if len(out) > 2 {
		out = out[:2]
	}
	return out
}
