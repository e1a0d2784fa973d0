// Package geometry implements the stateless 2D primitives the sweep and
// post-process stages build on: points, lines, rays, segments, rectangles,
// and the handful of derived quantities (circumcenter, bisector, parabola
// intersection) Fortune's algorithm needs. Nothing in this package holds
// state across calls.
package geometry

import (
	"errors"
	"math"
)

// Epsilon is the absolute tolerance used throughout this package's
// geometric comparisons: rectangle containment and point equality (which
// drives clip-result dedup). The sweep's circle-event trigger comparison
// uses Build's own configurable tolerance instead, which defaults to the
// same value. Some earlier revisions of the source this package is
// modeled on used 1e-3; 1e-4 is the later, more careful value and is the
// one this package uses everywhere.
const Epsilon = 1e-4

// ErrDegenerate is returned by CircumCenter when the three input points are
// collinear (or nearly so), so no circle passes through all three.
var ErrDegenerate = errors.New("geometry: degenerate (collinear) points")

// Point is an immutable 2D coordinate.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Eq reports whether p and q are equal within Epsilon.
func (p Point) Eq(q Point) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}

// Finite reports whether both coordinates are finite (no NaN/Inf).
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Rect is an axis-aligned rectangle with lb = left-bottom, rt = right-top.
type Rect struct {
	LB, RT Point
}

// NewRect builds a rectangle with lb=(0,0), rt=(sizeX,sizeY).
func NewRect(sizeX, sizeY float64) Rect {
	return Rect{LB: Point{0, 0}, RT: Point{sizeX, sizeY}}
}

// Valid reports whether the rectangle has strictly positive extent.
func (r Rect) Valid() bool {
	return r.RT.X > r.LB.X && r.RT.Y > r.LB.Y
}

// Contains reports whether p lies within r, with an absolute tolerance of
// Epsilon on every side.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.LB.X-Epsilon && p.X <= r.RT.X+Epsilon &&
		p.Y >= r.LB.Y-Epsilon && p.Y <= r.RT.Y+Epsilon
}

// corners returns the four corners in order lb, lt, rt, rb.
func (r Rect) corners() [4]Point {
	return [4]Point{
		r.LB,
		{r.LB.X, r.RT.Y},
		r.RT,
		{r.RT.X, r.LB.Y},
	}
}

// sides returns the four boundary lines, in the same order as corners.
func (r Rect) sides() [4]Line {
	c := r.corners()
	return [4]Line{
		LineThrough(c[0], c[1]),
		LineThrough(c[1], c[2]),
		LineThrough(c[2], c[3]),
		LineThrough(c[3], c[0]),
	}
}

// Line is a line in implicit form ax + by + c = 0.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line passing through a and b.
func LineThrough(a, b Point) Line {
	return Line{A: a.Y - b.Y, B: b.X - a.X, C: a.X*b.Y - b.X*a.Y}
}

// ContainsX reports whether the line has a well-defined x for a given y
// (i.e. it is not horizontal).
func (l Line) ContainsX() bool { return l.A != 0 }

// ContainsY reports whether the line has a well-defined y for a given x
// (i.e. it is not vertical).
func (l Line) ContainsY() bool { return l.B != 0 }

// XAt returns the x coordinate of the line at height y. The caller must
// have checked ContainsX.
func (l Line) XAt(y float64) float64 {
	return (-l.C - l.B*y) / l.A
}

// YAt returns the y coordinate of the line at x. The caller must have
// checked ContainsY.
func (l Line) YAt(x float64) float64 {
	return (-l.C - l.A*x) / l.B
}

// Intersects reports whether two lines are not parallel.
func (l Line) Intersects(o Line) bool {
	return l.A*o.B-o.A*l.B != 0
}

// Intersect returns the intersection point of two non-parallel lines.
// The caller must have checked Intersects.
func (l Line) Intersect(o Line) Point {
	k := l.A*o.B - o.A*l.B
	return Point{
		X: (o.C*l.B - l.C*o.B) / k,
		Y: (l.C*o.A - o.C*l.A) / k,
	}
}

// Perpendicular returns the line perpendicular to l passing through point.
func (l Line) Perpendicular(point Point) Line {
	return Line{A: -l.B, B: l.A, C: l.B*point.X - l.A*point.Y}
}

// Project returns the point on l closest to p: the foot of the
// perpendicular dropped from p onto l.
func (l Line) Project(p Point) Point {
	return l.Intersect(l.Perpendicular(p))
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Point
}

// Ray is a ray with origin Point and a second point Dir giving its
// direction (not necessarily unit length).
type Ray struct {
	Point Point
	Dir   Point
}

// reorient returns a ray with the same origin, redirected to run along
// bisector away from apex (ray.Dir holds the apex point on entry): the
// direction is origin minus apex's projection onto bisector, added back
// at mid so the result is a point on bisector rather than a bare vector.
func (ray Ray) reorient(bisector Line, mid Point) Ray {
	proj := bisector.Project(ray.Dir)
	dir := Point{X: mid.X + ray.Point.X - proj.X, Y: mid.Y + ray.Point.Y - proj.Y}
	return Ray{Point: ray.Point, Dir: dir}
}

// ClockwiseSign returns the sign of the cross product of (c-b) and (b-a):
// positive when a,b,c turn clockwise, negative when counter-clockwise,
// zero when collinear.
func ClockwiseSign(a, b, c Point) float64 {
	return (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
}

// CircumCenter returns the center of the circle through a, b, c. It fails
// with ErrDegenerate when the three points are collinear.
func CircumCenter(a, b, c Point) (Point, error) {
	xy1 := a.X*a.X + a.Y*a.Y
	xy2 := b.X*b.X + b.Y*b.Y
	xy3 := c.X*c.X + c.Y*c.Y

	zx := (a.Y-b.Y)*xy3 + (b.Y-c.Y)*xy1 + (c.Y-a.Y)*xy2
	zy := (a.X-b.X)*xy3 + (b.X-c.X)*xy1 + (c.X-a.X)*xy2
	z := (a.X-b.X)*(c.Y-a.Y) - (a.Y-b.Y)*(c.X-a.X)

	if z == 0 {
		return Point{}, ErrDegenerate
	}

	return Point{X: -zx / (2 * z), Y: zy / (2 * z)}, nil
}

// ParabolaIntersectX returns the x-coordinate of the intersection of the
// two parabolas with foci f1, f2 and common directrix y=sweepY that is
// relevant to the beach line: the left intersection when f1 is the higher
// focus, else the right. Degenerate cases: if either focus sits on the
// sweep line, the intersection x equals that focus's x; if the foci share
// y, the intersection is their midpoint x.
func ParabolaIntersectX(sweepY float64, f1, f2 Point) float64 {
	if sweepY == f1.Y {
		return f1.X
	}
	if sweepY == f2.Y {
		return f2.X
	}

	a := f2.Y - f1.Y
	if a == 0 {
		return (f1.X + f2.X) / 2
	}

	b := f2.X*f1.Y - f1.X*f2.Y + sweepY*(f1.X-f2.X)

	x1sq := f1.X * f1.X
	y1sq := f1.Y * f1.Y
	x2sq := f2.X * f2.X
	y2sq := f2.Y * f2.Y

	c := (sweepY*sweepY+f1.Y*f2.Y)*(f1.Y-f2.Y) +
		sweepY*(x2sq+y2sq-x1sq-y1sq) +
		x1sq*f2.Y - x2sq*f1.Y

	disc := b*b - a*c
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	x1 := (-b + sq) / a
	x2 := (-b - sq) / a

	left, right := x1, x2
	if left > right {
		left, right = right, left
	}

	if f1.Y > f2.Y {
		return left
	}
	return right
}
