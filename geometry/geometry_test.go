package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCircumCenterEquidistant(t *testing.T) {
	a := Point{0, 0}
	b := Point{4, 0}
	c := Point{0, 4}

	center, err := CircumCenter(a, b, c)
	require.NoError(t, err)

	require.InDelta(t, center.Dist(a), center.Dist(b), Epsilon)
	require.InDelta(t, center.Dist(b), center.Dist(c), Epsilon)
}

func TestCircumCenterDegenerate(t *testing.T) {
	_, err := CircumCenter(Point{0, 0}, Point{1, 1}, Point{2, 2})
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestClockwiseSign(t *testing.T) {
	require.Greater(t, ClockwiseSign(Point{0, 0}, Point{1, 0}, Point{1, -1}), 0.0)
	require.Less(t, ClockwiseSign(Point{0, 0}, Point{1, 0}, Point{1, 1}), 0.0)
	require.Equal(t, 0.0, ClockwiseSign(Point{0, 0}, Point{1, 0}, Point{2, 0}))
}

func TestParabolaIntersectXMidpoint(t *testing.T) {
	x := ParabolaIntersectX(0, Point{0, 5}, Point{10, 5})
	require.InDelta(t, 5.0, x, Epsilon)
}

func TestParabolaIntersectXFocusOnSweep(t *testing.T) {
	x := ParabolaIntersectX(3, Point{7, 3}, Point{20, 10})
	require.InDelta(t, 7.0, x, Epsilon)
}

func TestRectContainsTolerance(t *testing.T) {
	r := NewRect(100, 100)
	require.True(t, r.Contains(Point{-Epsilon / 2, 50}))
	require.False(t, r.Contains(Point{-1, 50}))
}

func TestClipSegmentToRectFullyInside(t *testing.T) {
	r := NewRect(100, 100)
	pts := ClipSegmentToRect(r, Segment{Point{10, 10}, Point{90, 90}})
	require.Len(t, pts, 2)
	require.Equal(t, Point{10, 10}, pts[0])
	require.Equal(t, Point{90, 90}, pts[1])
}

func TestClipSegmentToRectClipsBothEnds(t *testing.T) {
	r := NewRect(100, 100)
	pts := ClipSegmentToRect(r, Segment{Point{-50, 50}, Point{150, 50}})
	require.Len(t, pts, 2)
	require.InDelta(t, 0.0, pts[0].X, Epsilon)
	require.InDelta(t, 100.0, pts[1].X, Epsilon)
}

func TestClipSegmentToRectOneEndpointInside(t *testing.T) {
	r := NewRect(100, 100)
	pts := ClipSegmentToRect(r, Segment{Point{50, 50}, Point{200, 50}})
	require.Len(t, pts, 2)
	require.Equal(t, Point{50, 50}, pts[0])
	require.InDelta(t, 100.0, pts[1].X, Epsilon)
	require.InDelta(t, 50.0, pts[1].Y, Epsilon)
}

func TestClipLineToRectVerticalBisector(t *testing.T) {
	r := NewRect(100, 100)
	line := LineThrough(Point{50, 0}, Point{50, 100})
	pts := ClipLineToRect(r, line)
	require.Len(t, pts, 2)
	for _, p := range pts {
		require.InDelta(t, 50.0, p.X, Epsilon)
	}
}

func TestReorientDirectsAlongBisectorNotPerpendicular(t *testing.T) {
	a := Point{0, 0}
	b := Point{4, 2}
	apex := Point{1, 5}
	origin := Point{0, 5}

	mid := Midpoint(a, b)
	bisector := LineThrough(a, b).Perpendicular(mid)
	ray := Ray{Point: origin, Dir: apex}.reorient(bisector, mid)

	require.InDelta(t, 1.8, ray.Dir.X, 1e-9)
	require.InDelta(t, 1.4, ray.Dir.Y, 1e-9)

	// the direction point must lie on the bisector 2x+y=5, not on the
	// perpendicular-rotated line a buggy reorient would produce (2x+y=7).
	require.InDelta(t, 5.0, 2*ray.Dir.X+ray.Dir.Y, 1e-9)
}

func TestClipRayFromApexPinnedNonSymmetric(t *testing.T) {
	r := Rect{LB: Point{-10, -10}, RT: Point{10, 10}}
	a := Point{0, 0}
	b := Point{4, 2}
	apex := Point{1, 5}
	origin := Point{0, 5}

	pts := ClipRayFromApex(r, a, b, apex, origin)
	require.Len(t, pts, 2)
	for _, p := range pts {
		require.InDelta(t, 5.0, 2*p.X+p.Y, 1e-6, "clipped ray must stay on the a/b bisector")
	}
}

func TestClipRayToRectOrdersFromOrigin(t *testing.T) {
	r := NewRect(100, 100)
	ray := Ray{Point: Point{50, 50}, Dir: Point{50, 60}}
	pts := ClipRayToRect(r, ray)
	require.Len(t, pts, 2)
	require.Less(t, ray.Point.Dist(pts[0]), ray.Point.Dist(pts[1])+Epsilon)
}
