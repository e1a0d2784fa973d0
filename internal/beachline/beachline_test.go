package beachline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanting/fortune-voronoi/geometry"
	"github.com/hanting/fortune-voronoi/internal/events"
)

func TestInsertArcHeadOnEmptyTree(t *testing.T) {
	sites := []geometry.Point{{X: 5, Y: 5}}
	tr := New(sites)
	require.True(t, tr.Empty())
	arc := tr.InsertArcHead(0)
	require.False(t, tr.Empty())
	require.Equal(t, arc, tr.Root())
	require.True(t, tr.IsArc(arc))
	require.Equal(t, Nil, tr.LeftArcNeighbor(arc))
	require.Equal(t, Nil, tr.RightArcNeighbor(arc))
}

func TestInsertTopArcBuildsLeftToRightChain(t *testing.T) {
	sites := []geometry.Point{
		{X: 50, Y: 100}, // inserted first (rightmost)
		{X: 30, Y: 100}, // inserted second, to the left
		{X: 10, Y: 100}, // inserted third, further left
	}
	tr := New(sites)
	first := tr.InsertArcHead(0)
	second, _ := tr.InsertTopArc(1)
	third, _ := tr.InsertTopArc(2)

	require.Equal(t, Nil, tr.LeftArcNeighbor(third))
	require.Equal(t, second, tr.RightArcNeighbor(third))
	require.Equal(t, third, tr.LeftArcNeighbor(second))
	require.Equal(t, first, tr.RightArcNeighbor(second))
	require.Equal(t, second, tr.LeftArcNeighbor(first))
	require.Equal(t, Nil, tr.RightArcNeighbor(first))
}

func TestLocateFindsArcAboveX(t *testing.T) {
	sites := []geometry.Point{{X: 20, Y: 50}, {X: 80, Y: 50}}
	tr := New(sites)
	arc0 := tr.InsertArcHead(0)
	res := tr.InsertArcIntoArc(arc0, 1)
	_ = res

	below := tr.Locate(10, 0)
	require.Equal(t, 0, tr.Site(below))

	// both breakpoints sit at x=50 (equal-y foci), so x=90 lands in the
	// right-hand copy of the split site-0 arc
	above := tr.Locate(90, 0)
	require.Equal(t, 0, tr.Site(above))
}

func TestInsertArcIntoArcSplitsIntoThree(t *testing.T) {
	sites := []geometry.Point{{X: 50, Y: 50}, {X: 50, Y: 0}}
	tr := New(sites)
	arc0 := tr.InsertArcHead(0)
	res := tr.InsertArcIntoArc(arc0, 1)

	require.Equal(t, 0, tr.Site(res.Left))
	require.Equal(t, 1, tr.Site(res.Middle))
	require.Equal(t, 0, tr.Site(res.Right))
	require.Equal(t, res.Middle, tr.LeftArcNeighbor(res.Right))
	require.Equal(t, res.Left, tr.LeftArcNeighbor(res.Middle))
	require.Equal(t, Nil, tr.LeftArcNeighbor(res.Left))
	require.Equal(t, Nil, tr.RightArcNeighbor(res.Right))
}

func TestRemoveArcMergesFlankingArcs(t *testing.T) {
	sites := []geometry.Point{{X: 10, Y: 50}, {X: 50, Y: 0}, {X: 90, Y: 50}}
	tr := New(sites)
	arc0 := tr.InsertArcHead(0)
	res := tr.InsertArcIntoArc(arc0, 1)
	tr.SetOpenEdge(res.BP1, 100, 1)
	tr.SetOpenEdge(res.BP2, 200, 1)

	res2 := tr.InsertArcIntoArc(res.Right, 2)
	// beach line is now: Left(0), Middle1(1), Left2(0), Middle2(2), Right2(0)
	// collapse Left2 (site 0, the arc directly bordering Middle1 and Middle2)
	rr := tr.RemoveArc(res2.Left)

	require.Equal(t, res.Middle, rr.Left)
	require.Equal(t, res2.Middle, rr.Right)
	require.Equal(t, rr.Right, tr.RightArcNeighbor(rr.Left))
	require.Equal(t, rr.Left, tr.LeftArcNeighbor(rr.Right))
}

func TestRemoveArcCancelsFlankingPendingEvents(t *testing.T) {
	sites := []geometry.Point{{X: 10, Y: 50}, {X: 50, Y: 0}, {X: 90, Y: 50}}
	tr := New(sites)
	arc0 := tr.InsertArcHead(0)
	res := tr.InsertArcIntoArc(arc0, 1)
	res2 := tr.InsertArcIntoArc(res.Right, 2)

	// no real event queue here; attach stand-in events to the two arcs that
	// will flank the removed one and verify their pending pointers are cleared
	tr.SetPendingEvent(res.Middle, &events.CircleEvent{Arc: res.Middle})
	tr.SetPendingEvent(res2.Middle, &events.CircleEvent{Arc: res2.Middle})
	rr := tr.RemoveArc(res2.Left)
	require.Nil(t, tr.PendingEvent(rr.Left))
	require.Nil(t, tr.PendingEvent(rr.Right))
}
