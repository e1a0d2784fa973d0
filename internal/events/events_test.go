package events

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanting/fortune-voronoi/geometry"
)

func TestSiteQueueOrdersByDecreasingYThenX(t *testing.T) {
	sites := []geometry.Point{
		{X: 10, Y: 5},
		{X: 20, Y: 10},
		{X: 5, Y: 10},
		{X: 0, Y: 0},
	}
	q := NewSiteQueue(sites)
	require.Equal(t, 4, q.Len())

	var order []int
	for q.Len() > 0 {
		order = append(order, q.Pop())
	}
	require.Equal(t, []int{1, 2, 0, 3}, order)
}

func TestCircleQueuePopsHighestTriggerYFirst(t *testing.T) {
	q := NewCircleQueue()
	q.Push(5, 0)
	ev2 := q.Push(20, 1)
	q.Push(10, 2)
	require.Equal(t, 3, q.Len())
	require.Equal(t, 20.0, q.PeekMaxY())

	got := q.PopMax()
	require.Equal(t, ev2, got)
	require.Equal(t, 2, q.Len())
	require.Equal(t, 10.0, q.PeekMaxY())
}

func TestCircleQueueRemoveCancelsEvent(t *testing.T) {
	q := NewCircleQueue()
	ev := q.Push(5, 0)
	q.Push(20, 1)
	q.Remove(ev)
	require.Equal(t, 1, q.Len())
	require.Equal(t, 20.0, q.PeekMaxY())

	q.Remove(nil) // no-op, must not panic
}
